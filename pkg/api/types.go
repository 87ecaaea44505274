package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DecodeRequest carries one column value as hex. The column is described
// either by name (Type, Size, Scale, Precision) or by a raw TYPE_INFO block in
// TypeInfoHex, which wins when both are set.
type DecodeRequest struct {
	Type        string `json:"type,omitempty"`
	Size        uint32 `json:"size,omitempty"`
	Scale       uint8  `json:"scale,omitempty"`
	Precision   uint8  `json:"precision,omitempty"`
	TypeInfoHex string `json:"type_info_hex,omitempty"`
	Hex         string `json:"hex"`
}

// DecodeResponse is a decoded column value
type DecodeResponse struct {
	Kind     string `json:"kind"`
	TypeInfo string `json:"type_info"`
	Value    string `json:"value"`
	Hex      string `json:"hex,omitempty"`
	Unix     *int64 `json:"unix,omitempty"`
}

// EncodeRequest carries a host value to encode. GUIDs may be given as UUID
// text or as 16 canonical bytes in Hex. Null encodes an absent value.
type EncodeRequest struct {
	Type string `json:"type"`
	Hex  string `json:"hex,omitempty"`
	UUID string `json:"uuid,omitempty"`
	Null bool   `json:"null,omitempty"`
}

// EncodeResponse is the wire form of an encoded value
type EncodeResponse struct {
	Null     bool   `json:"null"`
	TypeInfo string `json:"type_info"`
	Hex      string `json:"hex"`
}

// TypeDescriptor describes one supported kind
type TypeDescriptor struct {
	Kind     string   `json:"kind"`
	Tag      string   `json:"tag"`
	TypeInfo string   `json:"type_info"`
	Accepts  []string `json:"accepts"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind         string
	Port         int
	APIKey       string // empty disables authentication
	MaxValueSize int
}
