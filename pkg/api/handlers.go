package api

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ssargent/tdswire/pkg/codec"
	"github.com/ssargent/tdswire/pkg/tds"
	"github.com/ssargent/tdswire/pkg/wire"
)

// typeAliases lists the type names each kind accepts in requests.
var typeAliases = map[codec.Kind][]string{
	codec.KindGUID:           {"guid", "uuid", "uniqueidentifier"},
	codec.KindBinary:         {"binary", "varbinary", "bytes"},
	codec.KindDateTimeOffset: {"datetimeoffset", "dto"},
}

// Server holds the API server state
type Server struct {
	decoder *codec.Decoder
	config  ServerConfig
	metrics *Metrics
	logger  zerolog.Logger
}

// NewServer creates a new API server
func NewServer(decoder *codec.Decoder, config ServerConfig, metrics *Metrics, logger zerolog.Logger) *Server {
	if decoder == nil {
		decoder = codec.NewDecoder(codec.DecoderConfig{})
	}
	if config.MaxValueSize <= 0 {
		config.MaxValueSize = 8000
	}
	return &Server{
		decoder: decoder,
		config:  config,
		metrics: metrics,
		logger:  logger.With().Str("component", "api").Logger(),
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{
		"status":         "healthy",
		"temporal_scale": s.decoder.TemporalScale().String(),
	})
}

// handleTypes godoc
//
//	@Summary		Supported types
//	@Description	List the column kinds the codec can decode with their default descriptors
//	@Tags			codec
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/types [get]
//	@Security		ApiKeyAuth
func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, DescribeKinds())
}

// DescribeKinds lists every supported kind with its default descriptor.
func DescribeKinds() []TypeDescriptor {
	types := make([]TypeDescriptor, 0, len(codec.Kinds))
	for _, k := range codec.Kinds {
		ti := k.TypeInfo()
		types = append(types, TypeDescriptor{
			Kind:     k.String(),
			Tag:      fmt.Sprintf("0x%02X", uint8(ti.Type)),
			TypeInfo: ti.String(),
			Accepts:  typeAliases[k],
		})
	}
	return types
}

// handleDecode godoc
//
//	@Summary		Decode a column value
//	@Description	Decode the hex bytes of one column value using a named type or a raw TYPE_INFO block
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			body	body		DecodeRequest	true	"Value to decode"
//	@Success		200		{object}	APIResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		413		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/decode [post]
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if !s.readJSON(w, r, &req) {
		return
	}

	ti, err := describeRequest(req)
	if err != nil {
		s.metrics.RecordCodecOperation(codec.KindUnknown.String(), "decode", false, 0)
		sendError(w, err.Error(), requestErrorStatus(err))
		return
	}

	b, err := wire.ParseHex(req.Hex)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(b) > s.config.MaxValueSize {
		sendError(w, fmt.Sprintf("value of %d bytes exceeds limit of %d", len(b), s.config.MaxValueSize), http.StatusRequestEntityTooLarge)
		return
	}

	v, err := s.decoder.DecodeBytes(ti, b)
	if err != nil {
		kind, _ := codec.Select(ti)
		s.metrics.RecordCodecOperation(kind.String(), "decode", false, len(b))
		s.logger.Debug().Err(err).Str("request_id", RequestID(r.Context())).Str("type", ti.String()).Msg("decode rejected")
		sendError(w, err.Error(), codecErrorStatus(err))
		return
	}
	s.metrics.RecordCodecOperation(v.Kind.String(), "decode", true, len(b))

	sendSuccess(w, NewDecodeResponse(ti, v))
}

// NewDecodeResponse renders a decoded value described by ti.
func NewDecodeResponse(ti tds.TypeInfo, v codec.Value) DecodeResponse {
	resp := DecodeResponse{
		Kind:     v.Kind.String(),
		TypeInfo: ti.String(),
		Value:    v.String(),
	}
	switch v.Kind {
	case codec.KindGUID, codec.KindBinary:
		resp.Hex = hex.EncodeToString(v.Bytes)
	case codec.KindDateTimeOffset:
		unix := v.Time.Unix()
		resp.Unix = &unix
	}
	return resp
}

// handleEncode godoc
//
//	@Summary		Encode a column value
//	@Description	Produce the wire bytes of a uniqueidentifier or binary value
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			body	body		EncodeRequest	true	"Value to encode"
//	@Success		200		{object}	APIResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		413		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/encode [post]
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	if !s.readJSON(w, r, &req) {
		return
	}

	kind, err := codec.ParseKind(req.Type)
	if err != nil {
		sendError(w, err.Error(), requestErrorStatus(err))
		return
	}

	var payload []byte
	if !req.Null {
		switch {
		case kind == codec.KindGUID && req.UUID != "":
			u, err := uuid.Parse(req.UUID)
			if err != nil {
				sendError(w, fmt.Sprintf("invalid uuid: %v", err), http.StatusBadRequest)
				return
			}
			payload = u[:]
		default:
			payload, err = wire.ParseHex(req.Hex)
			if err != nil {
				sendError(w, err.Error(), http.StatusBadRequest)
				return
			}
			if payload == nil {
				payload = []byte{}
			}
		}
	}
	if len(payload) > s.config.MaxValueSize {
		sendError(w, fmt.Sprintf("value of %d bytes exceeds limit of %d", len(payload), s.config.MaxValueSize), http.StatusRequestEntityTooLarge)
		return
	}

	out, isNull, err := codec.Encode(nil, kind, payload)
	if err != nil {
		s.metrics.RecordCodecOperation(kind.String(), "encode", false, len(payload))
		sendError(w, err.Error(), codecErrorStatus(err))
		return
	}
	s.metrics.RecordCodecOperation(kind.String(), "encode", true, len(payload))

	sendSuccess(w, NewEncodeResponse(kind, out, isNull))
}

// NewEncodeResponse renders the wire bytes an encoder produced.
func NewEncodeResponse(kind codec.Kind, out []byte, isNull codec.IsNull) EncodeResponse {
	return EncodeResponse{
		Null:     isNull == codec.Null,
		TypeInfo: codec.Produces(kind, out).String(),
		Hex:      hex.EncodeToString(out),
	}
}

// readJSON decodes a size-limited JSON body into dst. It writes the error
// response itself and reports whether the handler should continue.
func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	// Hex doubles the value size; the rest covers the JSON envelope.
	limit := int64(s.config.MaxValueSize)*2 + 1024
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return false
	}
	return true
}

func describeRequest(req DecodeRequest) (tds.TypeInfo, error) {
	if req.TypeInfoHex != "" {
		return wire.ParseTypeInfo(req.TypeInfoHex)
	}
	if req.Type == "" {
		return tds.TypeInfo{}, errors.New("type or type_info_hex is required")
	}
	return wire.Describe(req.Type, req.Size, req.Scale, req.Precision)
}

// requestErrorStatus maps errors found while reading a request.
func requestErrorStatus(err error) int {
	if tds.IsProtocolError(err) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

// codecErrorStatus maps errors returned by the codec.
func codecErrorStatus(err error) int {
	if tds.IsProtocolError(err) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
