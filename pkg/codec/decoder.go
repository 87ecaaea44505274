package codec

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/ssargent/tdswire/pkg/tds"
)

// ScaleMode selects which scale DATETIMEOFFSET values are decoded with.
type ScaleMode int

const (
	// ScaleFixed always decodes with scale 7, whatever the column declares.
	ScaleFixed ScaleMode = iota
	// ScaleDeclared decodes with the scale from the column's TypeInfo.
	ScaleDeclared
)

func (m ScaleMode) String() string {
	if m == ScaleDeclared {
		return "declared"
	}
	return "fixed"
}

// ParseScaleMode parses "fixed" or "declared". The empty string means fixed.
func ParseScaleMode(s string) (ScaleMode, error) {
	switch strings.ToLower(s) {
	case "", "fixed":
		return ScaleFixed, nil
	case "declared":
		return ScaleDeclared, nil
	default:
		return ScaleFixed, fmt.Errorf("invalid temporal scale mode %q (want fixed or declared)", s)
	}
}

// DecoderConfig holds configuration for a Decoder
type DecoderConfig struct {
	TemporalScale ScaleMode
	Logger        *zerolog.Logger // nil disables logging
}

// Decoder dispatches column values to the codec their descriptor selects.
// It holds no mutable state and is safe for concurrent use.
type Decoder struct {
	scale  ScaleMode
	logger zerolog.Logger
}

// NewDecoder creates a decoder
func NewDecoder(config DecoderConfig) *Decoder {
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	return &Decoder{
		scale:  config.TemporalScale,
		logger: logger.With().Str("component", "codec").Logger(),
	}
}

// TemporalScale returns the configured scale mode.
func (d *Decoder) TemporalScale() ScaleMode {
	return d.scale
}

// Decode extracts the bytes of v and decodes them with the codec its
// descriptor selects. The result is either fully decoded or an error.
func (d *Decoder) Decode(v ValueRef) (Value, error) {
	ti := v.TypeInfo()
	kind, err := Select(ti)
	if err != nil {
		return Value{}, err
	}

	b, err := v.Bytes()
	if err != nil {
		return Value{}, &tds.ExtractionError{Err: err}
	}

	switch kind {
	case KindGUID:
		if len(b) != GUIDSize {
			d.logger.Debug().Int("len", len(b)).Msg("guid value is not 16 bytes, decoding as empty")
		}
		return Value{Kind: kind, Bytes: DecodeGUID(b)}, nil

	case KindBinary:
		return Value{Kind: kind, Bytes: DecodeBinary(b)}, nil

	case KindDateTimeOffset:
		scale := uint8(FixedTemporalScale)
		if d.scale == ScaleDeclared {
			scale = ti.Scale
		}
		if len(b) == 0 {
			d.logger.Debug().Msg("empty datetimeoffset value, decoding as unix epoch")
		}
		t, err := DecodeDateTimeOffset(b, scale)
		if err != nil {
			d.logger.Warn().Err(err).Str("type", ti.String()).Uint8("scale", scale).Int("len", len(b)).Msg("decode failed")
			return Value{}, errors.Wrapf(err, "decode %s", ti)
		}
		return Value{Kind: kind, Time: t}, nil

	default:
		return Value{}, tds.NewProtocolError("no codec for kind %s", kind)
	}
}

// DecodeBytes decodes b as a value described by ti.
func (d *Decoder) DecodeBytes(ti tds.TypeInfo, b []byte) (Value, error) {
	return d.Decode(NewRawValue(ti, b))
}
