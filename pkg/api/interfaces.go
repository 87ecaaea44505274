// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ssargent/tdswire/pkg/codec"
)

// DecoderFactory builds column decoders
type DecoderFactory interface {
	// CreateDecoder creates a decoder with the given config
	CreateDecoder(config codec.DecoderConfig) *codec.Decoder
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the API until ctx is cancelled
	StartServer(ctx context.Context, decoder *codec.Decoder, config ServerConfig, logger zerolog.Logger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
