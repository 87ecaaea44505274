// Package api provides factory implementations for dependency injection
package api

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ssargent/tdswire/pkg/codec"
)

// DefaultDecoderFactory is the default implementation of DecoderFactory
type DefaultDecoderFactory struct{}

// NewDecoderFactory creates a new decoder factory
func NewDecoderFactory() DecoderFactory {
	return &DefaultDecoderFactory{}
}

// CreateDecoder creates a decoder with the given config
func (f *DefaultDecoderFactory) CreateDecoder(config codec.DecoderConfig) *codec.Decoder {
	return codec.NewDecoder(config)
}

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(
	ctx context.Context,
	decoder *codec.Decoder,
	config ServerConfig,
	logger zerolog.Logger,
) error {
	return StartServer(ctx, decoder, config, logger)
}
