// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/tdswire/pkg/api" //nolint:depguard
)

// Container holds all the dependencies for the application
type Container struct {
	decoderFactory api.DecoderFactory
	serverFactory  api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		decoderFactory: api.NewDecoderFactory(),
		serverFactory:  api.NewServerFactory(),
	}
}

// GetDecoderFactory returns the decoder factory
func (c *Container) GetDecoderFactory() api.DecoderFactory {
	return c.decoderFactory
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetDecoderFactory allows overriding the decoder factory (for testing)
func (c *Container) SetDecoderFactory(factory api.DecoderFactory) {
	c.decoderFactory = factory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}
