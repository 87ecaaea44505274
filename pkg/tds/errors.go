package tds

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ProtocolError reports bytes that do not match what the type descriptor
// promised: bad scales, bad lengths, truncated values.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return "protocol: " + e.Message
}

// Is makes every ProtocolError match ErrProtocol.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

// Errors
var (
	ErrProtocol      = errors.New("protocol error")
	ErrUnexpectedEnd = &ProtocolError{"unexpected end of value"}
)

// NewProtocolError formats a ProtocolError.
func NewProtocolError(format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{Message: fmt.Sprintf(format, args...)}
}

// ExtractionError wraps a failure of the value accessor itself, before any
// byte was interpreted.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract value: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsProtocolError reports whether err is or wraps a ProtocolError.
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}
