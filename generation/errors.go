package generation

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfig matches every *ConfigurationError.
	ErrInvalidConfig = errors.New("generation: invalid configuration")

	// ErrSeparationDidNotConverge matches every *SeparationDidNotConvergeError.
	ErrSeparationDidNotConverge = errors.New("generation: room separation did not converge")
)

// ConfigurationError reports the first Config field that failed validation.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("generation: invalid configuration: %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is match the error against ErrInvalidConfig.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// SeparationDidNotConvergeError is returned when the overlap relaxation hits
// its pass limit. The rooms are left where the last pass put them.
type SeparationDidNotConvergeError struct {
	Iterations  int
	Overlapping int
}

func (e *SeparationDidNotConvergeError) Error() string {
	return fmt.Sprintf("generation: room separation did not converge after %d passes (%d rooms still overlapping)",
		e.Iterations, e.Overlapping)
}

// Is lets errors.Is match the error against ErrSeparationDidNotConverge.
func (e *SeparationDidNotConvergeError) Is(target error) bool {
	return target == ErrSeparationDidNotConverge
}
