package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrOllamaUnavailable indicates the Ollama server is unreachable.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	// ErrModelNotFound indicates the configured model has not been pulled.
	ErrModelNotFound = errors.New("content model not found")

	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput covers empty replies and replies that do not parse
	// into the requested items.
	ErrInvalidOutput = errors.New("invalid llm output format")

	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)

// statusError is a non-200 reply from the server.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("ollama returned status %d: %s", e.code, e.body)
}

// retryable reports whether another attempt could succeed. Client errors
// other than rate limiting fail the same way again.
func (e *statusError) retryable() bool {
	return e.code >= 500 || e.code == 429
}
