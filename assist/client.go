// Package assist turns free-text instructions into structured asset commands
// and applies them to the store.
//
// The Client interface is the seam where a real language-model client would
// plug. The shipped implementation, RuleBased, is a deterministic keyword
// matcher honouring the same input/output contract: it receives the full
// prompt and answers with a JSON command.
package assist

import (
	"context"
	"errors"
)

// ErrInvalidResponse is returned when the client input or output does not
// carry the expected structure.
var ErrInvalidResponse = errors.New("invalid response")

// ErrDecodingFailed is returned when the client's raw textual output cannot
// be parsed into the command shape.
var ErrDecodingFailed = errors.New("decoding failed")

// Client completes a prompt into raw text, expected to be a JSON command.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Mock is a Client returning a canned response, for tests.
type Mock struct {
	Response string
	Err      error
}

func (m Mock) Complete(ctx context.Context, prompt string) (string, error) {
	return m.Response, m.Err
}
