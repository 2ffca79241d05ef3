// Package advisor provides the optional generative coaching capability.
// The rest of the application talks to the narrow Advisor interface; whether
// a real model or the disabled stub sits behind it is wiring.
package advisor

import (
	"context"

	"github.com/example/studycoach/internal/errors"
)

// Advisor produces free-form coaching text for a prompt.
type Advisor interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Disabled is the advisor used when no API key is configured. Every call
// returns an unavailable error, so callers degrade without testing a flag.
type Disabled struct{}

func (Disabled) Generate(ctx context.Context, prompt string) (string, error) {
	return "", errors.NewUnavailableError("AI coach")
}
