// Package llm is the remote classifier adapter. It speaks the OpenAI chat
// completions wire format against the Groq endpoint, rotates the
// credential pool on rate limits, and recovers structured results from
// imperfect model output.
package llm

import (
	"context"
	"errors"

	"github.com/draiimon/PanicSense-Final/internal/model"
)

// ErrExhausted means every allowed credential attempt was rate limited or
// failed. Callers degrade to the rule-based classifier; this error never
// reaches the end user.
var ErrExhausted = errors.New("all classification attempts exhausted")

// Classifier is a remote sentiment classifier.
type Classifier interface {
	// Classify analyzes one text. The language tag selects the prompt
	// variant and backfills the result.
	Classify(ctx context.Context, text, language string) (model.Result, error)
}
