package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/draiimon/PanicSense-Final/internal/keypool"
	"github.com/draiimon/PanicSense-Final/internal/model"
)

// GroqClassifier calls a Groq-hosted chat model through the OpenAI wire
// format. Two instances serve the system: a bulk one on the rotating pool
// and an interactive one on the dedicated validation credential.
type GroqClassifier struct {
	pool *keypool.Pool
	cfg  model.APIConfig
	log  zerolog.Logger

	model      string
	maxTokens  int
	timeout    time.Duration
	jsonFormat bool
	capConf    float64

	// newClient is swappable for tests.
	newClient func(token string) clientAPI
}

type clientAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

func (g *GroqClassifier) defaultClient(token string) clientAPI {
	clientConfig := openai.DefaultConfig(token)
	clientConfig.BaseURL = g.cfg.BaseURL
	return openai.NewClientWithConfig(clientConfig)
}

// NewBulk builds the batch-path classifier: gemma2 class model, short
// timeout, rotating credentials.
func NewBulk(pool *keypool.Pool, cfg model.APIConfig, log zerolog.Logger) *GroqClassifier {
	g := &GroqClassifier{
		pool:      pool,
		cfg:       cfg,
		log:       log.With().Str("component", "llm-bulk").Logger(),
		model:     cfg.BulkModel,
		maxTokens: cfg.BulkMaxTokens,
		timeout:   cfg.BulkTimeout,
		capConf:   1.0,
	}
	g.newClient = g.defaultClient
	return g
}

// NewInteractive builds the single-text/validation classifier: the
// reasoning model with enforced JSON output and a 0.97 confidence cap.
func NewInteractive(pool *keypool.Pool, cfg model.APIConfig, log zerolog.Logger) *GroqClassifier {
	g := &GroqClassifier{
		pool:       pool,
		cfg:        cfg,
		log:        log.With().Str("component", "llm-interactive").Logger(),
		model:      cfg.InteractiveModel,
		maxTokens:  cfg.InteractiveMaxTokens,
		timeout:    cfg.InteractiveTimeout,
		jsonFormat: true,
		capConf:    0.97,
	}
	g.newClient = g.defaultClient
	return g
}

// Classify sends the text to the remote model, retrying rate-limited
// requests against up to min(MaxAttempts, pool size) distinct credentials.
func (g *GroqClassifier) Classify(ctx context.Context, text, language string) (model.Result, error) {
	attempts := g.pool.Attempts(g.cfg.MaxAttempts)
	if attempts == 0 {
		return model.Result{}, ErrExhausted
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		cred, err := g.pool.Next()
		if err != nil {
			return model.Result{}, ErrExhausted
		}

		res, err := g.classifyOnce(ctx, cred.Token, text, language)
		if err != nil {
			lastErr = err
			if isRateLimited(err) {
				g.log.Warn().
					Str("credential", cred.Masked()).
					Int("attempt", attempt+1).
					Msg("rate limited, trying next credential")
				continue
			}
			if ctx.Err() != nil {
				return model.Result{}, fmt.Errorf("classification canceled: %w", ctx.Err())
			}
			g.log.Error().Err(err).
				Str("credential", cred.Masked()).
				Msg("classification request failed")
			continue
		}

		g.pool.MarkSuccess(cred.Index)
		return res, nil
	}

	if lastErr != nil {
		g.log.Warn().Err(lastErr).Msg("all credential attempts failed")
	}
	return model.Result{}, ErrExhausted
}

func (g *GroqClassifier) classifyOnce(ctx context.Context, token, text, language string) (model.Result, error) {
	reqCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	system := bulkSystemPrompt(language)
	user := text
	if g.jsonFormat {
		system = interactiveSystemPrompt(language)
		user = fmt.Sprintf("Please analyze this disaster-related text: %q", text)
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.1,
		MaxTokens:   g.maxTokens,
	}
	if g.jsonFormat {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := g.newClient(token).CreateChatCompletion(reqCtx, req)
	if err != nil {
		return model.Result{}, err
	}
	if len(resp.Choices) == 0 {
		return model.Result{}, fmt.Errorf("empty response from model %s", g.model)
	}

	res, err := parseResponse(resp.Choices[0].Message.Content, text, language)
	if err != nil {
		return model.Result{}, err
	}

	if corrected, changed := descriptiveOverride(text, res.Sentiment); changed {
		g.log.Info().
			Str("from", res.Sentiment).
			Str("to", corrected).
			Msg("descriptive content override applied")
		res.Sentiment = corrected
	}

	if res.Confidence > g.capConf {
		res.Confidence = g.capConf
	}
	res.Confidence = model.ClampConfidence(res.Confidence)
	return res, nil
}

// isRateLimited recognizes 429 responses and rate-limit phrasing in error
// text.
func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "429")
}
