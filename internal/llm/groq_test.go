package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/draiimon/PanicSense-Final/internal/keypool"
	"github.com/draiimon/PanicSense-Final/internal/model"
)

type fakeClient struct {
	token string
	calls *[]string
	// respond maps a credential token to its canned behavior.
	respond func(token string) (openai.ChatCompletionResponse, error)
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	*f.calls = append(*f.calls, f.token)
	return f.respond(f.token)
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func testConfig() model.APIConfig {
	cfg := model.DefaultConfig().API
	return cfg
}

func newTestBulk(pool *keypool.Pool, calls *[]string, respond func(string) (openai.ChatCompletionResponse, error)) *GroqClassifier {
	g := NewBulk(pool, testConfig(), zerolog.Nop())
	g.newClient = func(token string) clientAPI {
		return &fakeClient{token: token, calls: calls, respond: respond}
	}
	return g
}

func TestClassify_RotatesOnRateLimit(t *testing.T) {
	pool := keypool.New([]string{"key-a", "key-b", "key-c"})
	var calls []string

	g := newTestBulk(pool, &calls, func(token string) (openai.ChatCompletionResponse, error) {
		if token == "key-a" {
			return openai.ChatCompletionResponse{}, &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"}
		}
		return chatResponse(`{"sentiment": "Neutral", "confidence": 0.8}`), nil
	})

	res, err := g.Classify(context.Background(), "may baha sa marikina", "Filipino")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Sentiment != "Neutral" {
		t.Errorf("sentiment = %q, want Neutral", res.Sentiment)
	}
	want := []string{"key-a", "key-b"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("credential order = %v, want %v", calls, want)
	}

	// The second credential should carry the success mark.
	succ := pool.Successes()
	if succ[0] != 0 || succ[1] != 1 {
		t.Errorf("successes = %v, want [0 1 0]", succ)
	}
}

func TestClassify_ExhaustsAfterMaxAttempts(t *testing.T) {
	pool := keypool.New([]string{"k1", "k2", "k3", "k4", "k5"})
	var calls []string

	g := newTestBulk(pool, &calls, func(string) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{}, &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"}
	})

	_, err := g.Classify(context.Background(), "text", "English")
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	// min(3, 5) distinct credentials tried.
	if len(calls) != 3 {
		t.Errorf("expected 3 attempts, got %d (%v)", len(calls), calls)
	}
}

func TestClassify_EmptyPool(t *testing.T) {
	g := NewBulk(keypool.New(nil), testConfig(), zerolog.Nop())
	if _, err := g.Classify(context.Background(), "text", "English"); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted for empty pool, got %v", err)
	}
}

func TestClassify_InteractiveCapsConfidence(t *testing.T) {
	pool := keypool.New([]string{"validation-key"})
	var calls []string

	g := NewInteractive(pool, testConfig(), zerolog.Nop())
	g.newClient = func(token string) clientAPI {
		return &fakeClient{token: token, calls: &calls, respond: func(string) (openai.ChatCompletionResponse, error) {
			return chatResponse(`{"sentiment": "Panic", "confidence": 0.99}`), nil
		}}
	}

	res, err := g.Classify(context.Background(), "TULONG!!!", "Filipino")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Confidence != 0.97 {
		t.Errorf("confidence = %v, want cap at 0.97", res.Confidence)
	}
}

func TestClassify_DescriptiveOverrideApplied(t *testing.T) {
	pool := keypool.New([]string{"key"})
	var calls []string

	g := newTestBulk(pool, &calls, func(string) (openai.ChatCompletionResponse, error) {
		return chatResponse(`{"sentiment": "Fear/Anxiety", "confidence": 0.8}`), nil
	})

	res, err := g.Classify(context.Background(), "maraming buildings collapsed after the quake", "English")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Sentiment != "Neutral" {
		t.Errorf("sentiment = %q, want Neutral after descriptive override", res.Sentiment)
	}
}
