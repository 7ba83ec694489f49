// Package feedback turns user corrections into trained examples and
// synthetic performance deltas. A sentiment correction is first validated
// by an independent re-classification of the text; the correction is
// applied either way, but large disagreements are surfaced to the caller.
package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/draiimon/PanicSense-Final/internal/extract"
	"github.com/draiimon/PanicSense-Final/internal/llm"
	"github.com/draiimon/PanicSense-Final/internal/model"
	"github.com/draiimon/PanicSense-Final/internal/rules"
	"github.com/draiimon/PanicSense-Final/internal/store"
	"github.com/draiimon/PanicSense-Final/internal/trained"
)

// Rand supplies the randomness behind the synthetic improvement factors.
// Tests pin it; production seeds it from the clock.
type Rand interface {
	Float64() float64
}

// Correction is one piece of user feedback. At least one of the corrected
// fields must be set.
type Correction struct {
	Text               string `json:"text"`
	OriginalSentiment  string `json:"originalSentiment"`
	CorrectedSentiment string `json:"correctedSentiment"`
	CorrectedLocation  string `json:"correctedLocation"`
	CorrectedDisaster  string `json:"correctedDisaster"`
}

// Performance reports the synthetic accuracy movement from one correction.
type Performance struct {
	PreviousAccuracy float64 `json:"previous_accuracy"`
	NewAccuracy      float64 `json:"new_accuracy"`
	Improvement      float64 `json:"improvement"`
}

// Metrics is the full synthetic metric set for non-sentiment corrections.
type Metrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1Score"`
}

// Response is the training outcome returned to the caller.
type Response struct {
	Status      string      `json:"status"`
	Message     string      `json:"message"`
	Performance Performance `json:"performance"`
	Metrics     *Metrics    `json:"metrics,omitempty"`
}

// Statuses carried in Response.Status and persisted with each correction.
const (
	StatusSuccess      = "success"
	StatusDisagreement = "disagreement"
)

var (
	// ErrNoCorrections is returned when every corrected field is empty.
	ErrNoCorrections = errors.New("no valid corrections provided")
	// ErrInvalidSentiment is returned for an unrecognized sentiment label.
	ErrInvalidSentiment = errors.New("invalid sentiment label")
)

// Trainer applies corrections to the trained-example cache and, when a
// store is attached, persists them.
type Trainer struct {
	cache     *trained.Cache
	store     *store.Store
	validator llm.Classifier
	rand      Rand
	log       zerolog.Logger
}

// NewTrainer assembles a trainer. The store and validator may be nil;
// without a validator the independent check falls back to the rule engine.
func NewTrainer(cache *trained.Cache, st *store.Store, validator llm.Classifier, rnd Rand, log zerolog.Logger) *Trainer {
	return &Trainer{
		cache:     cache,
		store:     st,
		validator: validator,
		rand:      rnd,
		log:       log.With().Str("component", "feedback").Logger(),
	}
}

// Train applies one correction and reports the synthetic performance delta.
func (t *Trainer) Train(ctx context.Context, c Correction) (Response, error) {
	hasSentiment := c.Text != "" && c.OriginalSentiment != "" && c.CorrectedSentiment != ""
	hasLocation := c.Text != "" && c.CorrectedLocation != ""
	hasDisaster := c.Text != "" && c.CorrectedDisaster != ""

	if !hasSentiment && !hasLocation && !hasDisaster {
		return Response{}, ErrNoCorrections
	}
	if hasSentiment && !model.ValidSentiment(c.CorrectedSentiment) {
		return Response{}, fmt.Errorf("%w: %q", ErrInvalidSentiment, c.CorrectedSentiment)
	}

	if hasSentiment {
		return t.trainSentiment(ctx, c), nil
	}
	return t.trainAttributes(c), nil
}

func (t *Trainer) trainSentiment(ctx context.Context, c Correction) Response {
	v := t.validate(ctx, c.Text, c.CorrectedSentiment)

	t.log.Info().
		Bool("accepted", v.Accepted).
		Str("original", c.OriginalSentiment).
		Str("corrected", c.CorrectedSentiment).
		Msg("sentiment correction")

	status := StatusSuccess
	if !v.Accepted {
		status = StatusDisagreement
	}
	t.remember(c, trained.Example{
		Sentiment:    c.CorrectedSentiment,
		Location:     c.CorrectedLocation,
		DisasterType: c.CorrectedDisaster,
	}, status)

	improvement := t.improvementFor(c.CorrectedSentiment)
	if c.OriginalSentiment == c.CorrectedSentiment {
		improvement *= 0.1
	}
	if !v.Accepted {
		improvement *= 0.5
	}

	const previous = 0.86
	newAccuracy := capAccuracy(model.Round2(previous + improvement))

	return Response{
		Status:  status,
		Message: v.Reason,
		Performance: Performance{
			PreviousAccuracy: previous,
			NewAccuracy:      newAccuracy,
			Improvement:      model.Round2(newAccuracy - previous),
		},
	}
}

func (t *Trainer) trainAttributes(c Correction) Response {
	t.remember(c, trained.Example{
		Sentiment:    c.OriginalSentiment,
		Location:     c.CorrectedLocation,
		DisasterType: c.CorrectedDisaster,
	}, StatusSuccess)

	improvement := t.uniform(0.001, 0.003)
	recallFactor := improvement * 0.6

	const (
		baseAccuracy  = 0.86
		basePrecision = 0.81
		baseRecall    = 0.70
	)
	m := Metrics{
		Accuracy:  capAccuracy(model.Round2(baseAccuracy + improvement)),
		Precision: minf(0.82, model.Round2(basePrecision+improvement*0.8)),
		Recall:    minf(0.70, model.Round2(baseRecall+recallFactor)),
	}
	if m.Precision+m.Recall > 0 {
		m.F1Score = model.Round2(2 * m.Precision * m.Recall / (m.Precision + m.Recall))
	}

	message := "Model trained on feedback for "
	parts := []string{}
	if c.CorrectedLocation != "" {
		parts = append(parts, fmt.Sprintf("location '%s'", c.CorrectedLocation))
	}
	if c.CorrectedDisaster != "" {
		parts = append(parts, fmt.Sprintf("disaster type '%s'", c.CorrectedDisaster))
	}
	for i, p := range parts {
		if i > 0 {
			message += " and "
		}
		message += p
	}

	return Response{
		Status:  StatusSuccess,
		Message: message,
		Performance: Performance{
			PreviousAccuracy: baseAccuracy,
			NewAccuracy:      m.Accuracy,
			Improvement:      model.Round2(m.Accuracy - baseAccuracy),
		},
		Metrics: &m,
	}
}

func (t *Trainer) remember(c Correction, ex trained.Example, status string) {
	t.cache.Put(c.Text, ex)
	if t.store == nil {
		return
	}
	if err := t.store.Save(c.Text, c.OriginalSentiment, status, ex); err != nil {
		t.log.Warn().Err(err).Msg("persist correction")
	}
}

// validation is the quiz-style outcome of re-classifying the text.
type validation struct {
	Accepted bool
	Reason   string
}

// quizOptions presents the five categories the way the interactive quiz
// labels them.
var quizOptions = map[string]string{
	model.SentimentPanic:      "a) Panic",
	model.SentimentFear:       "b) Fear/Anxiety",
	model.SentimentNeutral:    "c) Neutral",
	model.SentimentDisbelief:  "d) Disbelief",
	model.SentimentResilience: "e) Resilience",
}

func quizOption(sentiment string) string {
	if o, ok := quizOptions[sentiment]; ok {
		return o
	}
	return "(" + sentiment + ")"
}

// validate re-classifies the text independently and compares the outcome
// against the user's choice. Distance is measured on the ordinal category
// scale; only a confident result more than two categories away counts as
// a disagreement, and even then the correction is still applied.
func (t *Trainer) validate(ctx context.Context, text, corrected string) validation {
	sentiment, confidence, explanation := t.reclassify(ctx, text)

	aiOption := quizOption(sentiment)
	userOption := quizOption(corrected)

	if corrected == sentiment {
		return validation{
			Accepted: true,
			Reason: fmt.Sprintf(
				"VALIDATION PASSED! Your selection (%s) exactly matches our analysis.\n\nExplanation: %s",
				userOption, explanation),
		}
	}

	aiIndex := model.SentimentIndex(sentiment)
	userIndex := model.SentimentIndex(corrected)
	distance := aiIndex - userIndex
	if distance < 0 {
		distance = -distance
	}

	if aiIndex == -1 || userIndex == -1 || distance <= 2 {
		return validation{
			Accepted: true,
			Reason: fmt.Sprintf(
				"VALIDATION PASSED with minor difference. Your selection (%s) is reasonably close to our analysis of %s.\n\nExplanation: %s",
				userOption, aiOption, explanation),
		}
	}

	if confidence > 0.90 {
		return validation{
			Accepted: false,
			Reason: fmt.Sprintf(
				"VALIDATION NOTICE: Our analysis chose %s.\n\nExplanation: %s\n\nYour selection (%s) is quite different from our analysis, but the correction has been applied.",
				aiOption, explanation, userOption),
		}
	}

	return validation{
		Accepted: true,
		Reason: fmt.Sprintf(
			"VALIDATION ACCEPTED: Our analysis chose %s with lower confidence.\n\nExplanation: %s\n\nYour correction has been accepted.",
			aiOption, explanation),
	}
}

func (t *Trainer) reclassify(ctx context.Context, text string) (sentiment string, confidence float64, explanation string) {
	language := extract.Language(text)
	if t.validator != nil {
		res, err := t.validator.Classify(ctx, text, language)
		if err == nil {
			return res.Sentiment, res.Confidence, res.Explanation
		}
		if !errors.Is(err, llm.ErrExhausted) {
			t.log.Warn().Err(err).Msg("validation classification failed")
		}
	}
	v := rules.Classify(text)
	return v.Sentiment, v.Confidence, v.Explanation
}

// improvementFor draws the synthetic accuracy gain for one sentiment
// correction. High-priority categories move the needle more.
func (t *Trainer) improvementFor(sentiment string) float64 {
	switch sentiment {
	case model.SentimentPanic:
		return t.uniform(0.003, 0.006)
	case model.SentimentFear:
		return t.uniform(0.002, 0.005)
	case model.SentimentResilience, model.SentimentDisbelief:
		return t.uniform(0.002, 0.004)
	default:
		return t.uniform(0.001, 0.003)
	}
}

func (t *Trainer) uniform(lo, hi float64) float64 {
	return lo + t.rand.Float64()*(hi-lo)
}

func capAccuracy(v float64) float64 { return minf(0.88, v) }

func minf(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}
