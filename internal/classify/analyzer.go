// Package classify owns the analysis session: the trained-example cache,
// the two remote adapters and the rule fallback, chained so that every
// text always yields a result.
package classify

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/draiimon/PanicSense-Final/internal/extract"
	"github.com/draiimon/PanicSense-Final/internal/llm"
	"github.com/draiimon/PanicSense-Final/internal/model"
	"github.com/draiimon/PanicSense-Final/internal/rules"
	"github.com/draiimon/PanicSense-Final/internal/trained"
)

// Analyzer classifies disaster text. The stages run in fixed order: the
// trained-example cache short-circuits everything, then the remote
// adapters, then the rule-based fallback. Classification never returns an
// error; failures degrade.
type Analyzer struct {
	cache       *trained.Cache
	interactive llm.Classifier
	bulk        llm.Classifier
	log         zerolog.Logger
}

// New assembles an analyzer. Either classifier may be nil when its
// credential pool is empty.
func New(cache *trained.Cache, interactive, bulk llm.Classifier, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		cache:       cache,
		interactive: interactive,
		bulk:        bulk,
		log:         log.With().Str("component", "analyzer").Logger(),
	}
}

// AnalyzeText classifies a single interactive text: cache, then the
// validation-credential model, then the bulk pool, then rules.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) model.Result {
	return a.analyze(ctx, text, []llm.Classifier{a.interactive, a.bulk})
}

// AnalyzeRow classifies one CSV row. Rows only use the rotating bulk pool;
// the validation credential is reserved for interactive use.
func (a *Analyzer) AnalyzeRow(ctx context.Context, text string) model.Result {
	return a.analyze(ctx, text, []llm.Classifier{a.bulk})
}

func (a *Analyzer) analyze(ctx context.Context, text string, classifiers []llm.Classifier) model.Result {
	if strings.TrimSpace(text) == "" {
		return model.Result{
			Sentiment:    model.SentimentNeutral,
			Confidence:   0.82,
			Explanation:  "No text provided",
			DisasterType: model.DisasterUnknown,
			Location:     model.LocationUnknown,
			Language:     model.LanguageEnglish,
		}
	}

	language := extract.Language(text)

	if res, ok := a.fromCache(text, language); ok {
		return res
	}

	for _, c := range classifiers {
		if c == nil {
			continue
		}
		res, err := c.Classify(ctx, text, language)
		if err == nil {
			return res
		}
		if !errors.Is(err, llm.ErrExhausted) {
			a.log.Warn().Err(err).Msg("remote classification failed")
		}
	}

	return a.fromRules(text, language)
}

// fromCache answers texts the user has corrected before, at the fixed
// feedback confidence.
func (a *Analyzer) fromCache(text, language string) (model.Result, bool) {
	ex, ok := a.cache.Get(text)
	if !ok {
		return model.Result{}, false
	}
	a.log.Info().Str("sentiment", ex.Sentiment).Msg("trained example match")

	res := model.Result{
		Sentiment:   ex.Sentiment,
		Confidence:  0.88,
		Explanation: trained.Explanation(ex.Sentiment, language),
		Language:    language,
	}
	if ex.DisasterType != "" {
		res.DisasterType = ex.DisasterType
	} else {
		res.DisasterType = extract.DisasterType(text)
	}
	if ex.Location != "" {
		res.Location = ex.Location
	} else {
		res.Location = extract.Location(text)
	}
	return res, true
}

func (a *Analyzer) fromRules(text, language string) model.Result {
	v := rules.Classify(text)
	return model.Result{
		Sentiment:    v.Sentiment,
		Confidence:   model.Round2(v.Confidence),
		Explanation:  v.Explanation,
		DisasterType: extract.DisasterType(text),
		Location:     extract.Location(text),
		Language:     language,
	}
}
