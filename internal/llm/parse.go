package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/draiimon/PanicSense-Final/internal/extract"
	"github.com/draiimon/PanicSense-Final/internal/model"
)

var fencedJSONRe = regexp.MustCompile("(?s)```json(.*?)```")

// rawResult is the wire shape the models are asked to produce. Confidence
// arrives as any JSON value; models sometimes quote numbers.
type rawResult struct {
	Sentiment    *string         `json:"sentiment"`
	Confidence   json.RawMessage `json:"confidence"`
	Explanation  *string         `json:"explanation"`
	DisasterType *string         `json:"disasterType"`
	Location     *string         `json:"location"`
	Language     *string         `json:"language"`
}

// sentimentSynonyms maps off-contract labels the models emit to the five
// categories.
var sentimentSynonyms = map[string]string{
	"PANIC":        model.SentimentPanic,
	"FEAR":         model.SentimentFear,
	"ANXIETY":      model.SentimentFear,
	"FEAR/ANXIETY": model.SentimentFear,
	"NEUTRAL":      model.SentimentNeutral,
	"DISBELIEF":    model.SentimentDisbelief,
	"RESILIENCE":   model.SentimentResilience,
	"HOPE":         model.SentimentResilience,
}

// parseResponse recovers a Result from model output. Recovery order:
// fenced json block, whole body, bounding-brace substring. Missing fields
// are backfilled from the extractors and defaults.
func parseResponse(content, text, language string) (model.Result, error) {
	raw, err := recoverJSON(content)
	if err != nil {
		return model.Result{}, err
	}

	res := model.Result{
		Sentiment:   model.SentimentNeutral,
		Confidence:  0.70,
		Explanation: "No explanation provided",
		Language:    language,
	}

	if raw.Sentiment != nil {
		res.Sentiment = normalizeSentiment(*raw.Sentiment)
	}
	if raw.Confidence != nil {
		res.Confidence = parseConfidence(raw.Confidence)
	}
	if raw.Explanation != nil && *raw.Explanation != "" {
		res.Explanation = *raw.Explanation
	}
	if raw.DisasterType != nil && *raw.DisasterType != "" {
		res.DisasterType = *raw.DisasterType
	} else {
		res.DisasterType = extract.DisasterType(text)
	}
	if raw.Location != nil && *raw.Location != "" {
		res.Location = *raw.Location
	} else {
		res.Location = extract.Location(text)
	}
	if raw.Language != nil && *raw.Language != "" {
		res.Language = *raw.Language
	}

	res.Confidence = model.ClampConfidence(res.Confidence)
	return res, nil
}

func recoverJSON(content string) (rawResult, error) {
	var raw rawResult

	if m := fencedJSONRe.FindStringSubmatch(content); m != nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &raw); err == nil {
			return raw, nil
		}
	}
	if err := json.Unmarshal([]byte(content), &raw); err == nil {
		return raw, nil
	}
	// Last resort: the outermost brace-bounded substring. Reasoning models
	// wrap the JSON in prose.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err == nil {
			return raw, nil
		}
	}
	return rawResult{}, fmt.Errorf("no valid JSON found in response")
}

// normalizeSentiment maps any label onto the five categories, defaulting
// to Neutral for the unrecognizable.
func normalizeSentiment(label string) string {
	if model.ValidSentiment(label) {
		return label
	}
	if mapped, ok := sentimentSynonyms[strings.ToUpper(strings.TrimSpace(label))]; ok {
		return mapped
	}
	return model.SentimentNeutral
}

func parseConfidence(raw json.RawMessage) float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if _, scanErr := fmt.Sscanf(s, "%f", &f); scanErr == nil {
			return f
		}
	}
	return 0.70
}

// descriptiveOverride rewrites Fear/Anxiety to Neutral for report-style
// text that carries no emotional markers. Returns the corrected sentiment
// and whether a rewrite happened.
func descriptiveOverride(text, sentiment string) (string, bool) {
	if sentiment != model.SentimentFear {
		return sentiment, false
	}
	lower := strings.ToLower(text)
	upper := strings.ToUpper(text)

	descriptive := false
	for _, cue := range []string{"may", "there is", "there was", "nangyari", "happened", "maraming", "many", "several", "buildings", "collapsed", "evacuated"} {
		if strings.Contains(lower, cue) {
			descriptive = true
			break
		}
	}
	if !descriptive {
		return sentiment, false
	}
	for _, w := range []string{"nakakatakot", "scary", "afraid", "takot", "worried", "kabado", "help", "tulong", "saklolo", "emergency", "bantay", "delikado", "ingat"} {
		if strings.Contains(lower, w) {
			return sentiment, false
		}
	}
	for _, m := range []string{"!!!", "???", "HELP", "TULONG", "OMG", "OH MY GOD"} {
		if strings.Contains(upper, m) {
			return sentiment, false
		}
	}
	return model.SentimentNeutral, true
}
