package model

import "math"

// Sentiment categories, ordered by typical emotional progression. The order
// matters: feedback validation measures distance between categories on this
// scale.
const (
	SentimentPanic      = "Panic"
	SentimentFear       = "Fear/Anxiety"
	SentimentDisbelief  = "Disbelief"
	SentimentResilience = "Resilience"
	SentimentNeutral    = "Neutral"
)

// SentimentLabels lists the five valid categories in ordinal order.
var SentimentLabels = []string{
	SentimentPanic,
	SentimentFear,
	SentimentDisbelief,
	SentimentResilience,
	SentimentNeutral,
}

// Disaster type labels. UNKNOWN means the text carried no usable signal;
// NotSpecified means there was no text at all.
const (
	DisasterEarthquake = "Earthquake"
	DisasterFlood      = "Flood"
	DisasterTyphoon    = "Typhoon"
	DisasterFire       = "Fire"
	DisasterVolcanic   = "Volcanic Eruptions"
	DisasterLandslide  = "Landslide"

	DisasterUnknown      = "UNKNOWN"
	DisasterNotSpecified = "Not Specified"
)

// LocationUnknown is returned when no Philippine location can be resolved.
const LocationUnknown = "UNKNOWN"

// Languages recognized by the pipeline.
const (
	LanguageEnglish  = "English"
	LanguageFilipino = "Filipino"
)

// ValidSentiment reports whether label is one of the five categories.
func ValidSentiment(label string) bool {
	for _, s := range SentimentLabels {
		if s == label {
			return true
		}
	}
	return false
}

// SentimentIndex returns the ordinal position of label on the fixed
// category scale, or -1 if the label is not a valid category.
func SentimentIndex(label string) int {
	for i, s := range SentimentLabels {
		if s == label {
			return i
		}
	}
	return -1
}

// Result is a single classification outcome. Every stage of the pipeline
// (cache, remote, rules) produces this shape; confidence is always a
// two-decimal value in [0,1].
type Result struct {
	Sentiment    string  `json:"sentiment"`
	Confidence   float64 `json:"confidence"`
	Explanation  string  `json:"explanation"`
	DisasterType string  `json:"disasterType"`
	Location     string  `json:"location"`
	Language     string  `json:"language"`
}

// Record is one processed CSV row.
type Record struct {
	Text         string  `json:"text"`
	Timestamp    string  `json:"timestamp"`
	Source       string  `json:"source"`
	Language     string  `json:"language"`
	Sentiment    string  `json:"sentiment"`
	Confidence   float64 `json:"confidence"`
	Explanation  string  `json:"explanation"`
	DisasterType string  `json:"disasterType"`
	Location     string  `json:"location"`
}

// Round2 rounds a confidence value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ClampConfidence forces v into [0,1] and rounds to two decimals.
func ClampConfidence(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return Round2(v)
}
