package llm

import (
	"testing"
)

func TestRecoverJSON_Shapes(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"fenced block", "Here you go:\n```json\n{\"sentiment\": \"Panic\", \"confidence\": 0.9}\n```"},
		{"direct", `{"sentiment": "Panic", "confidence": 0.9}`},
		{"brace substring", `The analysis follows. {"sentiment": "Panic", "confidence": 0.9} Hope that helps.`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := parseResponse(tc.content, "TULONG!", "Filipino")
			if err != nil {
				t.Fatalf("parseResponse: %v", err)
			}
			if res.Sentiment != "Panic" {
				t.Errorf("sentiment = %q, want Panic", res.Sentiment)
			}
			if res.Confidence != 0.9 {
				t.Errorf("confidence = %v, want 0.9", res.Confidence)
			}
		})
	}
}

func TestParseResponse_NoJSON(t *testing.T) {
	if _, err := parseResponse("I cannot classify this text.", "x", "English"); err == nil {
		t.Error("expected error for response without JSON")
	}
}

func TestParseResponse_BackfillsMissingFields(t *testing.T) {
	res, err := parseResponse(`{"sentiment": "Panic"}`, "may sunog sa makati!", "Filipino")
	if err != nil {
		t.Fatalf("parseResponse: %v", err)
	}
	if res.Confidence != 0.70 {
		t.Errorf("confidence default = %v, want 0.70", res.Confidence)
	}
	if res.Explanation != "No explanation provided" {
		t.Errorf("explanation default = %q", res.Explanation)
	}
	if res.DisasterType != "Fire" {
		t.Errorf("disasterType backfill = %q, want Fire", res.DisasterType)
	}
	if res.Location != "Makati" {
		t.Errorf("location backfill = %q, want Makati", res.Location)
	}
	if res.Language != "Filipino" {
		t.Errorf("language = %q, want Filipino", res.Language)
	}
}

func TestNormalizeSentiment(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Panic", "Panic"},
		{"FEAR", "Fear/Anxiety"},
		{"anxiety", "Fear/Anxiety"},
		{"HOPE", "Resilience"},
		{"confused", "Neutral"},
		{"", "Neutral"},
	}
	for _, tc := range cases {
		if got := normalizeSentiment(tc.in); got != tc.want {
			t.Errorf("normalizeSentiment(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseConfidence_QuotedNumber(t *testing.T) {
	res, err := parseResponse(`{"sentiment": "Neutral", "confidence": "0.85"}`, "x", "English")
	if err != nil {
		t.Fatalf("parseResponse: %v", err)
	}
	if res.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", res.Confidence)
	}
}

func TestParseResponse_ClampsConfidence(t *testing.T) {
	res, err := parseResponse(`{"sentiment": "Panic", "confidence": 1.7}`, "x", "English")
	if err != nil {
		t.Fatalf("parseResponse: %v", err)
	}
	if res.Confidence != 1.0 {
		t.Errorf("confidence = %v, want clamp to 1.0", res.Confidence)
	}
}

func TestDescriptiveOverride(t *testing.T) {
	cases := []struct {
		name        string
		text        string
		sentiment   string
		want        string
		wantChanged bool
	}{
		{"descriptive fear rewritten", "maraming buildings collapsed", "Fear/Anxiety", "Neutral", true},
		{"emotional fear kept", "nakakatakot, maraming buildings collapsed", "Fear/Anxiety", "Fear/Anxiety", false},
		{"marker fear kept", "maraming buildings collapsed!!!", "Fear/Anxiety", "Fear/Anxiety", false},
		{"panic untouched", "maraming buildings collapsed", "Panic", "Panic", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := descriptiveOverride(tc.text, tc.sentiment)
			if got != tc.want || changed != tc.wantChanged {
				t.Errorf("descriptiveOverride(%q, %q) = (%q, %v), want (%q, %v)",
					tc.text, tc.sentiment, got, changed, tc.want, tc.wantChanged)
			}
		})
	}
}
