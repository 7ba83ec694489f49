package rules

import "testing"

func TestClassify_Verdicts(t *testing.T) {
	cases := []struct {
		name          string
		text          string
		wantSentiment string
		wantConf      float64
	}{
		{
			name:          "short factual statement",
			text:          "may sunog",
			wantSentiment: "Neutral",
			wantConf:      0.90,
		},
		{
			name:          "short statement flood",
			text:          "may baha",
			wantSentiment: "Neutral",
			wantConf:      0.90,
		},
		{
			name:          "all caps emergency alert",
			text:          "TULONG! MAY SUNOG SA MAKATI!!!",
			wantSentiment: "Panic",
			wantConf:      0.94,
		},
		{
			name:          "profanity with repeated punctuation",
			text:          "tangina naman ang baha dito!!!",
			wantSentiment: "Panic",
			wantConf:      0.97,
		},
		{
			name:          "all caps profanity",
			text:          "PUTANG INA ANG BAHA DITO GRABE",
			wantSentiment: "Panic",
			wantConf:      0.96,
		},
		{
			name:          "laughing emoji with help word",
			text:          "HAHAHA TULONG BAHA NA NAMAN 😂",
			wantSentiment: "Disbelief",
			wantConf:      0.95,
		},
		{
			name:          "laughter with help word no emoji",
			text:          "hahaha tulong naman dyan sa baha",
			wantSentiment: "Disbelief",
			wantConf:      0.92,
		},
		{
			name:          "emoji flood",
			text:          "😂😂😂😂 grabe ang baha dito",
			wantSentiment: "Disbelief",
			wantConf:      0.90,
		},
		{
			name:          "descriptive without emotion",
			text:          "maraming buildings collapsed after the quake, people evacuated",
			wantSentiment: "Neutral",
			wantConf:      0.92,
		},
		{
			name:          "no signal at all",
			text:          "the meeting starts tomorrow afternoon",
			wantSentiment: "Neutral",
			wantConf:      0.83,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.text)
			if got.Sentiment != tc.wantSentiment {
				t.Errorf("Classify(%q).Sentiment = %q, want %q", tc.text, got.Sentiment, tc.wantSentiment)
			}
			if got.Confidence != tc.wantConf {
				t.Errorf("Classify(%q).Confidence = %v, want %v", tc.text, got.Confidence, tc.wantConf)
			}
			if got.Explanation == "" {
				t.Errorf("Classify(%q) returned empty explanation", tc.text)
			}
		})
	}
}

func TestClassify_KeywordScoring(t *testing.T) {
	got := Classify("natatakot ako sa lindol, kinakabahan ang lahat")
	if got.Sentiment != "Fear/Anxiety" {
		t.Errorf("expected Fear/Anxiety, got %q", got.Sentiment)
	}
	if got.Confidence != 0.79 {
		t.Errorf("expected confidence 0.79 for three keyword hits, got %v", got.Confidence)
	}
}

func TestClassify_BareHelpRequestIsPanic(t *testing.T) {
	got := Classify("tulong po kailangan namin dito sa amin")
	if got.Sentiment != "Panic" {
		t.Errorf("expected Panic, got %q", got.Sentiment)
	}
}

func TestClassify_ResiliencePhrases(t *testing.T) {
	got := Classify("let's help the victims, donate relief goods")
	if got.Sentiment != "Resilience" {
		t.Errorf("expected Resilience, got %q", got.Sentiment)
	}
	if got.Confidence < 0.70 || got.Confidence > 1 {
		t.Errorf("confidence out of range: %v", got.Confidence)
	}
}

func TestClassify_ConfidenceBounds(t *testing.T) {
	texts := []string{
		"may sunog", "TULONG!!!", "baha na naman dito sa amin",
		"earthquake drill scheduled next week for all employees",
		"grabe naman ito hahaha sunog na naman hahaha",
	}
	for _, text := range texts {
		got := Classify(text)
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("Classify(%q) confidence %v out of [0,1]", text, got.Confidence)
		}
	}
}

func TestRuleNames_OrderStable(t *testing.T) {
	names := RuleNames()
	if len(names) == 0 {
		t.Fatal("expected non-empty rule table")
	}
	if names[0] != "short-statement-neutral" {
		t.Errorf("first rule should be the short-statement override, got %q", names[0])
	}
	if names[1] != "descriptive-neutral" {
		t.Errorf("second rule should be the descriptive override, got %q", names[1])
	}
}
