// Package rules is the deterministic fallback classifier. It runs whenever
// the remote classifier is unavailable or exhausted, and mirrors how
// Philippine disaster posts read: short factual statements are Neutral,
// profanity under pressure is Panic, laughter around distress words is
// Disbelief.
package rules

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/draiimon/PanicSense-Final/internal/model"
)

// Verdict is the classifier output: a sentiment with confidence and a
// human-readable explanation.
type Verdict struct {
	Sentiment   string
	Confidence  float64
	Explanation string
}

// rule is one named entry in the fixed-order evaluation table. A rule
// either decides the verdict or passes.
type rule struct {
	name  string
	apply func(*textContext) (Verdict, bool)
}

// textContext precomputes the views of the input every rule needs.
type textContext struct {
	text  string
	lower string
	upper string

	words      []string // whitespace tokens of the lowercased text
	emojiCount int
	alphaWords int // whitespace tokens that are purely alphabetic

	laughterCount int
}

func newTextContext(text string) *textContext {
	c := &textContext{
		text:  text,
		lower: strings.ToLower(text),
		upper: strings.ToUpper(text),
	}
	c.words = strings.Fields(c.lower)
	for _, r := range text {
		if r > 127000 {
			c.emojiCount++
		}
	}
	for _, w := range strings.Fields(text) {
		alpha := len(w) > 0
		for _, r := range w {
			if !unicode.IsLetter(r) {
				alpha = false
				break
			}
		}
		if alpha {
			c.alphaWords++
		}
	}
	for _, p := range laughterPatterns {
		c.laughterCount += strings.Count(c.lower, p)
	}
	return c
}

func (c *textContext) containsAny(terms []string) bool {
	for _, t := range terms {
		if strings.Contains(c.lower, t) {
			return true
		}
	}
	return false
}

func (c *textContext) hasEmotion() bool {
	for _, w := range emotionalWords {
		if strings.Contains(c.lower, w) {
			return true
		}
	}
	for _, m := range emotionalMarkers {
		if strings.Contains(c.upper, m) {
			return true
		}
	}
	return false
}

var (
	profanityExclaimRe1 = regexp.MustCompile(`(putang\s*ina|putangina|tangina|punyeta|gago|bobo|tang\s+ina|tanginamo|ulol).*?[!?]{2,}`)
	profanityExclaimRe2 = regexp.MustCompile(`[!?]{2,}.*?(putang\s*ina|putangina|tangina|punyeta|gago|bobo|tang\s+ina|tanginamo|ulol)`)
	capsProfanityRe     = regexp.MustCompile(`PUTANG\s*INA|TANGINA|PUNYETA|GAGO|BOBO`)
	bareProfanityRe     = regexp.MustCompile(`\b(putang\s*ina|putangina|tangina|punyeta|gago|bobo|tang ina|tanginamo|ulol)\b`)
	capsRunExclaimRe    = regexp.MustCompile(`[A-Z]{5,}.*?(!{2,}|\?{2,})`)
	capsEmergencyRe     = regexp.MustCompile(`MAY (SUNOG|BAHA|LINDOL|BAGYO|ERUPTION|GULO|BARILAN|AKSIDENTE)`)
)

// table is the fixed-order rule set. The first rule that decides wins;
// scoring only runs when every entry passes.
var table = []rule{
	{"short-statement-neutral", func(c *textContext) (Verdict, bool) {
		if len(c.words) > 3 {
			return Verdict{}, false
		}
		for _, e := range shortTextEmotions {
			if strings.Contains(c.lower, e) {
				return Verdict{}, false
			}
		}
		return Verdict{model.SentimentNeutral, 0.90,
			"Simple statement without emotional indicators - analyzing exactly what's in the text."}, true
	}},
	{"descriptive-neutral", func(c *textContext) (Verdict, bool) {
		if c.containsAny(descriptiveCues) && !c.hasEmotion() {
			return Verdict{model.SentimentNeutral, 0.92,
				"Descriptive statement without emotional markers. These types of informative reports should be classified as Neutral regardless of disaster content."}, true
		}
		return Verdict{}, false
	}},
	{"profanity-exclaim-panic", func(c *textContext) (Verdict, bool) {
		if profanityExclaimRe1.MatchString(c.lower) || profanityExclaimRe2.MatchString(c.lower) {
			return Verdict{model.SentimentPanic, 0.97,
				"Ang paggamit ng malakas na salita kasama ng maraming tandang padamdam ay nagpapahiwatig ng matinding pagkabahala o takot."}, true
		}
		return Verdict{}, false
	}},
	{"caps-profanity-panic", func(c *textContext) (Verdict, bool) {
		if capsProfanityRe.MatchString(c.text) {
			return Verdict{model.SentimentPanic, 0.96,
				"Ang paggamit ng malalaking titik sa mga malakas na salita ay nagpapahiwatig ng matinding pagkabahala o takot."}, true
		}
		return Verdict{}, false
	}},
	{"caps-profanity-exclaim-panic", func(c *textContext) (Verdict, bool) {
		if capsRunExclaimRe.MatchString(c.text) && bareProfanityRe.MatchString(c.lower) {
			return Verdict{model.SentimentPanic, 0.95,
				"Ang paggamit ng malalaking titik, profanity, at maraming tandang padamdam ay nagpapahiwatig ng matinding takot o pagkabahala."}, true
		}
		return Verdict{}, false
	}},
	{"bare-profanity-panic", func(c *textContext) (Verdict, bool) {
		if bareProfanityRe.MatchString(c.lower) {
			return Verdict{model.SentimentPanic, 0.92,
				"Ang teksto ay naglalaman ng matinding pagkapoot o pagkabahala na karaniwang ginagamit sa mga emergency situations sa Filipino context."}, true
		}
		return Verdict{}, false
	}},
	{"caps-emergency-panic", func(c *textContext) (Verdict, bool) {
		if isUpper(c.text) && capsEmergencyRe.MatchString(c.text) && strings.Contains(c.text, "!") {
			return Verdict{model.SentimentPanic, 0.94,
				"Mga emergency alertong Pilipino sa malalaking titik na may tandang padamdam, nagpapahiwatig ng agarang panganib o matinding takot."}, true
		}
		return Verdict{}, false
	}},
	{"laughing-emoji-help-disbelief", func(c *textContext) (Verdict, bool) {
		hasEmoji := strings.ContainsAny(c.text, "😂🤣😆😅")
		hasHelp := strings.Contains(c.upper, "TULONG") || strings.Contains(c.upper, "SAKLOLO") || strings.Contains(c.upper, "HELP")
		if hasEmoji && hasHelp {
			return Verdict{model.SentimentDisbelief, 0.95,
				"The laughing emoji combined with words like 'TULONG' suggests disbelief or humor, not actual distress. This is a common pattern in Filipino social media to express sarcasm or jokes."}, true
		}
		return Verdict{}, false
	}},
	{"laughter-help-disbelief", func(c *textContext) (Verdict, bool) {
		hasLaugh := strings.Contains(c.upper, "HAHA") || strings.Contains(c.upper, "HEHE")
		hasHelp := strings.Contains(c.upper, "TULONG") || strings.Contains(c.upper, "SAKLOLO") || strings.Contains(c.upper, "HELP")
		if hasLaugh && hasHelp {
			return Verdict{model.SentimentDisbelief, 0.92,
				"The combination of laughter ('HAHA') and words like 'TULONG' indicates this is expressing humor or disbelief, not actual panic. This is a common Filipino pattern for jokes or sarcasm."}, true
		}
		return Verdict{}, false
	}},
	{"emoji-flood-disbelief", func(c *textContext) (Verdict, bool) {
		if c.emojiCount > 3 && float64(c.emojiCount) > float64(c.alphaWords)/2 {
			return Verdict{model.SentimentDisbelief, 0.90,
				"The excessive use of emojis suggests this is likely expressing mockery or sarcasm rather than genuine information or distress."}, true
		}
		return Verdict{}, false
	}},
}

// Classify runs the fixed-order rule table, then keyword scoring with
// contextual nudges when no rule decides.
func Classify(text string) Verdict {
	c := newTextContext(text)
	for _, r := range table {
		if v, ok := r.apply(c); ok {
			return v
		}
	}
	return score(c)
}

// score is the keyword-scoring stage with contextual adjustments and the
// tie-break ladder.
func score(c *textContext) Verdict {
	scores := map[string]int{}
	for _, s := range model.SentimentLabels {
		scores[s] = 0
	}

	for sentiment, keywords := range sentimentKeywords {
		for _, kw := range keywords {
			if strings.Contains(c.lower, kw) {
				scores[sentiment]++
			}
		}
	}

	// Repeated laughter next to a disaster word reads as mockery.
	if c.laughterCount >= 2 && c.containsAny([]string{"sunog", "fire", "baha", "flood"}) {
		scores[model.SentimentDisbelief] += 3
	}

	for _, phrase := range resiliencePhrases {
		if strings.Contains(c.lower, phrase) {
			scores[model.SentimentResilience] += 2
			if scores[model.SentimentPanic] > 0 {
				scores[model.SentimentPanic]--
			}
		}
	}

	// Bare "tulong" with no helper phrasing is a call for help.
	if strings.Contains(c.lower, "tulong") && !c.containsAny(resiliencePhrases) {
		scores[model.SentimentPanic] += 2
	}

	// "may sunog" style statements of fact stay Neutral unless something
	// already scored strongly.
	if c.containsAny(simpleStatements) {
		max := 0
		for _, v := range scores {
			if v > max {
				max = v
			}
		}
		if max <= 1 {
			scores[model.SentimentNeutral] = 3
			scores[model.SentimentPanic] = 0
			scores[model.SentimentFear] = 0
			scores[model.SentimentDisbelief] = 0
			scores[model.SentimentResilience] = 0
		}
	}

	for _, phrase := range panicPhrases {
		if strings.Contains(c.lower, phrase) {
			scores[model.SentimentPanic] += 2
		}
	}

	scoreExclamationContext(c, scores)
	scoreQuestionContext(c, scores)
	scoreCapsContext(c, scores)

	max := 0
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return Verdict{model.SentimentNeutral, 0.83, "No clear sentiment indicators found in text"}
	}

	var top []string
	for _, s := range model.SentimentLabels {
		if scores[s] == max {
			top = append(top, s)
		}
	}

	sentiment := top[0]
	if len(top) > 1 {
		if hasLabel(top, model.SentimentNeutral) && len(c.words) < 7 {
			sentiment = model.SentimentNeutral
		} else {
			if v, ok := breakTie(c, top); ok {
				return v
			}
			sentiment = tieByPriority(top)
		}
	}

	confidence := model.Round2(0.70 + float64(max)*0.03)
	return Verdict{sentiment, confidence, explanationFor(sentiment, c)}
}

func scoreExclamationContext(c *textContext, scores map[string]int) {
	if !strings.Contains(c.text, "!") {
		return
	}
	for _, phrase := range punctuationWindows(c.words, "!", 5, 6) {
		switch {
		case containsAnyOf(phrase, []string{"help", "emergency", "saklolo", "trapped", "tulong", "danger"}):
			if !containsAnyOf(phrase, resiliencePhrases) {
				scores[model.SentimentPanic]++
			}
		case containsAnyOf(phrase, []string{"donate", "let's help", "support", "tulungan natin", "assist"}):
			scores[model.SentimentResilience]++
		case containsAnyOf(phrase, []string{"what", "can't believe", "ano", "bakit", "hindi kapani-paniwala"}):
			scores[model.SentimentDisbelief]++
		}
	}
}

func scoreQuestionContext(c *textContext, scores map[string]int) {
	if !strings.Contains(c.text, "?") {
		return
	}
	for _, phrase := range punctuationWindows(c.words, "?", 5, 1) {
		if containsAnyOf(phrase, []string{"nasaan", "where", "kamusta", "how", "when", "kailan", "ilang", "how many"}) &&
			containsAnyOf(phrase, []string{"victim", "dead", "casualties", "stranded", "missing"}) {
			scores[model.SentimentFear]++
		}
		if containsAnyOf(phrase, []string{"bakit", "paano", "why", "how could", "paanong"}) {
			scores[model.SentimentDisbelief]++
		}
	}
}

func scoreCapsContext(c *textContext, scores map[string]int) {
	var caps []string
	for _, w := range strings.Fields(c.text) {
		if len(w) > 2 && isUpper(w) {
			caps = append(caps, strings.ToLower(w))
		}
	}
	if len(caps) <= 1 {
		return
	}
	for _, w := range caps {
		if w == "emergency" || w == "tulong" || w == "saklolo" || w == "help" || w == "rescue" {
			if !c.containsAny(resiliencePhrases) {
				scores[model.SentimentPanic]++
			}
			return
		}
	}
	joined := strings.Join(caps, " ")
	if containsAnyOf(joined, []string{"donate", "tulungan", "help", "lets", "tumulong"}) &&
		c.containsAny(resiliencePhrases) {
		scores[model.SentimentResilience]++
	}
}

// breakTie handles the special tie outcomes that return a fixed verdict.
func breakTie(c *textContext, top []string) (Verdict, bool) {
	if c.emojiCount > 3 && float64(c.emojiCount) > float64(c.alphaWords)/2 && hasLabel(top, model.SentimentDisbelief) {
		return Verdict{model.SentimentDisbelief, 0.92,
			"Multiple emojis indicate sarcasm or mockery rather than genuine distress."}, true
	}
	if c.containsAny(helpRequestCues) && hasLabel(top, model.SentimentPanic) {
		return Verdict{model.SentimentPanic, 0.95,
			"Text contains explicit requests for help indicating urgent distress."}, true
	}
	if c.containsAny(reportingStyleCues) && hasLabel(top, model.SentimentNeutral) {
		return Verdict{model.SentimentNeutral, 0.90,
			"Text uses news reporting style with factual information, not expressing personal emotions."}, true
	}
	return Verdict{}, false
}

// tieByPriority resolves remaining ties with the strongest emotion first.
func tieByPriority(top []string) string {
	priority := []string{
		model.SentimentPanic, model.SentimentFear,
		model.SentimentResilience, model.SentimentDisbelief, model.SentimentNeutral,
	}
	for _, s := range priority {
		if hasLabel(top, s) {
			return s
		}
	}
	return top[0]
}

func explanationFor(sentiment string, c *textContext) string {
	switch sentiment {
	case model.SentimentPanic:
		return "The text shows signs of urgent distress or calls for immediate help, indicating panic."
	case model.SentimentFear:
		return "The message expresses worry, concern or apprehension about the situation."
	case model.SentimentDisbelief:
		if c.laughterCount >= 2 {
			return "The content contains laughter patterns and mockery, indicating disbelief or skepticism about the reported situation."
		}
		return "The content shows shock, surprise or inability to comprehend the situation."
	case model.SentimentResilience:
		return "The text demonstrates community support, offers of help, or positive action toward recovery."
	default:
		return "The text appears informational or descriptive without strong emotional indicators."
	}
}

// punctuationWindows returns the lowercased phrases of before..after words
// around every token containing the mark.
func punctuationWindows(words []string, mark string, before, after int) []string {
	var phrases []string
	for i, w := range words {
		if !strings.Contains(w, mark) {
			continue
		}
		start := i - before
		if start < 0 {
			start = 0
		}
		end := i + after
		if end > len(words) {
			end = len(words)
		}
		phrases = append(phrases, strings.Join(words[start:end], " "))
	}
	return phrases
}

func containsAnyOf(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func hasLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// RuleNames lists the decision table entries in evaluation order, for
// diagnostics.
func RuleNames() []string {
	names := make([]string, len(table))
	for i, r := range table {
		names[i] = r.name
	}
	return names
}
