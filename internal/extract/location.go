package extract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/draiimon/PanicSense-Final/internal/model"
)

var (
	upperEmergencyRe = regexp.MustCompile(`MAY\s+\w+\s+SA\s+([A-Z]+)`)
	upperSaRe        = regexp.MustCompile(`SA\s+([A-Z]+)`)

	// Lowercase emergency phrasings, most specific first.
	emergencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`may sunog sa ([a-zA-Z]+)`),
		regexp.MustCompile(`may baha sa ([a-zA-Z]+)`),
		regexp.MustCompile(`may lindol sa ([a-zA-Z]+)`),
		regexp.MustCompile(`may bagyo sa ([a-zA-Z]+)`),
		regexp.MustCompile(`may landslide sa ([a-zA-Z]+)`),
		regexp.MustCompile(`nasunugan sa ([a-zA-Z]+)`),
		regexp.MustCompile(`binaha sa ([a-zA-Z]+)`),
		regexp.MustCompile(`may eruption sa ([a-zA-Z]+)`),
		regexp.MustCompile(`may sunog sa ([\w\s]+?)[!.?]`),
		regexp.MustCompile(`may baha sa ([\w\s]+?)[!.?]`),
		regexp.MustCompile(`may lindol sa ([\w\s]+?)[!.?]`),
	}

	genericSaRe = regexp.MustCompile(`\bsa\s+([\w\s]+?)[!.?]`)

	wordRe = regexp.MustCompile(`\b\w+\b`)

	// Prepositional phrases that introduce a place name, English and
	// Filipino.
	placePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:in|at|from|to|near|around)\s+([A-Za-z][a-z]+(?:\s+[A-Za-z][a-z]+)?)`),
		regexp.MustCompile(`(?:sa|ng|mula|papunta|malapit|dito sa|nangyari sa|galing sa)\s+([A-Za-z][a-z]+(?:\s+[A-Za-z][a-z]+)?)`),
		regexp.MustCompile(`(?:baha sa|lindol sa|sunog sa|bagyo sa|landslide sa|putok ng bulkan sa)\s+([A-Za-z][a-z]+(?:\s+[A-Za-z][a-z]+)?)`),
		regexp.MustCompile(`(?:affected areas? (?:include|are|is))\s+([A-Za-z][a-z]+(?:\s+[A-Za-z][a-z]+)?)`),
		regexp.MustCompile(`(?:apektadong lugar)\s+(?:ay|ang)?\s*([A-Za-z][a-z]+(?:\s+[A-Za-z][a-z]+)?)`),
		regexp.MustCompile(`(?:city of|municipality of|town of|province of|bayan ng|lungsod ng|lalawigan ng)\s+([A-Za-z][a-z]+(?:\s+[A-Za-z][a-z]+)?)`),
	}

	titleCaser = cases.Title(language.English)
)

// Location resolves a Philippine place name from free text. Stages run in
// order and the first hit wins: all-caps emergency patterns, lowercase
// emergency patterns, misspelling normalization, gazetteer word and
// substring matches, bounded edit-distance fuzzy matching, prepositional
// phrases, and a flooded-street Manila fallback. Returns "UNKNOWN" when
// nothing resolves.
func Location(text string) string {
	if text == "" {
		return model.LocationUnknown
	}
	lower := strings.ToLower(text)

	// All-caps emergency statements: MAY SUNOG SA TONDO!
	if isUpper(text) {
		if m := upperEmergencyRe.FindStringSubmatch(text); m != nil && len(strings.TrimSpace(m[1])) > 1 {
			return titleCaser.String(strings.TrimSpace(m[1]))
		}
		if m := upperSaRe.FindStringSubmatch(text); m != nil && len(strings.TrimSpace(m[1])) > 1 {
			return titleCaser.String(strings.TrimSpace(m[1]))
		}
	}

	for _, re := range emergencyPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			loc := strings.TrimSpace(m[1])
			if len(loc) > 1 {
				return titleCaser.String(loc)
			}
		}
	}

	if m := genericSaRe.FindStringSubmatch(lower); m != nil {
		loc := strings.TrimSpace(m[1])
		if len(loc) > 1 {
			return titleCaser.String(loc)
		}
	}

	// Known misspellings and shortcuts resolve to their canonical entry.
	for wrong, correct := range misspellings {
		if strings.Contains(lower, wrong) {
			for _, loc := range gazetteer {
				if strings.ToLower(loc) == correct {
					return loc
				}
			}
		}
	}

	// Whole-word gazetteer matches beat substring matches.
	for _, loc := range gazetteer {
		if wholeWordMatch(lower, strings.ToLower(loc)) {
			return loc
		}
	}
	for _, loc := range gazetteer {
		if strings.Contains(lower, strings.ToLower(loc)) {
			return loc
		}
	}

	// Typo tolerance: each meaningful word against each meaningful
	// gazetteer word part, bounded edit budget.
	for _, word := range wordRe.FindAllString(lower, -1) {
		if len(word) <= 3 {
			continue
		}
		for _, loc := range gazetteer {
			if len(loc) <= 3 {
				continue
			}
			if fuzzyPartMatch(word, strings.ToLower(loc)) {
				return loc
			}
		}
	}

	for _, re := range placePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			candidate := strings.ToLower(strings.TrimSpace(m[1]))
			for _, loc := range gazetteer {
				locLower := strings.ToLower(loc)
				if candidate == locLower {
					return loc
				}
				if len(candidate) > 3 && len(locLower) > 3 && fuzzyPartMatch(candidate, locLower) {
					return loc
				}
			}
		}
	}

	// Flooded-street reports without a named place often mean the capital.
	if strings.Contains(lower, "baha") &&
		(strings.Contains(lower, "kalsada") || strings.Contains(lower, "daan") || strings.Contains(lower, "street")) {
		for _, term := range []string{"manila", "maynila", "mnl", "ncr", "metro"} {
			if strings.Contains(lower, term) {
				return "Manila"
			}
		}
	}

	return model.LocationUnknown
}

// isUpper reports whether text has at least one letter and every letter is
// uppercase.
func isUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func wholeWordMatch(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isWordChar(rune(text[i-1]))
		end := i + len(word)
		after := end == len(text) || !isWordChar(rune(text[end]))
		if before && after {
			return true
		}
		idx = i + 1
	}
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// fuzzyPartMatch compares word against each space-separated part of loc
// with a small edit budget: one edit for parts of up to five characters,
// two for longer parts. Distance is positional mismatches plus the length
// difference.
func fuzzyPartMatch(word, loc string) bool {
	for _, part := range strings.Fields(loc) {
		if len(part) <= 3 {
			continue
		}
		maxEdits := 1
		if len(part) > 5 {
			maxEdits = 2
		}
		lenDiff := len(word) - len(part)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > maxEdits {
			continue
		}
		diff := lenDiff
		n := len(word)
		if len(part) < n {
			n = len(part)
		}
		for i := 0; i < n; i++ {
			if word[i] != part[i] {
				diff++
			}
		}
		if diff <= maxEdits {
			return true
		}
	}
	return false
}
