package extract

import (
	"regexp"
	"strings"

	"github.com/draiimon/PanicSense-Final/internal/model"
)

// filipinoMarkers are high-frequency Filipino function and disaster words
// that essentially never occur in English text. Two hits (or one in very
// short text) tag the text Filipino.
var filipinoMarkers = map[string]bool{
	"ang": true, "ng": true, "mga": true, "sa": true, "na": true,
	"ay": true, "ito": true, "yan": true, "po": true, "ko": true,
	"mo": true, "siya": true, "kami": true, "tayo": true, "kayo": true,
	"nila": true, "namin": true, "natin": true, "ninyo": true,
	"hindi": true, "wala": true, "meron": true, "may": true,
	"dahil": true, "kasi": true, "pero": true, "kung": true,
	"tulong": true, "saklolo": true, "sunog": true, "baha": true,
	"lindol": true, "bagyo": true, "bulkan": true, "guho": true,
	"nasaan": true, "nasira": true, "nawala": true, "patay": true,
	"takot": true, "natatakot": true, "kabado": true, "delikado": true,
	"ingat": true, "nakakatakot": true, "grabe": true, "sobrang": true,
	"maraming": true, "nangyari": true, "lumikas": true, "ligtas": true,
	"kaya": true, "malakas": true, "matindi": true,
}

var languageWordRe = regexp.MustCompile(`\b\w+\b`)

// Language tags text as Filipino or English from marker-word density.
func Language(text string) string {
	words := languageWordRe.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return model.LanguageEnglish
	}
	hits := 0
	for _, w := range words {
		if filipinoMarkers[w] {
			hits++
		}
	}
	if hits >= 2 || (hits >= 1 && len(words) <= 4) {
		return model.LanguageFilipino
	}
	return model.LanguageEnglish
}
