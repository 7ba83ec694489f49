package extract

import "strings"

// outlet pairs a display name with the substrings that identify it.
type outlet struct {
	name  string
	marks []string
}

var outlets = []outlet{
	{"Manila Times", []string{"manila times", "manilatimes.net"}},
	{"Rappler", []string{"rappler", "rappler.com"}},
	{"Inquirer", []string{"inquirer", "inquirer.net"}},
	{"ABS-CBN News", []string{"abs-cbn", "abs-cbn.com"}},
	{"GMA News", []string{"gma news", "gmanetwork.com"}},
	{"Philippine Star", []string{"philstar", "philstar.com"}},
	{"BusinessWorld", []string{"businessworld", "bworldonline.com"}},
}

// NewsSource identifies the outlet a text came from, "News Media" for
// generically news-formatted text, or "Unknown Social Media".
func NewsSource(text string) string {
	lower := strings.ToLower(text)
	for _, o := range outlets {
		for _, m := range o.marks {
			if strings.Contains(lower, m) {
				return o.name
			}
		}
	}
	if strings.HasPrefix(text, "LOOK: ") || strings.HasPrefix(text, "JUST IN: ") {
		return "News Media"
	}
	if strings.Contains(text, "BREAKING") || strings.Contains(text, "SPECIAL REPORT") {
		return "News Media"
	}
	return "Unknown Social Media"
}
