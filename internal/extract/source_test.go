package extract

import "testing"

func TestNewsSource(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"via Rappler: flood update in Cagayan", "Rappler"},
		{"read more at inquirer.net", "Inquirer"},
		{"ABS-CBN reports heavy rainfall", "ABS-CBN News"},
		{"LOOK: Flooded streets in Manila", "News Media"},
		{"JUST IN: Magnitude 5.4 quake hits Davao", "News Media"},
		{"BREAKING: evacuation ongoing", "News Media"},
		{"grabe ang baha dito", "Unknown Social Media"},
	}
	for _, tc := range cases {
		if got := NewsSource(tc.text); got != tc.want {
			t.Errorf("NewsSource(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestLanguage(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"The flood is rising in our street", "English"},
		{"grabe ang baha sa amin, tulong po", "Filipino"},
		{"may sunog sa makati", "Filipino"},
		{"", "English"},
	}
	for _, tc := range cases {
		if got := Language(tc.text); got != tc.want {
			t.Errorf("Language(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
