package extract

import "testing"

func TestLocation(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", "UNKNOWN"},
		{"no location", "hello world", "UNKNOWN"},
		{"all caps emergency", "TULONG! MAY SUNOG SA MAKATI!!!", "Makati"},
		{"all caps sa pattern", "BAHA NA SA TONDO!", "Tondo"},
		{"lowercase emergency", "may sunog sa makati ngayon", "Makati"},
		{"gazetteer whole word", "Flooding reported in Marikina today", "Marikina"},
		{"misspelling qc", "grabe ang baha dito sa qc", "Quezon City"},
		{"misspelling gensan", "lindol kanina sa gensan", "General Santos"},
		{"fuzzy typo", "matinding baha sa makatti area", "Makati"},
		{"metro fuzzy part match", "baha na naman sa kalsada dito sa metro", "Metro Manila"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Location(tc.text); got != tc.want {
				t.Errorf("Location(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestLocationTitleCasesRawCapture(t *testing.T) {
	// Pattern captures return the captured word Title-Cased even when it
	// is not a gazetteer entry.
	if got := Location("MAY BAHA SA TIPI!"); got != "Tipi" {
		t.Errorf("expected Tipi, got %q", got)
	}
}

func TestIsUpper(t *testing.T) {
	if !isUpper("MAY SUNOG SA TONDO!!! 123") {
		t.Error("expected all-caps text to be upper")
	}
	if isUpper("May Sunog") {
		t.Error("mixed case should not be upper")
	}
	if isUpper("123!!!") {
		t.Error("no letters should not be upper")
	}
}
