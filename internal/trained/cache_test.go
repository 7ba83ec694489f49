package trained

import "testing"

func TestKey_Normalization(t *testing.T) {
	cases := []struct {
		a, b string
	}{
		{"Grabe ang BAHA!!!", "grabe ang baha"},
		{"may sunog sa makati", "May   sunog, sa Makati?"},
	}
	for _, tc := range cases {
		if Key(tc.a) != Key(tc.b) {
			t.Errorf("Key(%q) = %q, Key(%q) = %q; want equal", tc.a, Key(tc.a), tc.b, Key(tc.b))
		}
	}
}

func TestCache_PutGet(t *testing.T) {
	c := New()
	c.Put("Grabe ang baha!", Example{Sentiment: "Fear/Anxiety", Location: "Manila"})

	ex, ok := c.Get("grabe ang BAHA")
	if !ok {
		t.Fatal("expected hit for normalized-equal text")
	}
	if ex.Sentiment != "Fear/Anxiety" || ex.Location != "Manila" {
		t.Errorf("unexpected example %+v", ex)
	}

	if _, ok := c.Get("different text entirely"); ok {
		t.Error("expected miss for unrelated text")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestExplanation_Language(t *testing.T) {
	fil := Explanation("Panic", "Filipino")
	eng := Explanation("Panic", "English")
	if fil == eng {
		t.Error("expected language-specific explanations")
	}
	if want := "Classification based on previous user feedback for this exact message: Panic"; eng != want {
		t.Errorf("english explanation = %q, want %q", eng, want)
	}
}
