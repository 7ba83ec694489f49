package keypool

import "testing"

func TestNew_SkipsEmptyTokens(t *testing.T) {
	p := New([]string{"k1", "", "k2"})
	if p.Len() != 2 {
		t.Errorf("expected 2 credentials, got %d", p.Len())
	}
}

func TestNext_RoundRobinWraps(t *testing.T) {
	p := New([]string{"a", "b", "c"})

	// Two full cycles must visit every credential in order.
	want := []string{"a", "b", "c", "a", "b", "c"}
	for i, w := range want {
		c, err := p.Next()
		if err != nil {
			t.Fatalf("Next() error at call %d: %v", i, err)
		}
		if c.Token != w {
			t.Errorf("call %d: expected token %q, got %q", i, w, c.Token)
		}
	}
}

func TestNext_AdvancesOnEveryCall(t *testing.T) {
	p := New([]string{"a", "b"})

	c1, _ := p.Next()
	c2, _ := p.Next()
	if c1.Index == c2.Index {
		t.Errorf("pointer did not advance: got index %d twice", c1.Index)
	}
}

func TestNext_EmptyPool(t *testing.T) {
	p := New(nil)
	if p.Len() != 0 {
		t.Errorf("expected empty pool, got %d", p.Len())
	}
	if _, err := p.Next(); err == nil {
		t.Error("expected error from Next() on empty pool")
	}
}

func TestMarkSuccess(t *testing.T) {
	p := New([]string{"a", "b", "c"})
	p.MarkSuccess(1)
	p.MarkSuccess(1)
	p.MarkSuccess(2)
	p.MarkSuccess(99) // out of range, ignored

	got := p.Successes()
	want := []int{0, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("successes[%d]: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestAttempts(t *testing.T) {
	cases := []struct {
		size int
		max  int
		want int
	}{
		{size: 5, max: 3, want: 3},
		{size: 2, max: 3, want: 2},
		{size: 0, max: 3, want: 0},
	}
	for _, tc := range cases {
		tokens := make([]string, tc.size)
		for i := range tokens {
			tokens[i] = "k"
		}
		p := New(tokens)
		if got := p.Attempts(tc.max); got != tc.want {
			t.Errorf("Attempts(%d) with %d keys: expected %d, got %d", tc.max, tc.size, tc.want, got)
		}
	}
}

func TestMasked(t *testing.T) {
	c := Credential{Token: "gsk_0123456789abcdef"}
	if got := c.Masked(); got != "gsk_012345..." {
		t.Errorf("unexpected masked token %q", got)
	}
	short := Credential{Token: "abc"}
	if got := short.Masked(); got != "abc" {
		t.Errorf("short token should be unchanged, got %q", got)
	}
}
