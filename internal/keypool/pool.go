// Package keypool manages an ordered pool of API credentials with a
// round-robin dispatch pointer. Requests spread across credentials so that
// per-key rate limits are hit as late as possible; when one key is
// throttled the caller retries against the next few keys in order.
package keypool

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Credential is one API key plus its usage bookkeeping.
type Credential struct {
	Token     string
	Index     int
	Successes int
}

// Masked returns the token truncated for log output.
func (c Credential) Masked() string {
	if len(c.Token) <= 10 {
		return c.Token
	}
	return c.Token[:10] + "..."
}

// Pool is a mutex-guarded ordered credential set with one dispatch pointer.
// The zero-size pool is valid; callers check Len and degrade.
type Pool struct {
	mu      sync.Mutex
	creds   []Credential
	current int
}

// New builds a pool from tokens in the given order. Empty tokens are
// skipped.
func New(tokens []string) *Pool {
	p := &Pool{}
	for _, t := range tokens {
		if t == "" {
			continue
		}
		p.creds = append(p.creds, Credential{Token: t, Index: len(p.creds)})
	}
	return p
}

// FromEnv assembles the bulk rotation pool from the environment. Numbered
// variables win over the single fallback: API_KEY_1..N, then
// GROQ_API_KEY_1..N, then API_KEY.
func FromEnv() *Pool {
	for _, prefix := range []string{"API_KEY_", "GROQ_API_KEY_"} {
		var tokens []string
		for i := 1; ; i++ {
			v := os.Getenv(prefix + strconv.Itoa(i))
			if v == "" {
				break
			}
			tokens = append(tokens, v)
		}
		if len(tokens) > 0 {
			return New(tokens)
		}
	}
	if v := os.Getenv("API_KEY"); v != "" {
		return New([]string{v})
	}
	return New(nil)
}

// ValidationFromEnv returns the dedicated single-credential pool for the
// interactive/validation path, or an empty pool when VALIDATION_API_KEY is
// unset. It shares no state with the rotation pool.
func ValidationFromEnv() *Pool {
	if v := os.Getenv("VALIDATION_API_KEY"); v != "" {
		return New([]string{v})
	}
	return New(nil)
}

// Len reports the number of credentials.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.creds)
}

// Next returns the credential at the pointer and advances it. The pointer
// moves on every call, successful or not, so consecutive requests land on
// consecutive keys.
func (p *Pool) Next() (Credential, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.creds) == 0 {
		return Credential{}, fmt.Errorf("credential pool is empty")
	}
	c := p.creds[p.current]
	p.current = (p.current + 1) % len(p.creds)
	return c, nil
}

// MarkSuccess increments the success counter of the credential at index i.
// Out-of-range indexes are ignored.
func (p *Pool) MarkSuccess(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.creds) {
		return
	}
	p.creds[i].Successes++
}

// Successes returns the per-credential success counts in pool order.
func (p *Pool) Successes() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]int, len(p.creds))
	for i, c := range p.creds {
		out[i] = c.Successes
	}
	return out
}

// Attempts returns how many distinct credentials a rate-limited request
// should be retried against: min(max, pool size).
func (p *Pool) Attempts(max int) int {
	n := p.Len()
	if n < max {
		return n
	}
	return max
}
