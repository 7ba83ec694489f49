// Package trained holds the feedback-corrected classifications. Texts that
// users have corrected are answered from here before any remote call.
package trained

import (
	"regexp"
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// Example is a stored correction for one exact text.
type Example struct {
	Sentiment    string
	Location     string
	DisasterType string
}

// Cache maps normalized text to its corrected classification. Entries
// never expire; corrections hold for the process lifetime (and across
// restarts when a store is attached).
type Cache struct {
	cache *gocache.Cache
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{cache: gocache.New(gocache.NoExpiration, 0)}
}

var wordRe = regexp.MustCompile(`\b\w+\b`)

// Key normalizes text for lookup: lowercase words joined by single spaces,
// so punctuation and spacing differences hit the same entry.
func Key(text string) string {
	return strings.Join(wordRe.FindAllString(strings.ToLower(text), -1), " ")
}

// Put records a correction for the given text.
func (c *Cache) Put(text string, ex Example) {
	c.cache.Set(Key(text), ex, gocache.NoExpiration)
}

// Get looks up the correction for text, if any.
func (c *Cache) Get(text string) (Example, bool) {
	v, found := c.cache.Get(Key(text))
	if !found {
		return Example{}, false
	}
	return v.(Example), true
}

// Len reports the number of stored corrections.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}

// Explanation renders the feedback-sourced explanation in the language of
// the analyzed text.
func Explanation(sentiment, language string) string {
	if language == "Filipino" {
		return "Klasipikasyon batay sa kauna-unahang feedback para sa mensaheng ito: " + sentiment
	}
	return "Classification based on previous user feedback for this exact message: " + sentiment
}
