package analytics

import (
	"sort"
	"strings"
)

type Analytics struct{}

// commonWords are skipped during frequency analysis. Extend as needed.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "but": {}, "by": {}, "can": {}, "could": {},
	"do": {}, "does": {}, "for": {}, "from": {}, "get": {}, "has": {},
	"have": {}, "her": {}, "here": {}, "his": {}, "how": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "just": {},
	"more": {}, "most": {}, "my": {}, "new": {}, "no": {}, "not": {},
	"now": {}, "of": {}, "on": {}, "one": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "out": {}, "over": {}, "so": {}, "some": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "to": {}, "up": {},
	"us": {}, "was": {}, "we": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "who": {}, "will": {}, "with": {}, "would": {}, "you": {},
	"your": {},

	// Web/UI noise that would otherwise dominate probed pages
	"click": {}, "button": {}, "link": {}, "menu": {}, "page": {},
	"pages": {}, "website": {}, "site": {}, "home": {}, "homepage": {},
	"search": {}, "loading": {}, "cookie": {}, "cookies": {}, "privacy": {},
	"terms": {}, "login": {}, "signup": {}, "subscribe": {},
}

// IsStopword checks if a word should be filtered from frequency results.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text))
	frequencies := make(map[string]int)

	for _, word := range words {
		// Strip surrounding punctuation, keep letters and digits
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		if word == "" || len(word) < 3 {
			continue
		}
		if _, exists := commonWords[word]; exists {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

// TopNWords returns the n most frequent non-stopword words in text,
// most frequent first. Ties break alphabetically so output is stable.
func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count == counts[j].Count {
			return counts[i].Word < counts[j].Word
		}
		return counts[i].Count > counts[j].Count
	})

	if n > len(counts) {
		n = len(counts)
	}
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, counts[i].Word)
	}
	return words
}
