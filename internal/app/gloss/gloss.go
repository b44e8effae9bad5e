package gloss

import (
	"strings"
	"unicode"
)

// stopwords are function words sign-language gloss leaves out: English articles,
// forms of "be", infinitive "to", and the Hindi copula.
var stopwords = map[string]struct{}{
	"A": {}, "AN": {}, "THE": {},
	"AM": {}, "IS": {}, "ARE": {}, "WAS": {}, "WERE": {}, "BE": {}, "BEEN": {}, "BEING": {},
	"TO": {},
	"है": {}, "हैं": {}, "था": {}, "थे": {}, "थी": {}, "हूँ": {}, "हूं": {},
}

// Glosser turns transcript text into gloss tokens. It holds no mutable state and
// is safe for concurrent use.
type Glosser struct {
	stopwords map[string]struct{}
}

// NewGlosser returns a Glosser using the built-in stopword list.
func NewGlosser() *Glosser {
	return &Glosser{stopwords: stopwords}
}

// Gloss is deterministic: identical text always yields the identical token sequence.
// Letters are uppercased, apostrophes are dropped ("don't" becomes DONT), any other
// punctuation separates tokens, and stopwords are removed. Combining marks are kept
// so Devanagari vowel signs survive.
func (g *Glosser) Gloss(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '\'' || r == '’':
			return -1
		case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsDigit(r):
			return unicode.ToUpper(r)
		default:
			return ' '
		}
	}, text)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, skip := g.stopwords[field]; skip {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}
