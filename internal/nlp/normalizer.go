// Package nlp provides text normalization for intent classification.
package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	punctRe = regexp.MustCompile(`[^\w\s]`)
	wsRe    = regexp.MustCompile(`\s+`)
)

// Normalizer transforms raw queries into normalized token sequences.
type Normalizer struct {
	stopwords map[string]struct{}
	irregular map[string]string
}

// NewNormalizer creates a normalizer with the default English stopword set.
// A small set of fit-related words (size, big, small, wide, narrow) is kept
// even when a stopword list would drop them; they carry signal for sneaker
// queries.
func NewNormalizer() *Normalizer {
	n := &Normalizer{
		stopwords: make(map[string]struct{}, len(stopwordList)),
		irregular: map[string]string{
			"feet":     "foot",
			"men":      "man",
			"women":    "woman",
			"children": "child",
		},
	}

	protected := map[string]struct{}{
		"size":   {},
		"big":    {},
		"small":  {},
		"wide":   {},
		"narrow": {},
	}

	for _, w := range stopwordList {
		if _, ok := protected[w]; ok {
			continue
		}
		n.stopwords[w] = struct{}{}
	}

	return n
}

// Normalize lowercases and strips punctuation from raw, tokenizes it, drops
// stopwords and non-word tokens, and reduces surviving tokens to a base form.
// It returns the token sequence and the cleaned lowercased string. Empty
// input yields an empty token slice and empty string; Normalize never fails.
func (n *Normalizer) Normalize(raw string) ([]string, string) {
	if strings.TrimSpace(raw) == "" {
		return nil, ""
	}

	cleaned := punctRe.ReplaceAllString(raw, " ")
	cleaned = wsRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.ToLower(strings.TrimSpace(cleaned))

	tokens := make([]string, 0, 8)
	for _, tok := range strings.Fields(cleaned) {
		if !isAlpha(tok) && !isNumeric(tok) {
			continue
		}
		if _, ok := n.stopwords[tok]; ok {
			continue
		}
		tokens = append(tokens, n.lemma(tok))
	}

	return tokens, cleaned
}

// lemma reduces a token to its base form using a small irregular table and
// suffix rules. Unknown forms pass through unchanged.
func (n *Normalizer) lemma(token string) string {
	if base, ok := n.irregular[token]; ok {
		return base
	}

	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "ing") && len(token) > 5:
		return trimDouble(token[:len(token)-3])
	case strings.HasSuffix(token, "ed") && len(token) > 4:
		return trimDouble(token[:len(token)-2])
	case strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") && len(token) > 3:
		return token[:len(token)-1]
	}

	return token
}

// trimDouble collapses a doubled trailing consonant (shipping -> ship).
func trimDouble(token string) string {
	if len(token) > 2 && token[len(token)-1] == token[len(token)-2] {
		return token[:len(token)-1]
	}
	return token
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// stopwordList is the standard English stopword set.
var stopwordList = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself",
	"she", "her", "hers", "herself", "it", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than", "too",
	"very", "s", "t", "can", "will", "just", "don", "should", "now", "d",
	"ll", "m", "o", "re", "ve", "y", "ain", "aren", "couldn", "didn",
	"doesn", "hadn", "hasn", "haven", "isn", "ma", "mightn", "mustn",
	"needn", "shan", "shouldn", "wasn", "weren", "won", "wouldn",
	"size", "big", "small", "wide", "narrow",
}
