package classifier

import (
	"math"
	"sort"
)

// tfidfVectorizer maps normalized token sequences to weighted term vectors.
// Terms are unigrams and bigrams; the vocabulary is capped at maxFeatures
// terms chosen by corpus frequency. Vectors are L2-normalized so the dot
// product of two vectors is their cosine similarity.
type tfidfVectorizer struct {
	maxFeatures int
	vocab       map[string]int
	idf         []float64
}

// vectorizerStopwords are excluded at the vectorization stage, independently
// of normalization.
var vectorizerStopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "what": {},
	"how": {}, "do": {}, "does": {}, "can": {}, "will": {}, "to": {},
	"of": {}, "for": {}, "in": {}, "on": {}, "and": {}, "or": {},
}

func newTFIDFVectorizer(maxFeatures int) *tfidfVectorizer {
	if maxFeatures <= 0 {
		maxFeatures = 1000
	}
	return &tfidfVectorizer{maxFeatures: maxFeatures}
}

// terms expands a token sequence into its unigram and bigram terms, with
// stopwords removed before bigram construction.
func (v *tfidfVectorizer) terms(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := vectorizerStopwords[tok]; ok {
			continue
		}
		filtered = append(filtered, tok)
	}

	terms := make([]string, 0, 2*len(filtered))
	terms = append(terms, filtered...)
	for i := 0; i+1 < len(filtered); i++ {
		terms = append(terms, filtered[i]+" "+filtered[i+1])
	}
	return terms
}

// Fit builds the vocabulary and inverse document frequencies from the
// training documents. Fitting the same corpus twice yields the same model.
func (v *tfidfVectorizer) Fit(docs [][]string) {
	totalCounts := make(map[string]int)
	docCounts := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range v.terms(doc) {
			totalCounts[term]++
			if !seen[term] {
				docCounts[term]++
				seen[term] = true
			}
		}
	}

	// Rank terms by corpus frequency, ties broken alphabetically, and cap
	// the vocabulary.
	ranked := make([]string, 0, len(totalCounts))
	for term := range totalCounts {
		ranked = append(ranked, term)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if totalCounts[ranked[i]] != totalCounts[ranked[j]] {
			return totalCounts[ranked[i]] > totalCounts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > v.maxFeatures {
		ranked = ranked[:v.maxFeatures]
	}

	n := float64(len(docs))
	v.vocab = make(map[string]int, len(ranked))
	v.idf = make([]float64, len(ranked))
	for i, term := range ranked {
		v.vocab[term] = i
		// Smoothed IDF, never zero, so every vocabulary term contributes.
		v.idf[i] = math.Log((1+n)/(1+float64(docCounts[term]))) + 1
	}
}

// Transform vectorizes a token sequence against the fitted vocabulary.
// Out-of-vocabulary terms contribute zero weight. The result is
// L2-normalized; an all-out-of-vocabulary input yields an empty vector.
func (v *tfidfVectorizer) Transform(tokens []string) map[int]float64 {
	counts := make(map[int]float64)
	for _, term := range v.terms(tokens) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}

	var norm float64
	for idx, count := range counts {
		w := count * v.idf[idx]
		counts[idx] = w
		norm += w * w
	}
	if norm == 0 {
		return counts
	}

	norm = math.Sqrt(norm)
	for idx := range counts {
		counts[idx] /= norm
	}
	return counts
}

// VocabularySize reports the number of fitted vocabulary terms.
func (v *tfidfVectorizer) VocabularySize() int {
	return len(v.vocab)
}

// cosine computes the cosine similarity of two L2-normalized vectors.
func cosine(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	return dot
}
