package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTFIDF_IdentityVector(t *testing.T) {
	v := newTFIDFVectorizer(1000)
	docs := [][]string{
		{"return", "policy"},
		{"ship", "overnight"},
		{"size", "chart"},
	}
	v.Fit(docs)

	for _, doc := range docs {
		vec := v.Transform(doc)
		assert.InDelta(t, 1.0, cosine(vec, vec), 1e-9)
	}
}

func TestTFIDF_OutOfVocabulary(t *testing.T) {
	v := newTFIDFVectorizer(1000)
	v.Fit([][]string{{"return", "policy"}})

	vec := v.Transform([]string{"weather", "today"})
	assert.Empty(t, vec)

	other := v.Transform([]string{"return", "policy"})
	assert.Equal(t, 0.0, cosine(vec, other))
}

func TestTFIDF_Bigrams(t *testing.T) {
	v := newTFIDFVectorizer(1000)
	v.Fit([][]string{{"air", "max", "comfort"}})

	// Same unigrams in a different order miss the bigram dimensions and
	// score below an exact match.
	exact := v.Transform([]string{"air", "max", "comfort"})
	reordered := v.Transform([]string{"comfort", "max", "air"})

	score := cosine(exact, reordered)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 1.0)
}

func TestTFIDF_VocabularyCap(t *testing.T) {
	v := newTFIDFVectorizer(3)
	v.Fit([][]string{
		{"alpha", "beta"},
		{"alpha", "gamma"},
		{"alpha", "delta"},
	})

	assert.Equal(t, 3, v.VocabularySize())
	// The most frequent term survives the cap.
	vec := v.Transform([]string{"alpha"})
	assert.Len(t, vec, 1)
}

func TestTFIDF_DeterministicFit(t *testing.T) {
	docs := [][]string{
		{"return", "policy"},
		{"ship", "overnight", "delivery"},
		{"size", "chart", "size"},
	}

	a := newTFIDFVectorizer(1000)
	a.Fit(docs)
	b := newTFIDFVectorizer(1000)
	b.Fit(docs)

	assert.Equal(t, a.vocab, b.vocab)
	assert.Equal(t, a.idf, b.idf)
}

func TestTFIDF_StopwordsExcluded(t *testing.T) {
	v := newTFIDFVectorizer(1000)
	v.Fit([][]string{{"what", "is", "the", "price"}})

	_, ok := v.vocab["what"]
	assert.False(t, ok)
	_, ok = v.vocab["price"]
	assert.True(t, ok)
}
