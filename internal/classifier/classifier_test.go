package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kickshq/support-bot/internal/knowledge"
	"github.com/kickshq/support-bot/internal/observability"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c := New(observability.DefaultLogger(), knowledge.TrainingData, Config{MaxFeatures: 1000})
	require.NoError(t, c.Train())
	return c
}

func TestClassify_PatternOverride(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		query      string
		wantIntent string
	}{
		{"What size should I get?", "sizing"},
		{"How long does shipping take?", "shipping"},
		{"Can I get a refund?", "returns"},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			intent, score := c.Classify(tc.query, DefaultThreshold)
			assert.Equal(t, tc.wantIntent, intent)
			assert.Equal(t, PatternConfidence, score)
		})
	}
}

func TestClassify_IdentityQueryScoresOne(t *testing.T) {
	c := newTestClassifier(t)

	// "Good morning" is in the corpus and matches no override pattern, so
	// the vector path scores it against its own training vector.
	intent, score := c.Classify("Good morning", DefaultThreshold)
	assert.Equal(t, "greeting", intent)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestClassify_EmptyQuery(t *testing.T) {
	c := newTestClassifier(t)

	for _, q := range []string{"", "   ", "?!?"} {
		intent, score := c.Classify(q, DefaultThreshold)
		assert.Equal(t, "", intent)
		assert.Equal(t, 0.0, score)
	}
}

func TestClassify_UnrelatedQueryBelowThreshold(t *testing.T) {
	c := newTestClassifier(t)

	intent, score := c.Classify("What's the weather like today?", DefaultThreshold)
	assert.Equal(t, "", intent)
	assert.Equal(t, 0.0, score)
}

func TestClassify_ScoreInRange(t *testing.T) {
	c := newTestClassifier(t)

	queries := []string{
		"Hello",
		"Good morning",
		"best running shoe for me",
		"sneaker",
		"completely unrelated gibberish",
	}

	for _, q := range queries {
		_, score := c.Classify(q, DefaultThreshold)
		assert.GreaterOrEqual(t, score, 0.0, "query %q", q)
		assert.LessOrEqual(t, score, 1.0+1e-9, "query %q", q)
	}
}

func TestClassify_ThresholdGate(t *testing.T) {
	logger := observability.DefaultLogger()
	corpus := []knowledge.TrainingExample{
		{Query: "hello world", Intent: "greeting", Weight: 1.0},
		{Query: "broken sole problem", Intent: "warranty", Weight: 1.0},
	}
	c := New(logger, corpus, Config{})
	require.NoError(t, c.Train())

	// "hello planet" shares one term with the greeting example.
	intent, score := c.Classify("hello planet", 0.99)
	assert.Equal(t, "", intent)
	assert.Greater(t, score, 0.0)

	intent, again := c.Classify("hello planet", score-1e-9)
	assert.Equal(t, "greeting", intent)
	assert.InDelta(t, score, again, 1e-9)
}

func TestClassify_Deterministic(t *testing.T) {
	c := newTestClassifier(t)

	firstIntent, firstScore := c.Classify("Do you ship to Canada?", DefaultThreshold)
	for i := 0; i < 5; i++ {
		intent, score := c.Classify("Do you ship to Canada?", DefaultThreshold)
		assert.Equal(t, firstIntent, intent)
		assert.Equal(t, firstScore, score)
	}
}

func TestTrain_Idempotent(t *testing.T) {
	c := newTestClassifier(t)
	require.NoError(t, c.Train())
	require.NoError(t, c.Train())

	intent, score := c.Classify("Good morning", DefaultThreshold)
	assert.Equal(t, "greeting", intent)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestTrain_EmptyCorpus(t *testing.T) {
	c := New(observability.DefaultLogger(), nil, Config{})
	assert.ErrorIs(t, c.Train(), ErrEmptyCorpus)

	intent, score := c.Classify("Hello", DefaultThreshold)
	assert.Equal(t, "", intent)
	assert.Equal(t, 0.0, score)
}

func TestStats(t *testing.T) {
	c := newTestClassifier(t)

	stats := c.Stats()
	assert.Equal(t, len(knowledge.TrainingData), stats.TotalExamples)
	assert.Equal(t, 8, stats.UniqueIntents)
	assert.Equal(t, 7, stats.IntentDistribution["sizing"])
	assert.Equal(t, 5, stats.IntentDistribution["greeting"])
	assert.Greater(t, stats.VocabularySize, 0)
	assert.LessOrEqual(t, stats.VocabularySize, 1000)
}
