// Package classifier implements intent classification for support queries:
// a regex pattern override backed by TF-IDF cosine similarity against a
// small labeled corpus.
package classifier

import (
	"errors"
	"sync"

	"github.com/kickshq/support-bot/internal/knowledge"
	"github.com/kickshq/support-bot/internal/nlp"
	"github.com/kickshq/support-bot/internal/observability"
)

// PatternConfidence is the fixed confidence reported for pattern-override
// matches.
const PatternConfidence = 0.9

// DefaultThreshold is the minimum similarity to accept a vector match.
const DefaultThreshold = 0.3

// ErrEmptyCorpus indicates the classifier was constructed without training
// examples. This is a fatal configuration error.
var ErrEmptyCorpus = errors.New("classifier: empty training corpus")

// Config holds classifier settings.
type Config struct {
	MaxFeatures int
}

// Classifier predicts an intent for a raw query. The fitted vector space is
// read-only after Train and safe for concurrent Classify calls.
type Classifier struct {
	logger *observability.Logger
	norm   *nlp.Normalizer
	corpus []knowledge.TrainingExample
	cfg    Config

	once     sync.Once
	trainErr error
	vec      *tfidfVectorizer
	vectors  []map[int]float64
	intents  []string
}

// New creates a classifier over the given corpus. Train must complete before
// Classify is useful; Classify triggers it on first use as a guard.
func New(logger *observability.Logger, corpus []knowledge.TrainingExample, cfg Config) *Classifier {
	if cfg.MaxFeatures <= 0 {
		cfg.MaxFeatures = 1000
	}
	return &Classifier{
		logger: logger,
		norm:   nlp.NewNormalizer(),
		corpus: corpus,
		cfg:    cfg,
	}
}

// Train fits the TF-IDF vector space over the training corpus. It runs at
// most once; repeated calls return the first result.
func (c *Classifier) Train() error {
	c.once.Do(c.fit)
	return c.trainErr
}

func (c *Classifier) fit() {
	if len(c.corpus) == 0 {
		c.trainErr = ErrEmptyCorpus
		return
	}

	docs := make([][]string, len(c.corpus))
	intents := make([]string, len(c.corpus))
	for i, ex := range c.corpus {
		tokens, _ := c.norm.Normalize(ex.Query)
		docs[i] = tokens
		intents[i] = ex.Intent
	}

	vec := newTFIDFVectorizer(c.cfg.MaxFeatures)
	vec.Fit(docs)

	vectors := make([]map[int]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = vec.Transform(doc)
	}

	c.vec = vec
	c.vectors = vectors
	c.intents = intents

	c.logger.Info().
		Int("examples", len(c.corpus)).
		Int("vocabulary", vec.VocabularySize()).
		Msg("Intent classifier trained")
}

// Classify predicts the intent of a raw query. The pattern table is checked
// first against the cleaned query and short-circuits with PatternConfidence.
// Otherwise the query is vectorized and scored by cosine similarity against
// every training example; the best score below threshold yields an empty
// intent, but the score is still returned.
func (c *Classifier) Classify(rawQuery string, threshold float64) (string, float64) {
	if err := c.Train(); err != nil {
		c.logger.Error().Err(err).Msg("Classification unavailable")
		return "", 0
	}

	tokens, cleaned := c.norm.Normalize(rawQuery)
	if cleaned == "" {
		return "", 0
	}

	if intent, ok := MatchPattern(cleaned); ok {
		c.logger.Debug().
			Str("query", rawQuery).
			Str("intent", intent).
			Msg("Pattern override matched")
		return intent, PatternConfidence
	}

	queryVec := c.vec.Transform(tokens)

	bestIdx := 0
	bestScore := 0.0
	for i, tv := range c.vectors {
		if score := cosine(queryVec, tv); score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	c.logger.Debug().
		Str("query", rawQuery).
		Str("intent", c.intents[bestIdx]).
		Float64("score", bestScore).
		Msg("Vector similarity scored")

	if bestScore >= threshold {
		return c.intents[bestIdx], bestScore
	}
	return "", bestScore
}

// Stats describes the fitted training corpus.
type Stats struct {
	TotalExamples      int            `json:"totalExamples"`
	UniqueIntents      int            `json:"uniqueIntents"`
	IntentDistribution map[string]int `json:"intentDistribution"`
	VocabularySize     int            `json:"vocabularySize"`
}

// Stats reports training statistics. It returns the zero value if the
// classifier has not been trained successfully.
func (c *Classifier) Stats() Stats {
	if err := c.Train(); err != nil {
		return Stats{}
	}

	dist := make(map[string]int)
	for _, intent := range c.intents {
		dist[intent]++
	}

	return Stats{
		TotalExamples:      len(c.corpus),
		UniqueIntents:      len(dist),
		IntentDistribution: dist,
		VocabularySize:     c.vec.VocabularySize(),
	}
}
