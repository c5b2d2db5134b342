// Package resolver orchestrates query resolution: product lookup, intent
// classification, generative fallback, and rule-based canned replies, in a
// fixed precedence order.
package resolver

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/kickshq/support-bot/internal/cache"
	"github.com/kickshq/support-bot/internal/classifier"
	"github.com/kickshq/support-bot/internal/knowledge"
	"github.com/kickshq/support-bot/internal/nlp"
	"github.com/kickshq/support-bot/internal/observability"
)

const (
	// supportLabel prefixes every canned intent reply.
	supportLabel = "**Nike Customer Support:** "

	// systemPrompt steers the generative backend.
	systemPrompt = "You are a knowledgeable Nike sneaker store assistant. Provide helpful, accurate information about Nike products, sizing, shipping, returns, and general customer service. Keep responses under 150 words and be friendly and professional."

	// emptyQueryReply is returned for blank input.
	emptyQueryReply = "Please ask me a question about Nike sneakers and I'll be happy to help!"
)

// Resolution sources, in precedence order.
const (
	SourcePrompt    = "prompt"
	SourceProduct   = "product"
	SourceIntent    = "intent"
	SourceGenerated = "generated"
	SourceFallback  = "fallback"
)

// IntentClassifier predicts an intent and a confidence score for a query.
type IntentClassifier interface {
	Classify(rawQuery string, threshold float64) (string, float64)
}

// Generator produces a free-form reply from the generative backend. It may
// fail; the resolver absorbs every failure.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userQuery string) (string, error)
}

// Config holds resolver settings.
type Config struct {
	Threshold float64
	CacheTTL  time.Duration
}

// Result is the outcome of one resolution call. Reply is always non-empty.
// Confidence carries the classifier score even when the intent was rejected
// at the threshold.
type Result struct {
	Reply      string  `json:"reply"`
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// Resolver resolves support queries. It is stateless per call and safe for
// concurrent use.
type Resolver struct {
	logger     *observability.Logger
	classifier IntentClassifier
	generator  Generator    // nil disables the generative fallback
	replies    cache.Client // nil disables generated-reply caching
	norm       *nlp.Normalizer
	cfg        Config

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a resolver. Pass a nil generator to run without the generative
// backend and a nil cache client to skip reply caching. The random source
// picks among an intent's canned responses; a nil rng gets a time seed.
func New(logger *observability.Logger, cls IntentClassifier, gen Generator, replies cache.Client, cfg Config, rng *rand.Rand) *Resolver {
	if cfg.Threshold <= 0 {
		cfg.Threshold = classifier.DefaultThreshold
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Resolver{
		logger:     logger,
		classifier: cls,
		generator:  gen,
		replies:    replies,
		norm:       nlp.NewNormalizer(),
		cfg:        cfg,
		rng:        rng,
	}
}

// Resolve produces a reply for one query. It never fails: every internal
// error terminates in the rule-based fallback.
func (r *Resolver) Resolve(ctx context.Context, query string) Result {
	if strings.TrimSpace(query) == "" {
		return Result{Reply: emptyQueryReply, Source: SourcePrompt}
	}

	if product := knowledge.MatchProduct(query); product != nil {
		r.logger.Debug().Str("product", product.Name).Msg("Product mention matched")
		return Result{Reply: formatProductCard(product), Source: SourceProduct}
	}

	intent, score := r.classifier.Classify(query, r.cfg.Threshold)
	if intent != "" {
		if entry := knowledge.LookupIntent(intent); entry != nil {
			reply := supportLabel + entry.Responses[r.pick(len(entry.Responses))]
			return Result{Reply: reply, Intent: intent, Confidence: score, Source: SourceIntent}
		}
		// Known label without a knowledge-base entry falls through.
		r.logger.Warn().Str("intent", intent).Msg("Intent has no knowledge-base entry")
	}

	if reply, ok := r.generate(ctx, query); ok {
		return Result{Reply: reply, Confidence: score, Source: SourceGenerated}
	}

	return Result{Reply: ruleFallback(query), Confidence: score, Source: SourceFallback}
}

// generate invokes the generative backend once, consulting the reply cache
// first. Any failure reports ok=false; there are no retries.
func (r *Resolver) generate(ctx context.Context, query string) (string, bool) {
	if r.generator == nil {
		return "", false
	}

	key := r.cacheKey(query)
	if r.replies != nil {
		if cached, err := r.replies.Get(ctx, key); err == nil {
			r.logger.Debug().Str("key", key).Msg("Generated reply served from cache")
			return string(cached), true
		}
	}

	reply, err := r.generator.Generate(ctx, systemPrompt, query)
	if err != nil {
		r.logger.Warn().Err(err).Msg("Generation failed, using rule fallback")
		return "", false
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", false
	}

	if r.replies != nil {
		if err := r.replies.Set(ctx, key, []byte(reply), r.cfg.CacheTTL); err != nil {
			r.logger.Warn().Err(err).Msg("Failed to cache generated reply")
		}
	}

	return reply, true
}

// cacheKey derives a cache key from the normalized query so trivial
// punctuation and casing differences share an entry.
func (r *Resolver) cacheKey(query string) string {
	tokens, cleaned := r.norm.Normalize(query)
	if len(tokens) == 0 {
		return cache.CacheKey("gen", cleaned)
	}
	return cache.CacheKey("gen", strings.Join(tokens, " "))
}

func (r *Resolver) pick(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// formatProductCard renders the structured product reply.
func formatProductCard(p *knowledge.Product) string {
	var b strings.Builder
	b.WriteString("**" + p.Name + "**\n\n")
	b.WriteString(p.Description + "\n\n")
	b.WriteString("💰 **Price:** " + p.Price + "\n")
	b.WriteString("📏 **Sizes:** " + p.Sizes + "\n")
	b.WriteString("🎨 **Colors:** " + p.Colors + "\n\n")
	b.WriteString("Would you like more information about this product or help with sizing?")
	return b.String()
}
