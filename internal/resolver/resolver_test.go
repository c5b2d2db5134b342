package resolver

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kickshq/support-bot/internal/cache"
	"github.com/kickshq/support-bot/internal/knowledge"
	"github.com/kickshq/support-bot/internal/observability"
)

type classifierStub struct {
	intent string
	score  float64
	calls  int
}

func (s *classifierStub) Classify(rawQuery string, threshold float64) (string, float64) {
	s.calls++
	return s.intent, s.score
}

type generatorStub struct {
	reply string
	err   error
	calls int
}

func (s *generatorStub) Generate(ctx context.Context, systemPrompt, userQuery string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestResolver(cls IntentClassifier, gen Generator, replies cache.Client) *Resolver {
	return New(observability.DefaultLogger(), cls, gen, replies, Config{Threshold: 0.3}, rand.New(rand.NewSource(42)))
}

func TestResolve_EmptyQuery(t *testing.T) {
	cls := &classifierStub{}
	r := newTestResolver(cls, nil, nil)

	for _, q := range []string{"", "   ", "\t\n"} {
		res := r.Resolve(context.Background(), q)
		assert.Equal(t, emptyQueryReply, res.Reply)
		assert.Equal(t, SourcePrompt, res.Source)
	}
	assert.Zero(t, cls.calls)
}

func TestResolve_ProductShortCircuits(t *testing.T) {
	cls := &classifierStub{intent: "sizing", score: 0.95}
	gen := &generatorStub{reply: "unused"}
	r := newTestResolver(cls, gen, nil)

	res := r.Resolve(context.Background(), "Tell me about the Air Max 270")
	assert.Equal(t, SourceProduct, res.Source)
	assert.Contains(t, res.Reply, "**Air Max 270**")
	assert.Contains(t, res.Reply, "💰 **Price:** $150")
	assert.Contains(t, res.Reply, "📏 **Sizes:**")
	assert.Contains(t, res.Reply, "🎨 **Colors:**")
	assert.Contains(t, res.Reply, "Would you like more information about this product or help with sizing?")

	// A product mention bypasses classification and generation entirely.
	assert.Zero(t, cls.calls)
	assert.Zero(t, gen.calls)
}

func TestResolve_ConfidentIntent(t *testing.T) {
	cls := &classifierStub{intent: "shipping", score: 0.82}
	gen := &generatorStub{reply: "unused"}
	r := newTestResolver(cls, gen, nil)

	res := r.Resolve(context.Background(), "when will my order arrive")
	assert.Equal(t, SourceIntent, res.Source)
	assert.Equal(t, "shipping", res.Intent)
	assert.Equal(t, 0.82, res.Confidence)
	assert.Zero(t, gen.calls)

	require.True(t, strings.HasPrefix(res.Reply, supportLabel))
	entry := knowledge.LookupIntent("shipping")
	require.NotNil(t, entry)
	assert.Contains(t, entry.Responses, strings.TrimPrefix(res.Reply, supportLabel))
}

func TestResolve_IntentReplyDeterministicPerSeed(t *testing.T) {
	query := "when will my order arrive"

	first := newTestResolver(&classifierStub{intent: "shipping", score: 0.8}, nil, nil).
		Resolve(context.Background(), query)
	second := newTestResolver(&classifierStub{intent: "shipping", score: 0.8}, nil, nil).
		Resolve(context.Background(), query)

	assert.Equal(t, first.Reply, second.Reply)
}

func TestResolve_GeneratedReply(t *testing.T) {
	cls := &classifierStub{intent: "", score: 0.12}
	gen := &generatorStub{reply: "  Suede needs a soft brush.  "}
	r := newTestResolver(cls, gen, nil)

	res := r.Resolve(context.Background(), "how do I clean suede")
	assert.Equal(t, SourceGenerated, res.Source)
	assert.Equal(t, "Suede needs a soft brush.", res.Reply)
	assert.Equal(t, "", res.Intent)
	assert.Equal(t, 0.12, res.Confidence)
	assert.Equal(t, 1, gen.calls)
}

func TestResolve_GenerationFailureFallsBack(t *testing.T) {
	cls := &classifierStub{intent: "", score: 0.1}
	gen := &generatorStub{err: errors.New("quota exceeded")}
	r := newTestResolver(cls, gen, nil)

	res := r.Resolve(context.Background(), "can I get a refund on my order")
	assert.Equal(t, SourceFallback, res.Source)
	assert.Contains(t, res.Reply, "Returns & Exchanges")
	// A failed generation is attempted exactly once.
	assert.Equal(t, 1, gen.calls)
}

func TestResolve_NilGeneratorUsesRules(t *testing.T) {
	cls := &classifierStub{intent: "", score: 0.0}
	r := newTestResolver(cls, nil, nil)

	res := r.Resolve(context.Background(), "qwerty asdf")
	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, fallbackDefault, res.Reply)
}

func TestResolve_CachesGeneratedReplies(t *testing.T) {
	cls := &classifierStub{intent: "", score: 0.0}
	gen := &generatorStub{reply: "Use a suede brush."}
	replies := cache.NewMemoryClient(16)
	defer replies.Close()

	r := newTestResolver(cls, gen, replies)

	first := r.Resolve(context.Background(), "How do I clean suede?")
	assert.Equal(t, SourceGenerated, first.Source)
	assert.Equal(t, 1, gen.calls)

	// Punctuation and casing variants normalize to the same cache key.
	second := r.Resolve(context.Background(), "how do i clean SUEDE!!")
	assert.Equal(t, first.Reply, second.Reply)
	assert.Equal(t, 1, gen.calls)
}

func TestResolve_EmptyGenerationFallsBack(t *testing.T) {
	cls := &classifierStub{intent: "", score: 0.0}
	gen := &generatorStub{reply: "   "}
	r := newTestResolver(cls, gen, nil)

	res := r.Resolve(context.Background(), "mystery query")
	assert.Equal(t, SourceFallback, res.Source)
	assert.NotEmpty(t, res.Reply)
}

func TestRuleFallback(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"greeting", "hey there", "Hello! Welcome to Nike Customer Support."},
		{"sizing", "does it fit narrow feet", "For sizing help:"},
		{"shipping", "delivery options please", "Shipping Information:"},
		{"returns", "refund my purchase", "Returns & Exchanges:"},
		{"product", "best sneaker you carry", "I can help you with information about Nike products!"},
		{"default", "qwerty asdf", "Thank you for contacting Nike Customer Support!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply := ruleFallback(tc.query)
			assert.True(t, strings.HasPrefix(reply, tc.want), "got %q", reply)
		})
	}
}

func TestRuleFallback_GroupOrder(t *testing.T) {
	// "ship" appears before "return" in the rule table, so a query hitting
	// both resolves to shipping.
	reply := ruleFallback("can I return a shipped order")
	assert.True(t, strings.HasPrefix(reply, "Shipping Information:"))
}
