package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntents_Invariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, entry := range Intents {
		assert.False(t, seen[entry.Name], "duplicate intent %q", entry.Name)
		seen[entry.Name] = true
		assert.NotEmpty(t, entry.Keywords, "intent %q has no keywords", entry.Name)
		assert.NotEmpty(t, entry.Responses, "intent %q has no responses", entry.Name)
	}
}

func TestLookupIntent(t *testing.T) {
	entry := LookupIntent("sizing")
	require.NotNil(t, entry)
	assert.Equal(t, "sizing", entry.Name)

	assert.Nil(t, LookupIntent("weather"))
}

func TestCatalog_Invariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Catalog {
		assert.False(t, seen[p.Name], "duplicate product %q", p.Name)
		seen[p.Name] = true
		assert.NotEmpty(t, p.Price)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Sizes)
		assert.NotEmpty(t, p.Colors)
	}
}

func TestProductAliases_ResolveToCatalog(t *testing.T) {
	for _, alias := range productAliases {
		assert.NotNil(t, LookupProduct(alias.Product),
			"alias %q points at unknown product %q", alias.Keyword, alias.Product)
	}
}

func TestMatchProduct_NameVariants(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Tell me about the Air Max 270", "Air Max 270"},
		{"is the airmax270 comfortable?", "Air Max 270"},
		{"thoughts on the air-max-270?", "Air Max 270"},
		{"DUNK LOW sizing?", "Dunk Low"},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			p := MatchProduct(tc.query)
			require.NotNil(t, p)
			assert.Equal(t, tc.want, p.Name)
		})
	}
}

func TestMatchProduct_Aliases(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"how much are jordans?", "Air Jordan 1 Retro High"},
		{"do you sell pegasus?", "Zoom Pegasus 39"},
		{"react foam feels nice", "React Element 55"},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			p := MatchProduct(tc.query)
			require.NotNil(t, p)
			assert.Equal(t, tc.want, p.Name)
		})
	}
}

func TestMatchProduct_AliasPriorityOrder(t *testing.T) {
	// "jordan" is listed before "dunk"; a query mentioning both resolves to
	// the Jordan entry.
	p := MatchProduct("should I buy a jordan or a dunk?")
	require.NotNil(t, p)
	assert.Equal(t, "Air Jordan 1 Retro High", p.Name)
}

func TestMatchProduct_NoMatch(t *testing.T) {
	assert.Nil(t, MatchProduct("what's your return policy?"))
	assert.Nil(t, MatchProduct(""))
}
