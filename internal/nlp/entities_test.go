package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityExtractor_LexicalMatches(t *testing.T) {
	extractor := NewEntityExtractor()

	text := "Bitcoin surges as ETH rallies and DeFi grows"
	matches := extractor.LexicalMatches(text)

	require.Len(t, matches, 3)
	surfaces := make([]string, 0, len(matches))
	for _, m := range matches {
		assert.Equal(t, EntityTypeCryptocurrency, m.Type)
		// Offsets must map back into the original-case text.
		assert.Equal(t, m.Text, text[m.Start:m.End])
		surfaces = append(surfaces, m.Text)
	}
	assert.Equal(t, []string{"Bitcoin", "ETH", "DeFi"}, surfaces)
}

func TestEntityExtractor_LexicalMatchesWholeWordsOnly(t *testing.T) {
	extractor := NewEntityExtractor()

	// "bitcoiner" and "methane" must not match "bitcoin" or "eth".
	matches := extractor.LexicalMatches("a bitcoiner studies methane")
	assert.Empty(t, matches)
}

func TestEntityExtractor_MapSpanType(t *testing.T) {
	extractor := NewEntityExtractor()

	tests := []struct {
		name     string
		category string
		surface  string
		expected EntityType
	}{
		{"person span", "PERSON", "Elon Musk", EntityTypePerson},
		{"conll person span", "PER", "Gary Gensler", EntityTypePerson},
		{"plain organization", "ORG", "Microsoft", EntityTypeCompany},
		{"organization containing exchange name", "ORG", "Coinbase Global", EntityTypeExchange},
		{"kraken exchange", "ORG", "Kraken Exchange", EntityTypeExchange},
		{"product maps to cryptocurrency", "PRODUCT", "Lightning Network", EntityTypeCryptocurrency},
		{"monetary falls back to organization", "MONEY", "$100 million", EntityTypeOrganization},
		{"place falls back to organization", "GPE", "United States", EntityTypeOrganization},
		{"crypto term overrides tagger category", "ORG", "Ethereum", EntityTypeCryptocurrency},
		{"crypto term overrides person too", "PERSON", "Doge", EntityTypeCryptocurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractor.MapSpanType(tt.category, tt.surface))
		})
	}
}

func TestAllowedCategory(t *testing.T) {
	assert.True(t, AllowedCategory("ORG"))
	assert.True(t, AllowedCategory("person"))
	assert.True(t, AllowedCategory("MONEY"))
	assert.False(t, AllowedCategory("DATE"))
	assert.False(t, AllowedCategory("CARDINAL"))
}

func TestEntityExtractor_Merge(t *testing.T) {
	extractor := NewEntityExtractor()

	tagged := []Entity{
		{Text: "Bitcoin", Type: EntityTypeCryptocurrency, Start: 0, End: 7},
		{Text: "SEC", Type: EntityTypeCompany, Start: 40, End: 43},
	}
	lexical := []Entity{
		{Text: "Bitcoin", Type: EntityTypeCryptocurrency, Start: 0, End: 7},   // same start, dropped
		{Text: "bitcoin", Type: EntityTypeCryptocurrency, Start: 60, End: 67}, // same surface, dropped
		{Text: "ETH", Type: EntityTypeCryptocurrency, Start: 20, End: 23},
	}

	merged := extractor.Merge(tagged, lexical)

	require.Len(t, merged, 3)
	assert.Equal(t, "Bitcoin", merged[0].Text)
	assert.Equal(t, "SEC", merged[1].Text)
	assert.Equal(t, "ETH", merged[2].Text)
}

func TestEntityExtractor_MergeNoCaseInsensitiveDuplicates(t *testing.T) {
	extractor := NewEntityExtractor()

	text := "Bitcoin and BITCOIN and bitcoin"
	merged := extractor.Merge(nil, extractor.LexicalMatches(text))

	seen := map[string]bool{}
	for _, ent := range merged {
		key := strings.ToLower(ent.Text)
		assert.False(t, seen[key], "duplicate surface form %q", ent.Text)
		seen[key] = true
	}
	assert.Len(t, merged, 1)
}

func TestCryptoEntityCount(t *testing.T) {
	entities := []Entity{
		{Text: "Bitcoin", Type: EntityTypeCryptocurrency},
		{Text: "SEC", Type: EntityTypeCompany},
		{Text: "ETH", Type: EntityTypeCryptocurrency},
	}
	assert.Equal(t, 2, CryptoEntityCount(entities))
	assert.Equal(t, 0, CryptoEntityCount(nil))
}
