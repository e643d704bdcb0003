package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordExtractor_Extract(t *testing.T) {
	extractor := NewKeywordExtractor()

	text := "Bitcoin price surges after major ETF approval from SEC. The Bitcoin rally continues."
	keywords := extractor.Extract(text, 5)

	assert.Len(t, keywords, 5)
	// "bitcoin" occurs twice and must rank first; the rest follow in first
	// occurrence order.
	assert.Equal(t, []string{"bitcoin", "price", "surges", "major", "etf"}, keywords)
}

func TestKeywordExtractor_FiltersStopwordsAndShortTokens(t *testing.T) {
	extractor := NewKeywordExtractor()

	keywords := extractor.Extract("the price of BTC is up and to the moon", 10)

	for _, kw := range keywords {
		assert.Greater(t, len(kw), 2, "token %q is too short", kw)
		assert.NotContains(t, []string{"the", "of", "is", "and", "to"}, kw)
	}
	assert.Contains(t, keywords, "btc")
	assert.Contains(t, keywords, "moon")
}

func TestKeywordExtractor_KeepsDirectionWords(t *testing.T) {
	extractor := NewKeywordExtractor()

	// "down" and "not" are on a generic stopword list but carry direction and
	// negation here, so they survive the filter.
	keywords := extractor.Extract("market not going down today", 10)

	assert.Contains(t, keywords, "not")
	assert.Contains(t, keywords, "down")
}

func TestKeywordExtractor_TopNBoundAndDedup(t *testing.T) {
	extractor := NewKeywordExtractor()

	keywords := extractor.Extract("bitcoin bitcoin bitcoin ethereum ethereum solana", 2)

	assert.Equal(t, []string{"bitcoin", "ethereum"}, keywords)

	seen := map[string]bool{}
	for _, kw := range keywords {
		assert.False(t, seen[kw], "keyword %q repeated", kw)
		seen[kw] = true
	}
}

func TestKeywordExtractor_EmptyInput(t *testing.T) {
	extractor := NewKeywordExtractor()

	assert.Empty(t, extractor.Extract("", 5))
	assert.Empty(t, extractor.Extract("to be or", 5))
	assert.Empty(t, extractor.Extract("bitcoin", 0))
}
