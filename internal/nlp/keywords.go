package nlp

import (
	"regexp"
	"sort"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// KeywordExtractor extracts frequency-ranked content words from text.
type KeywordExtractor struct {
	stopwords map[string]struct{}
}

// NewKeywordExtractor creates a keyword extractor with the built-in stopword
// set (direction and negation words re-admitted).
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{stopwords: buildStopwords()}
}

// Extract returns up to topN keywords ranked by descending frequency, ties
// broken by first occurrence. Tokens must be alphanumeric, longer than two
// characters and outside the stopword set. Each keyword appears once.
func (e *KeywordExtractor) Extract(text string, topN int) []string {
	if topN <= 0 {
		return nil
	}

	cleaned := CleanText(strings.ToLower(text))
	tokens := wordPattern.FindAllString(cleaned, -1)

	type candidate struct {
		word  string
		count int
		first int
	}

	seen := make(map[string]*candidate)
	var order []*candidate
	for i, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := e.stopwords[tok]; stop {
			continue
		}
		if c, ok := seen[tok]; ok {
			c.count++
			continue
		}
		c := &candidate{word: tok, count: 1, first: i}
		seen[tok] = c
		order = append(order, c)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	if len(order) > topN {
		order = order[:topN]
	}

	keywords := make([]string, 0, len(order))
	for _, c := range order {
		keywords = append(keywords, c.word)
	}
	return keywords
}
