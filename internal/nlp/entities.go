package nlp

import (
	"regexp"
	"sort"
	"strings"
)

// EntityType classifies an extracted entity mention.
type EntityType string

const (
	EntityTypeCryptocurrency EntityType = "cryptocurrency"
	EntityTypePerson         EntityType = "person"
	EntityTypeCompany        EntityType = "company"
	EntityTypeExchange       EntityType = "exchange"
	EntityTypeOrganization   EntityType = "organization"
	EntityTypeOther          EntityType = "other"
)

// Entity is a named mention found in text. Start and End are half-open
// character offsets into the original (non-lowercased) text.
type Entity struct {
	Text  string     `json:"text"`
	Type  EntityType `json:"type"`
	Start int        `json:"start"`
	End   int        `json:"end"`
}

// EntityExtractor merges model-tagged spans with lexical crypto-vocabulary
// matches and deduplicates the result.
type EntityExtractor struct {
	vocab        map[string]struct{}
	exchanges    []string
	vocabPattern *regexp.Regexp
}

// NewEntityExtractor creates an extractor over the built-in crypto vocabulary.
func NewEntityExtractor() *EntityExtractor {
	vocab := buildCryptoVocabulary()

	terms := make([]string, 0, len(vocab))
	for t := range vocab {
		terms = append(terms, regexp.QuoteMeta(t))
	}
	// Longest alternative first so symbols never shadow full names.
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	return &EntityExtractor{
		vocab:        vocab,
		exchanges:    buildExchangeNames(),
		vocabPattern: regexp.MustCompile(`\b(` + strings.Join(terms, "|") + `)\b`),
	}
}

// allowedCategories are the external tagger categories kept before mapping.
// Both spaCy-style and CoNLL-style label names are accepted.
var allowedCategories = map[string]string{
	"PERSON":  "person",
	"PER":     "person",
	"ORG":     "organization",
	"PRODUCT": "product",
	"MISC":    "product",
	"GPE":     "place",
	"LOC":     "place",
	"MONEY":   "monetary",
}

// AllowedCategory reports whether an external tagger category is kept.
func AllowedCategory(category string) bool {
	_, ok := allowedCategories[strings.ToUpper(category)]
	return ok
}

// MapSpanType maps an external tagger category and surface form to the
// internal entity type. A surface form that is itself a known crypto term is
// always a cryptocurrency, whatever the tagger said.
func (e *EntityExtractor) MapSpanType(category, surface string) EntityType {
	lower := strings.ToLower(strings.TrimSpace(surface))
	if _, ok := e.vocab[lower]; ok {
		return EntityTypeCryptocurrency
	}

	switch allowedCategories[strings.ToUpper(category)] {
	case "person":
		return EntityTypePerson
	case "organization":
		for _, ex := range e.exchanges {
			if strings.Contains(lower, ex) {
				return EntityTypeExchange
			}
		}
		return EntityTypeCompany
	case "product":
		return EntityTypeCryptocurrency
	default:
		// monetary and anything else left in the allowed set
		return EntityTypeOrganization
	}
}

// LexicalMatches scans the text for whole-word crypto-vocabulary matches and
// returns them as cryptocurrency entities with original-case surface forms.
func (e *EntityExtractor) LexicalMatches(text string) []Entity {
	lower := strings.ToLower(text)

	var matches []Entity
	for _, loc := range e.vocabPattern.FindAllStringIndex(lower, -1) {
		start, end := loc[0], loc[1]
		if end > len(text) {
			// Lowercasing changed byte lengths; offsets no longer map back.
			break
		}
		matches = append(matches, Entity{
			Text:  text[start:end],
			Type:  EntityTypeCryptocurrency,
			Start: start,
			End:   end,
		})
	}
	return matches
}

// Merge combines tagger spans with lexical matches, preserving first-seen
// order. A lexical match is dropped when a tagger span already starts at the
// same offset; across the whole list, entities sharing a start offset or a
// case-insensitive surface form are collapsed to the first occurrence.
func (e *EntityExtractor) Merge(tagged, lexical []Entity) []Entity {
	merged := make([]Entity, 0, len(tagged)+len(lexical))
	seenStart := make(map[int]struct{})
	seenText := make(map[string]struct{})

	add := func(ent Entity) {
		if _, dup := seenStart[ent.Start]; dup {
			return
		}
		key := strings.ToLower(ent.Text)
		if _, dup := seenText[key]; dup {
			return
		}
		seenStart[ent.Start] = struct{}{}
		seenText[key] = struct{}{}
		merged = append(merged, ent)
	}

	for _, ent := range tagged {
		add(ent)
	}
	for _, ent := range lexical {
		add(ent)
	}
	return merged
}

// CryptoEntityCount returns how many merged entities are crypto-typed.
func CryptoEntityCount(entities []Entity) int {
	count := 0
	for _, ent := range entities {
		if ent.Type == EntityTypeCryptocurrency {
			count++
		}
	}
	return count
}
