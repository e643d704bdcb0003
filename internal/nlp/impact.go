package nlp

import (
	"math"
	"strings"
)

// ImpactLevel is the derived severity bucket for an analyzed text.
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// Impact scoring modes. Both encodings were in production use; the mode is
// selected by configuration.
const (
	ImpactModeWeighted = "weighted"
	ImpactModePoints   = "points"
)

// ImpactConfig holds the tunables for both scoring modes.
type ImpactConfig struct {
	Mode string

	// Weighted mode: weighted sum of normalized sub-scores.
	SentimentWeight float64
	EntityWeight    float64
	KeywordWeight   float64
	HighThreshold   float64
	MediumThreshold float64

	// Points mode: additive integer scoring.
	PointsHighThreshold   int
	PointsMediumThreshold int
}

// DefaultImpactConfig returns the production defaults for the weighted mode.
func DefaultImpactConfig() ImpactConfig {
	return ImpactConfig{
		Mode:                  ImpactModeWeighted,
		SentimentWeight:       0.4,
		EntityWeight:          0.3,
		KeywordWeight:         0.3,
		HighThreshold:         0.7,
		MediumThreshold:       0.4,
		PointsHighThreshold:   5,
		PointsMediumThreshold: 2,
	}
}

// ImpactScorer derives an impact level from sentiment strength, entity count
// and impact-keyword hits. It is fully deterministic.
type ImpactScorer struct {
	cfg            ImpactConfig
	highKeywords   []string
	mediumKeywords []string
}

// NewImpactScorer creates a scorer with the given configuration.
func NewImpactScorer(cfg ImpactConfig) *ImpactScorer {
	if cfg.Mode == "" {
		cfg.Mode = ImpactModeWeighted
	}
	return &ImpactScorer{
		cfg:            cfg,
		highKeywords:   buildHighImpactKeywords(),
		mediumKeywords: buildMediumImpactKeywords(),
	}
}

// Score computes the impact level for the original text and its analysis
// outputs.
func (s *ImpactScorer) Score(text string, sentiment float64, entities []Entity) ImpactLevel {
	if s.cfg.Mode == ImpactModePoints {
		return s.scorePoints(text, sentiment, entities)
	}
	return s.scoreWeighted(text, sentiment, entities)
}

// scoreWeighted sums three weighted normalized terms and compares against the
// configured thresholds.
func (s *ImpactScorer) scoreWeighted(text string, sentiment float64, entities []Entity) ImpactLevel {
	score := math.Abs(sentiment) * s.cfg.SentimentWeight

	entityScore := math.Min(float64(len(entities))/5.0, 1.0)
	score += entityScore * s.cfg.EntityWeight

	keywordScore := math.Min(float64(s.countHits(text, s.highKeywords))/3.0, 1.0)
	score += keywordScore * s.cfg.KeywordWeight

	switch {
	case score >= s.cfg.HighThreshold:
		return ImpactHigh
	case score >= s.cfg.MediumThreshold:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// scorePoints accumulates integer points per keyword hit, sentiment strength
// bracket and crypto-entity count bracket.
func (s *ImpactScorer) scorePoints(text string, sentiment float64, entities []Entity) ImpactLevel {
	points := 3 * s.countHits(text, s.highKeywords)
	points += s.countHits(text, s.mediumKeywords)

	intensity := math.Abs(sentiment)
	if intensity > 0.7 {
		points += 2
	} else if intensity > 0.4 {
		points++
	}

	cryptoCount := CryptoEntityCount(entities)
	if cryptoCount >= 3 {
		points += 2
	} else if cryptoCount >= 1 {
		points++
	}

	switch {
	case points >= s.cfg.PointsHighThreshold:
		return ImpactHigh
	case points >= s.cfg.PointsMediumThreshold:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// countHits counts keywords present as substrings of the lowercased text.
// Each keyword counts at most once.
func (s *ImpactScorer) countHits(text string, keywords []string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits
}
