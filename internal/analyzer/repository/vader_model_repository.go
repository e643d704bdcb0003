package repository

import (
	"context"

	"crypto-sentiment-analyzer/internal/nlp"

	"github.com/jonreiter/govader"
)

// vaderModelRepository is the lexicon fallback classifier. It needs no model
// files and is ready as soon as it is constructed, which also makes it the
// backend used in tests.
type vaderModelRepository struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderModelRepository creates a VADER-backed sentiment repository.
func NewVaderModelRepository() SentimentModelRepository {
	return &vaderModelRepository{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Name identifies the lexicon backend.
func (r *vaderModelRepository) Name() string {
	return "govader-lexicon"
}

// Classify maps VADER's polarity proportions directly onto the class
// distribution contract.
func (r *vaderModelRepository) Classify(ctx context.Context, text string) (nlp.SentimentDistribution, error) {
	if err := ctx.Err(); err != nil {
		return nlp.SentimentDistribution{}, err
	}

	scores := r.analyzer.PolarityScores(text)
	return nlp.SentimentDistribution{
		Positive: scores.Positive,
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
	}, nil
}

// lexicalEntityRepository is the entity boundary for the lexicon backend. The
// tagger contributes nothing; entities come solely from the crypto-vocabulary
// matcher applied by the service.
type lexicalEntityRepository struct{}

// NewLexicalEntityRepository creates the no-op entity tagger used when no NER
// model is loaded.
func NewLexicalEntityRepository() EntityModelRepository {
	return lexicalEntityRepository{}
}

// Name identifies the lexical backend.
func (lexicalEntityRepository) Name() string {
	return "lexical-only"
}

// Tag returns no spans; lexical matching happens downstream either way.
func (lexicalEntityRepository) Tag(ctx context.Context, text string) ([]nlp.Entity, error) {
	return nil, ctx.Err()
}
