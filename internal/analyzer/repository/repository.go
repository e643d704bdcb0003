package repository

import (
	"context"
	"errors"

	"crypto-sentiment-analyzer/internal/entity"
	"crypto-sentiment-analyzer/internal/nlp"
)

// ErrModelNotReady is returned when a model boundary is invoked before its
// pipeline finished loading.
var ErrModelNotReady = errors.New("model not ready")

// SentimentModelRepository is the classifier boundary. Implementations map
// normalized text to a probability distribution over the three sentiment
// classes; everything behind this interface is a black box.
type SentimentModelRepository interface {
	Classify(ctx context.Context, text string) (nlp.SentimentDistribution, error)
	Name() string
}

// EntityModelRepository is the named-entity tagger boundary. Implementations
// return mapped entity mentions with offsets into the given text; spans whose
// external category is outside the allowed set are already filtered out.
type EntityModelRepository interface {
	Tag(ctx context.Context, text string) ([]nlp.Entity, error)
	Name() string
}

// AnalysisRecordRepository persists completed analyses.
type AnalysisRecordRepository interface {
	Create(ctx context.Context, record *entity.AnalysisRecord) error
	FindRecent(ctx context.Context, limit int) ([]entity.AnalysisRecord, error)
}
