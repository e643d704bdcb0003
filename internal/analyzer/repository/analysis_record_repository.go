package repository

import (
	"context"

	"crypto-sentiment-analyzer/internal/entity"

	"gorm.io/gorm"
)

// analysisRecordRepository is the gorm implementation of
// AnalysisRecordRepository.
type analysisRecordRepository struct {
	db *gorm.DB
}

// NewAnalysisRecordRepository creates a new analysis record repository.
func NewAnalysisRecordRepository(db *gorm.DB) AnalysisRecordRepository {
	return &analysisRecordRepository{db: db}
}

// Create stores a completed analysis.
func (r *analysisRecordRepository) Create(ctx context.Context, record *entity.AnalysisRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindRecent returns the most recent analyses, newest first.
func (r *analysisRecordRepository) FindRecent(ctx context.Context, limit int) ([]entity.AnalysisRecord, error) {
	var records []entity.AnalysisRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
