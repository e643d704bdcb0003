package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Analysis sources.
const (
	AnalysisSourceAPI  = "api"
	AnalysisSourceFeed = "feed"
)

// AnalysisRecord is a stored result of a completed text analysis.
type AnalysisRecord struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TextHash    string         `gorm:"not null;index" json:"text_hash"`
	Text        string         `gorm:"not null" json:"text"`
	ContentType string         `gorm:"not null" json:"content_type"`
	Source      string         `gorm:"not null" json:"source"`
	SourceURL   string         `json:"source_url,omitempty"`
	Sentiment   float64        `gorm:"not null" json:"sentiment"`
	Confidence  float64        `gorm:"not null" json:"confidence"`
	Label       string         `gorm:"not null" json:"label"`
	Impact      string         `gorm:"not null" json:"impact"`
	Entities    datatypes.JSON `json:"entities"`
	Keywords    datatypes.JSON `json:"keywords"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the AnalysisRecord model.
func (AnalysisRecord) TableName() string {
	return "analysis_records"
}
