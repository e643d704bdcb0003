package dto

import "time"

// Content types accepted on analysis requests.
const (
	ContentTypeNews    = "news"
	ContentTypeSocial  = "social"
	ContentTypeArticle = "article"
)

// ValidContentType reports whether t is one of the accepted content types.
func ValidContentType(t string) bool {
	switch t {
	case ContentTypeNews, ContentTypeSocial, ContentTypeArticle:
		return true
	}
	return false
}

// AnalyzeRequest is the DTO for analyzing a single text.
type AnalyzeRequest struct {
	Text string `json:"text"`
	Type string `json:"type,omitempty"` // news|social|article, defaults to news
}

// EntityDTO is a named mention found in the analyzed text. Start and End are
// half-open character offsets into the submitted text.
type EntityDTO struct {
	Text  string `json:"text"`
	Type  string `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// AnalysisResult is the DTO for a completed analysis.
type AnalysisResult struct {
	Sentiment      float64     `json:"sentiment"`  // signed margin in [-1, 1]
	Confidence     float64     `json:"confidence"` // winning class probability in [0, 1]
	Label          string      `json:"label"`      // positive|negative|neutral
	Entities       []EntityDTO `json:"entities"`
	Impact         string      `json:"impact"` // low|medium|high
	Keywords       []string    `json:"keywords"`
	ProcessingTime float64     `json:"processing_time"` // milliseconds
}

// BatchAnalyzeRequest is the DTO for analyzing multiple texts.
type BatchAnalyzeRequest struct {
	Texts []string `json:"texts"`
	Type  string   `json:"type,omitempty"`
}

// BatchAnalyzeResponse is the DTO for a batch analysis result.
type BatchAnalyzeResponse struct {
	Results   []AnalysisResult `json:"results"`
	Processed int              `json:"processed"`
}

// HealthResponse reports service status and model readiness.
type HealthResponse struct {
	Status       string `json:"status"`
	ModelsLoaded bool   `json:"models_loaded"`
	Version      string `json:"version"`
}

// StoredAnalysisResponse is the DTO for a stored analysis record.
type StoredAnalysisResponse struct {
	ID          uint      `json:"id"`
	Text        string    `json:"text"`
	ContentType string    `json:"content_type"`
	Source      string    `json:"source"`
	SourceURL   string    `json:"source_url,omitempty"`
	Sentiment   float64   `json:"sentiment"`
	Confidence  float64   `json:"confidence"`
	Label       string    `json:"label"`
	Impact      string    `json:"impact"`
	CreatedAt   time.Time `json:"created_at"`
}

// NeutralResult returns the placeholder substituted for a failed batch item.
func NeutralResult() AnalysisResult {
	return AnalysisResult{
		Sentiment:  0,
		Confidence: 0,
		Label:      "neutral",
		Entities:   []EntityDTO{},
		Impact:     "low",
		Keywords:   []string{},
	}
}
