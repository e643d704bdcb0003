package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"crypto-sentiment-analyzer/internal/analyzer/config"
	"crypto-sentiment-analyzer/internal/analyzer/dto"
	"crypto-sentiment-analyzer/internal/analyzer/repository"
	"crypto-sentiment-analyzer/internal/entity"
	"crypto-sentiment-analyzer/internal/nlp"
	"crypto-sentiment-analyzer/pkg/logger"
	redispkg "crypto-sentiment-analyzer/pkg/redis"
	"crypto-sentiment-analyzer/pkg/utils"

	"github.com/patrickmn/go-cache"
)

// Sentinel errors mapped to HTTP statuses by the delivery layer.
var (
	ErrNotReady           = errors.New("models are still loading")
	ErrEmptyText          = errors.New("text cannot be empty")
	ErrTextTooLong        = errors.New("text exceeds the maximum length")
	ErrInvalidContentType = errors.New("type must be one of news, social, article")
	ErrBatchSize          = errors.New("batch size is out of range")
	ErrHistoryDisabled    = errors.New("analysis history is not enabled")
)

const cacheKeyPrefix = "analysis:"

// AnalyzerService runs the full analysis pipeline over submitted texts.
type AnalyzerService interface {
	Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalysisResult, error)
	AnalyzeBatch(ctx context.Context, req *dto.BatchAnalyzeRequest) (*dto.BatchAnalyzeResponse, error)
	AnalyzeText(ctx context.Context, text, contentType, source, sourceURL string) (*dto.AnalysisResult, error)
	RecentAnalyses(ctx context.Context, limit int) ([]dto.StoredAnalysisResponse, error)
	SetModels(sentiment repository.SentimentModelRepository, entities repository.EntityModelRepository)
	Ready() bool
	ModelName() string
}

type analyzerService struct {
	cfg       *config.Config
	logger    *logger.Logger
	extractor *nlp.EntityExtractor
	keywords  *nlp.KeywordExtractor
	impact    *nlp.ImpactScorer

	// Model boundary; written once by SetModels before ready flips, read-only
	// afterwards.
	sentimentRepo repository.SentimentModelRepository
	entityRepo    repository.EntityModelRepository
	ready         atomic.Bool

	recordRepo    repository.AnalysisRecordRepository // nil when history is disabled
	redisClient   *redispkg.Client                    // nil when no shared cache is configured
	inmemoryCache *cache.Cache
	cacheTTL      time.Duration
}

// NewAnalyzerService creates the analyzer service. Models are attached later
// via SetModels; until then every analysis call fails with ErrNotReady.
func NewAnalyzerService(cfg *config.Config, log *logger.Logger, recordRepo repository.AnalysisRecordRepository, redisClient *redispkg.Client) AnalyzerService {
	ttl := 5 * time.Minute
	if cfg.Analyzer.CacheTTL != "" {
		if parsed, err := time.ParseDuration(cfg.Analyzer.CacheTTL); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	return &analyzerService{
		cfg:           cfg,
		logger:        log,
		extractor:     nlp.NewEntityExtractor(),
		keywords:      nlp.NewKeywordExtractor(),
		impact:        nlp.NewImpactScorer(impactConfig(cfg)),
		recordRepo:    recordRepo,
		redisClient:   redisClient,
		inmemoryCache: cache.New(ttl, 2*ttl),
		cacheTTL:      ttl,
	}
}

func impactConfig(cfg *config.Config) nlp.ImpactConfig {
	return nlp.ImpactConfig{
		Mode:                  cfg.Analyzer.Impact.Mode,
		SentimentWeight:       cfg.Analyzer.Impact.SentimentWeight,
		EntityWeight:          cfg.Analyzer.Impact.EntityWeight,
		KeywordWeight:         cfg.Analyzer.Impact.KeywordWeight,
		HighThreshold:         cfg.Analyzer.Impact.HighThreshold,
		MediumThreshold:       cfg.Analyzer.Impact.MediumThreshold,
		PointsHighThreshold:   cfg.Analyzer.Impact.PointsHighThreshold,
		PointsMediumThreshold: cfg.Analyzer.Impact.PointsMediumThreshold,
	}
}

// SetModels attaches the loaded model boundary and opens the readiness gate.
func (s *analyzerService) SetModels(sentiment repository.SentimentModelRepository, entities repository.EntityModelRepository) {
	s.sentimentRepo = sentiment
	s.entityRepo = entities
	s.ready.Store(true)
}

// Ready reports whether the model pair finished loading.
func (s *analyzerService) Ready() bool {
	return s.ready.Load()
}

// ModelName returns the loaded sentiment backend identifier, for health
// reporting.
func (s *analyzerService) ModelName() string {
	if !s.ready.Load() {
		return ""
	}
	return s.sentimentRepo.Name()
}

// Analyze validates and analyzes a single API-submitted text. Failures are
// surfaced, never masked with a neutral result.
func (s *analyzerService) Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalysisResult, error) {
	contentType, err := s.validateRequest(req.Text, req.Type)
	if err != nil {
		return nil, err
	}
	if !s.ready.Load() {
		return nil, ErrNotReady
	}
	return s.AnalyzeText(ctx, req.Text, contentType, entity.AnalysisSourceAPI, "")
}

// AnalyzeBatch analyzes up to the configured maximum of texts, preserving
// order. A failing item is replaced by the neutral placeholder so one bad
// text cannot abort the batch.
func (s *analyzerService) AnalyzeBatch(ctx context.Context, req *dto.BatchAnalyzeRequest) (*dto.BatchAnalyzeResponse, error) {
	if len(req.Texts) == 0 || len(req.Texts) > s.cfg.Analyzer.MaxBatchSize {
		return nil, ErrBatchSize
	}
	contentType := req.Type
	if contentType == "" {
		contentType = dto.ContentTypeNews
	}
	if !dto.ValidContentType(contentType) {
		return nil, ErrInvalidContentType
	}
	if !s.ready.Load() {
		return nil, ErrNotReady
	}

	results := make([]dto.AnalysisResult, 0, len(req.Texts))
	for i, text := range req.Texts {
		if strings.TrimSpace(text) == "" {
			results = append(results, dto.NeutralResult())
			continue
		}

		result, err := s.AnalyzeText(ctx, text, contentType, entity.AnalysisSourceAPI, "")
		if err != nil {
			s.logger.Warn("Batch item analysis failed, substituting neutral placeholder",
				logger.IntField("index", i),
				logger.ErrorField(err))
			results = append(results, dto.NeutralResult())
			continue
		}
		results = append(results, *result)
	}

	return &dto.BatchAnalyzeResponse{
		Results:   results,
		Processed: len(results),
	}, nil
}

// AnalyzeText runs the pipeline over one text: classification, entity
// extraction, keyword ranking and impact scoring. Results are cached by text
// hash and written to history when the store is enabled.
func (s *analyzerService) AnalyzeText(ctx context.Context, text, contentType, source, sourceURL string) (*dto.AnalysisResult, error) {
	if !s.ready.Load() {
		return nil, ErrNotReady
	}

	start := time.Now()
	cacheKey := utils.HashText(contentType, text)
	if cached := s.cachedResult(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	modelInput := nlp.NormalizeForModel(text, s.cfg.Models.MaxTokens)
	dist, err := s.sentimentRepo.Classify(ctx, modelInput)
	if err != nil {
		return nil, err
	}
	sentiment, confidence, label := dist.Resolve()

	// The tagger sees the original casing so offsets map back to the source.
	tagged, err := s.entityRepo.Tag(ctx, text)
	if err != nil {
		return nil, err
	}
	entities := s.extractor.Merge(tagged, s.extractor.LexicalMatches(text))
	keywords := s.keywords.Extract(text, s.cfg.Analyzer.MaxKeywords)
	impact := s.impact.Score(text, sentiment, entities)

	result := &dto.AnalysisResult{
		Sentiment:      sentiment,
		Confidence:     confidence,
		Label:          label,
		Entities:       entityDTOs(entities),
		Impact:         string(impact),
		Keywords:       keywords,
		ProcessingTime: float64(time.Since(start).Microseconds()) / 1000.0,
	}

	s.storeInCache(ctx, cacheKey, result)
	s.storeRecord(text, contentType, source, sourceURL, result)

	return result, nil
}

// RecentAnalyses returns the newest stored analyses.
func (s *analyzerService) RecentAnalyses(ctx context.Context, limit int) ([]dto.StoredAnalysisResponse, error) {
	if s.recordRepo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	records, err := s.recordRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StoredAnalysisResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, dto.StoredAnalysisResponse{
			ID:          rec.ID,
			Text:        rec.Text,
			ContentType: rec.ContentType,
			Source:      rec.Source,
			SourceURL:   rec.SourceURL,
			Sentiment:   rec.Sentiment,
			Confidence:  rec.Confidence,
			Label:       rec.Label,
			Impact:      rec.Impact,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return responses, nil
}

func (s *analyzerService) validateRequest(text, contentType string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	if len(text) > s.cfg.Analyzer.MaxTextLength {
		return "", ErrTextTooLong
	}
	if contentType == "" {
		contentType = dto.ContentTypeNews
	}
	if !dto.ValidContentType(contentType) {
		return "", ErrInvalidContentType
	}
	return contentType, nil
}

func entityDTOs(entities []nlp.Entity) []dto.EntityDTO {
	out := make([]dto.EntityDTO, 0, len(entities))
	for _, ent := range entities {
		out = append(out, dto.EntityDTO{
			Text:  ent.Text,
			Type:  string(ent.Type),
			Start: ent.Start,
			End:   ent.End,
		})
	}
	return out
}

// cachedResult checks the in-process cache, then the shared Redis cache.
// Cache failures fall through to computation.
func (s *analyzerService) cachedResult(ctx context.Context, key string) *dto.AnalysisResult {
	if v, found := s.inmemoryCache.Get(key); found {
		if result, ok := v.(dto.AnalysisResult); ok {
			return &result
		}
	}

	if s.redisClient == nil {
		return nil
	}
	data, err := s.redisClient.Client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err != nil {
		return nil
	}
	var result dto.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	s.inmemoryCache.Set(key, result, cache.DefaultExpiration)
	return &result
}

func (s *analyzerService) storeInCache(ctx context.Context, key string, result *dto.AnalysisResult) {
	s.inmemoryCache.Set(key, *result, cache.DefaultExpiration)

	if s.redisClient == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.redisClient.Client.Set(ctx, cacheKeyPrefix+key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to store result in redis cache", logger.ErrorField(err))
	}
}

// storeRecord writes the analysis to history behind the request. Errors are
// logged, never surfaced.
func (s *analyzerService) storeRecord(text, contentType, source, sourceURL string, result *dto.AnalysisResult) {
	if s.recordRepo == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		entitiesJSON, err := json.Marshal(result.Entities)
		if err != nil {
			entitiesJSON = []byte("[]")
		}
		keywordsJSON, err := json.Marshal(result.Keywords)
		if err != nil {
			keywordsJSON = []byte("[]")
		}

		record := &entity.AnalysisRecord{
			TextHash:    utils.HashText(contentType, text),
			Text:        text,
			ContentType: contentType,
			Source:      source,
			SourceURL:   sourceURL,
			Sentiment:   result.Sentiment,
			Confidence:  result.Confidence,
			Label:       result.Label,
			Impact:      result.Impact,
			Entities:    entitiesJSON,
			Keywords:    keywordsJSON,
		}
		if err := s.recordRepo.Create(ctx, record); err != nil {
			s.logger.Warn("Failed to store analysis record", logger.ErrorField(err))
		}
	}()
}
