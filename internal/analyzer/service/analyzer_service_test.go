package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"crypto-sentiment-analyzer/internal/analyzer/config"
	"crypto-sentiment-analyzer/internal/analyzer/dto"
	"crypto-sentiment-analyzer/internal/nlp"
	"crypto-sentiment-analyzer/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSentimentRepo struct {
	dist   nlp.SentimentDistribution
	calls  int
	failOn string
}

func (s *stubSentimentRepo) Classify(ctx context.Context, text string) (nlp.SentimentDistribution, error) {
	s.calls++
	if s.failOn != "" && strings.Contains(text, s.failOn) {
		return nlp.SentimentDistribution{}, errors.New("classification failed")
	}
	return s.dist, nil
}

func (s *stubSentimentRepo) Name() string { return "stub-sentiment" }

type stubEntityRepo struct {
	entities []nlp.Entity
	err      error
}

func (s *stubEntityRepo) Tag(ctx context.Context, text string) ([]nlp.Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entities, nil
}

func (s *stubEntityRepo) Name() string { return "stub-entities" }

func testConfig() *config.Config {
	return &config.Config{
		Models: config.Models{MaxTokens: 512},
		Analyzer: config.Analyzer{
			MaxTextLength: 10000,
			MaxBatchSize:  100,
			MaxKeywords:   5,
			Impact: config.Impact{
				Mode:                  nlp.ImpactModeWeighted,
				SentimentWeight:       0.4,
				EntityWeight:          0.3,
				KeywordWeight:         0.3,
				HighThreshold:         0.7,
				MediumThreshold:       0.4,
				PointsHighThreshold:   5,
				PointsMediumThreshold: 2,
			},
		},
	}
}

func newTestService(t *testing.T, sentiment *stubSentimentRepo, entities *stubEntityRepo) AnalyzerService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)

	svc := NewAnalyzerService(testConfig(), log, nil, nil)
	if sentiment != nil {
		svc.SetModels(sentiment, entities)
	}
	return svc
}

func TestAnalyze_NotReadyBeforeModelsAttached(t *testing.T) {
	svc := newTestService(t, nil, nil)

	assert.False(t, svc.Ready())
	assert.Empty(t, svc.ModelName())

	_, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: "Bitcoin rallies"})
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestAnalyze_ReadyAfterModelsAttached(t *testing.T) {
	svc := newTestService(t, &stubSentimentRepo{}, &stubEntityRepo{})

	assert.True(t, svc.Ready())
	assert.Equal(t, "stub-sentiment", svc.ModelName())
}

func TestAnalyze_Validation(t *testing.T) {
	svc := newTestService(t, &stubSentimentRepo{}, &stubEntityRepo{})

	tests := []struct {
		name    string
		req     *dto.AnalyzeRequest
		wantErr error
	}{
		{
			name:    "empty text",
			req:     &dto.AnalyzeRequest{Text: ""},
			wantErr: ErrEmptyText,
		},
		{
			name:    "whitespace only",
			req:     &dto.AnalyzeRequest{Text: "   \n\t  "},
			wantErr: ErrEmptyText,
		},
		{
			name:    "text too long",
			req:     &dto.AnalyzeRequest{Text: strings.Repeat("a", 10001)},
			wantErr: ErrTextTooLong,
		},
		{
			name:    "invalid content type",
			req:     &dto.AnalyzeRequest{Text: "Bitcoin rallies", Type: "podcast"},
			wantErr: ErrInvalidContentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAnalyze_FullPipeline(t *testing.T) {
	sentiment := &stubSentimentRepo{
		dist: nlp.SentimentDistribution{Positive: 0.91, Negative: 0.03, Neutral: 0.06},
	}
	text := "Bitcoin surges 15% after major ETF approval from SEC"
	entities := &stubEntityRepo{
		entities: []nlp.Entity{
			{Text: "SEC", Type: nlp.EntityTypeOrganization, Start: strings.Index(text, "SEC"), End: strings.Index(text, "SEC") + 3},
		},
	}
	svc := newTestService(t, sentiment, entities)

	result, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: text})
	require.NoError(t, err)

	assert.Equal(t, nlp.LabelPositive, result.Label)
	assert.InDelta(t, 0.88, result.Sentiment, 1e-9)
	assert.InDelta(t, 0.91, result.Confidence, 1e-9)

	// Tagged SEC plus the lexical Bitcoin match.
	require.Len(t, result.Entities, 2)
	assert.Equal(t, "SEC", result.Entities[0].Text)
	assert.Equal(t, string(nlp.EntityTypeOrganization), result.Entities[0].Type)
	assert.Equal(t, "Bitcoin", result.Entities[1].Text)
	assert.Equal(t, string(nlp.EntityTypeCryptocurrency), result.Entities[1].Type)

	assert.Contains(t, result.Keywords, "bitcoin")
	assert.NotContains(t, result.Keywords, "from")

	// 0.88*0.4 + (2/5)*0.3 + min(4/3,1)*0.3 = 0.772
	assert.Equal(t, string(nlp.ImpactHigh), result.Impact)
}

func TestAnalyze_DefaultsContentTypeToNews(t *testing.T) {
	sentiment := &stubSentimentRepo{
		dist: nlp.SentimentDistribution{Positive: 0.2, Negative: 0.2, Neutral: 0.6},
	}
	svc := newTestService(t, sentiment, &stubEntityRepo{})

	result, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: "Markets are quiet today"})
	require.NoError(t, err)
	assert.Equal(t, nlp.LabelNeutral, result.Label)
	assert.InDelta(t, 0.0, result.Sentiment, 1e-9)
}

func TestAnalyze_SurfacesClassifierFailure(t *testing.T) {
	sentiment := &stubSentimentRepo{failOn: "bitcoin"}
	svc := newTestService(t, sentiment, &stubEntityRepo{})

	_, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: "Bitcoin crashes"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotReady)
}

func TestAnalyze_CachesByContentTypeAndText(t *testing.T) {
	sentiment := &stubSentimentRepo{
		dist: nlp.SentimentDistribution{Positive: 0.8, Negative: 0.1, Neutral: 0.1},
	}
	svc := newTestService(t, sentiment, &stubEntityRepo{})

	req := &dto.AnalyzeRequest{Text: "Ethereum upgrade ships", Type: dto.ContentTypeNews}
	first, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, sentiment.calls)
	assert.Equal(t, first.Sentiment, second.Sentiment)
	assert.Equal(t, first.Keywords, second.Keywords)

	// A different content type misses the cache.
	_, err = svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: "Ethereum upgrade ships", Type: dto.ContentTypeSocial})
	require.NoError(t, err)
	assert.Equal(t, 2, sentiment.calls)
}

func TestAnalyzeBatch_SizeBounds(t *testing.T) {
	svc := newTestService(t, &stubSentimentRepo{}, &stubEntityRepo{})

	_, err := svc.AnalyzeBatch(context.Background(), &dto.BatchAnalyzeRequest{Texts: []string{}})
	assert.ErrorIs(t, err, ErrBatchSize)

	texts := make([]string, 101)
	for i := range texts {
		texts[i] = "some text"
	}
	_, err = svc.AnalyzeBatch(context.Background(), &dto.BatchAnalyzeRequest{Texts: texts})
	assert.ErrorIs(t, err, ErrBatchSize)
}

func TestAnalyzeBatch_IsolatesFailingItems(t *testing.T) {
	sentiment := &stubSentimentRepo{
		dist:   nlp.SentimentDistribution{Positive: 0.7, Negative: 0.1, Neutral: 0.2},
		failOn: "broken",
	}
	svc := newTestService(t, sentiment, &stubEntityRepo{})

	resp, err := svc.AnalyzeBatch(context.Background(), &dto.BatchAnalyzeRequest{
		Texts: []string{
			"Bitcoin adoption grows",
			"this broken item fails classification",
			"   ",
			"Solana gains momentum",
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 4)
	assert.Equal(t, 4, resp.Processed)

	assert.Equal(t, nlp.LabelPositive, resp.Results[0].Label)
	assert.Equal(t, nlp.LabelPositive, resp.Results[3].Label)

	// Failing and empty items become the neutral placeholder, in place.
	for _, i := range []int{1, 2} {
		assert.Equal(t, nlp.LabelNeutral, resp.Results[i].Label)
		assert.Zero(t, resp.Results[i].Sentiment)
		assert.Zero(t, resp.Results[i].Confidence)
		assert.Equal(t, string(nlp.ImpactLow), resp.Results[i].Impact)
		assert.Empty(t, resp.Results[i].Entities)
		assert.Empty(t, resp.Results[i].Keywords)
	}
}

func TestRecentAnalyses_DisabledWithoutStore(t *testing.T) {
	svc := newTestService(t, &stubSentimentRepo{}, &stubEntityRepo{})

	_, err := svc.RecentAnalyses(context.Background(), 10)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}
