package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentDistribution_Resolve(t *testing.T) {
	tests := []struct {
		name          string
		dist          SentimentDistribution
		wantLabel     string
		wantSentiment float64
		wantConf      float64
	}{
		{
			name:          "positive wins",
			dist:          SentimentDistribution{Positive: 0.7, Negative: 0.1, Neutral: 0.2},
			wantLabel:     LabelPositive,
			wantSentiment: 0.6,
			wantConf:      0.7,
		},
		{
			name:          "negative wins",
			dist:          SentimentDistribution{Positive: 0.05, Negative: 0.85, Neutral: 0.1},
			wantLabel:     LabelNegative,
			wantSentiment: -0.8,
			wantConf:      0.85,
		},
		{
			name: "neutral label can carry nonzero sentiment",
			dist: SentimentDistribution{Positive: 0.3, Negative: 0.1, Neutral: 0.6},
			// label is neutral but the signed margin is still reported
			wantLabel:     LabelNeutral,
			wantSentiment: 0.2,
			wantConf:      0.6,
		},
		{
			name:          "raw scores are renormalized",
			dist:          SentimentDistribution{Positive: 7, Negative: 1, Neutral: 2},
			wantLabel:     LabelPositive,
			wantSentiment: 0.6,
			wantConf:      0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentiment, confidence, label := tt.dist.Resolve()
			assert.Equal(t, tt.wantLabel, label)
			assert.InDelta(t, tt.wantSentiment, sentiment, 1e-9)
			assert.InDelta(t, tt.wantConf, confidence, 1e-9)
		})
	}
}

func TestSentimentDistribution_ResolveBounds(t *testing.T) {
	dists := []SentimentDistribution{
		{Positive: 1, Negative: 0, Neutral: 0},
		{Positive: 0, Negative: 1, Neutral: 0},
		{Positive: 0, Negative: 0, Neutral: 0},
		{Positive: 0.33, Negative: 0.33, Neutral: 0.34},
	}

	for _, d := range dists {
		sentiment, confidence, label := d.Resolve()
		assert.GreaterOrEqual(t, sentiment, -1.0)
		assert.LessOrEqual(t, sentiment, 1.0)
		assert.GreaterOrEqual(t, confidence, 0.0)
		assert.LessOrEqual(t, confidence, 1.0)
		assert.Contains(t, []string{LabelPositive, LabelNegative, LabelNeutral}, label)
	}
}
