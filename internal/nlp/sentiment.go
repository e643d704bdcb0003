package nlp

import "math"

// Sentiment labels produced by the classifier boundary.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// SentimentDistribution is the classifier's probability mass over the three
// sentiment classes.
type SentimentDistribution struct {
	Positive float64
	Negative float64
	Neutral  float64
}

// Resolve turns a class distribution into the reported (sentiment, confidence,
// label) triple. The distribution is renormalized first so any backend's raw
// scores work; sentiment is always the signed margin P(positive)-P(negative)
// clamped to [-1, 1], independent of which label wins. A neutral label can
// therefore carry nonzero sentiment.
func (d SentimentDistribution) Resolve() (sentiment, confidence float64, label string) {
	total := d.Positive + d.Negative + d.Neutral
	if total > 0 {
		d.Positive /= total
		d.Negative /= total
		d.Neutral /= total
	}

	label = LabelPositive
	confidence = d.Positive
	if d.Negative > confidence {
		label = LabelNegative
		confidence = d.Negative
	}
	if d.Neutral > confidence {
		label = LabelNeutral
		confidence = d.Neutral
	}

	sentiment = math.Max(-1.0, math.Min(1.0, d.Positive-d.Negative))
	return sentiment, confidence, label
}
