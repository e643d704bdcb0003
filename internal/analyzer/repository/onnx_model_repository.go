package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"crypto-sentiment-analyzer/internal/analyzer/config"
	"crypto-sentiment-analyzer/internal/nlp"
	"crypto-sentiment-analyzer/pkg/logger"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

// ONNXModels bundles the sentiment and NER pipelines sharing one runtime
// session. Loading is blocking and expensive; construct once at startup and
// treat as read-only afterwards.
type ONNXModels struct {
	Sentiment SentimentModelRepository
	Entities  EntityModelRepository

	session *hugot.Session
}

// NewONNXModels downloads the configured models if they are not present,
// creates the runtime session and builds both pipelines.
func NewONNXModels(cfg *config.Config, extractor *nlp.EntityExtractor, log *logger.Logger) (*ONNXModels, error) {
	sentimentPath, err := ensureModel(cfg.Models.SentimentModel, cfg.Models.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sentiment model: %w", err)
	}
	nerPath, err := ensureModel(cfg.Models.NERModel, cfg.Models.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ner model: %w", err)
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize onnx session: %w", err)
	}

	sentimentConfig := hugot.TextClassificationConfig{
		ModelPath: sentimentPath,
		Name:      "sentimentClassificationPipeline",
		Options: []hugot.TextClassificationOption{
			pipelines.WithMultiLabel(),
		},
	}
	sentimentPipeline, err := hugot.NewPipeline(session, sentimentConfig)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize sentiment pipeline: %w", err)
	}

	nerConfig := hugot.TokenClassificationConfig{
		ModelPath: nerPath,
		Name:      "entityTaggingPipeline",
		Options: []hugot.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{"O"}),
		},
	}
	nerPipeline, err := hugot.NewPipeline(session, nerConfig)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize ner pipeline: %w", err)
	}

	return &ONNXModels{
		Sentiment: &onnxSentimentRepository{pipeline: sentimentPipeline, model: cfg.Models.SentimentModel},
		Entities:  &onnxEntityRepository{pipeline: nerPipeline, extractor: extractor, model: cfg.Models.NERModel},
		session:   session,
	}, nil
}

// Close releases the runtime session.
func (m *ONNXModels) Close() {
	if m.session != nil {
		m.session.Destroy()
	}
}

// ensureModel returns the local path of the model, downloading it into dir
// when missing.
func ensureModel(model, dir string, log *logger.Logger) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create model directory: %w", err)
	}

	localPath := filepath.Join(dir, strings.ReplaceAll(model, "/", "_"))
	if _, err := os.Stat(localPath); err == nil {
		log.Info("Using existing model", logger.StringField("path", localPath))
		return localPath, nil
	}

	log.Info("Model not found, downloading", logger.StringField("model", model))
	downloadedPath, err := hugot.DownloadModel(model, dir, hugot.NewDownloadOptions())
	if err != nil {
		return "", fmt.Errorf("failed to download model %s: %w", model, err)
	}
	log.Info("Model downloaded", logger.StringField("path", downloadedPath))
	return downloadedPath, nil
}

// onnxSentimentRepository classifies text with a FinBERT-style pipeline.
type onnxSentimentRepository struct {
	pipeline *pipelines.TextClassificationPipeline
	model    string
}

// Name returns the configured model identifier.
func (r *onnxSentimentRepository) Name() string {
	return r.model
}

// Classify runs the classification pipeline and collects the scores into a
// class distribution. Raw scores are resolved downstream, so no normalization
// happens here.
func (r *onnxSentimentRepository) Classify(ctx context.Context, text string) (nlp.SentimentDistribution, error) {
	var dist nlp.SentimentDistribution

	if err := ctx.Err(); err != nil {
		return dist, err
	}
	if r.pipeline == nil {
		return dist, ErrModelNotReady
	}

	output, err := r.pipeline.RunPipeline([]string{text})
	if err != nil {
		return dist, fmt.Errorf("sentiment pipeline failed: %w", err)
	}
	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return dist, fmt.Errorf("sentiment pipeline returned no scores")
	}

	for _, class := range output.ClassificationOutputs[0] {
		switch strings.ToLower(class.Label) {
		case "positive":
			dist.Positive = float64(class.Score)
		case "negative":
			dist.Negative = float64(class.Score)
		case "neutral":
			dist.Neutral = float64(class.Score)
		}
	}
	return dist, nil
}

// onnxEntityRepository tags text with a token classification pipeline and
// maps the spans to internal entity types.
type onnxEntityRepository struct {
	pipeline  *pipelines.TokenClassificationPipeline
	extractor *nlp.EntityExtractor
	model     string
}

// Name returns the configured model identifier.
func (r *onnxEntityRepository) Name() string {
	return r.model
}

// Tag runs the NER pipeline over the original-case text, keeps only spans in
// the allowed category set and maps them to internal types. Offsets refer to
// the given text.
func (r *onnxEntityRepository) Tag(ctx context.Context, text string) ([]nlp.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.pipeline == nil {
		return nil, ErrModelNotReady
	}

	output, err := r.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("ner pipeline failed: %w", err)
	}
	if len(output.Entities) == 0 {
		return nil, nil
	}

	var entities []nlp.Entity
	for _, span := range output.Entities[0] {
		category := strings.TrimPrefix(strings.TrimPrefix(span.Entity, "B-"), "I-")
		if !nlp.AllowedCategory(category) {
			continue
		}

		start, end := int(span.Start), int(span.End)
		surface := span.Word
		if start >= 0 && end <= len(text) && start < end {
			surface = text[start:end]
		}

		entities = append(entities, nlp.Entity{
			Text:  surface,
			Type:  r.extractor.MapSpanType(category, surface),
			Start: start,
			End:   end,
		})
	}
	return entities, nil
}
