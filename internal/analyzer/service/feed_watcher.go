package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"crypto-sentiment-analyzer/internal/analyzer/config"
	"crypto-sentiment-analyzer/internal/analyzer/dto"
	"crypto-sentiment-analyzer/internal/entity"
	"crypto-sentiment-analyzer/internal/nlp"
	"crypto-sentiment-analyzer/pkg/logger"
	"crypto-sentiment-analyzer/pkg/telegram"
	"crypto-sentiment-analyzer/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
	"github.com/patrickmn/go-cache"
	"github.com/robfig/cron/v3"
)

// FeedWatcher polls configured RSS feeds on a schedule, runs new items through
// the analyzer and raises a Telegram alert for high-impact results.
type FeedWatcher struct {
	cfg      *config.Config
	logger   *logger.Logger
	analyzer AnalyzerService
	notifier telegram.Notifier // nil when alerts are not configured
	client   *http.Client
	seen     *cache.Cache
	cron     *cron.Cron
}

// NewFeedWatcher creates a watcher over the configured feed URLs.
func NewFeedWatcher(cfg *config.Config, log *logger.Logger, analyzer AnalyzerService, notifier telegram.Notifier) *FeedWatcher {
	return &FeedWatcher{
		cfg:      cfg,
		logger:   log,
		analyzer: analyzer,
		notifier: notifier,
		client:   &http.Client{Timeout: 30 * time.Second},
		seen:     cache.New(24*time.Hour, time.Hour),
		cron:     cron.New(),
	}
}

// Start schedules feed polling. It is a no-op when no feeds are configured.
func (w *FeedWatcher) Start(ctx context.Context) error {
	if len(w.cfg.Feeds.URLs) == 0 {
		w.logger.Info("No feeds configured, watcher disabled")
		return nil
	}

	_, err := w.cron.AddFunc(w.cfg.Feeds.Schedule, func() {
		w.Poll(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule feed polling: %w", err)
	}

	w.cron.Start()
	w.logger.Info("Feed watcher started",
		logger.IntField("feeds", len(w.cfg.Feeds.URLs)),
		logger.StringField("schedule", w.cfg.Feeds.Schedule))
	return nil
}

// Stop halts the polling schedule, waiting for a running poll to finish.
func (w *FeedWatcher) Stop() {
	<-w.cron.Stop().Done()
}

// Poll fetches every configured feed once and analyzes its new items.
func (w *FeedWatcher) Poll(ctx context.Context) {
	if !w.analyzer.Ready() {
		w.logger.Info("Skipping feed poll, models not loaded yet")
		return
	}

	for _, feedURL := range w.cfg.Feeds.URLs {
		if ctx.Err() != nil {
			return
		}
		if err := w.pollFeed(ctx, feedURL); err != nil {
			w.logger.Error("Failed to poll feed",
				logger.StringField("url", feedURL),
				logger.ErrorField(err))
		}
	}
}

func (w *FeedWatcher) pollFeed(ctx context.Context, feedURL string) error {
	w.logger.Info("Polling RSS feed", logger.StringField("url", feedURL))

	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	processed := 0
	for _, item := range feed.Items {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if processed >= w.cfg.Feeds.MaxItems {
			break
		}

		itemHash := utils.HashText(item.Link, item.Published)
		if _, dup := w.seen.Get(itemHash); dup {
			continue
		}

		if err := w.processItem(ctx, item); err != nil {
			w.logger.Error("Failed to process feed item",
				logger.StringField("title", item.Title),
				logger.ErrorField(err))
			continue
		}
		w.seen.Set(itemHash, struct{}{}, cache.DefaultExpiration)
		processed++
	}

	w.logger.Info("Feed poll finished",
		logger.StringField("url", feedURL),
		logger.IntField("processed", processed))
	return nil
}

func (w *FeedWatcher) processItem(ctx context.Context, item *gofeed.Item) error {
	text := strings.TrimSpace(item.Title)

	content, err := w.fetchContent(ctx, item.Link)
	if err != nil {
		// Fall back to the feed's own description when the article page
		// cannot be extracted.
		w.logger.Warn("Failed to extract article content, using feed summary",
			logger.StringField("link", item.Link),
			logger.ErrorField(err))
		content = item.Description
	}
	if content != "" {
		text = text + ". " + content
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("feed item has no analyzable text")
	}
	if len(text) > w.cfg.Analyzer.MaxTextLength {
		text = text[:w.cfg.Analyzer.MaxTextLength]
	}

	result, err := w.analyzer.AnalyzeText(ctx, text, dto.ContentTypeNews, entity.AnalysisSourceFeed, item.Link)
	if err != nil {
		return fmt.Errorf("failed to analyze feed item: %w", err)
	}

	w.logger.Info("Analyzed feed item",
		logger.StringField("title", item.Title),
		logger.StringField("label", result.Label),
		logger.StringField("impact", result.Impact))

	if result.Impact == string(nlp.ImpactHigh) && w.notifier != nil {
		msg := telegram.FormatHighImpactAlert(item.Title, item.Link, result.Label, result.Sentiment)
		if err := w.notifier.SendMessage(msg); err != nil {
			w.logger.Error("Failed to send high impact alert", logger.ErrorField(err))
		}
	}
	return nil
}

// fetchContent downloads an article page and extracts its readable text.
func (w *FeedWatcher) fetchContent(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("feed item has no link")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch article, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}
	docHTML, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(doc.Content())))
	if err != nil {
		return "", fmt.Errorf("failed to parse extracted content: %w", err)
	}

	return strings.Join(strings.Fields(docHTML.Text()), " "), nil
}
