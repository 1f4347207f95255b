package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mmcdole/gofeed"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
)

const scraperUserAgent = "coastal-alerts-service/1.0"

// FeedSource extracts alerts from RSS/Atom feeds.
type FeedSource struct {
	parser    *gofeed.Parser
	assembler *Assembler
	logger    *slog.Logger
}

// NewFeedSource wires a feed parser onto the shared HTTP client.
func NewFeedSource(client *http.Client, assembler *Assembler, logger *slog.Logger) *FeedSource {
	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = scraperUserAgent

	return &FeedSource{
		parser:    parser,
		assembler: assembler,
		logger:    logger,
	}
}

// Fetch parses one feed and assembles an alert per entry. Entries with
// neither title nor description are dropped.
func (f *FeedSource) Fetch(ctx context.Context, feedURL string) ([]domain.Alert, error) {
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	var alerts []domain.Alert
	for _, item := range feed.Items {
		title := domain.CleanText(item.Title)
		description := domain.CleanText(item.Description)
		if title == "" && description == "" {
			continue
		}
		alerts = append(alerts, f.assembler.Assemble(ctx, title, description))
	}

	f.logger.Info("feed processed", "url", feedURL, "alerts", len(alerts))
	return alerts, nil
}
