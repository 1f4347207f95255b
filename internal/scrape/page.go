package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
)

const (
	// Paragraphs shorter than this are treated as navigation noise.
	minParagraphLen = 50
	// Selector-matched fragments shorter than this are dropped.
	minSelectionLen = 30
	// Assembled content below this length is not worth an alert.
	minContentLen = 30
	// Titles derived from page content are capped at this many runes.
	maxTitleLen = 100
)

// alertTriggers marks free-form paragraphs as alert-bearing.
var alertTriggers = []string{
	"tsunami", "cyclone", "warning", "alert", "forecast", "bulletin",
	"depression", "storm", "wave", "surge", "advisory", "caution",
}

// alertSelectors target the containers INCOIS portal pages use for
// bulletins and notices.
var alertSelectors = []string{
	".alert", ".warning", ".bulletin", ".announcement", ".news-item",
	"[class*='alert']", "[class*='warning']", "[class*='bulletin']",
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// PageSource extracts alerts from HTML portal pages that have no feed.
type PageSource struct {
	client    *http.Client
	assembler *Assembler
	pageLimit int
	logger    *slog.Logger
}

// NewPageSource creates a PageSource capped at pageLimit alerts per page.
func NewPageSource(client *http.Client, assembler *Assembler, pageLimit int, logger *slog.Logger) *PageSource {
	return &PageSource{
		client:    client,
		assembler: assembler,
		pageLimit: pageLimit,
		logger:    logger,
	}
}

// Fetch downloads one page and assembles alerts from two candidate pools:
// long free-form paragraphs mentioning a trigger keyword, then fragments
// under known bulletin selectors. Candidates are deduplicated on their
// cleaned content and capped at the page limit.
func (p *PageSource) Fetch(ctx context.Context, pageURL string) ([]domain.Alert, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build page request: %w", err)
	}
	req.Header.Set("User-Agent", scraperUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch page %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", pageURL, err)
	}
	doc.Find("script, style").Remove()

	candidates := collectParagraphs(doc.Text())
	for _, selector := range alertSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			text := domain.CleanText(sel.Text())
			if len(text) > minSelectionLen {
				candidates = append(candidates, text)
			}
		})
	}

	seen := make(map[string]struct{})
	var alerts []domain.Alert
	for _, candidate := range candidates {
		content := domain.CleanText(candidate)
		if len(content) < minContentLen {
			continue
		}
		if _, dup := seen[content]; dup {
			continue
		}
		seen[content] = struct{}{}

		alerts = append(alerts, p.assembler.Assemble(ctx, pageTitle(content), content))
		if len(alerts) >= p.pageLimit {
			break
		}
	}

	p.logger.Info("page processed", "url", pageURL, "alerts", len(alerts))
	return alerts, nil
}

// collectParagraphs keeps newline-separated paragraphs that are long enough
// and mention at least one trigger keyword.
func collectParagraphs(text string) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if len(para) <= minParagraphLen {
			continue
		}
		lower := strings.ToLower(para)
		for _, trigger := range alertTriggers {
			if strings.Contains(lower, trigger) {
				out = append(out, para)
				break
			}
		}
	}
	return out
}

// pageTitle derives a title from content: the first sentence, truncated.
func pageTitle(content string) string {
	sentence := sentenceSplitRe.Split(content, 2)[0]
	runes := []rune(strings.TrimSpace(sentence))
	if len(runes) > maxTitleLen {
		runes = runes[:maxTitleLen]
	}
	return string(runes)
}
