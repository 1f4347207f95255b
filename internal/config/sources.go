package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sources lists the URLs a scrape run visits, plus optional severity keyword
// overrides. A zero value falls back to the built-in INCOIS defaults.
type Sources struct {
	Feeds []string `yaml:"feeds"`
	Pages []string `yaml:"pages"`

	EmergencyKeywords []string `yaml:"emergency_keywords"`
	WarningKeywords   []string `yaml:"warning_keywords"`
}

// DefaultSources returns the known INCOIS feed and portal URLs. Several of
// the feed paths are speculative; sources that fail are skipped at runtime.
func DefaultSources() Sources {
	return Sources{
		Feeds: []string{
			"https://incois.gov.in/portal/rss/highwave.xml",
			"https://incois.gov.in/portal/rss/tsunami.xml",
			"https://incois.gov.in/portal/rss/alerts.xml",
			"https://incois.gov.in/rss/highwave.xml",
			"https://incois.gov.in/rss/tsunami.xml",
			"https://incois.gov.in/rss.xml",
			"https://incois.gov.in/feed.xml",
		},
		Pages: []string{
			"https://incois.gov.in/portal/osf",
			"https://incois.gov.in/portal/tsunami",
			"https://incois.gov.in/portal/highwave",
			"https://incois.gov.in/portal/datainfo/hwforecast.jsp",
			"https://incois.gov.in/portal/datainfo/tsunamiwarning.jsp",
			"https://incois.gov.in/portal/announcements.jsp",
			"https://incois.gov.in",
		},
	}
}

// LoadSources reads the YAML sources file at path, or returns the defaults
// when path is empty. Omitted fields keep their default values.
func LoadSources(path string) (Sources, error) {
	sources := DefaultSources()
	if path == "" {
		return sources, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Sources{}, fmt.Errorf("read sources file: %w", err)
	}

	var fromFile Sources
	if err := yaml.Unmarshal(raw, &fromFile); err != nil {
		return Sources{}, fmt.Errorf("parse sources file: %w", err)
	}

	if len(fromFile.Feeds) > 0 {
		sources.Feeds = fromFile.Feeds
	}
	if len(fromFile.Pages) > 0 {
		sources.Pages = fromFile.Pages
	}
	sources.EmergencyKeywords = fromFile.EmergencyKeywords
	sources.WarningKeywords = fromFile.WarningKeywords

	return sources, nil
}
