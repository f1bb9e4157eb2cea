// Package app wires the fetch, extract, analyze, and layout stages into
// the single pipeline behind each user submission.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/wordbubble/internal/analyze"
	"github.com/hyperifyio/wordbubble/internal/analyze/stopwords"
	"github.com/hyperifyio/wordbubble/internal/extract"
	"github.com/hyperifyio/wordbubble/internal/fetch"
	"github.com/hyperifyio/wordbubble/internal/layout"
)

// App holds the long-lived pipeline collaborators. The stopword set inside
// Counter is loaded once at construction and never mutated afterwards.
type App struct {
	Fetcher *fetch.Client
	Counter *analyze.Counter

	// StopwordWarning is set when the configured stopword asset could not
	// be loaded and analysis degraded to the built-in list. Carried on
	// every report so the UI can surface it without failing the pipeline.
	StopwordWarning string
}

// Report is the result of one complete pipeline run. Produced fresh per
// request; nothing is persisted across runs.
type Report struct {
	URL         string              `json:"url"`
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	Lang        string              `json:"lang,omitempty"`
	Text        string              `json:"text"`
	Words       []analyze.WordCount `json:"words"`
	Bubbles     []layout.Bubble     `json:"bubbles"`
	Warnings    []string            `json:"warnings,omitempty"`
	ElapsedMS   int64               `json:"elapsedMs"`
}

// New builds the App from configuration. A configured stopword file or URL
// that cannot be read produces a warning and falls back to the embedded
// list, never a startup failure.
func New(ctx context.Context, cfg Config) *App {
	a := &App{}

	set := stopwords.Default()
	switch {
	case cfg.StopwordsFile != "":
		if s, err := stopwords.FromFile(cfg.StopwordsFile); err != nil {
			a.StopwordWarning = fmt.Sprintf("stopword list %q unavailable, using built-in list", cfg.StopwordsFile)
			log.Warn().Err(err).Str("path", cfg.StopwordsFile).Msg("stopword file load failed, degrading to embedded list")
		} else {
			set = s
		}
	case cfg.StopwordsURL != "":
		if s, err := stopwords.FromURL(ctx, nil, cfg.StopwordsURL); err != nil {
			a.StopwordWarning = fmt.Sprintf("stopword list %q unavailable, using built-in list", cfg.StopwordsURL)
			log.Warn().Err(err).Str("url", cfg.StopwordsURL).Msg("stopword fetch failed, degrading to embedded list")
		} else {
			set = s
		}
	}

	topN := cfg.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	a.Counter = analyze.NewCounter(set, topN)

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	a.Fetcher = &fetch.Client{
		Timeout:      timeout,
		UserAgent:    cfg.UserAgent,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}

	log.Info().
		Int("stopwords", set.Len()).
		Int("topN", topN).
		Dur("fetchTimeout", timeout).
		Msg("pipeline ready")
	return a
}

// Analyze runs fetch, extract, analyze, and layout for one URL. Any stage
// failure halts the run and is returned typed; no partial report is built
// from partial data.
func (a *App) Analyze(ctx context.Context, rawURL string) (*Report, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	logger.Info().Str("stage", "fetching").Str("input", rawURL).Msg("fetching page")
	res, err := a.Fetcher.Get(ctx, rawURL)
	if err != nil {
		logger.Warn().Str("stage", "fetching").Err(err).Msg("fetch failed")
		return nil, err
	}

	logger.Info().Str("stage", "extracting").Str("url", res.URL).Int("bytes", len(res.Body)).Msg("extracting text")
	doc, err := extract.FromHTML(res.Body)
	if err != nil {
		logger.Warn().Str("stage", "extracting").Err(err).Msg("extraction failed")
		return nil, err
	}
	meta := extract.Meta(res.Body)

	logger.Info().Str("stage", "analyzing").Int("chars", len(doc.Text)).Msg("counting words")
	words := a.Counter.Rank(doc.Text)
	bubbles := layout.Pack(words)

	title := meta.Title
	if title == "" {
		title = doc.Title
	}
	report := &Report{
		URL:         res.URL,
		Title:       title,
		Description: meta.Description,
		Lang:        meta.Lang,
		Text:        doc.Text,
		Words:       words,
		Bubbles:     bubbles,
		ElapsedMS:   time.Since(start).Milliseconds(),
	}
	if a.StopwordWarning != "" {
		report.Warnings = append(report.Warnings, a.StopwordWarning)
	}

	logger.Info().
		Str("stage", "done").
		Int("words", len(words)).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")
	return report, nil
}
