// Package reporter runs one fetch, classify and render pass for a player.
package reporter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/leighmacdonald/steamid/v2/steamid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tf2stats/internal/report"
	"github.com/cory-johannsen/tf2stats/internal/stats"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks github.com/cory-johannsen/tf2stats/internal/reporter Source

// Source provides a player's raw stats and display name.
type Source interface {
	FetchUserStats(ctx context.Context, id steamid.SID64, apiKey string) ([]stats.RawStat, error)
	FetchPersonaName(ctx context.Context, id steamid.SID64, apiKey string) (string, error)
}

// Options configures a Reporter.
type Options struct {
	// CatalogPath is the description catalog. A missing file is tolerated.
	CatalogPath string
	// OutputPath receives the rendered report.
	OutputPath string
	// DefaultPlayerName replaces the persona name when it cannot be fetched.
	DefaultPlayerName string
}

// Result summarises a completed run.
type Result struct {
	PlayerName string
	OutputPath string
	Collection *stats.Collection
}

// Reporter orchestrates report generation from a Source to an output file.
type Reporter struct {
	source   Source
	renderer *report.Renderer
	opts     Options
	logger   *zap.Logger
}

// New constructs a Reporter.
//
// Precondition: source, renderer and logger must be non-nil.
// Postcondition: returns a non-nil Reporter.
func New(source Source, renderer *report.Renderer, opts Options, logger *zap.Logger) *Reporter {
	return &Reporter{source: source, renderer: renderer, opts: opts, logger: logger}
}

// LoadCatalog reads the configured catalog, substituting an empty catalog
// when the file does not exist.
func (r *Reporter) LoadCatalog() (*stats.Catalog, error) {
	catalog, err := stats.LoadCatalog(r.opts.CatalogPath)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn("description catalog not found, descriptions will be null",
			zap.String("path", r.opts.CatalogPath))
		return stats.EmptyCatalog(), nil
	}
	if err != nil {
		return nil, err
	}
	r.logger.Info("description catalog loaded",
		zap.String("path", r.opts.CatalogPath),
		zap.Int("entries", catalog.Len()),
	)
	return catalog, nil
}

// Run fetches, classifies and renders the stats of player id and writes the
// report to the configured output path.
//
// Postcondition: the output file holds the new report, or a non-nil error is
// returned and the file is left as it was.
func (r *Reporter) Run(ctx context.Context, id steamid.SID64, apiKey string) (*Result, error) {
	overall := time.Now()

	catalog, err := r.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	t0 := time.Now()
	raw, err := r.source.FetchUserStats(ctx, id, apiKey)
	if err != nil {
		return nil, err
	}
	r.logger.Info("stats fetched",
		zap.Int("stats", len(raw)),
		zap.Duration("elapsed", time.Since(t0)),
	)

	classifier := stats.NewClassifier(stats.NewResolver(catalog), r.logger)
	col, err := classifier.Classify(raw)
	if err != nil {
		return nil, fmt.Errorf("classifying stats: %w", err)
	}
	r.logger.Info("stats classified",
		zap.Int("pvp", len(col.PvP)),
		zap.Int("coop", len(col.Coop)),
		zap.Int("maps", len(col.Maps)),
		zap.Int("achievements", len(col.Achievements)),
		zap.Int("dropped", len(raw)-col.Len()),
	)

	name := r.playerName(ctx, id, apiKey)

	doc, err := r.renderer.Render(name, col)
	if err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	if err := report.WriteFile(r.opts.OutputPath, doc); err != nil {
		return nil, err
	}
	r.logger.Info("report written",
		zap.String("path", r.opts.OutputPath),
		zap.Int("bytes", len(doc)),
		zap.Duration("total", time.Since(overall)),
	)
	return &Result{PlayerName: name, OutputPath: r.opts.OutputPath, Collection: col}, nil
}

func (r *Reporter) playerName(ctx context.Context, id steamid.SID64, apiKey string) string {
	name, err := r.source.FetchPersonaName(ctx, id, apiKey)
	if err != nil {
		r.logger.Warn("falling back to default player name",
			zap.String("name", r.opts.DefaultPlayerName),
			zap.Error(err),
		)
		return r.opts.DefaultPlayerName
	}
	return name
}
