// package tasks implements the fetch and export steps of a playlist export.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytpl/internal/formatter"
	"github.com/desertthunder/ytpl/internal/models"
	"github.com/desertthunder/ytpl/internal/services"
	"github.com/desertthunder/ytpl/internal/shared"
)

// ProjectionResult is the outcome of writing a single projection.
type ProjectionResult struct {
	Projection formatter.Projection
	Path       string // File written (or partially written) by the projection
	Err        error  // Non-nil when the write failed
}

// ExportResult collects the outcome of every projection in one export pass.
type ExportResult struct {
	Results   []ProjectionResult
	Succeeded int
	Failed    int
}

// Err returns the joined errors of all failed projections, or nil.
func (r *ExportResult) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Projection, res.Err))
		}
	}
	return errors.Join(errs...)
}

// Files returns the paths of the successfully written files, in export order.
func (r *ExportResult) Files() []string {
	files := make([]string, 0, r.Succeeded)
	for _, res := range r.Results {
		if res.Err == nil {
			files = append(files, res.Path)
		}
	}
	return files
}

// EngineOpts contains configuration for creating a [PlaylistEngine].
type EngineOpts struct {
	Fetcher  services.Fetcher
	Exporter formatter.Exporter
	Timeout  time.Duration // Fetch timeout; zero means none
	Logger   *log.Logger
}

// PlaylistEngine fetches a playlist once and writes its projections.
type PlaylistEngine struct {
	fetcher  services.Fetcher
	exporter formatter.Exporter
	timeout  time.Duration
	logger   *log.Logger
}

// NewPlaylistEngine creates a new [PlaylistEngine]
func NewPlaylistEngine(opts EngineOpts) *PlaylistEngine {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &PlaylistEngine{
		fetcher:  opts.Fetcher,
		exporter: opts.Exporter,
		timeout:  opts.Timeout,
		logger:   opts.Logger,
	}
}

// Fetch retrieves the playlist at playlistURL. Errors wrap [shared.ErrFetch].
func (e *PlaylistEngine) Fetch(ctx context.Context, playlistURL string) (*models.PlaylistInfo, error) {
	if e.fetcher == nil {
		return nil, fmt.Errorf("%w: fetcher not initialized", shared.ErrFetch)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	e.logger.Debug("fetching playlist", "service", e.fetcher.Name(), "url", playlistURL)

	start := time.Now()
	info, err := e.fetcher.FetchPlaylist(ctx, playlistURL)
	if err != nil {
		if !errors.Is(err, shared.ErrFetch) {
			err = fmt.Errorf("%w: %w", shared.ErrFetch, err)
		}
		return nil, err
	}

	e.logger.Debug("fetched playlist", "title", info.Title, "entries", info.Len(), "elapsed", time.Since(start))
	return info, nil
}

// Export writes each projection of info in the given order.
//
// Every projection runs even when an earlier one failed.
func (e *PlaylistEngine) Export(info *models.PlaylistInfo, projections ...formatter.Projection) *ExportResult {
	result := &ExportResult{Results: make([]ProjectionResult, 0, len(projections))}

	for _, p := range projections {
		path, err := e.exporter.Export(p, info)
		result.Results = append(result.Results, ProjectionResult{Projection: p, Path: path, Err: err})

		if err != nil {
			result.Failed++
			e.logger.Error("export failed", "projection", p, "file", path, "error", err)
			continue
		}

		result.Succeeded++
		e.logger.Debug("export written", "projection", p, "file", path, "entries", info.Len())
	}

	return result
}
