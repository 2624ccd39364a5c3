// ABOUTME: Sources that produce a hardware catalog snapshot
// ABOUTME: Static (embedded), file-backed and remote (degrades to static) sources

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/markalston/inference-calculator/backend/models"
)

// Source produces a catalog snapshot
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*models.Catalog, error)
}

// Source kinds accepted by NewSource
const (
	SourceStatic = "static"
	SourceRemote = "remote"
)

// StaticSource serves the embedded catalog
type StaticSource struct{}

func (StaticSource) Name() string { return SourceStatic }

func (StaticSource) Fetch(ctx context.Context) (*models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(defaultDocument)
}

// FileSource reads a catalog document from disk on every fetch
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file" }

func (s FileSource) Fetch(ctx context.Context) (*models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return c, nil
}

// RemoteSource stands in for a live pricing feed. No feed is wired, so it
// always returns its fallback's snapshot; callers see the same data either way.
type RemoteSource struct {
	Fallback Source
}

func (s RemoteSource) Name() string { return SourceRemote }

func (s RemoteSource) Fetch(ctx context.Context) (*models.Catalog, error) {
	fallback := s.Fallback
	if fallback == nil {
		fallback = StaticSource{}
	}
	slog.Debug("Remote hardware pricing unavailable, using fallback catalog", "fallback", fallback.Name())
	return fallback.Fetch(ctx)
}

// NewSource builds the source named by kind. A non-empty file path replaces
// the embedded table as the base data for either kind.
func NewSource(kind, file string) (Source, error) {
	var base Source = StaticSource{}
	if file != "" {
		base = FileSource{Path: file}
	}

	switch kind {
	case "", SourceStatic:
		return base, nil
	case SourceRemote:
		return RemoteSource{Fallback: base}, nil
	}
	return nil, fmt.Errorf("unknown catalog source %q (want %q or %q)", kind, SourceStatic, SourceRemote)
}
