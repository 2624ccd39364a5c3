// ABOUTME: Memoizing catalog loader shared by all request handlers
// ABOUTME: Caches the snapshot with a TTL and collapses concurrent loads

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/markalston/inference-calculator/backend/cache"
	"github.com/markalston/inference-calculator/backend/models"
	"golang.org/x/sync/singleflight"
)

const snapshotKey = "catalog"

// Snapshot is a loaded catalog together with where and when it was loaded
type Snapshot struct {
	Catalog  *models.Catalog
	Source   string
	LoadedAt time.Time
}

// LoadObserver is notified after every fetch from the underlying source
type LoadObserver func(source string, duration time.Duration, err error)

// Loader fetches the catalog from a Source at most once per TTL.
// Uses singleflight so concurrent cache misses trigger a single fetch.
type Loader struct {
	source   Source
	cache    *cache.Cache[Snapshot]
	sfGroup  singleflight.Group
	observer LoadObserver
}

// NewLoader creates a loader. A non-positive ttl disables caching.
func NewLoader(source Source, ttl time.Duration) *Loader {
	return &Loader{
		source: source,
		cache:  cache.New[Snapshot](ttl, time.Minute),
	}
}

// SetObserver installs a hook called after each source fetch
func (l *Loader) SetObserver(o LoadObserver) {
	l.observer = o
}

// SourceName reports the configured source kind
func (l *Loader) SourceName() string {
	return l.source.Name()
}

// Load returns the current snapshot. cached reports whether it was served
// without contacting the source.
func (l *Loader) Load(ctx context.Context) (snap Snapshot, cached bool, err error) {
	if s, ok := l.cache.Get(snapshotKey); ok {
		return s, true, nil
	}

	// The fetch is shared, so one caller's cancellation must not fail the others
	fetchCtx := context.WithoutCancel(ctx)
	v, err, shared := l.sfGroup.Do(snapshotKey, func() (interface{}, error) {
		return l.fetch(fetchCtx)
	})
	if err != nil {
		return Snapshot{}, false, err
	}
	if shared {
		slog.Debug("Catalog load shared with concurrent caller")
	}
	return v.(Snapshot), false, nil
}

// Catalog is Load without the metadata
func (l *Loader) Catalog(ctx context.Context) (*models.Catalog, error) {
	snap, _, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Catalog, nil
}

// Invalidate drops the cached snapshot so the next Load refetches
func (l *Loader) Invalidate() {
	l.cache.Clear(snapshotKey)
}

// Close stops the cache cleanup goroutine
func (l *Loader) Close() {
	l.cache.Close()
}

func (l *Loader) fetch(ctx context.Context) (Snapshot, error) {
	start := time.Now()
	c, err := l.source.Fetch(ctx)
	if l.observer != nil {
		l.observer(l.source.Name(), time.Since(start), err)
	}
	if err != nil {
		slog.Error("Catalog load failed", "source", l.source.Name(), "error", err)
		return Snapshot{}, fmt.Errorf("loading %s catalog: %w", l.source.Name(), err)
	}

	snap := Snapshot{Catalog: c, Source: l.source.Name(), LoadedAt: time.Now().UTC()}
	l.cache.Set(snapshotKey, snap)
	slog.Debug("Catalog loaded",
		"source", snap.Source,
		"cpu_models", len(c.Models(models.ClassCPU)),
		"gpu_models", len(c.Models(models.ClassGPU)),
		"duration", time.Since(start))
	return snap, nil
}
