package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/markalston/inference-calculator/backend/models"
)

func TestDefault_ContainsBuiltInModels(t *testing.T) {
	c := Default()

	if got := len(c.Models(models.ClassCPU)); got != 4 {
		t.Errorf("Expected 4 CPU models, got %d", got)
	}
	if got := len(c.Models(models.ClassGPU)); got != 4 {
		t.Errorf("Expected 4 GPU models, got %d", got)
	}

	xeon, err := c.Lookup(models.ClassCPU, "Intel Xeon Platinum 8480+")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if xeon.ThermalDesignPowerWatts != 350 || xeon.PriceUSD != 8999 || xeon.BaselineTokensPerSecond != 30 {
		t.Errorf("Unexpected Xeon 8480+ spec: %+v", xeon)
	}
	if xeon.Cores != 56 || xeon.Memory != "112MB L3 Cache" {
		t.Errorf("Expected descriptive fields to be decoded, got %+v", xeon)
	}

	a100, err := c.Lookup(models.ClassGPU, "NVIDIA A100 80GB")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if a100.Class != models.ClassGPU {
		t.Errorf("Expected class gpu, got %s", a100.Class)
	}
	if a100.MemoryBandwidthGBps != 2039 || a100.TensorCores != 432 {
		t.Errorf("Unexpected A100 descriptive fields: %+v", a100)
	}
}

func TestParse_RejectsUnknownField(t *testing.T) {
	doc := `
cpu:
  - model: x
    tdp_wats: 100
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("Expected error for misspelled field")
	}
}

func TestParse_RejectsEmptyDocument(t *testing.T) {
	_, err := Parse(nil)
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("Expected empty document error, got %v", err)
	}
}

func TestParse_RejectsInvalidSpec(t *testing.T) {
	doc := `
gpu:
  - model: broken
    price_usd: -5
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("Expected error for negative price")
	}
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
gpu:
  - model: Test GPU
    tdp_watts: 100
    price_usd: 1000
    baseline_tokens_per_second: 50
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	c, err := FileSource{Path: path}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 model, got %d", c.Len())
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.yaml")}.Fetch(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestRemoteSource_DegradesToStatic(t *testing.T) {
	remote, err := RemoteSource{}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	static, err := StaticSource{}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	for _, class := range static.Classes() {
		a, b := remote.Specs(class), static.Specs(class)
		if len(a) != len(b) {
			t.Fatalf("Expected %d %s models, got %d", len(b), class, len(a))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("Expected identical spec, got %+v vs %+v", a[i], b[i])
			}
		}
	}
}

func TestStaticSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := (StaticSource{}).Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		kind, file string
		wantName   string
		wantErr    bool
	}{
		{"", "", "static", false},
		{"static", "", "static", false},
		{"static", "/tmp/x.yaml", "file", false},
		{"remote", "", "remote", false},
		{"ftp", "", "", true},
	}

	for _, tt := range tests {
		src, err := NewSource(tt.kind, tt.file)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewSource(%q): expected error", tt.kind)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewSource(%q): unexpected error %v", tt.kind, err)
		}
		if src.Name() != tt.wantName {
			t.Errorf("NewSource(%q, %q): expected %s, got %s", tt.kind, tt.file, tt.wantName, src.Name())
		}
	}
}

// countingSource counts fetches and can be made to block or fail
type countingSource struct {
	calls atomic.Int32
	gate  chan struct{}
	err   error
}

func (s *countingSource) Name() string { return "counting" }

func (s *countingSource) Fetch(ctx context.Context) (*models.Catalog, error) {
	s.calls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	if s.err != nil {
		return nil, s.err
	}
	return Default(), nil
}

func TestLoader_CachesSnapshot(t *testing.T) {
	src := &countingSource{}
	l := NewLoader(src, time.Minute)
	defer l.Close()

	_, cached, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cached {
		t.Error("Expected first load to be uncached")
	}

	snap, cached, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cached {
		t.Error("Expected second load to be cached")
	}
	if snap.Source != "counting" {
		t.Errorf("Expected source counting, got %s", snap.Source)
	}
	if src.calls.Load() != 1 {
		t.Errorf("Expected 1 fetch, got %d", src.calls.Load())
	}
}

func TestLoader_Invalidate(t *testing.T) {
	src := &countingSource{}
	l := NewLoader(src, time.Minute)
	defer l.Close()

	if _, err := l.Catalog(context.Background()); err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}
	l.Invalidate()
	if _, err := l.Catalog(context.Background()); err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}

	if src.calls.Load() != 2 {
		t.Errorf("Expected 2 fetches after invalidate, got %d", src.calls.Load())
	}
}

func TestLoader_ConcurrentLoadsShareFetch(t *testing.T) {
	src := &countingSource{gate: make(chan struct{})}
	l := NewLoader(src, time.Minute)
	defer l.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Catalog(context.Background()); err != nil {
				t.Errorf("Catalog failed: %v", err)
			}
		}()
	}

	// Let the goroutines pile up behind the in-flight fetch
	time.Sleep(50 * time.Millisecond)
	close(src.gate)
	wg.Wait()

	if got := src.calls.Load(); got != 1 {
		t.Errorf("Expected 1 fetch for concurrent loads, got %d", got)
	}
}

func TestLoader_ErrorNotCached(t *testing.T) {
	src := &countingSource{err: errors.New("boom")}
	l := NewLoader(src, time.Minute)
	defer l.Close()

	var observed []error
	l.SetObserver(func(source string, _ time.Duration, err error) {
		observed = append(observed, err)
	})

	for i := 0; i < 2; i++ {
		if _, err := l.Catalog(context.Background()); err == nil {
			t.Fatal("Expected load error")
		}
	}

	if src.calls.Load() != 2 {
		t.Errorf("Expected failed loads to retry, got %d fetches", src.calls.Load())
	}
	if len(observed) != 2 || observed[0] == nil {
		t.Errorf("Expected observer to see 2 errors, got %v", observed)
	}
}

func TestLoader_CanceledCallerDoesNotFailSharedFetch(t *testing.T) {
	// The source honours cancellation, but the loader detaches the shared
	// fetch from the caller so joined callers are not failed with it
	l := NewLoader(StaticSource{}, time.Minute)
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, _, err := l.Load(ctx)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if snap.Catalog == nil {
		t.Fatal("Expected a catalog")
	}
}
