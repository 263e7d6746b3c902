package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/vtrace-cli/internal/manifest"
	"github.com/AnyUserName/vtrace-cli/internal/vtrace"
)

// PoolEntryKB is the approximate size of one thumbhash sync.Pool entry.
// float32 workBuf: rgba(160KB) + cos(6.4KB) + ac(0.5KB) ≈ 167 KB.
const PoolEntryKB = 167

// Config holds all parameters for a batch vectorization run.
type Config struct {
	InputDir     string
	OutputDir    string
	ProfileName  string
	Trace        vtrace.Config
	MaxDimension int // pre-resize cap passed to decode.File, 0 disables
	Workers      int
	Verbose      bool
}

// Pipeline orchestrates batch raster-to-SVG conversion.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{cfg: cfg}
}

// Run executes the full batch run and returns the manifest.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	sources, err := ScanImages(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}

	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[vtrace] found %d images\n", len(sources))
	}

	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if p.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[vtrace] processing: %s\n", s.Key)
			}

			results[idx] = processImage(s, p.cfg)

			if p.cfg.Verbose && results[idx].err == nil {
				fmt.Fprintf(os.Stderr, "[vtrace] done: %s (%d layers)\n",
					s.Key, results[idx].asset.SVG.Layers)
			}
		}(i, src)
	}
	wg.Wait()

	m := manifest.New(p.cfg.ProfileName)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[vtrace] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to process", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[vtrace] warning: %d of %d images had errors\n",
			len(errs), len(sources))
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers:     p.cfg.Workers,
		PoolEntryKB: PoolEntryKB,
	}
	m.Stats.SkippedErrors = len(errs)
	m.ComputeStats()
	return m, nil
}
