// Package app implements the application layer for gemmatrix.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/gemmatrix/internal/adapters/detector"
	"go.trai.ch/gemmatrix/internal/adapters/watcher"
	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/core/ports"
	"go.trai.ch/gemmatrix/internal/engine/matrix"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	builder        *matrix.Builder
	renderer       ports.Renderer
	hasher         ports.Hasher
	watcher        ports.Watcher
	logger         ports.Logger
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder *matrix.Builder,
	renderer ports.Renderer,
	hasher ports.Hasher,
	fileWatcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader:   loader,
		builder:        builder,
		renderer:       renderer,
		hasher:         hasher,
		watcher:        fileWatcher,
		logger:         log,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithDebounceWindow sets how long Watch waits for a burst of file events
// to settle before rebuilding.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// BuildOptions configuration for the Build and Watch methods.
type BuildOptions struct {
	// Format is the output format. FormatAuto picks one based on Out.
	Format domain.Format
	// Keys restricts the output to these composite keys. Empty means all.
	Keys []string
	// Out receives the rendered matrix. Nil means os.Stdout.
	Out io.Writer
	// Discovery selects which runtime keys each platform is paired with.
	Discovery matrix.Discovery
}

// BuildMatrix loads the dependencies document at path and returns its matrix.
// Validation failures are returned unwrapped as *domain.ConfigError, so
// err.Error() is the fixed validation message, and no matrix is produced.
func (a *App) BuildMatrix(ctx context.Context, path string) (domain.Matrix, error) {
	return a.buildMatrix(ctx, path, matrix.DiscoverUnion)
}

func (a *App) buildMatrix(ctx context.Context, path string, discovery matrix.Discovery) (domain.Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := a.load(path)
	if err != nil {
		return nil, err
	}

	return a.builder.WithDiscovery(discovery).Build(cfg), nil
}

// Build computes the matrix for the document at path and renders it.
func (a *App) Build(ctx context.Context, path string, opts BuildOptions) error {
	m, err := a.buildMatrix(ctx, path, opts.Discovery)
	if err != nil {
		return err
	}
	return a.render(m, opts)
}

func (a *App) render(m domain.Matrix, opts BuildOptions) error {
	m, err := m.Filter(opts.Keys...)
	if err != nil {
		return err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	format := detector.ResolveFormat(detector.DetectFormat(out), opts.Format)

	return a.renderer.Render(out, m, format)
}

// load reads the document at path. Validation failures pass through untouched;
// anything else is wrapped.
func (a *App) load(path string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err == nil {
		return cfg, nil
	}
	var cfgErr *domain.ConfigError
	if errors.As(err, &cfgErr) {
		return nil, cfgErr
	}
	return nil, zerr.Wrap(err, "failed to load dependencies configuration")
}

// Validate checks the document at path without rendering anything.
func (a *App) Validate(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg, err := a.load(path)
	if err != nil {
		return err
	}

	m := a.builder.Build(cfg)
	a.logger.Info(fmt.Sprintf("%s is valid: %d platform(s), %d matrix key(s)",
		path, len(cfg.Platforms()), len(m)))
	return nil
}

// Watch builds and renders the matrix, then rebuilds it every time the
// document at path changes until ctx is cancelled. A rebuild whose matrix is
// identical to the last rendered one is not rendered again. A failed rebuild
// is logged and watching continues.
func (a *App) Watch(ctx context.Context, path string, opts BuildOptions) error {
	if err := a.watcher.Start(ctx, path); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	changes := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func([]string) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	g, ctx := errgroup.WithContext(ctx)

	// Event pump
	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	// Rebuild loop
	g.Go(func() error {
		last := a.rebuild(ctx, path, opts, "")
		a.logger.Info(fmt.Sprintf("watching %s for changes", path))
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changes:
				last = a.rebuild(ctx, path, opts, last)
			}
		}
	})

	return g.Wait()
}

// rebuild builds and renders the matrix unless its fingerprint equals last.
// It returns the fingerprint of the rendered matrix, or "" after a failure
// so that the next successful build is always rendered.
func (a *App) rebuild(ctx context.Context, path string, opts BuildOptions, last string) string {
	m, err := a.buildMatrix(ctx, path, opts.Discovery)
	if err != nil {
		a.logger.Error(err)
		return ""
	}

	fingerprint := a.hasher.HashMatrix(m)
	if fingerprint == last {
		a.logger.Info("dependency matrix unchanged")
		return last
	}

	if err := a.render(m, opts); err != nil {
		a.logger.Error(err)
		return ""
	}
	return fingerprint
}
