package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/osse101/PackOpener_Go/internal/logger"
)

// Provider hands out the current catalog and swaps in a fresh one on reload
type Provider interface {
	Current() *Catalog
	Reload(ctx context.Context) error
}

type provider struct {
	mu      sync.RWMutex
	path    string
	current *Catalog
	version uint64
}

// NewProvider loads the catalog at path
func NewProvider(path string) (Provider, error) {
	p := &provider{path: path}
	if err := p.load(); err != nil {
		return nil, err
	}

	slog.Default().Info(LogMsgCatalogLoaded,
		LogFieldPath, path,
		LogFieldCards, p.current.Len(),
		LogFieldSeries, len(p.current.Series()))
	return p, nil
}

// NewStaticProvider serves a fixed catalog; Reload is a no-op
func NewStaticProvider(c *Catalog) Provider {
	c.version = 1
	return &provider{current: c, version: 1}
}

func (p *provider) Current() *Catalog {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *provider) Reload(ctx context.Context) error {
	if p.path == "" {
		return nil
	}
	if err := p.load(); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToReloadCatalog, err)
	}

	cat := p.Current()
	logger.FromContext(ctx).Info(LogMsgCatalogReloaded,
		LogFieldPath, p.path,
		LogFieldCards, cat.Len(),
		LogFieldVersion, cat.Version())
	return nil
}

// load parses outside the lock and only swaps under it
func (p *provider) load() error {
	cat, err := Load(p.path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.version++
	cat.version = p.version
	p.current = cat
	return nil
}
