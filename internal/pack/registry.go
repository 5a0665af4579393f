package pack

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/logger"
	"github.com/osse101/PackOpener_Go/internal/validation"
)

// Registry resolves pack definitions and their eligible card pools
type Registry interface {
	Get(id string) (domain.PackSpec, error)
	List() []domain.PackSpec
	// Pool returns the catalog cards the pack can contain, cached per catalog version
	Pool(cat *catalog.Catalog, spec domain.PackSpec) []domain.Card
	// CheckAgainst returns, per pack id, the possible_cards absent from the catalog
	CheckAgainst(ctx context.Context, cat *catalog.Catalog) map[string][]string
	Reload(ctx context.Context) error
	CachedPools() int
}

// Options configures a file-backed registry
type Options struct {
	Path          string
	SchemaPath    string
	PoolCacheSize int
	PoolCacheTTL  time.Duration
}

type registry struct {
	mu      sync.RWMutex
	opts    Options
	schemas validation.SchemaValidator
	packs   map[string]domain.PackSpec
	pools   *poolCache

	// generation counts successful loads and is part of every pool cache key
	generation uint64
}

// NewRegistry loads the pack files described by opts
func NewRegistry(opts Options) (Registry, error) {
	if opts.SchemaPath == "" {
		opts.SchemaPath = DefaultSchemaPath
	}
	r := &registry{
		opts:    opts,
		schemas: validation.NewSchemaValidator(),
		pools:   newPoolCache(opts.PoolCacheSize, opts.PoolCacheTTL),
	}
	if err := r.load(); err != nil {
		return nil, err
	}

	slog.Default().Info(LogMsgPacksLoaded, LogFieldPath, opts.Path, LogFieldPacks, len(r.packs))
	return r, nil
}

// NewRegistryFromSpecs builds an in-memory registry; Reload is a no-op
func NewRegistryFromSpecs(specs []domain.PackSpec, cacheSize int, cacheTTL time.Duration) (Registry, error) {
	packs, err := index(specs)
	if err != nil {
		return nil, err
	}
	return &registry{
		packs: packs,
		pools: newPoolCache(cacheSize, cacheTTL),
	}, nil
}

func index(specs []domain.PackSpec) (map[string]domain.PackSpec, error) {
	packs := make(map[string]domain.PackSpec, len(specs))
	for _, spec := range specs {
		if err := ValidateSpec(spec); err != nil {
			return nil, err
		}
		if _, dup := packs[spec.ID]; dup {
			return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidPackSpec, ErrContextDuplicatePackID, spec.ID)
		}
		packs[spec.ID] = spec
	}
	return packs, nil
}

func (r *registry) load() error {
	specs, err := Load(r.opts.Path, r.opts.SchemaPath, r.schemas)
	if err != nil {
		return err
	}
	packs, err := index(specs)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.packs = packs
	r.generation++
	r.mu.Unlock()
	r.pools.Clear()
	return nil
}

func (r *registry) Get(id string) (domain.PackSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.packs[id]
	if !ok {
		return domain.PackSpec{}, fmt.Errorf("%w: %s", domain.ErrPackNotFound, id)
	}
	return spec, nil
}

func (r *registry) List() []domain.PackSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PackSpec, 0, len(r.packs))
	for _, spec := range r.packs {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *registry) Pool(cat *catalog.Catalog, spec domain.PackSpec) []domain.Card {
	r.mu.RLock()
	current, ok := r.packs[spec.ID]
	generation := r.generation
	r.mu.RUnlock()

	// A spec resolved before a reload is served but never cached
	if !ok || !slices.Equal(current.PossibleCards, spec.PossibleCards) {
		return cat.Eligible(spec.PossibleCards)
	}

	if pool, ok := r.pools.Get(spec.ID, generation, cat.Version()); ok {
		return pool
	}
	pool := cat.Eligible(spec.PossibleCards)
	r.pools.Set(spec.ID, generation, cat.Version(), pool)
	return pool
}

func (r *registry) CheckAgainst(ctx context.Context, cat *catalog.Catalog) map[string][]string {
	log := logger.FromContext(ctx)
	report := make(map[string][]string)
	for _, spec := range r.List() {
		missing := cat.Missing(spec.PossibleCards)
		if len(missing) == 0 {
			continue
		}
		report[spec.ID] = missing
		log.Warn(LogMsgUnknownCardsInPack, LogFieldPackID, spec.ID, LogFieldMissing, len(missing))
	}
	return report
}

func (r *registry) Reload(ctx context.Context) error {
	if r.opts.Path == "" {
		return nil
	}
	if err := r.load(); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToReloadPacks, err)
	}

	logger.FromContext(ctx).Info(LogMsgPacksReloaded, LogFieldPath, r.opts.Path, LogFieldPacks, len(r.List()))
	return nil
}

func (r *registry) CachedPools() int {
	return r.pools.Len()
}
