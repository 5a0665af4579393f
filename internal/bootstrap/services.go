package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/collection"
	"github.com/osse101/PackOpener_Go/internal/config"
	"github.com/osse101/PackOpener_Go/internal/opening"
	"github.com/osse101/PackOpener_Go/internal/pack"
	"github.com/osse101/PackOpener_Go/internal/packdraw"
)

// Services holds everything the HTTP layer depends on
type Services struct {
	Catalogs    catalog.Provider
	Packs       pack.Registry
	Collections collection.Service
	Openings    opening.Service
}

// LoadContent reads the card catalog and pack definitions and logs packs whose
// possible_cards reference unknown ids. Unknown ids are not fatal.
func LoadContent(ctx context.Context, cfg *config.Config) (catalog.Provider, pack.Registry, error) {
	catalogs, err := catalog.NewProvider(cfg.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	packs, err := pack.NewRegistry(pack.Options{
		Path:          cfg.PacksPath,
		SchemaPath:    cfg.PacksSchemaPath,
		PoolCacheSize: cfg.PoolCacheSize,
		PoolCacheTTL:  cfg.PoolCacheTTL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadPacks, err)
	}

	cat := catalogs.Current()
	unknown := packs.CheckAgainst(ctx, cat)
	for packID, missing := range unknown {
		slog.Warn(LogMsgUnknownPackCards, "pack_id", packID, "missing", missing)
	}
	slog.Info(LogMsgContentLoaded,
		"cards", cat.Len(),
		"series", len(cat.Series()),
		"packs", len(packs.List()),
		"packs_with_unknown_cards", len(unknown))

	return catalogs, packs, nil
}

// InitializeServices loads content and builds the services on top of store
func InitializeServices(ctx context.Context, cfg *config.Config, store *CollectionStore) (*Services, error) {
	catalogs, packs, err := LoadContent(ctx, cfg)
	if err != nil {
		return nil, err
	}

	collections := collection.NewService(store.Repo, catalogs, store.Backend)
	openings := opening.NewService(packs, catalogs, collections, opening.Options{
		RevealInterval: cfg.RevealInterval,
		RNG:            packdraw.DefaultRNG(),
	})

	return &Services{
		Catalogs:    catalogs,
		Packs:       packs,
		Collections: collections,
		Openings:    openings,
	}, nil
}
