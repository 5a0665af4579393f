package opening

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/collection"
	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/logger"
	"github.com/osse101/PackOpener_Go/internal/metrics"
	"github.com/osse101/PackOpener_Go/internal/pack"
	"github.com/osse101/PackOpener_Go/internal/packdraw"
	"github.com/osse101/PackOpener_Go/internal/reveal"
)

// Service defines the pack opening workflow
type Service interface {
	// OpenPack draws one pack, records it in the user's collection and schedules the reveal
	OpenPack(ctx context.Context, userID, packID string) (*domain.PackOpening, error)
	// OpenPacks opens count packs of the same kind in sequence
	OpenPacks(ctx context.Context, userID, packID string, count int) ([]*domain.PackOpening, error)
	// Simulate estimates per-rarity odds without touching any collection
	Simulate(ctx context.Context, packID string, trials int) (*domain.PackOdds, error)
	// Reload re-reads the catalog and pack definitions
	Reload(ctx context.Context) (*domain.ReloadReport, error)
}

// Options tunes the workflow. Zero values use the defaults.
type Options struct {
	RevealInterval time.Duration
	// RNG must be safe for concurrent use; wrap seeded sources with packdraw.Locked
	RNG   packdraw.RandomSource
	Now   func() time.Time
	NewID func() string
}

type service struct {
	packs       pack.Registry
	catalogs    catalog.Provider
	collections collection.Service
	interval    time.Duration
	rng         packdraw.RandomSource
	now         func() time.Time
	newID       func() string
}

// NewService creates a new opening service
func NewService(packs pack.Registry, catalogs catalog.Provider, collections collection.Service, opts Options) Service {
	s := &service{
		packs:       packs,
		catalogs:    catalogs,
		collections: collections,
		interval:    opts.RevealInterval,
		rng:         opts.RNG,
		now:         opts.Now,
		newID:       opts.NewID,
	}
	if s.interval <= 0 {
		s.interval = reveal.DefaultInterval
	}
	if s.rng == nil {
		s.rng = packdraw.DefaultRNG()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

func (s *service) OpenPack(ctx context.Context, userID, packID string) (*domain.PackOpening, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}

	spec, err := s.packs.Get(packID)
	if err != nil {
		return nil, err
	}

	return s.open(ctx, userID, spec)
}

func (s *service) OpenPacks(ctx context.Context, userID, packID string, count int) ([]*domain.PackOpening, error) {
	if count < MinPacksPerRequest || count > MaxPacksPerRequest {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextInvalidPackCount)
	}
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}

	spec, err := s.packs.Get(packID)
	if err != nil {
		return nil, err
	}

	// Earlier openings stay recorded if a later one fails
	openings := make([]*domain.PackOpening, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return openings, err
		}
		o, err := s.open(ctx, userID, spec)
		if err != nil {
			return openings, err
		}
		openings = append(openings, o)
	}
	return openings, nil
}

func (s *service) open(ctx context.Context, userID string, spec domain.PackSpec) (*domain.PackOpening, error) {
	log := logger.FromContext(ctx)

	pool := s.packs.Pool(s.catalogs.Current(), spec)
	cards := packdraw.OpenEligible(pool, spec, s.rng)
	steps := reveal.Schedule(cards, s.interval)

	opening := &domain.PackOpening{
		ID:             s.newID(),
		UserID:         userID,
		PackID:         spec.ID,
		Cards:          cards,
		Reveal:         steps,
		RevealDuration: reveal.TotalDuration(steps, s.interval),
		Shortfall:      max(spec.CardsPerPack-len(cards), 0),
		OpenedAt:       s.now().UTC(),
	}

	if err := s.collections.Record(ctx, opening); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecord, err)
	}

	metrics.RecordOpening(ctx, opening)
	if opening.Shortfall > 0 {
		log.Warn(LogMsgPackShortfall, LogFieldPackID, spec.ID, LogFieldShortfall, opening.Shortfall)
	}
	log.Info(LogMsgPackOpened,
		LogFieldUserID, userID,
		LogFieldPackID, spec.ID,
		LogFieldOpeningID, opening.ID,
		LogFieldCards, len(cards))
	return opening, nil
}

func (s *service) Simulate(ctx context.Context, packID string, trials int) (*domain.PackOdds, error) {
	spec, err := s.packs.Get(packID)
	if err != nil {
		return nil, err
	}

	if trials <= 0 {
		trials = DefaultSimulationTrials
	}
	trials = min(trials, MaxSimulationTrials)

	pool := s.packs.Pool(s.catalogs.Current(), spec)
	// A private source keeps long runs off the shared one
	rng := packdraw.NewSeededRNG(uint64(s.rng.IntN(math.MaxInt)))

	start := time.Now()
	odds := packdraw.Simulate(pool, spec, trials, rng)
	elapsed := time.Since(start)

	metrics.SimulationDuration.WithLabelValues(spec.ID).Observe(elapsed.Seconds())
	logger.FromContext(ctx).Info(LogMsgSimulationComplete,
		LogFieldPackID, spec.ID,
		LogFieldTrials, trials,
		LogFieldDuration, elapsed)
	return &odds, nil
}

func (s *service) Reload(ctx context.Context) (*domain.ReloadReport, error) {
	if err := s.reload(ctx); err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.StatusError).Inc()
		return nil, err
	}
	metrics.CatalogReloads.WithLabelValues(metrics.StatusSuccess).Inc()

	cat := s.catalogs.Current()
	report := &domain.ReloadReport{
		CatalogVersion: cat.Version(),
		Cards:          cat.Len(),
		Packs:          len(s.packs.List()),
		UnknownCards:   s.packs.CheckAgainst(ctx, cat),
	}

	logger.FromContext(ctx).Info(LogMsgReloadComplete,
		LogFieldVersion, report.CatalogVersion,
		LogFieldPacks, report.Packs)
	return report, nil
}

// reload swaps the catalog first so the pack check runs against fresh cards
func (s *service) reload(ctx context.Context) error {
	if err := s.catalogs.Reload(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToReloadCatalog, err)
	}
	if err := s.packs.Reload(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToReloadPacks, err)
	}
	return nil
}
