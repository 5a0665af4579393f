package packdraw_bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/opening"
	"github.com/osse101/PackOpener_Go/internal/pack"
	"github.com/osse101/PackOpener_Go/internal/packdraw"
)

// --- Stubs (Zero-overhead collection for benchmarking) ---

type StubCollections struct{}

func (StubCollections) Record(ctx context.Context, o *domain.PackOpening) error { return nil }
func (StubCollections) GetCollection(ctx context.Context, userID string) ([]domain.CollectionEntry, error) {
	return nil, nil
}
func (StubCollections) Summary(ctx context.Context, userID string) (*domain.CollectionSummary, error) {
	return &domain.CollectionSummary{UserID: userID}, nil
}
func (StubCollections) History(ctx context.Context, userID string, limit int) ([]domain.OpeningRecord, error) {
	return nil, nil
}

// --- Fixtures ---

var tiers = []domain.Rarity{
	domain.RarityCommon, domain.RarityCommon, domain.RarityCommon, domain.RarityCommon,
	domain.RarityUncommon, domain.RarityUncommon, domain.RarityUncommon,
	domain.RarityRare, domain.RarityHoloRare, domain.RarityUltraRare,
}

func buildCatalog(size int) ([]domain.Card, []string) {
	cards := make([]domain.Card, size)
	ids := make([]string, size)
	for i := range cards {
		ids[i] = fmt.Sprintf("card-%d", i)
		cards[i] = domain.Card{ID: ids[i], Name: ids[i], Rarity: tiers[i%len(tiers)], Series: "Bench"}
	}
	return cards, ids
}

func boosterSpec(ids []string) domain.PackSpec {
	return domain.PackSpec{
		ID:                 "bench",
		Name:               "Bench Booster",
		CardsPerPack:       11,
		RarityDistribution: domain.RarityDistribution{Common: 7, Uncommon: 3, RareSlot: 1},
		PossibleCards:      ids,
	}
}

// --- Benchmarks ---

func BenchmarkOpen(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("catalog_%d", size), func(b *testing.B) {
			cards, ids := buildCatalog(size)
			spec := boosterSpec(ids)
			rng := packdraw.NewSeededRNG(42)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = packdraw.Open(cards, spec, rng)
			}
		})
	}
}

func BenchmarkOpenEligible(b *testing.B) {
	cards, ids := buildCatalog(200)
	spec := boosterSpec(ids)
	eligible := packdraw.Eligible(cards, spec.PossibleCards)
	rng := packdraw.NewSeededRNG(42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = packdraw.OpenEligible(eligible, spec, rng)
	}
}

func BenchmarkSimulate_1000(b *testing.B) {
	cards, ids := buildCatalog(200)
	spec := boosterSpec(ids)
	eligible := packdraw.Eligible(cards, spec.PossibleCards)
	rng := packdraw.NewSeededRNG(42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = packdraw.Simulate(eligible, spec, 1000, rng)
	}
}

// Measures the full workflow including the cached pool lookup
func BenchmarkOpeningService_OpenPack(b *testing.B) {
	cards, ids := buildCatalog(200)
	cat, err := catalog.New(cards)
	if err != nil {
		b.Fatal(err)
	}
	reg, err := pack.NewRegistryFromSpecs([]domain.PackSpec{boosterSpec(ids)}, 8, time.Minute)
	if err != nil {
		b.Fatal(err)
	}
	svc := opening.NewService(reg, catalog.NewStaticProvider(cat), StubCollections{}, opening.Options{
		RNG: packdraw.Locked(packdraw.NewSeededRNG(42)),
	})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.OpenPack(ctx, "bench-user", "bench"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOpeningService_OpenPack_Parallel(b *testing.B) {
	cards, ids := buildCatalog(200)
	cat, _ := catalog.New(cards)
	reg, _ := pack.NewRegistryFromSpecs([]domain.PackSpec{boosterSpec(ids)}, 8, time.Minute)
	svc := opening.NewService(reg, catalog.NewStaticProvider(cat), StubCollections{}, opening.Options{})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = svc.OpenPack(ctx, "bench-user", "bench")
		}
	})
}
