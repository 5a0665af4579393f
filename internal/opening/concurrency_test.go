package opening

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/collection"
	"github.com/osse101/PackOpener_Go/internal/pack"
	"github.com/osse101/PackOpener_Go/internal/packdraw"
	"github.com/osse101/PackOpener_Go/internal/testing/leaktest"
)

// TestOpenPack_Concurrent opens packs from many goroutines against shared state
func TestOpenPack_Concurrent(t *testing.T) {
	leaktest.Track(t, 0)

	cards := testCards()
	cat, err := catalog.New(cards)
	require.NoError(t, err)
	catalogs := catalog.NewStaticProvider(cat)
	packs, err := pack.NewRegistryFromSpecs(testSpecs(cards), 16, time.Minute)
	require.NoError(t, err)
	collections := collection.NewService(collection.NewMemoryRepository(), catalogs, collection.BackendMemory)

	svc := NewService(packs, catalogs, collections, Options{
		RNG:   packdraw.Locked(packdraw.NewSeededRNG(7)),
		NewID: uuid.NewString,
	})

	const (
		users        = 8
		packsPerUser = 25
	)

	var wg sync.WaitGroup
	errs := make(chan error, users*packsPerUser)
	for u := 0; u < users; u++ {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			for i := 0; i < packsPerUser; i++ {
				opening, err := svc.OpenPack(context.Background(), userID, "base-booster")
				if err != nil {
					errs <- err
					continue
				}
				if len(opening.Cards) != 10 {
					errs <- fmt.Errorf("opening %s has %d cards", opening.ID, len(opening.Cards))
				}
			}
		}(fmt.Sprintf("trainer-%d", u))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	for u := 0; u < users; u++ {
		summary, err := collections.Summary(context.Background(), fmt.Sprintf("trainer-%d", u))
		require.NoError(t, err)
		assert.Equal(t, packsPerUser*10, summary.TotalCards)
	}
	assert.Equal(t, 1, packs.CachedPools(), "base-booster pool cached once")
}
