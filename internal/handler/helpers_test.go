package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/pack"
)

func testCatalog(t *testing.T) catalog.Provider {
	t.Helper()
	cat, err := catalog.New([]domain.Card{
		{ID: "base-1", Name: "Bulbasaur", Rarity: domain.RarityCommon, Series: "Base"},
		{ID: "base-2", Name: "Ivysaur", Rarity: domain.RarityUncommon, Series: "Base"},
		{ID: "base-3", Name: "Venusaur", Rarity: domain.RarityHoloRare, Series: "Base"},
	})
	require.NoError(t, err)
	return catalog.NewStaticProvider(cat)
}

func testRegistry(t *testing.T) pack.Registry {
	t.Helper()
	reg, err := pack.NewRegistryFromSpecs([]domain.PackSpec{
		{
			ID:                 "base",
			Name:               "Base Booster",
			Series:             "Base",
			CardsPerPack:       3,
			RarityDistribution: domain.RarityDistribution{Common: 1, Uncommon: 1, RareSlot: 1},
			PossibleCards:      []string{"base-1", "base-2", "base-3", "base-99"},
		},
	}, 8, time.Minute)
	require.NoError(t, err)
	return reg
}

// serve routes req through a chi router so URL params resolve
func serve(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
