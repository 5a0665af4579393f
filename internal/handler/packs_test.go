package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/opening"
	"github.com/osse101/PackOpener_Go/mocks"
)

const (
	routePack = "/api/v1/packs/{packID}"
	routeOpen = "/api/v1/packs/{packID}/open"
	routeOdds = "/api/v1/packs/{packID}/odds"
)

func newOpening(id string, cards ...string) *domain.PackOpening {
	o := &domain.PackOpening{ID: id, UserID: "ash", PackID: "base"}
	for _, c := range cards {
		o.Cards = append(o.Cards, domain.Card{ID: c})
	}
	return o
}

func TestHandleListPacks(t *testing.T) {
	h := NewPackHandler(testRegistry(t), testCatalog(t), mocks.NewMockOpeningService(t))

	w := serve(http.MethodGet, "/api/v1/packs", h.HandleListPacks,
		httptest.NewRequest(http.MethodGet, "/api/v1/packs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[PackListResponse](t, w)
	if assert.Len(t, resp.Packs, 1) {
		assert.Equal(t, "base", resp.Packs[0].ID)
	}
}

func TestHandleGetPack(t *testing.T) {
	h := NewPackHandler(testRegistry(t), testCatalog(t), mocks.NewMockOpeningService(t))

	t.Run("found with coverage", func(t *testing.T) {
		w := serve(http.MethodGet, routePack, h.HandleGetPack,
			httptest.NewRequest(http.MethodGet, "/api/v1/packs/base", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[PackDetailResponse](t, w)
		assert.Equal(t, "Base Booster", resp.Name)
		assert.Equal(t, 3, resp.EligibleCards)
		assert.Equal(t, []string{"base-99"}, resp.MissingCards)
	})

	t.Run("unknown pack", func(t *testing.T) {
		w := serve(http.MethodGet, routePack, h.HandleGetPack,
			httptest.NewRequest(http.MethodGet, "/api/v1/packs/jungle", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrMsgPackNotFoundError, decode[ErrorResponse](t, w).Error)
	})
}

func TestHandleOpenPack(t *testing.T) {
	t.Run("single opening by default", func(t *testing.T) {
		svc := mocks.NewMockOpeningService(t)
		svc.On("OpenPack", mock.Anything, "ash", "base").
			Return(newOpening("o-1", "base-1", "base-2", "base-3"), nil)
		h := NewPackHandler(testRegistry(t), testCatalog(t), svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/packs/base/open",
			jsonBody(t, map[string]interface{}{"user_id": "ash"}))
		w := serve(http.MethodPost, routeOpen, h.HandleOpenPack, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decode[OpenPackResponse](t, w)
		assert.Len(t, resp.Openings, 1)
		assert.Equal(t, 3, resp.TotalCards)
		assert.Empty(t, resp.Error)
	})

	t.Run("multiple openings", func(t *testing.T) {
		svc := mocks.NewMockOpeningService(t)
		svc.On("OpenPacks", mock.Anything, "ash", "base", 3).Return([]*domain.PackOpening{
			newOpening("o-1", "base-1"),
			newOpening("o-2", "base-1", "base-2"),
			newOpening("o-3", "base-3"),
		}, nil)
		h := NewPackHandler(testRegistry(t), testCatalog(t), svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/packs/base/open",
			jsonBody(t, OpenPackRequest{UserID: "ash", Count: 3}))
		w := serve(http.MethodPost, routeOpen, h.HandleOpenPack, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decode[OpenPackResponse](t, w)
		assert.Len(t, resp.Openings, 3)
		assert.Equal(t, 4, resp.TotalCards)
	})

	t.Run("partial failure keeps completed openings", func(t *testing.T) {
		svc := mocks.NewMockOpeningService(t)
		svc.On("OpenPacks", mock.Anything, "ash", "base", 2).
			Return([]*domain.PackOpening{newOpening("o-1", "base-1")}, context.Canceled)
		h := NewPackHandler(testRegistry(t), testCatalog(t), svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/packs/base/open",
			jsonBody(t, OpenPackRequest{UserID: "ash", Count: 2}))
		w := serve(http.MethodPost, routeOpen, h.HandleOpenPack, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decode[OpenPackResponse](t, w)
		assert.Len(t, resp.Openings, 1)
		assert.Equal(t, ErrMsgGenericServerError, resp.Error)
	})

	t.Run("unknown pack", func(t *testing.T) {
		svc := mocks.NewMockOpeningService(t)
		svc.On("OpenPack", mock.Anything, "ash", "jungle").
			Return(nil, fmt.Errorf("%w: jungle", domain.ErrPackNotFound))
		h := NewPackHandler(testRegistry(t), testCatalog(t), svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/packs/jungle/open",
			jsonBody(t, OpenPackRequest{UserID: "ash"}))
		w := serve(http.MethodPost, routeOpen, h.HandleOpenPack, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("record failure is a 500 without internals", func(t *testing.T) {
		svc := mocks.NewMockOpeningService(t)
		svc.On("OpenPack", mock.Anything, "ash", "base").
			Return(nil, fmt.Errorf("failed to record opening: %w", errors.New("pq: relation does not exist")))
		h := NewPackHandler(testRegistry(t), testCatalog(t), svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/packs/base/open",
			jsonBody(t, OpenPackRequest{UserID: "ash"}))
		w := serve(http.MethodPost, routeOpen, h.HandleOpenPack, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "relation")
	})

	invalid := []struct {
		name string
		body string
	}{
		{"malformed json", `{"user_id":`},
		{"missing user", `{"count":2}`},
		{"too many packs", `{"user_id":"ash","count":11}`},
		{"whitespace user", `{"user_id":"ash ketchum"}`},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPackHandler(testRegistry(t), testCatalog(t), mocks.NewMockOpeningService(t))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/packs/base/open", strings.NewReader(tt.body))
			w := serve(http.MethodPost, routeOpen, h.HandleOpenPack, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandlePackOdds(t *testing.T) {
	t.Run("default trials", func(t *testing.T) {
		svc := mocks.NewMockOpeningService(t)
		svc.On("Simulate", mock.Anything, "base", opening.DefaultSimulationTrials).
			Return(&domain.PackOdds{PackID: "base", Trials: opening.DefaultSimulationTrials}, nil)
		h := NewPackHandler(testRegistry(t), testCatalog(t), svc)

		w := serve(http.MethodGet, routeOdds, h.HandlePackOdds,
			httptest.NewRequest(http.MethodGet, "/api/v1/packs/base/odds", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, opening.DefaultSimulationTrials, decode[domain.PackOdds](t, w).Trials)
	})

	t.Run("explicit trials", func(t *testing.T) {
		svc := mocks.NewMockOpeningService(t)
		svc.On("Simulate", mock.Anything, "base", 500).
			Return(&domain.PackOdds{PackID: "base", Trials: 500}, nil)
		h := NewPackHandler(testRegistry(t), testCatalog(t), svc)

		w := serve(http.MethodGet, routeOdds, h.HandlePackOdds,
			httptest.NewRequest(http.MethodGet, "/api/v1/packs/base/odds?trials=500", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed trials", func(t *testing.T) {
		h := NewPackHandler(testRegistry(t), testCatalog(t), mocks.NewMockOpeningService(t))

		w := serve(http.MethodGet, routeOdds, h.HandlePackOdds,
			httptest.NewRequest(http.MethodGet, "/api/v1/packs/base/odds?trials=lots", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "trials")
	})
}
