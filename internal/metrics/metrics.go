package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Pack Metrics
var (
	PacksOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePacksOpened,
			Help: HelpTextPacksOpened,
		},
		[]string{LabelPack},
	)

	CardsDrawn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCardsDrawn,
			Help: HelpTextCardsDrawn,
		},
		[]string{LabelRarity},
	)

	PackShortfall = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePackShortfall,
			Help: HelpTextPackShortfall,
		},
		[]string{LabelPack},
	)

	CollectionRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCollectionRecords,
			Help: HelpTextCollectionRecords,
		},
		[]string{LabelBackend, LabelStatus},
	)

	SimulationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSimulationDuration,
			Help:    HelpTextSimulationDuration,
			Buckets: SimulationBuckets,
		},
		[]string{LabelPack},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
		[]string{LabelStatus},
	)
)

// StatusLabel maps an error onto the status label value
func StatusLabel(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
