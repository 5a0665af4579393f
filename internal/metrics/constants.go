package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Pack metric names
const (
	MetricNamePacksOpened        = "packs_opened_total"
	MetricNameCardsDrawn         = "cards_drawn_total"
	MetricNamePackShortfall      = "pack_shortfall_total"
	MetricNameCollectionRecords  = "collection_records_total"
	MetricNameSimulationDuration = "pack_simulation_duration_seconds"
	MetricNameCatalogReloads     = "catalog_reloads_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Pack metric help text
const (
	HelpTextPacksOpened        = "Total number of packs opened"
	HelpTextCardsDrawn         = "Total number of cards drawn, by rarity"
	HelpTextPackShortfall      = "Total number of openings that returned fewer cards than the pack holds"
	HelpTextCollectionRecords  = "Total number of collection writes, by backend and outcome"
	HelpTextSimulationDuration = "Time spent running pack odds simulations in seconds"
	HelpTextCatalogReloads     = "Total number of catalog and pack reloads, by outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelPack    = "pack"
	LabelRarity  = "rarity"
	LabelBackend = "backend"
)

// Label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SimulationBuckets covers small odds previews up to the trial cap
var SimulationBuckets = []float64{.001, .01, .05, .1, .25, .5, 1, 2.5, 5}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgOpeningMetricsRecorded = "Metrics recorded for pack opening"
)
