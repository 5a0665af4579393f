package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Pack error messages
	ErrMsgOpenPackFailed = "Failed to open pack"
	ErrMsgSimulateFailed = "Failed to simulate pack odds"

	// Collection error messages
	ErrMsgGetCollectionFailed = "Failed to get collection"
	ErrMsgGetSummaryFailed    = "Failed to get collection summary"
	ErrMsgGetHistoryFailed    = "Failed to get opening history"

	// Admin error messages
	ErrMsgReloadFailed = "Failed to reload catalog and packs"

	// Health messages
	ErrMsgDatabaseUnavailable = "database connection failed"
)

// Success messages for API responses
const (
	MsgReloadSuccess      = "Catalog and packs reloaded successfully"
	MsgMemoryBackendReady = "memory backend"
)

// Service action names used in logs
const (
	ActionOpenPack      = "Open pack"
	ActionSimulate      = "Simulate pack"
	ActionGetCard       = "Get card"
	ActionListCards     = "List cards"
	ActionGetPack       = "Get pack"
	ActionGetCollection = "Get collection"
	ActionGetSummary    = "Get collection summary"
	ActionGetHistory    = "Get opening history"
	ActionReload        = "Reload"
)

// Log messages
const (
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgDecodeFailed   = "Failed to decode request"
	LogMsgReadinessFail  = "Readiness check failed"
	LogMsgPacksOpened    = "Packs opened"
	LogMsgReloadComplete = "Catalog and packs reloaded"
	LogMsgCardsListed    = "Cards listed"
)

// URL and query parameter names
const (
	ParamPackID = "packID"
	ParamCardID = "cardID"
	QueryUserID = "user_id"
	QueryTrials = "trials"
	QueryLimit  = "limit"
	QuerySeries = "series"
)
