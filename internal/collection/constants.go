package collection

// Storage backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// History paging
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Error contexts
const (
	ErrContextFailedToRecordOpening = "failed to record pack opening"
	ErrContextFailedToGetCollection = "failed to get collection"
	ErrContextFailedToListOpenings  = "failed to list openings"
)

// Log messages
const (
	LogMsgOpeningRecorded        = "Pack opening recorded"
	LogMsgRecordFailed           = "Failed to record pack opening"
	LogMsgCardMissingFromCatalog = "Owned card no longer in catalog"
)

// Log fields
const (
	LogFieldUserID    = "user_id"
	LogFieldPackID    = "pack_id"
	LogFieldOpeningID = "opening_id"
	LogFieldCards     = "cards"
	LogFieldCardID    = "card_id"
)
