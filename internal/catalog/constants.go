package catalog

// Error context messages for wrapped errors during catalog loading
const (
	ErrContextFailedToListCatalog   = "failed to list catalog files"
	ErrContextFailedToLoadSeries    = "failed to load series file"
	ErrContextInvalidSeriesFile     = "invalid series file"
	ErrContextDuplicateCardID       = "duplicate card id"
	ErrContextFailedToReloadCatalog = "failed to reload catalog"
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Card catalog loaded"
	LogMsgCatalogReloaded = "Card catalog reloaded"
)

// Log field names
const (
	LogFieldPath    = "path"
	LogFieldCards   = "cards"
	LogFieldSeries  = "series"
	LogFieldVersion = "version"
)
