package opening

// Request limits
const (
	MinPacksPerRequest = 1
	MaxPacksPerRequest = 10

	DefaultSimulationTrials = 10000
	MaxSimulationTrials     = 100000
)

// Error contexts
const (
	ErrContextFailedToRecord        = "failed to record opening"
	ErrContextFailedToReloadCatalog = "failed to reload catalog"
	ErrContextFailedToReloadPacks   = "failed to reload packs"
	ErrContextInvalidPackCount      = "pack count must be between 1 and 10"
)

// Log messages
const (
	LogMsgPackOpened         = "Pack opened"
	LogMsgPackShortfall      = "Pack opened with fewer cards than it holds"
	LogMsgSimulationComplete = "Pack simulation complete"
	LogMsgReloadComplete     = "Catalog and packs reloaded"
)

// Log fields
const (
	LogFieldUserID    = "user_id"
	LogFieldPackID    = "pack_id"
	LogFieldOpeningID = "opening_id"
	LogFieldCards     = "cards"
	LogFieldShortfall = "shortfall"
	LogFieldTrials    = "trials"
	LogFieldDuration  = "duration"
	LogFieldVersion   = "catalog_version"
	LogFieldPacks     = "packs"
)
