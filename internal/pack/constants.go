package pack

// DefaultSchemaPath is the JSON schema pack files are validated against (relative to project root)
const DefaultSchemaPath = "configs/schemas/packs.schema.json"

// Pool cache defaults
const (
	DefaultPoolCacheSize = 256
)

// Error context messages for wrapped errors during pack loading
const (
	ErrContextFailedToListPacks   = "failed to list pack files"
	ErrContextFailedToLoadPacks   = "failed to load pack file"
	ErrContextSchemaValidation    = "pack file failed schema validation"
	ErrContextDuplicatePackID     = "duplicate pack id"
	ErrContextFailedToReloadPacks = "failed to reload packs"
)

// Log messages
const (
	LogMsgPacksLoaded        = "Pack registry loaded"
	LogMsgPacksReloaded      = "Pack registry reloaded"
	LogMsgUnknownCardsInPack = "Pack references cards missing from catalog"
)

// Log field names
const (
	LogFieldPath    = "path"
	LogFieldPacks   = "packs"
	LogFieldPackID  = "pack_id"
	LogFieldMissing = "missing"
)
