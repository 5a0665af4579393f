package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Collection Operations
const (
	ErrMsgInvalidOpeningID        = "invalid opening id"
	ErrMsgFailedToRecordOpening   = "failed to record pack opening"
	ErrMsgFailedToQueryCollection = "failed to query collection"
	ErrMsgFailedToScanCollection  = "failed to scan collection rows"
	ErrMsgFailedToQueryOpenings   = "failed to query pack openings"
	ErrMsgFailedToScanOpenings    = "failed to scan pack openings"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
