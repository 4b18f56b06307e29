package constant

type SaleStatus string

const (
	SaleStatusPending           SaleStatus = "pending"
	SaleStatusCompleted         SaleStatus = "completed"
	SaleStatusRefunded          SaleStatus = "refunded"
	SaleStatusPartiallyRefunded SaleStatus = "partially_refunded"
)

type SyncStatus string

const (
	SyncStatusPending   SyncStatus = "pending"
	SyncStatusSynced    SyncStatus = "synced"
	SyncStatusFailed    SyncStatus = "failed"
	SyncStatusDuplicate SyncStatus = "duplicate"
)

type ConflictStatus string

const (
	ConflictStatusOpen     ConflictStatus = "open"
	ConflictStatusResolved ConflictStatus = "resolved"
)

// ConflictResolution is the operator action applied to an open stock conflict.
type ConflictResolution string

const (
	ResolutionAcceptActual     ConflictResolution = "accept_actual"
	ResolutionAdjustToExpected ConflictResolution = "adjust_to_expected"
	ResolutionIgnore           ConflictResolution = "ignore"
)
