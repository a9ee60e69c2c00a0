package ports

// SyncMetrics records the outcome of sync runs
type SyncMetrics interface {
	RecordSync(resource string, records int)
	RecordSyncFailure(resource string, reason string)
}
