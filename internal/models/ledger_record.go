package models

// LedgerRecord is one row of the parquet run ledger
type LedgerRecord struct {
	RunID       string  `parquet:"run_id"`
	URL         string  `parquet:"url"`
	Status      string  `parquet:"status"`
	Reason      *string `parquet:"reason,optional"`
	URLType     string  `parquet:"url_type"`
	Directory   *string `parquet:"directory,optional"`
	DateStamp   string  `parquet:"date_stamp"`
	Error       *string `parquet:"error,optional"`
	DurationMs  int64   `parquet:"duration_ms"`
	CompletedAt int64   `parquet:"completed_at"` // Unix milliseconds
}

// NewLedgerRecord converts an outcome into a ledger row
func NewLedgerRecord(runID string, outcome *Outcome, durationMs, completedAtMs int64) LedgerRecord {
	record := LedgerRecord{
		RunID:       runID,
		URL:         outcome.URL,
		Status:      string(outcome.Status),
		URLType:     outcome.URLType.String(),
		DateStamp:   outcome.DateStamp,
		DurationMs:  durationMs,
		CompletedAt: completedAtMs,
	}
	if outcome.Reason != ReasonNone {
		reason := string(outcome.Reason)
		record.Reason = &reason
	}
	if outcome.Directory != "" {
		dir := outcome.Directory
		record.Directory = &dir
	}
	if msg := outcome.ErrorMessage(); msg != "" {
		record.Error = &msg
	}
	return record
}
