package scanner

import (
	"time"

	"github.com/aleister1102/polisnap/internal/models"
)

// Result is the outcome of one URL together with its timing
type Result struct {
	Outcome     *models.Outcome
	Duration    time.Duration
	CompletedAt time.Time
}

// Summary aggregates a batch run. Results are in completion order.
type Summary struct {
	RunID      string
	Total      int
	Saved      int
	Skipped    int
	Failed     int
	Results    []Result
	StartTime  time.Time
	Duration   time.Duration
	LedgerPath string
	LedgerErr  error
}

func (s *Summary) add(result Result) {
	s.Results = append(s.Results, result)
	switch result.Outcome.Status {
	case models.StatusSaved:
		s.Saved++
	case models.StatusSkipped:
		s.Skipped++
	case models.StatusFailed:
		s.Failed++
	}
}

// HasFailures reports whether any URL ended in the failed state
func (s *Summary) HasFailures() bool {
	return s.Failed > 0
}

// LedgerRecords converts the results into run ledger rows
func (s *Summary) LedgerRecords() []models.LedgerRecord {
	records := make([]models.LedgerRecord, 0, len(s.Results))
	for _, r := range s.Results {
		records = append(records, models.NewLedgerRecord(s.RunID, r.Outcome, r.Duration.Milliseconds(), r.CompletedAt.UnixMilli()))
	}
	return records
}
