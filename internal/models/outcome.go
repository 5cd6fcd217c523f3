package models

// OutcomeStatus is the terminal state of one acquisition
type OutcomeStatus string

const (
	StatusSaved   OutcomeStatus = "saved"
	StatusSkipped OutcomeStatus = "skipped"
	StatusFailed  OutcomeStatus = "failed"
)

// SkipReason explains why an acquisition was skipped
type SkipReason string

const (
	ReasonNone             SkipReason = ""
	ReasonAlreadyScraped   SkipReason = "already_scraped_today"
	ReasonContentUnchanged SkipReason = "content_unchanged"
	ReasonNetworkError     SkipReason = "network_error"
	ReasonCancelled        SkipReason = "cancelled"
)

// Outcome reports what happened to one URL
type Outcome struct {
	URL       string
	Status    OutcomeStatus
	Reason    SkipReason
	Directory string
	DateStamp string
	URLType   URLType
	Err       error
}

// ErrorMessage returns the error text or an empty string
func (o *Outcome) ErrorMessage() string {
	if o == nil || o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
