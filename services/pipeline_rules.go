package services

import (
	"errors"

	"staffing-crm-api/models"
)

// Pipeline operation errors surfaced to the API layer.
var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidStatus      = errors.New("invalid submission status")
	ErrRateNotConfirmed   = errors.New("a negotiated rate must be recorded before the candidate can be submitted")
	ErrInvalidRate        = errors.New("rate must be a positive number")
)

// significantRateChangePct is the advisory threshold beyond which a rate
// change is flagged for the operator. Not a validation rule.
const significantRateChangePct = 20.0

// CanTransition gates a status change. The single hard rule: entering
// `submission` requires a positive negotiated rate. Every other move,
// forward, backward or into rejected, is allowed; out-of-order jumps are
// deliberately permitted.
func CanTransition(sub *models.Submission, next models.SubmissionStatus) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if next == models.StatusSubmission {
		if sub.SubmissionRate == nil || *sub.SubmissionRate <= 0 {
			return ErrRateNotConfirmed
		}
	}
	return nil
}

// RateDelta returns the percentage change of newRate against the original
// applied rate, and whether it crosses the advisory significance threshold.
func RateDelta(appliedRate, newRate float64) (pct float64, significant bool) {
	if appliedRate == 0 {
		return 0, false
	}
	pct = (newRate - appliedRate) / appliedRate * 100
	if pct > significantRateChangePct || pct < -significantRateChangePct {
		significant = true
	}
	return pct, significant
}

// PipelineStats are the dashboard stage counters over the full collection.
type PipelineStats struct {
	All                int     `json:"all"`
	Applied            int     `json:"applied"`
	Submission         int     `json:"submission"`
	InterviewScheduled int     `json:"interview_scheduled"`
	ClientInterview    int     `json:"client_interview"`
	OfferLetter        int     `json:"offer_letter"`
	Placed             int     `json:"placed"`
	Rejected           int     `json:"rejected"`
	ConversionRate     float64 `json:"conversion_rate"`
}

// ComputePipelineStats counts submissions per stage and derives the
// conversion rate (placed over all, as a percentage). Returns zero, not a
// division error, for an empty collection.
func ComputePipelineStats(subs []models.Submission) PipelineStats {
	var stats PipelineStats
	for i := range subs {
		stats.All++
		switch subs[i].Status {
		case models.StatusApplied:
			stats.Applied++
		case models.StatusSubmission:
			stats.Submission++
		case models.StatusInterviewScheduled:
			stats.InterviewScheduled++
		case models.StatusClientInterview:
			stats.ClientInterview++
		case models.StatusOfferLetter:
			stats.OfferLetter++
		case models.StatusPlaced:
			stats.Placed++
		case models.StatusRejected:
			stats.Rejected++
		}
	}
	if stats.All > 0 {
		stats.ConversionRate = float64(stats.Placed) / float64(stats.All) * 100
	}
	return stats
}

// FilterByStatus returns the submissions in exactly the given stage.
func FilterByStatus(subs []models.Submission, status models.SubmissionStatus) []models.Submission {
	out := make([]models.Submission, 0)
	for i := range subs {
		if subs[i].Status == status {
			out = append(out, subs[i])
		}
	}
	return out
}
