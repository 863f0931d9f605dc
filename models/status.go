package models

// SubmissionStatus is the pipeline stage of a candidate submission.
type SubmissionStatus string

const (
	StatusApplied            SubmissionStatus = "applied"
	StatusSubmission         SubmissionStatus = "submission"
	StatusInterviewScheduled SubmissionStatus = "interview_scheduled"
	StatusClientInterview    SubmissionStatus = "client_interview"
	StatusOfferLetter        SubmissionStatus = "offer_letter"
	StatusPlaced             SubmissionStatus = "placed"

	// StatusRejected sits outside the forward sequence: reachable from any
	// stage, terminal.
	StatusRejected SubmissionStatus = "rejected"
)

// statusSteps orders the forward pipeline 1-6. Rejected has no step.
var statusSteps = map[SubmissionStatus]int{
	StatusApplied:            1,
	StatusSubmission:         2,
	StatusInterviewScheduled: 3,
	StatusClientInterview:    4,
	StatusOfferLetter:        5,
	StatusPlaced:             6,
}

// IsValid reports whether s is a known pipeline status.
func (s SubmissionStatus) IsValid() bool {
	if s == StatusRejected {
		return true
	}
	_, ok := statusSteps[s]
	return ok
}

// Step returns the 1-6 position of a forward stage, or 0 for rejected and
// unknown values.
func (s SubmissionStatus) Step() int {
	return statusSteps[s]
}

// PipelineStatuses returns the forward stages in pipeline order, excluding
// rejected.
func PipelineStatuses() []SubmissionStatus {
	return []SubmissionStatus{
		StatusApplied,
		StatusSubmission,
		StatusInterviewScheduled,
		StatusClientInterview,
		StatusOfferLetter,
		StatusPlaced,
	}
}
