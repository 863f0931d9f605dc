package models

import "time"

// Submission is one consultant's candidacy for one job through one vendor.
// The status column is a cached projection of the status history tail; the
// history rows are the authoritative timeline.
type Submission struct {
	SubmissionID         string           `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	ConsultantID         string           `gorm:"column:consultant_id" json:"consultant_id"`
	VendorID             string           `gorm:"column:vendor_id" json:"vendor_id"`
	JobID                string           `gorm:"column:job_id" json:"job_id"`
	VendorContact        *string          `gorm:"column:vendor_contact" json:"vendor_contact,omitempty"`
	SubmissionDate       time.Time        `gorm:"column:submission_date" json:"submission_date"`
	Status               SubmissionStatus `gorm:"column:status" json:"status"`
	AppliedRate          float64          `gorm:"column:applied_rate" json:"applied_rate"`
	SubmissionRate       *float64         `gorm:"column:submission_rate" json:"submission_rate,omitempty"`
	RateConfirmationDate *time.Time       `gorm:"column:rate_confirmation_date" json:"rate_confirmation_date,omitempty"`
	InterviewDate        *time.Time       `gorm:"column:interview_date" json:"interview_date,omitempty"`
	OfferDetails         *string          `gorm:"column:offer_details" json:"offer_details,omitempty"`
	Notes                *string          `gorm:"column:notes" json:"notes,omitempty"`
	StatusChangedBy      *string          `gorm:"column:status_changed_by" json:"status_changed_by,omitempty"`
	StatusChangedDate    *time.Time       `gorm:"column:status_changed_date" json:"status_changed_date,omitempty"`
	CreatedBy            int              `gorm:"column:created_by" json:"created_by"`
	CreatedAt            time.Time        `gorm:"column:created_at" json:"created_at"`

	// Display projections joined from the owning entities at read time.
	// Never written back and never used for business logic.
	ConsultantName string `gorm:"->;-:migration;column:consultant_name" json:"consultant_name,omitempty"`
	VendorName     string `gorm:"->;-:migration;column:vendor_name" json:"vendor_name,omitempty"`
	JobTitle       string `gorm:"->;-:migration;column:job_title" json:"job_title,omitempty"`
	Client         string `gorm:"->;-:migration;column:client" json:"client,omitempty"`

	// Append-only logs, stored ascending by changed_date.
	StatusHistory []StatusHistoryEntry `gorm:"foreignKey:SubmissionID;references:SubmissionID" json:"status_history,omitempty"`
	RateHistory   []RateHistoryEntry   `gorm:"foreignKey:SubmissionID;references:SubmissionID" json:"rate_history,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}
