package models

import "time"

// Rate history entry types. The first entry for any submission is always
// `applied`; every later entry is `negotiated`.
const (
	RateTypeApplied    = "applied"
	RateTypeNegotiated = "negotiated"
)

// RateHistoryEntry is an immutable record of one rate assignment.
// OldRate is nil only for the `applied` entry written at creation.
type RateHistoryEntry struct {
	HistoryID    int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	SubmissionID string    `gorm:"column:submission_id" json:"submission_id"`
	OldRate      *float64  `gorm:"column:old_rate" json:"old_rate"`
	NewRate      float64   `gorm:"column:new_rate" json:"new_rate"`
	ChangedBy    string    `gorm:"column:changed_by" json:"changed_by"`
	ChangedDate  time.Time `gorm:"column:changed_date" json:"changed_date"`
	RateType     string    `gorm:"column:rate_type" json:"rate_type"`
	Reason       *string   `gorm:"column:reason" json:"reason,omitempty"`
}

func (RateHistoryEntry) TableName() string {
	return "rate_history"
}
