package models

import "time"

// StatusHistoryEntry is an immutable record of one status transition.
// FromStatus is nil only for the entry written at submission creation.
type StatusHistoryEntry struct {
	HistoryID    int               `gorm:"primaryKey;column:history_id" json:"history_id"`
	SubmissionID string            `gorm:"column:submission_id" json:"submission_id"`
	FromStatus   *SubmissionStatus `gorm:"column:from_status" json:"from_status"`
	ToStatus     SubmissionStatus  `gorm:"column:to_status" json:"to_status"`
	ChangedBy    string            `gorm:"column:changed_by" json:"changed_by"`
	ChangedDate  time.Time         `gorm:"column:changed_date" json:"changed_date"`
	Notes        *string           `gorm:"column:notes" json:"notes,omitempty"`
}

func (StatusHistoryEntry) TableName() string {
	return "status_history"
}
