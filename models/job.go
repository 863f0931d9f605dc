package models

import "time"

// Job requirement states.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusOnHold = "on_hold"
)

// JobRequirement is an open position at a client that consultants are
// submitted against.
type JobRequirement struct {
	JobID       string     `gorm:"primaryKey;column:job_id" json:"job_id"`
	JobTitle    string     `gorm:"column:job_title" json:"job_title"`
	Client      string     `gorm:"column:client" json:"client"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	Location    *string    `gorm:"column:location" json:"location,omitempty"`
	BillRateMin *float64   `gorm:"column:bill_rate_min" json:"bill_rate_min,omitempty"`
	BillRateMax *float64   `gorm:"column:bill_rate_max" json:"bill_rate_max,omitempty"`
	Status      string     `gorm:"column:status" json:"status"` // open|closed|on_hold
	OpenedAt    *time.Time `gorm:"column:opened_at" json:"opened_at,omitempty"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (JobRequirement) TableName() string {
	return "job_requirements"
}
