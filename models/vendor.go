package models

import "time"

// Vendor is a staffing intermediary submissions are routed through.
type Vendor struct {
	VendorID     string     `gorm:"primaryKey;column:vendor_id" json:"vendor_id"`
	VendorName   string     `gorm:"column:vendor_name" json:"vendor_name"`
	ContactName  *string    `gorm:"column:contact_name" json:"contact_name,omitempty"`
	ContactEmail *string    `gorm:"column:contact_email" json:"contact_email,omitempty"`
	ContactPhone *string    `gorm:"column:contact_phone" json:"contact_phone,omitempty"`
	Tier         int        `gorm:"column:tier" json:"tier"`
	IsActive     bool       `gorm:"column:is_active" json:"is_active"`
	Notes        *string    `gorm:"column:notes" json:"notes,omitempty"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (Vendor) TableName() string {
	return "vendors"
}
