package models

import "time"

// Consultant is a candidate on the bench or in the market.
type Consultant struct {
	ConsultantID    string     `gorm:"primaryKey;column:consultant_id" json:"consultant_id"`
	FirstName       string     `gorm:"column:first_name" json:"first_name"`
	LastName        string     `gorm:"column:last_name" json:"last_name"`
	Email           string     `gorm:"column:email;unique" json:"email"`
	Phone           *string    `gorm:"column:phone" json:"phone,omitempty"`
	Skills          *string    `gorm:"column:skills" json:"skills,omitempty"`
	ExperienceYears int        `gorm:"column:experience_years" json:"experience_years"`
	Availability    string     `gorm:"column:availability" json:"availability"` // available|engaged|unavailable
	ExpectedRate    *float64   `gorm:"column:expected_rate" json:"expected_rate,omitempty"`
	Location        *string    `gorm:"column:location" json:"location,omitempty"`
	WorkAuth        *string    `gorm:"column:work_auth" json:"work_auth,omitempty"`
	CreateAt        *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt        *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (Consultant) TableName() string {
	return "consultants"
}

// FullName joins first and last name for display.
func (c *Consultant) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
