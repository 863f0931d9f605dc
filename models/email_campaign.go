package models

import "time"

// Campaign lifecycle states.
const (
	CampaignStatusDraft   = "draft"
	CampaignStatusSending = "sending"
	CampaignStatusSent    = "sent"
)

// Per-recipient delivery states.
const (
	RecipientStatusPending = "pending"
	RecipientStatusSent    = "sent"
	RecipientStatusFailed  = "failed"
)

// EmailCampaign is an outbound mailing to a set of consultants. BodyTemplate
// is an html/template body with access to the recipient's consultant fields.
type EmailCampaign struct {
	CampaignID   string     `gorm:"primaryKey;column:campaign_id" json:"campaign_id"`
	Name         string     `gorm:"column:name" json:"name"`
	Subject      string     `gorm:"column:subject" json:"subject"`
	BodyTemplate string     `gorm:"column:body_template" json:"body_template"`
	Status       string     `gorm:"column:status" json:"status"` // draft|sending|sent
	CreatedBy    int        `gorm:"column:created_by" json:"created_by"`
	SentAt       *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`

	Recipients []CampaignRecipient `gorm:"foreignKey:CampaignID;references:CampaignID" json:"recipients,omitempty"`
}

type CampaignRecipient struct {
	RecipientID  int        `gorm:"primaryKey;column:recipient_id" json:"recipient_id"`
	CampaignID   string     `gorm:"column:campaign_id" json:"campaign_id"`
	ConsultantID string     `gorm:"column:consultant_id" json:"consultant_id"`
	Email        string     `gorm:"column:email" json:"email"`
	Status       string     `gorm:"column:status" json:"status"` // pending|sent|failed
	ErrorText    *string    `gorm:"column:error_text" json:"error_text,omitempty"`
	SentAt       *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
}

func (EmailCampaign) TableName() string {
	return "email_campaigns"
}

func (CampaignRecipient) TableName() string {
	return "campaign_recipients"
}
