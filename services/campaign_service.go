package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log"
	"time"

	"staffing-crm-api/config"
	"staffing-crm-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign operation errors surfaced to the API layer.
var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrCampaignNotSendable = errors.New("campaign has already been sent")
	ErrNoRecipients        = errors.New("campaign has no recipients")
)

// CampaignService creates email campaigns targeted at consultants and
// delivers them through the SMTP mailer. The send function is swappable for
// tests.
type CampaignService struct {
	db   *gorm.DB
	send func(to []string, subject, html string) error
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{db: db, send: config.SendMail}
}

// CreateCampaignInput carries a new draft campaign and its target list.
type CreateCampaignInput struct {
	Name          string
	Subject       string
	BodyTemplate  string
	ConsultantIDs []string
	CreatedBy     int
}

// CampaignSendSummary reports per-recipient delivery results.
type CampaignSendSummary struct {
	CampaignID string `json:"campaign_id"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
}

// Create validates the body template up front and stores the draft campaign
// with one pending recipient row per targeted consultant.
func (s *CampaignService) Create(in *CreateCampaignInput) (*models.EmailCampaign, error) {
	if _, err := template.New("campaign").Parse(in.BodyTemplate); err != nil {
		return nil, fmt.Errorf("invalid body template: %w", err)
	}

	var consultants []models.Consultant
	if err := s.db.
		Where("consultant_id IN ? AND delete_at IS NULL", in.ConsultantIDs).
		Find(&consultants).Error; err != nil {
		return nil, err
	}
	if len(consultants) == 0 {
		return nil, ErrNoRecipients
	}

	now := time.Now()
	campaign := models.EmailCampaign{
		CampaignID:   uuid.New().String(),
		Name:         in.Name,
		Subject:      in.Subject,
		BodyTemplate: in.BodyTemplate,
		Status:       models.CampaignStatusDraft,
		CreatedBy:    in.CreatedBy,
		CreateAt:     &now,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&campaign).Error; err != nil {
			return err
		}
		for i := range consultants {
			recipient := models.CampaignRecipient{
				CampaignID:   campaign.CampaignID,
				ConsultantID: consultants[i].ConsultantID,
				Email:        consultants[i].Email,
				Status:       models.RecipientStatusPending,
			}
			if err := tx.Create(&recipient).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(campaign.CampaignID)
}

// Get returns one campaign with its recipients.
func (s *CampaignService) Get(campaignID string) (*models.EmailCampaign, error) {
	var campaign models.EmailCampaign
	if err := s.db.Preload("Recipients").
		Where("campaign_id = ?", campaignID).
		First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

// List returns all campaigns, newest first, without recipient detail.
func (s *CampaignService) List() ([]models.EmailCampaign, error) {
	var campaigns []models.EmailCampaign
	if err := s.db.Order("create_at DESC").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Send renders and delivers the campaign to every pending recipient, one
// message per consultant so template fields personalize per recipient. A
// delivery failure marks that recipient failed and moves on.
func (s *CampaignService) Send(campaignID string) (*CampaignSendSummary, error) {
	campaign, err := s.Get(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status == models.CampaignStatusSent {
		return nil, ErrCampaignNotSendable
	}

	if err := s.db.Model(&models.EmailCampaign{}).
		Where("campaign_id = ?", campaignID).
		Update("status", models.CampaignStatusSending).Error; err != nil {
		return nil, err
	}

	summary := &CampaignSendSummary{CampaignID: campaignID}
	for i := range campaign.Recipients {
		recipient := &campaign.Recipients[i]
		if recipient.Status == models.RecipientStatusSent {
			continue
		}

		var consultant models.Consultant
		if err := s.db.
			Where("consultant_id = ?", recipient.ConsultantID).
			First(&consultant).Error; err != nil {
			s.markRecipient(recipient, models.RecipientStatusFailed, err)
			summary.Failed++
			continue
		}

		body, err := renderCampaignBody(campaign.BodyTemplate, &consultant)
		if err != nil {
			s.markRecipient(recipient, models.RecipientStatusFailed, err)
			summary.Failed++
			continue
		}

		if err := s.send([]string{recipient.Email}, campaign.Subject, body); err != nil {
			log.Printf("Warning: campaign %s delivery to %s failed: %v", campaignID, recipient.Email, err)
			s.markRecipient(recipient, models.RecipientStatusFailed, err)
			summary.Failed++
			continue
		}

		s.markRecipient(recipient, models.RecipientStatusSent, nil)
		summary.Sent++
	}

	now := time.Now()
	if err := s.db.Model(&models.EmailCampaign{}).
		Where("campaign_id = ?", campaignID).
		Updates(map[string]interface{}{
			"status":  models.CampaignStatusSent,
			"sent_at": now,
		}).Error; err != nil {
		return summary, err
	}

	return summary, nil
}

func (s *CampaignService) markRecipient(recipient *models.CampaignRecipient, status string, cause error) {
	now := time.Now()
	updates := map[string]interface{}{"status": status}
	if status == models.RecipientStatusSent {
		updates["sent_at"] = now
	}
	if cause != nil {
		msg := cause.Error()
		updates["error_text"] = msg
	}
	if err := s.db.Model(&models.CampaignRecipient{}).
		Where("recipient_id = ?", recipient.RecipientID).
		Updates(updates).Error; err != nil {
		log.Printf("Warning: failed to record recipient state for %d: %v", recipient.RecipientID, err)
	}
}

// renderCampaignBody executes the campaign template against one consultant.
// Templates see the consultant's display fields, e.g. {{.FirstName}}.
func renderCampaignBody(bodyTemplate string, consultant *models.Consultant) (string, error) {
	tmpl, err := template.New("campaign").Parse(bodyTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, consultant); err != nil {
		return "", err
	}
	return buf.String(), nil
}
