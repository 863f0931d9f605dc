package controllers

import (
	"errors"
	"net/http"

	"staffing-crm-api/services"

	"github.com/gin-gonic/gin"
)

// CampaignHandler wraps the email campaign service.
type CampaignHandler struct {
	Campaigns *services.CampaignService
}

func NewCampaignHandler(campaigns *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{Campaigns: campaigns}
}

type CreateCampaignRequest struct {
	Name          string   `json:"name" binding:"required"`
	Subject       string   `json:"subject" binding:"required"`
	BodyTemplate  string   `json:"body_template" binding:"required"`
	ConsultantIDs []string `json:"consultant_ids" binding:"required,min=1"`
}

// GetCampaigns lists all campaigns.
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	campaigns, err := h.Campaigns.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch campaigns"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"campaigns": campaigns,
		"total":     len(campaigns),
	})
}

// GetCampaign returns one campaign with its recipient list.
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.Campaigns.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch campaign"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "campaign": campaign})
}

// CreateCampaign stores a draft campaign targeting the given consultants.
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	_, actorID := actorFromContext(c)
	campaign, err := h.Campaigns.Create(&services.CreateCampaignInput{
		Name:          req.Name,
		Subject:       req.Subject,
		BodyTemplate:  req.BodyTemplate,
		ConsultantIDs: req.ConsultantIDs,
		CreatedBy:     actorID,
	})
	if err != nil {
		if errors.Is(err, services.ErrNoRecipients) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No matching consultants for campaign"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to create campaign: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Campaign created",
		"campaign": campaign,
	})
}

// SendCampaign delivers a draft campaign to its pending recipients.
func (h *CampaignHandler) SendCampaign(c *gin.Context) {
	summary, err := h.Campaigns.Send(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Campaign not found"})
		case errors.Is(err, services.ErrCampaignNotSendable):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Campaign has already been sent"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send campaign"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Campaign sent",
		"summary": summary,
	})
}
