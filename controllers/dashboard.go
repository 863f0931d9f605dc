package controllers

import (
	"net/http"
	"time"

	"staffing-crm-api/config"
	"staffing-crm-api/models"
	"staffing-crm-api/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the analytics views. Routes using it sit behind
// the analytics-access middleware.
type DashboardHandler struct {
	Pipeline *services.PipelineService
}

func NewDashboardHandler(pipeline *services.PipelineService) *DashboardHandler {
	return &DashboardHandler{Pipeline: pipeline}
}

// GetPipelineSummary returns the per-stage counters and the conversion rate.
func (h *DashboardHandler) GetPipelineSummary(c *gin.Context) {
	stats, err := h.Pipeline.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compute pipeline summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"pipeline": stats,
	})
}

// GetDashboardStats returns the headline totals plus recent submissions.
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	stats := make(map[string]interface{})

	var totals struct {
		Consultants int64 `json:"consultants"`
		OpenJobs    int64 `json:"open_jobs"`
		Vendors     int64 `json:"vendors"`
		Submissions int64 `json:"submissions"`
	}

	config.DB.Model(&models.Consultant{}).
		Where("delete_at IS NULL").
		Count(&totals.Consultants)
	config.DB.Model(&models.JobRequirement{}).
		Where("status = ? AND delete_at IS NULL", models.JobStatusOpen).
		Count(&totals.OpenJobs)
	config.DB.Model(&models.Vendor{}).
		Where("is_active = ? AND delete_at IS NULL", true).
		Count(&totals.Vendors)
	config.DB.Model(&models.Submission{}).
		Count(&totals.Submissions)

	stats["totals"] = totals

	var recent []models.Submission
	if err := config.DB.
		Order("created_at DESC").
		Limit(10).
		Find(&recent).Error; err == nil {
		stats["recent_submissions"] = recent
	}

	pipeline, err := h.Pipeline.Stats()
	if err == nil {
		stats["pipeline"] = pipeline
	}

	stats["current_date"] = time.Now().Format("2006-01-02")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
