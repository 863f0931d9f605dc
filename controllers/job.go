package controllers

import (
	"net/http"
	"time"

	"staffing-crm-api/config"
	"staffing-crm-api/models"
	"staffing-crm-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobRequest struct {
	JobTitle    string   `json:"job_title" binding:"required"`
	Client      string   `json:"client" binding:"required"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	BillRateMin *float64 `json:"bill_rate_min"`
	BillRateMax *float64 `json:"bill_rate_max"`
	Status      string   `json:"status"`
}

// GetJobs returns job requirements, open ones by default.
func GetJobs(c *gin.Context) {
	var jobs []models.JobRequirement
	query := config.DB.Where("delete_at IS NULL")

	status := c.Query("status")
	switch status {
	case "":
		query = query.Where("status = ?", models.JobStatusOpen)
	case "all":
		// no status filter
	default:
		query = query.Where("status = ?", status)
	}
	if client := utils.SanitizeInput(c.Query("client")); client != "" {
		query = query.Where("client LIKE ?", "%"+client+"%")
	}

	if err := query.Order("create_at DESC").Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch job requirements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
		"total":   len(jobs),
	})
}

// GetJob returns one job requirement by id.
func GetJob(c *gin.Context) {
	var job models.JobRequirement
	if err := config.DB.
		Where("job_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&job).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Job requirement not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

// CreateJob opens a new requirement.
func CreateJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = models.JobStatusOpen
	}

	now := time.Now()
	job := models.JobRequirement{
		JobID:       uuid.New().String(),
		JobTitle:    utils.SanitizeInput(req.JobTitle),
		Client:      utils.SanitizeInput(req.Client),
		Description: req.Description,
		Location:    req.Location,
		BillRateMin: req.BillRateMin,
		BillRateMax: req.BillRateMax,
		Status:      status,
		OpenedAt:    &now,
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if err := config.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create job requirement"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job requirement created",
		"job":     job,
	})
}

// UpdateJob updates fields on one requirement, including open/closed state.
func UpdateJob(c *gin.Context) {
	var job models.JobRequirement
	if err := config.DB.
		Where("job_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&job).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Job requirement not found"})
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	now := time.Now()
	job.JobTitle = utils.SanitizeInput(req.JobTitle)
	job.Client = utils.SanitizeInput(req.Client)
	job.Description = req.Description
	job.Location = req.Location
	job.BillRateMin = req.BillRateMin
	job.BillRateMax = req.BillRateMax
	if req.Status != "" {
		job.Status = req.Status
	}
	job.UpdateAt = &now

	if err := config.DB.Save(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update job requirement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job requirement updated",
		"job":     job,
	})
}

// DeleteJob soft-deletes a requirement.
func DeleteJob(c *gin.Context) {
	now := time.Now()
	result := config.DB.Model(&models.JobRequirement{}).
		Where("job_id = ? AND delete_at IS NULL", c.Param("id")).
		Update("delete_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete job requirement"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Job requirement not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job requirement deleted"})
}
