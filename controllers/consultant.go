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

type ConsultantRequest struct {
	FirstName       string   `json:"first_name" binding:"required"`
	LastName        string   `json:"last_name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           *string  `json:"phone"`
	Skills          *string  `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Availability    string   `json:"availability"`
	ExpectedRate    *float64 `json:"expected_rate"`
	Location        *string  `json:"location"`
	WorkAuth        *string  `json:"work_auth"`
}

// GetConsultants returns the consultant bench, with optional availability
// and free-text search filters.
func GetConsultants(c *gin.Context) {
	var consultants []models.Consultant
	query := config.DB.Where("delete_at IS NULL")

	if availability := c.Query("availability"); availability != "" {
		query = query.Where("availability = ?", availability)
	}
	if search := utils.SanitizeInput(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR skills LIKE ? OR email LIKE ?",
			like, like, like, like,
		)
	}

	if err := query.Order("create_at DESC").Find(&consultants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch consultants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"consultants": consultants,
		"total":       len(consultants),
	})
}

// GetConsultant returns one consultant by id.
func GetConsultant(c *gin.Context) {
	var consultant models.Consultant
	if err := config.DB.
		Where("consultant_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&consultant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Consultant not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "consultant": consultant})
}

// CreateConsultant adds a consultant to the bench.
func CreateConsultant(c *gin.Context) {
	var req ConsultantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	availability := req.Availability
	if availability == "" {
		availability = "available"
	}

	now := time.Now()
	consultant := models.Consultant{
		ConsultantID:    uuid.New().String(),
		FirstName:       utils.SanitizeInput(req.FirstName),
		LastName:        utils.SanitizeInput(req.LastName),
		Email:           req.Email,
		Phone:           req.Phone,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Availability:    availability,
		ExpectedRate:    req.ExpectedRate,
		Location:        req.Location,
		WorkAuth:        req.WorkAuth,
		CreateAt:        &now,
		UpdateAt:        &now,
	}

	if err := config.DB.Create(&consultant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create consultant"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Consultant created",
		"consultant": consultant,
	})
}

// UpdateConsultant updates profile fields on one consultant.
func UpdateConsultant(c *gin.Context) {
	var consultant models.Consultant
	if err := config.DB.
		Where("consultant_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&consultant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Consultant not found"})
		return
	}

	var req ConsultantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	now := time.Now()
	consultant.FirstName = utils.SanitizeInput(req.FirstName)
	consultant.LastName = utils.SanitizeInput(req.LastName)
	consultant.Email = req.Email
	consultant.Phone = req.Phone
	consultant.Skills = req.Skills
	consultant.ExperienceYears = req.ExperienceYears
	if req.Availability != "" {
		consultant.Availability = req.Availability
	}
	consultant.ExpectedRate = req.ExpectedRate
	consultant.Location = req.Location
	consultant.WorkAuth = req.WorkAuth
	consultant.UpdateAt = &now

	if err := config.DB.Save(&consultant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update consultant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Consultant updated",
		"consultant": consultant,
	})
}

// DeleteConsultant soft-deletes a consultant. Submissions referencing them
// are kept; the pipeline never deletes.
func DeleteConsultant(c *gin.Context) {
	now := time.Now()
	result := config.DB.Model(&models.Consultant{}).
		Where("consultant_id = ? AND delete_at IS NULL", c.Param("id")).
		Update("delete_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete consultant"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Consultant not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Consultant deleted"})
}
