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

type VendorRequest struct {
	VendorName   string  `json:"vendor_name" binding:"required"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Tier         int     `json:"tier"`
	IsActive     *bool   `json:"is_active"`
	Notes        *string `json:"notes"`
}

// GetVendors returns vendors, active only unless ?include_inactive=true.
func GetVendors(c *gin.Context) {
	var vendors []models.Vendor
	query := config.DB.Where("delete_at IS NULL")

	if c.Query("include_inactive") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if search := utils.SanitizeInput(c.Query("search")); search != "" {
		query = query.Where("vendor_name LIKE ?", "%"+search+"%")
	}

	if err := query.Order("vendor_name ASC").Find(&vendors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch vendors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"vendors": vendors,
		"total":   len(vendors),
	})
}

// GetVendor returns one vendor by id.
func GetVendor(c *gin.Context) {
	var vendor models.Vendor
	if err := config.DB.
		Where("vendor_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Vendor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "vendor": vendor})
}

// CreateVendor registers a vendor relationship.
func CreateVendor(c *gin.Context) {
	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	vendor := models.Vendor{
		VendorID:     uuid.New().String(),
		VendorName:   utils.SanitizeInput(req.VendorName),
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Tier:         req.Tier,
		IsActive:     isActive,
		Notes:        req.Notes,
		CreateAt:     &now,
		UpdateAt:     &now,
	}

	if err := config.DB.Create(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create vendor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Vendor created",
		"vendor":  vendor,
	})
}

// UpdateVendor updates one vendor's fields.
func UpdateVendor(c *gin.Context) {
	var vendor models.Vendor
	if err := config.DB.
		Where("vendor_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Vendor not found"})
		return
	}

	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	now := time.Now()
	vendor.VendorName = utils.SanitizeInput(req.VendorName)
	vendor.ContactName = req.ContactName
	vendor.ContactEmail = req.ContactEmail
	vendor.ContactPhone = req.ContactPhone
	vendor.Tier = req.Tier
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}
	vendor.Notes = req.Notes
	vendor.UpdateAt = &now

	if err := config.DB.Save(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update vendor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vendor updated",
		"vendor":  vendor,
	})
}

// DeleteVendor soft-deletes a vendor.
func DeleteVendor(c *gin.Context) {
	now := time.Now()
	result := config.DB.Model(&models.Vendor{}).
		Where("vendor_id = ? AND delete_at IS NULL", c.Param("id")).
		Update("delete_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete vendor"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Vendor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vendor deleted"})
}
