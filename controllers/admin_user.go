package controllers

import (
	"net/http"
	"time"

	"staffing-crm-api/config"
	"staffing-crm-api/models"
	"staffing-crm-api/utils"

	"github.com/gin-gonic/gin"
)

type AdminCreateUserRequest struct {
	UserFname       string `json:"user_fname" binding:"required"`
	UserLname       string `json:"user_lname" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	RoleID          int    `json:"role_id" binding:"required"`
	AnalyticsAccess bool   `json:"analytics_access"`
}

type AdminUpdateUserRequest struct {
	UserFname       *string `json:"user_fname"`
	UserLname       *string `json:"user_lname"`
	RoleID          *int    `json:"role_id"`
	AnalyticsAccess *bool   `json:"analytics_access"`
	IsActive        *bool   `json:"is_active"`
}

// AdminGetUsers lists platform users with their roles.
func AdminGetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Role").
		Where("delete_at IS NULL").
		Order("user_id ASC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
		"total":   len(users),
	})
}

// AdminCreateUser registers a platform user with a role and analytics flag.
func AdminCreateUser(c *gin.Context) {
	var req AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if ok, reason := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": reason})
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create user"})
		return
	}

	now := time.Now()
	user := models.User{
		UserFname:       utils.SanitizeInput(req.UserFname),
		UserLname:       utils.SanitizeInput(req.UserLname),
		Email:           req.Email,
		Password:        hashed,
		RoleID:          req.RoleID,
		AnalyticsAccess: req.AnalyticsAccess,
		IsActive:        true,
		CreateAt:        &now,
		UpdateAt:        &now,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created",
		"user":    user,
	})
}

// AdminUpdateUser changes role, analytics access or active state.
func AdminUpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.
		Where("user_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	now := time.Now()
	if req.UserFname != nil {
		user.UserFname = utils.SanitizeInput(*req.UserFname)
	}
	if req.UserLname != nil {
		user.UserLname = utils.SanitizeInput(*req.UserLname)
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}
	if req.AnalyticsAccess != nil {
		user.AnalyticsAccess = *req.AnalyticsAccess
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdateAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated",
		"user":    user,
	})
}

// AdminDeleteUser soft-deletes a platform user.
func AdminDeleteUser(c *gin.Context) {
	now := time.Now()
	result := config.DB.Model(&models.User{}).
		Where("user_id = ? AND delete_at IS NULL", c.Param("id")).
		Update("delete_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}

// AdminGetRoles lists assignable roles.
func AdminGetRoles(c *gin.Context) {
	var roles []models.Role
	if err := config.DB.Where("delete_at IS NULL").Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch roles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "roles": roles})
}
