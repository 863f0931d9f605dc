package controllers

import (
	"errors"
	"net/http"
	"time"

	"staffing-crm-api/models"
	"staffing-crm-api/services"
	"staffing-crm-api/utils"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler wraps the pipeline aggregate store. It is constructed at
// the composition root and injected, so handlers never reach for global
// state to mutate submissions.
type SubmissionHandler struct {
	Pipeline *services.PipelineService
}

func NewSubmissionHandler(pipeline *services.PipelineService) *SubmissionHandler {
	return &SubmissionHandler{Pipeline: pipeline}
}

type CreateSubmissionRequest struct {
	ConsultantID  string   `json:"consultant_id" binding:"required"`
	VendorID      string   `json:"vendor_id" binding:"required"`
	JobID         string   `json:"job_id" binding:"required"`
	VendorContact *string  `json:"vendor_contact"`
	AppliedRate   float64  `json:"applied_rate" binding:"required,gt=0"`
	Notes         *string  `json:"notes"`
}

type StatusChangeRequest struct {
	Status        models.SubmissionStatus `json:"status" binding:"required"`
	Notes         *string                 `json:"notes"`
	InterviewDate *time.Time              `json:"interview_date"`
	OfferDetails  *string                 `json:"offer_details"`
}

type RateChangeRequest struct {
	NewRate       float64 `json:"new_rate" binding:"required"`
	Reason        *string `json:"reason"`
	VendorContact *string `json:"vendor_contact"`
}

// GetSubmissions returns the hydrated collection, optionally filtered to one
// pipeline stage via ?status=.
func (h *SubmissionHandler) GetSubmissions(c *gin.Context) {
	var (
		subs []models.Submission
		err  error
	)

	if status := c.Query("status"); status != "" {
		subs, err = h.Pipeline.ListByStatus(models.SubmissionStatus(status))
	} else {
		subs, err = h.Pipeline.List()
	}
	if err != nil {
		status, msg := pipelineError(err, "fetch submissions")
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	for i := range subs {
		presentHistories(&subs[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": subs,
		"total":       len(subs),
	})
}

// GetSubmission returns one hydrated submission.
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	sub, err := h.Pipeline.Get(c.Param("id"))
	if err != nil {
		status, msg := pipelineError(err, "fetch submission")
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	presentHistories(sub)
	c.JSON(http.StatusOK, gin.H{"success": true, "submission": sub})
}

// CreateSubmission opens a new candidacy at the `applied` stage.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !utils.ValidateHourlyRate(req.AppliedRate) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Applied rate must be a positive hourly rate"})
		return
	}

	actor, actorID := actorFromContext(c)
	sub, err := h.Pipeline.Create(&services.CreateSubmissionInput{
		ConsultantID:  req.ConsultantID,
		VendorID:      req.VendorID,
		JobID:         req.JobID,
		VendorContact: req.VendorContact,
		AppliedRate:   req.AppliedRate,
		Notes:         req.Notes,
		Actor:         actor,
		ActorID:       actorID,
	})
	if err != nil {
		status, msg := pipelineError(err, "create submission")
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	presentHistories(sub)
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Submission created",
		"submission": sub,
	})
}

// UpdateStatus moves a submission through the pipeline. Entering
// `submission` without a negotiated rate is refused with a conflict.
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	actor, _ := actorFromContext(c)
	sub, err := h.Pipeline.UpdateStatus(c.Param("id"), &services.StatusChangeInput{
		NewStatus:     req.Status,
		Notes:         req.Notes,
		Actor:         actor,
		InterviewDate: req.InterviewDate,
		OfferDetails:  req.OfferDetails,
	})
	if err != nil {
		status, msg := pipelineError(err, "update submission status")
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	presentHistories(sub)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Status updated",
		"submission": sub,
	})
}

// UpdateRate records a negotiated rate. The response carries the advisory
// delta against the applied rate for operator feedback; it never blocks.
func (h *SubmissionHandler) UpdateRate(c *gin.Context) {
	var req RateChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !utils.ValidateHourlyRate(req.NewRate) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "New rate must be a positive hourly rate"})
		return
	}

	actor, _ := actorFromContext(c)
	sub, err := h.Pipeline.UpdateRate(c.Param("id"), &services.RateChangeInput{
		NewRate:       req.NewRate,
		Reason:        req.Reason,
		VendorContact: req.VendorContact,
		Actor:         actor,
	})
	if err != nil {
		status, msg := pipelineError(err, "update submission rate")
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	deltaPct, significant := services.RateDelta(sub.AppliedRate, req.NewRate)

	presentHistories(sub)
	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"message":            "Rate updated",
		"submission":         sub,
		"rate_delta_pct":     deltaPct,
		"significant_change": significant,
	})
}

// GetHistory returns both audit logs for one submission, most recent first.
func (h *SubmissionHandler) GetHistory(c *gin.Context) {
	sub, err := h.Pipeline.Get(c.Param("id"))
	if err != nil {
		status, msg := pipelineError(err, "fetch submission history")
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	presentHistories(sub)
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"submission_id":  sub.SubmissionID,
		"status_history": sub.StatusHistory,
		"rate_history":   sub.RateHistory,
	})
}

// GetQueue groups the collection by stage for the pipeline board view.
func (h *SubmissionHandler) GetQueue(c *gin.Context) {
	subs, err := h.Pipeline.List()
	if err != nil {
		status, msg := pipelineError(err, "fetch submission queue")
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	queue := make(map[models.SubmissionStatus][]models.Submission)
	for _, status := range models.PipelineStatuses() {
		queue[status] = services.FilterByStatus(subs, status)
	}
	queue[models.StatusRejected] = services.FilterByStatus(subs, models.StatusRejected)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"queue":   queue,
		"total":   len(subs),
	})
}

// presentHistories reverses both logs in place so API consumers see the most
// recent entry first. Storage order stays ascending.
func presentHistories(sub *models.Submission) {
	for i, j := 0, len(sub.StatusHistory)-1; i < j; i, j = i+1, j-1 {
		sub.StatusHistory[i], sub.StatusHistory[j] = sub.StatusHistory[j], sub.StatusHistory[i]
	}
	for i, j := 0, len(sub.RateHistory)-1; i < j; i, j = i+1, j-1 {
		sub.RateHistory[i], sub.RateHistory[j] = sub.RateHistory[j], sub.RateHistory[i]
	}
}

// pipelineError maps service errors to an HTTP status and a message naming
// the failed action.
func pipelineError(err error, action string) (int, string) {
	switch {
	case errors.Is(err, services.ErrSubmissionNotFound):
		return http.StatusNotFound, "Failed to " + action + ": submission not found"
	case errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest, "Failed to " + action + ": " + services.ErrInvalidStatus.Error()
	case errors.Is(err, services.ErrInvalidRate):
		return http.StatusBadRequest, "Failed to " + action + ": " + services.ErrInvalidRate.Error()
	case errors.Is(err, services.ErrRateNotConfirmed):
		return http.StatusConflict, "Failed to " + action + ": " + services.ErrRateNotConfirmed.Error()
	default:
		return http.StatusInternalServerError, "Failed to " + action
	}
}

func actorFromContext(c *gin.Context) (string, int) {
	actor := "system"
	if name, ok := c.Get("actorName"); ok {
		if s, ok := name.(string); ok && s != "" {
			actor = s
		}
	} else if email, ok := c.Get("email"); ok {
		if s, ok := email.(string); ok && s != "" {
			actor = s
		}
	}

	actorID := 0
	if id, ok := c.Get("userID"); ok {
		if n, ok := id.(int); ok {
			actorID = n
		}
	}
	return actor, actorID
}
