package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffing-crm-api/models"
	"staffing-crm-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", services.ErrSubmissionNotFound, http.StatusNotFound},
		{"invalid status", services.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid rate", services.ErrInvalidRate, http.StatusBadRequest},
		{"rate not confirmed", services.ErrRateNotConfirmed, http.StatusConflict},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := pipelineError(tc.err, "update submission status")
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, msg, "update submission status")
		})
	}
}

func TestPresentHistoriesReversesBothLogs(t *testing.T) {
	now := time.Now()
	sub := &models.Submission{
		StatusHistory: []models.StatusHistoryEntry{
			{HistoryID: 1, ToStatus: models.StatusApplied, ChangedDate: now.Add(-2 * time.Hour)},
			{HistoryID: 2, ToStatus: models.StatusSubmission, ChangedDate: now.Add(-time.Hour)},
			{HistoryID: 3, ToStatus: models.StatusPlaced, ChangedDate: now},
		},
		RateHistory: []models.RateHistoryEntry{
			{HistoryID: 1, NewRate: 60, RateType: models.RateTypeApplied},
			{HistoryID: 2, NewRate: 72, RateType: models.RateTypeNegotiated},
		},
	}

	presentHistories(sub)

	require.Len(t, sub.StatusHistory, 3)
	assert.Equal(t, 3, sub.StatusHistory[0].HistoryID, "most recent change first")
	assert.Equal(t, 1, sub.StatusHistory[2].HistoryID)

	require.Len(t, sub.RateHistory, 2)
	assert.Equal(t, models.RateTypeNegotiated, sub.RateHistory[0].RateType)
	assert.Equal(t, models.RateTypeApplied, sub.RateHistory[1].RateType)
}

func TestPresentHistoriesHandlesEmptyLogs(t *testing.T) {
	sub := &models.Submission{}
	presentHistories(sub)
	assert.Empty(t, sub.StatusHistory)
	assert.Empty(t, sub.RateHistory)
}

func TestCreateSubmissionRejectsOutOfBandAppliedRate(t *testing.T) {
	// Validation fires before the pipeline service is touched.
	h := &SubmissionHandler{}

	rec := postJSON(t, h.CreateSubmission, gin.H{
		"consultant_id": "c1",
		"vendor_id":     "v1",
		"job_id":        "j1",
		"applied_rate":  20000,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "positive hourly rate")
}

func TestUpdateRateRejectsOutOfBandRate(t *testing.T) {
	h := &SubmissionHandler{}

	for _, rate := range []float64{-5, 20000} {
		rec := postJSON(t, h.UpdateRate, gin.H{"new_rate": rate})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "rate %v", rate)
	}
}

func TestActorFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("prefers display name", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("actorName", "Ada Park")
		c.Set("email", "ada@example.com")
		c.Set("userID", 7)

		actor, actorID := actorFromContext(c)
		assert.Equal(t, "Ada Park", actor)
		assert.Equal(t, 7, actorID)
	})

	t.Run("falls back to email", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("email", "ada@example.com")

		actor, actorID := actorFromContext(c)
		assert.Equal(t, "ada@example.com", actor)
		assert.Zero(t, actorID)
	})

	t.Run("defaults to system", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		actor, _ := actorFromContext(c)
		assert.Equal(t, "system", actor)
	})
}
