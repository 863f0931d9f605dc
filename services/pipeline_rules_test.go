package services

import (
	"testing"

	"staffing-crm-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratePtr(v float64) *float64 { return &v }

func TestCanTransitionRequiresNegotiatedRateForSubmission(t *testing.T) {
	sub := &models.Submission{Status: models.StatusApplied, AppliedRate: 60}

	err := CanTransition(sub, models.StatusSubmission)
	require.ErrorIs(t, err, ErrRateNotConfirmed)

	sub.SubmissionRate = ratePtr(0)
	err = CanTransition(sub, models.StatusSubmission)
	require.ErrorIs(t, err, ErrRateNotConfirmed)

	sub.SubmissionRate = ratePtr(72)
	require.NoError(t, CanTransition(sub, models.StatusSubmission))
}

func TestCanTransitionAllowsOutOfOrderMoves(t *testing.T) {
	sub := &models.Submission{Status: models.StatusApplied, AppliedRate: 60}

	// Forward jump past intermediate stages.
	require.NoError(t, CanTransition(sub, models.StatusPlaced))

	// Backward move.
	sub.Status = models.StatusOfferLetter
	require.NoError(t, CanTransition(sub, models.StatusInterviewScheduled))

	// Rejected from anywhere.
	for _, status := range models.PipelineStatuses() {
		sub.Status = status
		require.NoError(t, CanTransition(sub, models.StatusRejected))
	}
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	sub := &models.Submission{Status: models.StatusApplied}
	require.ErrorIs(t, CanTransition(sub, "archived"), ErrInvalidStatus)
}

func TestRateDeltaFlagsSignificantChanges(t *testing.T) {
	pct, significant := RateDelta(60, 72)
	assert.InDelta(t, 20.0, pct, 0.0001)
	assert.False(t, significant, "exactly 20%% is not beyond the threshold")

	pct, significant = RateDelta(60, 75)
	assert.InDelta(t, 25.0, pct, 0.0001)
	assert.True(t, significant)

	pct, significant = RateDelta(60, 45)
	assert.InDelta(t, -25.0, pct, 0.0001)
	assert.True(t, significant)

	pct, significant = RateDelta(0, 75)
	assert.Zero(t, pct)
	assert.False(t, significant)
}

func TestComputePipelineStatsEmptyCollection(t *testing.T) {
	stats := ComputePipelineStats(nil)
	assert.Zero(t, stats.All)
	assert.Zero(t, stats.ConversionRate, "empty collection must yield 0, not a division error")
}

func TestComputePipelineStatsCountsAndConversion(t *testing.T) {
	subs := []models.Submission{
		{Status: models.StatusApplied},
		{Status: models.StatusApplied},
		{Status: models.StatusSubmission},
		{Status: models.StatusClientInterview},
		{Status: models.StatusPlaced},
		{Status: models.StatusRejected},
		{Status: models.StatusRejected},
		{Status: models.StatusPlaced},
	}

	stats := ComputePipelineStats(subs)
	assert.Equal(t, 8, stats.All)
	assert.Equal(t, 2, stats.Applied)
	assert.Equal(t, 1, stats.Submission)
	assert.Equal(t, 0, stats.InterviewScheduled)
	assert.Equal(t, 1, stats.ClientInterview)
	assert.Equal(t, 2, stats.Placed)
	assert.Equal(t, 2, stats.Rejected)
	assert.InDelta(t, 25.0, stats.ConversionRate, 0.0001)
}

func TestFilterByStatus(t *testing.T) {
	subs := []models.Submission{
		{SubmissionID: "a", Status: models.StatusApplied},
		{SubmissionID: "b", Status: models.StatusPlaced},
		{SubmissionID: "c", Status: models.StatusApplied},
	}

	applied := FilterByStatus(subs, models.StatusApplied)
	require.Len(t, applied, 2)
	assert.Equal(t, "a", applied[0].SubmissionID)
	assert.Equal(t, "c", applied[1].SubmissionID)

	assert.Empty(t, FilterByStatus(subs, models.StatusRejected))
}
