package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionStatusValidity(t *testing.T) {
	for _, status := range PipelineStatuses() {
		assert.True(t, status.IsValid(), "stage %s should be valid", status)
	}
	assert.True(t, StatusRejected.IsValid())

	assert.False(t, SubmissionStatus("archived").IsValid())
	assert.False(t, SubmissionStatus("").IsValid())
}

func TestSubmissionStatusSteps(t *testing.T) {
	want := map[SubmissionStatus]int{
		StatusApplied:            1,
		StatusSubmission:         2,
		StatusInterviewScheduled: 3,
		StatusClientInterview:    4,
		StatusOfferLetter:        5,
		StatusPlaced:             6,
	}
	for status, step := range want {
		assert.Equal(t, step, status.Step(), "stage %s", status)
	}

	assert.Zero(t, StatusRejected.Step(), "rejected sits outside the forward sequence")
}

func TestPipelineStatusesOrdered(t *testing.T) {
	stages := PipelineStatuses()
	for i := 1; i < len(stages); i++ {
		assert.Equal(t, stages[i-1].Step()+1, stages[i].Step())
	}
}
