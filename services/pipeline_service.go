package services

import (
	"errors"
	"log"
	"time"

	"staffing-crm-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PipelineService is the aggregate store for candidate submissions. Every
// mutation goes through it so the status column and the history logs are
// written in the same transaction, and each mutation returns the re-fetched
// aggregate (read-your-writes over incremental patching).
type PipelineService struct {
	db *gorm.DB
}

func NewPipelineService(db *gorm.DB) *PipelineService {
	return &PipelineService{db: db}
}

// CreateSubmissionInput carries the fields of a new candidacy. Status is
// forced to `applied`; the caller cannot choose it.
type CreateSubmissionInput struct {
	ConsultantID  string
	VendorID      string
	JobID         string
	VendorContact *string
	AppliedRate   float64
	Notes         *string
	Actor         string
	ActorID       int
}

// StatusChangeInput carries one requested transition. InterviewDate and
// OfferDetails are optional companions for the matching stages.
type StatusChangeInput struct {
	NewStatus     models.SubmissionStatus
	Notes         *string
	Actor         string
	InterviewDate *time.Time
	OfferDetails  *string
}

// RateChangeInput carries one negotiated rate assignment.
type RateChangeInput struct {
	NewRate       float64
	Reason        *string
	VendorContact *string
	Actor         string
}

// Create inserts the submission row plus its initial status and rate history
// entries as one transaction, then returns the hydrated aggregate.
func (s *PipelineService) Create(in *CreateSubmissionInput) (*models.Submission, error) {
	if in.AppliedRate <= 0 {
		return nil, ErrInvalidRate
	}

	now := time.Now()
	sub := models.Submission{
		SubmissionID:      uuid.New().String(),
		ConsultantID:      in.ConsultantID,
		VendorID:          in.VendorID,
		JobID:             in.JobID,
		VendorContact:     in.VendorContact,
		SubmissionDate:    now,
		Status:            models.StatusApplied,
		AppliedRate:       in.AppliedRate,
		Notes:             in.Notes,
		StatusChangedBy:   &in.Actor,
		StatusChangedDate: &now,
		CreatedBy:         in.ActorID,
		CreatedAt:         now,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		history := models.StatusHistoryEntry{
			SubmissionID: sub.SubmissionID,
			FromStatus:   nil,
			ToStatus:     models.StatusApplied,
			ChangedBy:    in.Actor,
			ChangedDate:  now,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}
		rate := models.RateHistoryEntry{
			SubmissionID: sub.SubmissionID,
			OldRate:      nil,
			NewRate:      in.AppliedRate,
			ChangedBy:    in.Actor,
			ChangedDate:  now,
			RateType:     models.RateTypeApplied,
		}
		return tx.Create(&rate).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(sub.SubmissionID)
}

// UpdateStatus applies one validated transition: status, audit columns and
// the history entry are written together. rate_confirmation_date is stamped
// only the first time the submission enters the `submission` stage.
func (s *PipelineService) UpdateStatus(submissionID string, in *StatusChangeInput) (*models.Submission, error) {
	sub, err := s.load(submissionID)
	if err != nil {
		return nil, err
	}
	if err := CanTransition(sub, in.NewStatus); err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":              in.NewStatus,
		"status_changed_by":   in.Actor,
		"status_changed_date": now,
	}
	if in.NewStatus == models.StatusSubmission && sub.RateConfirmationDate == nil {
		updates["rate_confirmation_date"] = now
	}
	if in.InterviewDate != nil {
		updates["interview_date"] = *in.InterviewDate
	}
	if in.OfferDetails != nil {
		updates["offer_details"] = *in.OfferDetails
	}

	fromStatus := sub.Status
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Submission{}).
			Where("submission_id = ?", submissionID).
			Updates(updates).Error; err != nil {
			return err
		}
		history := models.StatusHistoryEntry{
			SubmissionID: submissionID,
			FromStatus:   &fromStatus,
			ToStatus:     in.NewStatus,
			ChangedBy:    in.Actor,
			ChangedDate:  now,
			Notes:        in.Notes,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}

	if err := notifyStatusChange(s.db, sub, in.NewStatus, in.Actor); err != nil {
		log.Printf("Warning: failed to create status notification for %s: %v", submissionID, err)
	}

	return s.Get(submissionID)
}

// UpdateRate records a negotiated rate without touching status. The prior
// submission rate (or the applied rate when none was negotiated yet) is
// preserved as old_rate on the history entry.
func (s *PipelineService) UpdateRate(submissionID string, in *RateChangeInput) (*models.Submission, error) {
	if in.NewRate <= 0 {
		return nil, ErrInvalidRate
	}
	sub, err := s.load(submissionID)
	if err != nil {
		return nil, err
	}

	oldRate := sub.AppliedRate
	if sub.SubmissionRate != nil {
		oldRate = *sub.SubmissionRate
	}

	now := time.Now()
	updates := map[string]interface{}{
		"submission_rate": in.NewRate,
	}
	if in.VendorContact != nil {
		updates["vendor_contact"] = *in.VendorContact
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Submission{}).
			Where("submission_id = ?", submissionID).
			Updates(updates).Error; err != nil {
			return err
		}
		history := models.RateHistoryEntry{
			SubmissionID: submissionID,
			OldRate:      &oldRate,
			NewRate:      in.NewRate,
			ChangedBy:    in.Actor,
			ChangedDate:  now,
			RateType:     models.RateTypeNegotiated,
			Reason:       in.Reason,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(submissionID)
}

// load fetches the bare submission row for mutation checks, without joins or
// history preloads.
func (s *PipelineService) load(submissionID string) (*models.Submission, error) {
	var sub models.Submission
	if err := s.db.Where("submission_id = ?", submissionID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// hydrated builds the read-side query: display names joined from the owning
// entities, both history logs preloaded ascending. Consumers that want
// most-recent-first reverse at the edge.
func (s *PipelineService) hydrated() *gorm.DB {
	return s.db.Model(&models.Submission{}).
		Joins("LEFT JOIN consultants ON consultants.consultant_id = submissions.consultant_id").
		Joins("LEFT JOIN vendors ON vendors.vendor_id = submissions.vendor_id").
		Joins("LEFT JOIN job_requirements ON job_requirements.job_id = submissions.job_id").
		Select("submissions.*, " +
			"CONCAT(consultants.first_name, ' ', consultants.last_name) AS consultant_name, " +
			"vendors.vendor_name AS vendor_name, " +
			"job_requirements.job_title AS job_title, " +
			"job_requirements.client AS client").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_date ASC, history_id ASC")
		}).
		Preload("RateHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_date ASC, history_id ASC")
		})
}

// Get returns one fully hydrated submission.
func (s *PipelineService) Get(submissionID string) (*models.Submission, error) {
	var sub models.Submission
	if err := s.hydrated().
		Where("submissions.submission_id = ?", submissionID).
		First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// List returns the full hydrated collection, newest first.
func (s *PipelineService) List() ([]models.Submission, error) {
	var subs []models.Submission
	if err := s.hydrated().
		Order("submissions.created_at DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// ListByStatus returns the hydrated submissions in exactly one stage.
func (s *PipelineService) ListByStatus(status models.SubmissionStatus) ([]models.Submission, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	var subs []models.Submission
	if err := s.hydrated().
		Where("submissions.status = ?", status).
		Order("submissions.created_at DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Stats loads the collection and derives the pipeline stage counters.
func (s *PipelineService) Stats() (PipelineStats, error) {
	var subs []models.Submission
	if err := s.db.Find(&subs).Error; err != nil {
		return PipelineStats{}, err
	}
	return ComputePipelineStats(subs), nil
}
