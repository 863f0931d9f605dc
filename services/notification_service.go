package services

import (
	"fmt"
	"time"

	"staffing-crm-api/models"

	"gorm.io/gorm"
)

// notifiedStatuses maps the transitions worth interrupting the owner for to
// a notification type.
var notifiedStatuses = map[models.SubmissionStatus]string{
	models.StatusOfferLetter: "info",
	models.StatusPlaced:      "success",
	models.StatusRejected:    "error",
}

// notifyStatusChange writes a notification row for the user who created the
// submission when it reaches offer_letter, placed or rejected. Best effort:
// failures are logged by the caller, never propagated to the operator.
func notifyStatusChange(db *gorm.DB, sub *models.Submission, newStatus models.SubmissionStatus, actor string) error {
	notifType, ok := notifiedStatuses[newStatus]
	if !ok {
		return nil
	}
	if sub.CreatedBy == 0 {
		return nil
	}

	submissionID := sub.SubmissionID
	notification := models.Notification{
		UserID:              sub.CreatedBy,
		Title:               fmt.Sprintf("Submission moved to %s", newStatus),
		Message:             fmt.Sprintf("%s moved submission %s to %s", actor, sub.SubmissionID, newStatus),
		Type:                notifType,
		RelatedSubmissionID: &submissionID,
		CreateAt:            time.Now(),
	}
	return db.Create(&notification).Error
}

// MarkNotificationRead flips one notification owned by userID to read.
func MarkNotificationRead(db *gorm.DB, userID int, notificationID uint) error {
	now := time.Now()
	result := db.Model(&models.Notification{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"is_read": true, "update_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllNotificationsRead flips every unread notification for userID.
func MarkAllNotificationsRead(db *gorm.DB, userID int) (int64, error) {
	now := time.Now()
	result := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "update_at": now})
	return result.RowsAffected, result.Error
}
