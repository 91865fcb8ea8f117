package enrollmentController

import (
	"internhub/config"
	"internhub/models"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

// RejectedLinkMessage is the diagnostic stored on a submission when review
// rejects its repository link.
const RejectedLinkMessage = "GitHub link does not point to a recognizable repository"

// reviewDueSubmissions settles every in-review submission whose review
// window has elapsed. A failure on one submission is logged and the rest
// still get processed.
//
// The pass is idempotent: the in-review guard is false after the first
// settle, so a second pass over the same rows is a no-op. Each candidate
// is re-read before mutation so two concurrent listings acting on the
// same stale row converge on the same final state.
func reviewDueSubmissions(db *gorm.DB, enrollments []models.Enrollment) {
	now := time.Now()

	for _, enrollment := range enrollments {
		for _, submission := range enrollment.TaskSubmissions {
			if !submission.IsInReview || submission.ForReviewDate.After(now) {
				continue
			}

			var fresh models.TaskSubmission
			if err := db.First(&fresh, submission.ID).Error; err != nil {
				log.Printf("[REVIEW] Error reloading submission %d: %v", submission.ID, err)
				continue
			}
			if !fresh.IsInReview || fresh.ForReviewDate.After(now) {
				continue
			}

			if err := settleSubmission(db, &fresh); err != nil {
				log.Printf("[REVIEW] Error settling submission %d: %v", fresh.ID, err)
			}
		}
	}
}

// settleSubmission applies the accept/reject decision to one submission.
// Acceptance is a deliberately weak substring check against the stored
// repository link; rejection leaves any prior completion untouched.
func settleSubmission(db *gorm.DB, submission *models.TaskSubmission) error {
	if strings.Contains(submission.GithubLink, config.AppConfig.RepoLinkMarker) {
		return db.Model(submission).Updates(map[string]interface{}{
			"is_completed":  true,
			"is_in_review":  false,
			"error_message": "",
		}).Error
	}

	return db.Model(submission).Updates(map[string]interface{}{
		"is_in_review":  false,
		"error_message": RejectedLinkMessage,
	}).Error
}
