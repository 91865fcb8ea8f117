package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskSubmission records a user's attempt at one task of an enrollment.
//
// Observable states:
//   - empty: no link submitted yet (IsInReview and IsCompleted both false,
//     GithubLink empty)
//   - in review: link submitted, waiting for ForReviewDate to pass
//   - completed: review accepted the repository link (terminal)
//   - needs resubmission: review rejected the link; ErrorMessage says why
//     and a new submit puts it back in review
type TaskSubmission struct {
	gorm.Model
	EnrollmentID  uint      `json:"enrollment_id" gorm:"index;not null"`
	TaskID        uint      `json:"task_id" gorm:"index;not null"`
	OrderIndex    int       `json:"order_index" gorm:"not null"`
	GithubLink    string    `json:"github_link" gorm:"default:''"`
	LiveLink      string    `json:"live_link" gorm:"default:''"`
	ErrorMessage  string    `json:"error_message" gorm:"default:''"`
	IsInReview    bool      `json:"is_in_review" gorm:"default:false"`
	IsCompleted   bool      `json:"is_completed" gorm:"default:false"`
	ForReviewDate time.Time `json:"for_review_date"`
	Task          Task      `json:"task" gorm:"foreignKey:TaskID"`
}
