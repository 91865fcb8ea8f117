package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment registers a user into one internship. The submission set is
// created together with the enrollment, one per task, and is never resized.
// At most one enrollment may exist per (user, internship) pair; the unique
// index is the backstop for the service-level duplicate check.
type Enrollment struct {
	gorm.Model
	UserID               uint             `json:"user_id" gorm:"uniqueIndex:idx_user_internship;not null"`
	InternshipID         uint             `json:"internship_id" gorm:"uniqueIndex:idx_user_internship;not null"`
	StartDate            time.Time        `json:"start_date"`
	EndDate              time.Time        `json:"end_date"`
	IsInternshipFinished bool             `json:"is_internship_finished" gorm:"default:false"`
	ReminderSent         bool             `json:"-" gorm:"default:false"`
	Internship           Internship       `json:"internship" gorm:"foreignKey:InternshipID"`
	TaskSubmissions      []TaskSubmission `json:"task_submissions" gorm:"foreignKey:EnrollmentID"`
}
