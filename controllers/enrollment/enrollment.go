package enrollmentController

import (
	"errors"
	"fmt"
	"internhub/config"
	"internhub/models"
	"time"

	"gorm.io/gorm"
)

var (
	ErrInternshipNotFound  = errors.New("internship not found")
	ErrAlreadyEnrolled     = errors.New("user already enrolled in this internship")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrTaskNotInEnrollment = errors.New("task not found in enrollment")
)

// EnrollUser registers a user into an internship and creates one empty
// task submission per task, in task order.
//
// The duplicate check here is an optimization; the unique index on
// (user_id, internship_id) is the real guard against concurrent enrolls.
// A failure while creating submissions leaves the already-created rows in
// place — there is no compensating rollback.
func EnrollUser(db *gorm.DB, userID, internshipID uint) (*models.Enrollment, error) {
	var internship models.Internship
	err := db.Where("id = ? AND is_deleted = ?", internshipID, false).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		First(&internship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("loading internship: %w", err)
	}
	if len(internship.Tasks) == 0 {
		return nil, ErrInternshipNotFound
	}

	var existing models.Enrollment
	err = db.Where("user_id = ? AND internship_id = ?", userID, internshipID).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing enrollment: %w", err)
	}

	now := time.Now()
	enrollment := models.Enrollment{
		UserID:       userID,
		InternshipID: internshipID,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, config.AppConfig.InternshipDurationDays),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return nil, fmt.Errorf("creating enrollment: %w", err)
	}

	for i, it := range internship.Tasks {
		submission := models.TaskSubmission{
			EnrollmentID: enrollment.ID,
			TaskID:       it.TaskID,
			OrderIndex:   i,
		}
		if err := db.Create(&submission).Error; err != nil {
			return nil, fmt.Errorf("creating submission for task %d: %w", it.TaskID, err)
		}
	}

	return loadEnrollment(db, enrollment.ID)
}

// SubmitTaskLink records the repository and live-demo links for one task of
// an enrollment and puts the submission into review. The review window is
// re-armed on every submit; a prior completion is never cleared here.
func SubmitTaskLink(db *gorm.DB, userID, enrollmentID, taskID uint, githubLink, liveLink string) (*models.TaskSubmission, error) {
	var enrollment models.Enrollment
	err := db.Where("id = ? AND user_id = ?", enrollmentID, userID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("loading enrollment: %w", err)
	}

	var submission models.TaskSubmission
	err = db.Where("enrollment_id = ? AND task_id = ?", enrollment.ID, taskID).
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotInEnrollment
		}
		return nil, fmt.Errorf("loading submission: %w", err)
	}

	forReview := time.Now().Add(time.Duration(config.AppConfig.ReviewDelayMinutes) * time.Minute)
	err = db.Model(&submission).Updates(map[string]interface{}{
		"github_link":     githubLink,
		"live_link":       liveLink,
		"error_message":   "",
		"is_in_review":    true,
		"for_review_date": forReview,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("updating submission: %w", err)
	}

	if err := db.Preload("Task").First(&submission, submission.ID).Error; err != nil {
		return nil, fmt.Errorf("reloading submission: %w", err)
	}
	return &submission, nil
}

// ListAndReview returns a user's enrollments, fully resolved. Before
// returning it settles every submission whose review window has elapsed,
// so callers always see fresh review state. Review only ever happens
// here — there is no background timer.
func ListAndReview(db *gorm.DB, userID uint) ([]models.Enrollment, error) {
	enrollments, err := loadEnrollments(db, userID)
	if err != nil {
		return nil, err
	}

	reviewDueSubmissions(db, enrollments)

	return loadEnrollments(db, userID)
}

func loadEnrollment(db *gorm.DB, enrollmentID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := db.
		Preload("Internship").
		Preload("Internship.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Preload("Internship.Tasks.Task").
		Preload("TaskSubmissions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Preload("TaskSubmissions.Task").
		First(&enrollment, enrollmentID).Error
	if err != nil {
		return nil, fmt.Errorf("loading enrollment: %w", err)
	}
	return &enrollment, nil
}

func loadEnrollments(db *gorm.DB, userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := db.Where("user_id = ?", userID).
		Preload("Internship").
		Preload("Internship.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Preload("Internship.Tasks.Task").
		Preload("TaskSubmissions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Preload("TaskSubmissions.Task").
		Order("created_at asc").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("loading enrollments: %w", err)
	}
	return enrollments, nil
}
