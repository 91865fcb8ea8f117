package utils

import (
	"internhub/database"
	"internhub/models"
	"log"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeEnrollmentScheduler sets up the daily end-date reminder job.
// It only sends emails; submission review stays read-triggered and is
// never run from here.
func InitializeEnrollmentScheduler() {
	log.Println("[ENROLLMENT-SCHEDULER] Initializing enrollment scheduler...")

	c := cron.New()

	// Run daily at 9 AM to remind users whose internship ends within 2 days
	c.AddFunc("0 9 * * *", func() {
		log.Println("[ENROLLMENT-SCHEDULER] Running daily end-date check...")
		ProcessEndingEnrollments()
	})

	c.Start()
	log.Println("[ENROLLMENT-SCHEDULER] Enrollment scheduler started - runs daily at 9 AM")
}

// ProcessEndingEnrollments sends one reminder email per enrollment whose
// end date falls within the next 2 days.
func ProcessEndingEnrollments() {
	db := database.Database.Db
	windowStart := now.BeginningOfDay()
	windowEnd := now.EndOfDay().AddDate(0, 0, 2)

	var endingEnrollments []models.Enrollment
	err := db.
		Where("reminder_sent = false AND end_date BETWEEN ? AND ?", windowStart, windowEnd).
		Preload("Internship").
		Find(&endingEnrollments).Error
	if err != nil {
		log.Printf("[ENROLLMENT-SCHEDULER] Error fetching ending enrollments: %v", err)
		return
	}

	log.Printf("[ENROLLMENT-SCHEDULER] Found %d enrollments ending soon", len(endingEnrollments))

	for _, enrollment := range endingEnrollments {
		var user models.User
		if err := db.Where("id = ?", enrollment.UserID).First(&user).Error; err != nil {
			log.Printf("[ENROLLMENT-SCHEDULER] Error fetching user %d: %v", enrollment.UserID, err)
			continue
		}

		SendEndDateReminderEmail(user.Email, user.Name, enrollment.Internship.Title, enrollment.EndDate)

		db.Model(&enrollment).Update("reminder_sent", true)
		log.Printf("[ENROLLMENT-SCHEDULER] Sent end-date reminder for enrollment %d to %s", enrollment.ID, user.Email)
	}
}
