package internshipController

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateInternship(c *fiber.Ctx) error {
	reqData := c.Locals("validatedInternship").(*struct {
		Title       string `json:"title" validate:"required,min=3"`
		Description string `json:"description" validate:"required"`
		MediaURL    string `json:"mediaUrl" validate:"omitempty,url"`
		TaskIDs     []uint `json:"taskIds" validate:"required,min=1,dive,gt=0"`
	})

	db := database.Database.Db

	// Every referenced task must exist
	var count int64
	if err := db.Model(&models.Task{}).Where("id IN ? AND is_deleted = ?", reqData.TaskIDs, false).Count(&count).Error; err != nil {
		log.Printf("Error checking tasks: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create internship!", nil)
	}
	if count != int64(len(reqData.TaskIDs)) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more tasks not found!", nil)
	}

	internship := models.Internship{
		Title:       reqData.Title,
		Description: reqData.Description,
		MediaURL:    reqData.MediaURL,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&internship).Error; err != nil {
			return err
		}
		for i, taskID := range reqData.TaskIDs {
			link := models.InternshipTask{
				InternshipID: internship.ID,
				TaskID:       taskID,
				OrderIndex:   i,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating internship: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create internship!", nil)
	}

	return fetchInternship(c, internship.ID, fiber.StatusCreated, "Internship created successfully!")
}

func GetInternships(c *fiber.Ctx) error {
	var internships []models.Internship
	err := database.Database.Db.Where("is_deleted = ?", false).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Preload("Tasks.Task").
		Order("created_at asc").
		Find(&internships).Error
	if err != nil {
		log.Printf("Error fetching internships: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch internships!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internships fetched successfully!", internships)
}

func GetInternshipById(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipID").(int)
	return fetchInternship(c, uint(internshipID), fiber.StatusOK, "Internship fetched successfully!")
}

func UpdateInternship(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipID").(int)
	reqData := c.Locals("validatedInternship").(*struct {
		Title       string `json:"title" validate:"required,min=3"`
		Description string `json:"description" validate:"required"`
		MediaURL    string `json:"mediaUrl" validate:"omitempty,url"`
		TaskIDs     []uint `json:"taskIds" validate:"required,min=1,dive,gt=0"`
	})

	db := database.Database.Db

	var internship models.Internship
	if err := db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&internship).Updates(map[string]interface{}{
			"title":       reqData.Title,
			"description": reqData.Description,
			"media_url":   reqData.MediaURL,
		}).Error
		if err != nil {
			return err
		}

		// Replace the ordered task list
		if err := tx.Where("internship_id = ?", internship.ID).Delete(&models.InternshipTask{}).Error; err != nil {
			return err
		}
		for i, taskID := range reqData.TaskIDs {
			link := models.InternshipTask{
				InternshipID: internship.ID,
				TaskID:       taskID,
				OrderIndex:   i,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error updating internship %d: %v", internship.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update internship!", nil)
	}

	return fetchInternship(c, internship.ID, fiber.StatusOK, "Internship updated successfully!")
}

func DeleteInternship(c *fiber.Ctx) error {
	internshipID := c.Locals("internshipID").(int)

	var internship models.Internship
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", internshipID, false).First(&internship).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	if err := database.Database.Db.Model(&internship).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting internship %d: %v", internship.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete internship!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Internship deleted successfully!", nil)
}

func fetchInternship(c *fiber.Ctx, id uint, status int, message string) error {
	var internship models.Internship
	err := database.Database.Db.Where("id = ? AND is_deleted = ?", id, false).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Preload("Tasks.Task").
		First(&internship).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Internship not found!", nil)
	}

	return middleware.JsonResponse(c, status, true, message, internship)
}
