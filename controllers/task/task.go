package taskController

import (
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

func CreateTask(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTask").(*struct {
		Title       string `json:"title" validate:"required,min=3"`
		Description string `json:"description" validate:"required"`
		MediaURL    string `json:"mediaUrl" validate:"omitempty,url"`
	})

	task := models.Task{
		Title:       reqData.Title,
		Description: reqData.Description,
		MediaURL:    reqData.MediaURL,
	}

	if err := database.Database.Db.Create(&task).Error; err != nil {
		log.Printf("Error creating task: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create task!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Task created successfully!", task)
}

func GetTasks(c *fiber.Ctx) error {
	var tasks []models.Task
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at asc").Find(&tasks).Error; err != nil {
		log.Printf("Error fetching tasks: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tasks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tasks fetched successfully!", tasks)
}

func GetTaskById(c *fiber.Ctx) error {
	taskID := c.Locals("taskID").(int)

	var task models.Task
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", taskID, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task fetched successfully!", task)
}

func UpdateTask(c *fiber.Ctx) error {
	taskID := c.Locals("taskID").(int)
	reqData := c.Locals("validatedTask").(*struct {
		Title       string `json:"title" validate:"required,min=3"`
		Description string `json:"description" validate:"required"`
		MediaURL    string `json:"mediaUrl" validate:"omitempty,url"`
	})

	var task models.Task
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", taskID, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	err := database.Database.Db.Model(&task).Updates(map[string]interface{}{
		"title":       reqData.Title,
		"description": reqData.Description,
		"media_url":   reqData.MediaURL,
	}).Error
	if err != nil {
		log.Printf("Error updating task %d: %v", task.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update task!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task updated successfully!", task)
}

func DeleteTask(c *fiber.Ctx) error {
	taskID := c.Locals("taskID").(int)

	var task models.Task
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", taskID, false).First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	if err := database.Database.Db.Model(&task).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting task %d: %v", task.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete task!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task deleted successfully!", nil)
}
