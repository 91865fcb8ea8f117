package main

import (
	"internhub/config"
	"internhub/database"
	authRoutes "internhub/routers/authRoutes"
	enrollmentRoutes "internhub/routers/enrollmentRoutes"
	internshipRoutes "internhub/routers/internshipRoutes"
	taskRoutes "internhub/routers/taskRoutes"
	userRoutes "internhub/routers/userRoutes"
	"internhub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	taskRoutes.SetupTaskRoutes(app)
	internshipRoutes.SetupInternshipRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)

	utils.InitializeEnrollmentScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
