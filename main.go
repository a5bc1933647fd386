package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/Sem485/eduforge-lms/config"
	"github.com/Sem485/eduforge-lms/database"
	adminRoutes "github.com/Sem485/eduforge-lms/routers/adminRoutes"
	authRoutes "github.com/Sem485/eduforge-lms/routers/authRoutes"
	courseRoutes "github.com/Sem485/eduforge-lms/routers/courseRoutes"
	resourceRoutes "github.com/Sem485/eduforge-lms/routers/resourceRoutes"
	"github.com/Sem485/eduforge-lms/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Daily pruning of old activity log entries
	utils.StartLogCleanupScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",         // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded media
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	resourceRoutes.SetupResourceRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
