package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminControllers "github.com/Sem485/eduforge-lms/controllers/admin"
	"github.com/Sem485/eduforge-lms/middleware"
	adminValidators "github.com/Sem485/eduforge-lms/validators/admin"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin)

	// User Management
	adminGroup.Get("/users", adminControllers.ListUsers)
	adminGroup.Post("/users", adminValidators.CreateUser(), adminControllers.CreateUser)
	adminGroup.Delete("/users/:id", adminValidators.UserID(), adminControllers.DeleteUser)

	// Activity Log
	adminGroup.Get("/logs", adminControllers.GetLogs)
}
