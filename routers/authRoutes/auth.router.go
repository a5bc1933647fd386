package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "github.com/Sem485/eduforge-lms/controllers/auth"
	"github.com/Sem485/eduforge-lms/middleware"
	authValidators "github.com/Sem485/eduforge-lms/validators/auth"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
}
