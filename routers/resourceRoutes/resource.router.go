package resourceRoutes

import (
	"github.com/gofiber/fiber/v2"

	resourceControllers "github.com/Sem485/eduforge-lms/controllers/resource"
	"github.com/Sem485/eduforge-lms/middleware"
	resourceValidators "github.com/Sem485/eduforge-lms/validators/resource"
)

func SetupResourceRoutes(app *fiber.App) {
	resourceGroup := app.Group("/resource")

	resourceGroup.Post("/upload", middleware.JWTMiddleware, resourceControllers.UploadResource)
	resourceGroup.Get("/list", middleware.JWTMiddleware, resourceControllers.ListResources)
	resourceGroup.Delete("/:id", middleware.JWTMiddleware, resourceValidators.ResourceID(), resourceControllers.DeleteResource)
	resourceGroup.Post("/:id/bind", middleware.JWTMiddleware, resourceValidators.ResourceID(), resourceValidators.BindResource(), resourceControllers.BindResource)

	folderGroup := app.Group("/folder")
	folderGroup.Post("/create", middleware.JWTMiddleware, resourceValidators.CreateFolder(), resourceControllers.CreateFolder)
	folderGroup.Get("/list", middleware.JWTMiddleware, resourceControllers.ListFolders)
	folderGroup.Delete("/:id", middleware.JWTMiddleware, resourceValidators.FolderID(), resourceControllers.DeleteFolder)
}
