package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/Sem485/eduforge-lms/controllers/course"
	"github.com/Sem485/eduforge-lms/middleware"
	validators "github.com/Sem485/eduforge-lms/validators/course"
)

// SetupCourseRoutes sets up the course authoring routes: course, module and
// lesson CRUD plus the block editor, viewer, presentation and export
// endpoints.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course CRUD
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)

	// Export
	courseGroup.Get("/:id/export", middleware.JWTMiddleware, validators.CourseID(), controllers.ExportCourse)

	// Module Management
	courseGroup.Post("/:id/module", middleware.JWTMiddleware, validators.CourseID(), validators.CreateModule(), controllers.CreateModule)

	moduleGroup := app.Group("/module")
	moduleGroup.Put("/:id", middleware.JWTMiddleware, validators.ModuleID(), validators.UpdateModule(), controllers.UpdateModule)
	moduleGroup.Delete("/:id", middleware.JWTMiddleware, validators.ModuleID(), controllers.DeleteModule)
	moduleGroup.Post("/:id/lesson", middleware.JWTMiddleware, validators.ModuleID(), validators.CreateLesson(), controllers.CreateLesson)

	// Lesson Management
	lessonGroup := app.Group("/lesson")
	lessonGroup.Get("/:id", middleware.JWTMiddleware, validators.LessonID(), controllers.GetLesson)
	lessonGroup.Put("/:id", middleware.JWTMiddleware, validators.LessonID(), validators.UpdateLesson(), controllers.UpdateLesson)
	lessonGroup.Delete("/:id", middleware.JWTMiddleware, validators.LessonID(), controllers.DeleteLesson)

	// Viewer & Presentation
	lessonGroup.Get("/:id/render", middleware.JWTMiddleware, validators.LessonID(), controllers.RenderLesson)
	lessonGroup.Get("/:id/presentation", middleware.JWTMiddleware, validators.LessonID(), controllers.PresentLesson)

	// Block Editor
	lessonGroup.Post("/:id/blocks", middleware.JWTMiddleware, validators.LessonID(), validators.InsertBlock(), controllers.InsertBlock)
	lessonGroup.Post("/:id/blocks/reorder", middleware.JWTMiddleware, validators.LessonID(), validators.ReorderBlocks(), controllers.ReorderBlocks)
	lessonGroup.Put("/:id/blocks/:blockId", middleware.JWTMiddleware, validators.LessonID(), validators.UpdateBlock(), controllers.UpdateBlock)
	lessonGroup.Delete("/:id/blocks/:blockId", middleware.JWTMiddleware, validators.LessonID(), controllers.DeleteBlock)
	lessonGroup.Post("/:id/blocks/:blockId/duplicate", middleware.JWTMiddleware, validators.LessonID(), controllers.DuplicateBlock)
}
