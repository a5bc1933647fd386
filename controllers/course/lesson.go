package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Sem485/eduforge-lms/database"
	"github.com/Sem485/eduforge-lms/middleware"
	"github.com/Sem485/eduforge-lms/models"
	"github.com/Sem485/eduforge-lms/utils"
)

// loadLessonCourse resolves a lesson up to its owning course for the
// ownership check.
func loadLessonCourse(lessonID uint) (*models.Lesson, *models.Course, error) {
	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return nil, nil, err
	}

	var module models.CourseModule
	if err := db.Where("id = ? AND is_deleted = ?", lesson.ModuleID, false).First(&module).Error; err != nil {
		return nil, nil, err
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", module.CourseID, false).First(&course).Error; err != nil {
		return nil, nil, err
	}
	return &lesson, &course, nil
}

func CreateLesson(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	moduleID, ok := c.Locals("moduleID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
	}

	_, course, err := loadModuleCourse(moduleID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if !middleware.CanAccessCourse(user, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	db := database.Database.Db

	var siblingCount int64
	db.Model(&models.Lesson{}).Where("module_id = ? AND is_deleted = ?", moduleID, false).Count(&siblingCount)

	// Lessons start with an empty block sequence
	lesson := models.Lesson{
		ModuleID:   moduleID,
		Title:      "New lesson",
		OrderIndex: int(siblingCount),
		Blocks:     models.BlockSequence{},
	}
	if reqData, ok := c.Locals("validatedLesson").(*struct {
		Title string `json:"title"`
	}); ok && reqData.Title != "" {
		lesson.Title = reqData.Title
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	utils.LogAction(user, models.ActionCreateLesson, "Created lesson "+lesson.Title, strconv.Itoa(int(lesson.ID)), c.IP())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson created successfully!", lesson)
}

func GetLesson(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID, ok := c.Locals("lessonID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}

	lesson, course, err := loadLessonCourse(lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !middleware.CanAccessCourse(user, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

// UpdateLesson is the explicit save of a lesson draft: title, order and the
// full block sequence. Last write wins; there is no version check.
func UpdateLesson(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID, ok := c.Locals("lessonID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title  *string         `json:"title"`
		Order  *int            `json:"order"`
		Blocks *[]models.Block `json:"blocks"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, course, err := loadLessonCourse(lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !middleware.CanAccessCourse(user, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	if reqData.Title != nil {
		lesson.Title = *reqData.Title
	}
	if reqData.Order != nil {
		lesson.OrderIndex = *reqData.Order
	}
	if reqData.Blocks != nil {
		lesson.Blocks = models.BlockSequence(*reqData.Blocks)
	}

	if err := database.Database.Db.Save(lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	utils.LogAction(user, models.ActionUpdateLesson, "Updated lesson "+lesson.Title, strconv.Itoa(int(lesson.ID)), c.IP())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID, ok := c.Locals("lessonID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}

	lesson, course, err := loadLessonCourse(lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !middleware.CanAccessCourse(user, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	if err := database.Database.Db.Model(&models.Lesson{}).Where("id = ?", lessonID).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	utils.LogAction(user, models.ActionDeleteLesson, "Deleted lesson "+lesson.Title, strconv.Itoa(int(lesson.ID)), c.IP())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
