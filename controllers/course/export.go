package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Sem485/eduforge-lms/export"
	"github.com/Sem485/eduforge-lms/middleware"
	"github.com/Sem485/eduforge-lms/models"
	"github.com/Sem485/eduforge-lms/utils"
)

// ExportCourse fetches the full course tree, then hands it to the exporter
// for the requested format. A failed fetch aborts before anything is
// generated; per-block failures inside a generator degrade to placeholders.
func ExportCourse(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	format := export.Format(c.Query("format", string(export.FormatJSON)))
	if !export.IsValidFormat(format) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unsupported export format!", nil)
	}

	tree, err := fetchCourseTree(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.CanAccessCourse(user, &tree.Course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	utils.LogAction(user, models.ActionExportCourse,
		"Exported course "+tree.Course.Title+" as "+string(format),
		strconv.Itoa(int(tree.Course.ID)), c.IP())

	artifact, err := export.Generate(tree, format)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Export failed!", nil)
	}

	c.Set("Content-Type", artifact.ContentType)
	c.Set("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	return c.Send(artifact.Data)
}
