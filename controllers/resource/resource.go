package resourceController

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Sem485/eduforge-lms/config"
	"github.com/Sem485/eduforge-lms/database"
	"github.com/Sem485/eduforge-lms/middleware"
	"github.com/Sem485/eduforge-lms/models"
	"github.com/Sem485/eduforge-lms/utils"
)

// Files up to this size are stored inline as data URLs; exporters resolve
// those without touching disk.
const inlineFileLimit = 64 * 1024

// UploadResource stores a media file and registers it in the resource
// library. An optional lesson_id binds the file to the lesson that will
// reference it from a block.
func UploadResource(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file provided!", nil)
	}

	// Advisory size check; the store itself does not enforce it
	if file.Size > config.AppConfig.MaxUploadSize {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File exceeds the maximum upload size!", nil)
	}

	var saved *utils.SavedFile
	if file.Size <= inlineFileLimit {
		dataURL, err := utils.FileDataURL(file)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
		}
		mimeType := file.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		saved = &utils.SavedFile{URL: dataURL, MimeType: mimeType, Size: file.Size}
	} else {
		var err error
		saved, err = utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
		}
	}

	var parentID *uint
	if raw := c.FormValue("parent_id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			v := uint(id)
			parentID = &v
		}
	}

	usage := models.StringList{}
	if lessonID := c.FormValue("lesson_id"); lessonID != "" {
		usage = append(usage, lessonID)
	}

	resource := models.ResourceFile{
		UploaderID:      user.ID,
		ParentID:        parentID,
		Name:            file.Filename,
		MimeType:        saved.MimeType,
		Size:            saved.Size,
		URL:             saved.URL,
		UsageReferences: usage,
	}

	if err := database.Database.Db.Create(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save resource!", nil)
	}

	utils.LogAction(user, models.ActionUploadFile, "Uploaded file "+file.Filename, strconv.Itoa(int(resource.ID)), c.IP())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully!", resource)
}

func ListResources(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	db := database.Database.Db.Model(&models.ResourceFile{}).Where("is_deleted = ?", false)

	if raw := c.Query("parent_id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			db = db.Where("parent_id = ?", uint(id))
		}
	} else {
		db = db.Where("parent_id IS NULL")
	}

	if user.Role != models.RoleAdmin {
		db = db.Where("uploader_id = ?", user.ID)
	}

	var resources []models.ResourceFile
	if err := db.Order("created_at desc").Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": resources,
	})
}

func DeleteResource(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	resourceID, ok := c.Locals("resourceID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource ID!", nil)
	}

	db := database.Database.Db

	var resource models.ResourceFile
	if err := db.Where("id = ? AND is_deleted = ?", resourceID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	if user.Role != models.RoleAdmin && resource.UploaderID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	if err := db.Model(&models.ResourceFile{}).Where("id = ?", resourceID).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resource!", nil)
	}

	utils.LogAction(user, models.ActionDeleteFile, "Deleted file "+resource.Name, strconv.Itoa(int(resource.ID)), c.IP())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}

// BindResource appends a lesson reference to the file's usage list. The list
// is informational and never pruned when blocks change.
func BindResource(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	resourceID, ok := c.Locals("resourceID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource ID!", nil)
	}

	reqData, ok := c.Locals("validatedBind").(*struct {
		LessonID string `json:"lesson_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var resource models.ResourceFile
	if err := db.Where("id = ? AND is_deleted = ?", resourceID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	if user.Role != models.RoleAdmin && resource.UploaderID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	for _, ref := range resource.UsageReferences {
		if ref == reqData.LessonID {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource already bound!", resource)
		}
	}
	resource.UsageReferences = append(resource.UsageReferences, reqData.LessonID)

	if err := db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to bind resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource bound successfully!", resource)
}
