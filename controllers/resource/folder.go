package resourceController

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Sem485/eduforge-lms/database"
	"github.com/Sem485/eduforge-lms/middleware"
	"github.com/Sem485/eduforge-lms/models"
	"github.com/Sem485/eduforge-lms/utils"
)

func CreateFolder(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedFolder").(*struct {
		Name     string `json:"name"`
		ParentID *uint  `json:"parent_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.ParentID != nil {
		var parent models.ResourceFolder
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.ParentID, false).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent folder not found!", nil)
		}
		if user.Role != models.RoleAdmin && parent.OwnerID != user.ID {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
		}
	}

	folder := models.ResourceFolder{
		OwnerID:  user.ID,
		ParentID: reqData.ParentID,
		Name:     reqData.Name,
	}

	if err := db.Create(&folder).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create folder!", nil)
	}

	utils.LogAction(user, models.ActionCreateFolder, "Created folder "+folder.Name, strconv.Itoa(int(folder.ID)), c.IP())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Folder created successfully!", folder)
}

func ListFolders(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	db := database.Database.Db.Model(&models.ResourceFolder{}).Where("is_deleted = ?", false)

	if raw := c.Query("parent_id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			db = db.Where("parent_id = ?", uint(id))
		}
	} else {
		db = db.Where("parent_id IS NULL")
	}

	if user.Role != models.RoleAdmin {
		db = db.Where("owner_id = ?", user.ID)
	}

	var folders []models.ResourceFolder
	if err := db.Order("name asc").Find(&folders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch folders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Folders fetched successfully!", fiber.Map{
		"folders": folders,
	})
}

// deleteFolderTree soft-deletes the folder, its files and all subfolders.
func deleteFolderTree(tx *gorm.DB, folderID uint) error {
	if err := tx.Model(&models.ResourceFile{}).
		Where("parent_id = ?", folderID).
		Update("is_deleted", true).Error; err != nil {
		return err
	}

	var subfolders []models.ResourceFolder
	if err := tx.Where("parent_id = ? AND is_deleted = ?", folderID, false).Find(&subfolders).Error; err != nil {
		return err
	}
	for _, sub := range subfolders {
		if err := deleteFolderTree(tx, sub.ID); err != nil {
			return err
		}
	}

	return tx.Model(&models.ResourceFolder{}).
		Where("id = ?", folderID).
		Update("is_deleted", true).Error
}

func DeleteFolder(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	folderID, ok := c.Locals("folderID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid folder ID!", nil)
	}

	db := database.Database.Db

	var folder models.ResourceFolder
	if err := db.Where("id = ? AND is_deleted = ?", folderID, false).First(&folder).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Folder not found!", nil)
	}

	if user.Role != models.RoleAdmin && folder.OwnerID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return deleteFolderTree(tx, folderID)
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete folder!", nil)
	}

	utils.LogAction(user, models.ActionDeleteFolder, "Deleted folder "+folder.Name, strconv.Itoa(int(folder.ID)), c.IP())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Folder deleted successfully!", nil)
}
