package adminController

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sem485/eduforge-lms/config"
	"github.com/Sem485/eduforge-lms/database"
	"github.com/Sem485/eduforge-lms/middleware"
	"github.com/Sem485/eduforge-lms/models"
	"github.com/Sem485/eduforge-lms/utils"
)

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
	})
}

func CreateUser(c *fiber.Ctx) error {
	admin, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedUser").(*struct {
		Username string `json:"username"`
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.User
	if err := db.Where("username = ? AND is_deleted = ?", reqData.Username, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username already taken!", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
	}

	role := reqData.Role
	if role != models.RoleAdmin {
		role = models.RoleInstructor
	}

	user := models.User{
		Username: reqData.Username,
		FullName: reqData.FullName,
		Email:    reqData.Email,
		Password: string(hashed),
		Role:     role,
	}

	if err := db.Create(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	utils.LogAction(admin, models.ActionCreateUser, "Created user "+user.Username, strconv.Itoa(int(user.ID)), c.IP())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User created successfully!", user)
}

func DeleteUser(c *fiber.Ctx) error {
	admin, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	userID, ok := c.Locals("targetUserID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	if userID == admin.ID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot delete your own account!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := db.Model(&models.User{}).Where("id = ?", userID).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	utils.LogAction(admin, models.ActionDeleteUser, "Deleted user "+user.Username, strconv.Itoa(int(user.ID)), c.IP())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}

// GetLogs returns the activity log, newest first. Optional filters: user_id,
// action, limit (default 100).
func GetLogs(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.ActivityLog{})

	if raw := c.Query("user_id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			db = db.Where("user_id = ?", uint(id))
		}
	}
	if action := c.Query("action"); action != "" {
		db = db.Where("action = ?", action)
	}

	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	var logs []models.ActivityLog
	if err := db.Order("created_at desc").Limit(limit).Find(&logs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch logs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logs fetched successfully!", fiber.Map{
		"logs": logs,
	})
}
