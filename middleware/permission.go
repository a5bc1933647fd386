package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Sem485/eduforge-lms/database"
	"github.com/Sem485/eduforge-lms/models"
)

// RequireAdmin refuses the request unless the authenticated user has the
// ADMIN role. The role is re-checked against the database so a stale token
// cannot outlive a demotion.
func RequireAdmin(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking permissions!", nil)
	}

	if user.Role != models.RoleAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	c.Locals("currentUser", &user)
	return c.Next()
}

// CurrentUser loads the authenticated user record. Controllers call it right
// after the JWT middleware to enforce ownership rules.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CanAccessCourse applies the ownership rule: admins see everything,
// instructors only their own courses.
func CanAccessCourse(user *models.User, course *models.Course) bool {
	return user.Role == models.RoleAdmin || course.AuthorID == user.ID
}
