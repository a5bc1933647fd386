package utils

import (
	"log"

	"github.com/Sem485/eduforge-lms/database"
	"github.com/Sem485/eduforge-lms/models"
)

// LogAction writes an activity log entry. Failures are logged and swallowed;
// auditing must never fail the operation it records.
func LogAction(user *models.User, action, details, resourceID, ip string) {
	entry := models.ActivityLog{
		Action:     action,
		Details:    details,
		ResourceID: resourceID,
		IP:         ip,
	}
	if user != nil {
		entry.UserID = user.ID
		entry.Username = user.Username
	} else {
		entry.Username = "system"
	}

	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Failed to write activity log (%s): %v", action, err)
	}
}
