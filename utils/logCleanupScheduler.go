package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Sem485/eduforge-lms/config"
	"github.com/Sem485/eduforge-lms/database"
	"github.com/Sem485/eduforge-lms/models"
)

// StartLogCleanupScheduler prunes activity log entries older than the
// configured retention window once a day.
func StartLogCleanupScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", pruneOldActivityLogs)
	if err != nil {
		log.Printf("Failed to register log cleanup job: %v", err)
		return c
	}

	c.Start()
	return c
}

func pruneOldActivityLogs() {
	retention := time.Duration(config.AppConfig.LogRetentionDays) * 24 * time.Hour
	cutoff := time.Now().Add(-retention)

	result := database.Database.Db.
		Where("created_at < ?", cutoff).
		Delete(&models.ActivityLog{})
	if result.Error != nil {
		log.Printf("[LOG-CLEANUP %s] prune failed: %v", time.Now().Format(time.RFC3339), result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[LOG-CLEANUP %s] removed %d old entries", time.Now().Format(time.RFC3339), result.RowsAffected)
	}
}
