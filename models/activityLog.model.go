package models

import "gorm.io/gorm"

const (
	ActionLogin        = "LOGIN"
	ActionLogout       = "LOGOUT"
	ActionCreateCourse = "CREATE_COURSE"
	ActionUpdateCourse = "UPDATE_COURSE"
	ActionDeleteCourse = "DELETE_COURSE"
	ActionCreateLesson = "CREATE_LESSON"
	ActionUpdateLesson = "UPDATE_LESSON"
	ActionDeleteLesson = "DELETE_LESSON"
	ActionExportCourse = "EXPORT_COURSE"
	ActionUploadFile   = "UPLOAD_FILE"
	ActionDeleteFile   = "DELETE_FILE"
	ActionCreateFolder = "CREATE_FOLDER"
	ActionDeleteFolder = "DELETE_FOLDER"
	ActionCreateUser   = "CREATE_USER"
	ActionDeleteUser   = "DELETE_USER"
)

type ActivityLog struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index"`
	Username   string `json:"username"`
	Action     string `json:"action" gorm:"index"`
	ResourceID string `json:"resource_id"`
	Details    string `json:"details"`
	IP         string `json:"ip"`
}
