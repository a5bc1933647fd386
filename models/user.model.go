package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin      = "ADMIN"
	RoleInstructor = "INSTRUCTOR"
)

type User struct {
	gorm.Model
	Username  string     `json:"username" gorm:"unique;not null"`
	FullName  string     `json:"full_name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"default:''"`
	Role      string     `json:"role" gorm:"default:'INSTRUCTOR'"` // INSTRUCTOR or ADMIN
	Password  string     `json:"-" gorm:"not null"`
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `json:"-" gorm:"default:false"`
}
