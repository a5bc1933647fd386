package models

import "gorm.io/gorm"

type CourseModule struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order" gorm:"not null;default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
	Course     Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
