package models

import "gorm.io/gorm"

type Lesson struct {
	gorm.Model
	ModuleID   uint          `json:"module_id" gorm:"index;not null"`
	Title      string        `json:"title"`
	OrderIndex int           `json:"order" gorm:"not null;default:0"`
	Blocks     BlockSequence `json:"blocks" gorm:"type:text"`
	IsDeleted  bool          `json:"-" gorm:"default:false"`
	Module     CourseModule  `json:"-" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}
