package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	AuthorID     uint   `json:"author_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
	Author       User   `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
