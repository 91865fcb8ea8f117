package models

import "gorm.io/gorm"

// Task is shared reference data; internships point at tasks, tasks know
// nothing about internships.
type Task struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	MediaURL    string `json:"media_url" gorm:"default:''"`
	IsDeleted   bool   `gorm:"default:false"`
}
