package models

import "gorm.io/gorm"

// Internship is a program made up of an ordered list of tasks.
type Internship struct {
	gorm.Model
	Title       string           `json:"title" gorm:"not null"`
	Description string           `json:"description" gorm:"not null"`
	MediaURL    string           `json:"media_url" gorm:"default:''"`
	IsDeleted   bool             `gorm:"default:false"`
	Tasks       []InternshipTask `json:"tasks" gorm:"foreignKey:InternshipID"`
}

// InternshipTask links an internship to one of its tasks and carries the
// position of the task within the program.
type InternshipTask struct {
	gorm.Model
	InternshipID uint `json:"internship_id" gorm:"index;not null"`
	TaskID       uint `json:"task_id" gorm:"index;not null"`
	OrderIndex   int  `json:"order_index" gorm:"not null"`
	Task         Task `json:"task" gorm:"foreignKey:TaskID"`
}
