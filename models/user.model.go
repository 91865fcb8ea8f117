package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                   string     `gorm:"default:''"`
	Email                  string     `gorm:"unique;not null"`
	Role                   string     `gorm:"default:'USER'"` // USER, ADMIN
	Password               string     `gorm:"not null" json:"-"`
	IsVerified             bool       `gorm:"default:false"`
	VerificationCode       string     `gorm:"default:''" json:"-"`
	VerificationCodeExpiry *time.Time `json:"-"`
	ResetToken             string     `gorm:"default:''" json:"-"`
	ResetTokenExpiry       *time.Time `json:"-"`
	LastLogin              time.Time  `gorm:"default:NULL"`
	IsDeleted              bool       `gorm:"default:false"`
}
