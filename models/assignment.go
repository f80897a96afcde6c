package models

import (
	"time"

	"gorm.io/gorm"
)

type Assignment struct {
	gorm.Model
	Title       string    `gorm:"not null"`
	Description string    `gorm:"type:text"`
	DueDate     time.Time `gorm:"not null"`
	TeacherID   uint      `gorm:"not null;index"`
}
