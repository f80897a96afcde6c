package models

import (
	"time"

	"gorm.io/gorm"
)

type Submission struct {
	gorm.Model
	AssignmentID uint      `gorm:"not null;index"`
	StudentID    uint      `gorm:"not null;index"`
	Content      string    `gorm:"type:text"`
	SubmittedAt  time.Time `gorm:"not null;index"`
}
