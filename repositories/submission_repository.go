package repositories

import (
	"assignment-tracker/models"

	"gorm.io/gorm"
)

type ISubmissionRepository interface {
	Create(newSubmission models.Submission) (*models.Submission, error)
	FindByAssignmentId(assignmentID uint) (*[]models.Submission, error)
}

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) ISubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(newSubmission models.Submission) (*models.Submission, error) {
	result := r.db.Create(&newSubmission)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newSubmission, nil
}

// FindByAssignmentId 提出日時の昇順で返す
func (r *SubmissionRepository) FindByAssignmentId(assignmentID uint) (*[]models.Submission, error) {
	var submissions []models.Submission
	result := r.db.Where("assignment_id = ?", assignmentID).Order("submitted_at asc").Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}
	return &submissions, nil
}
