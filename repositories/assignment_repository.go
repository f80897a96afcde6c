package repositories

import (
	"assignment-tracker/models"

	"gorm.io/gorm"
)

type IAssignmentRepository interface {
	Create(newAssignment models.Assignment) (*models.Assignment, error)
	FindById(assignmentID uint) (*models.Assignment, error)
}

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) IAssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(newAssignment models.Assignment) (*models.Assignment, error) {
	result := r.db.Create(&newAssignment)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newAssignment, nil
}

func (r *AssignmentRepository) FindById(assignmentID uint) (*models.Assignment, error) {
	var assignment models.Assignment
	result := r.db.First(&assignment, "id = ?", assignmentID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &assignment, nil
}
