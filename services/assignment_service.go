package services

import (
	"errors"
	"time"

	"assignment-tracker/constants"
	"assignment-tracker/dto"
	"assignment-tracker/models"
	"assignment-tracker/repositories"

	"gorm.io/gorm"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNotAssignmentOwner = errors.New("not the assignment owner")
	ErrInvalidDueDate     = errors.New("due date must be in YYYY-MM-DD format")
)

type IAssignmentService interface {
	Create(createAssignmentInput dto.CreateAssignmentInput, teacherID uint) (*models.Assignment, error)
	Submit(assignmentID uint, submitAssignmentInput dto.SubmitAssignmentInput, studentID uint) (*models.Submission, error)
	FindSubmissions(assignmentID uint, teacherID uint) (*[]models.Submission, error)
}

type AssignmentService struct {
	repository           repositories.IAssignmentRepository
	submissionRepository repositories.ISubmissionRepository
}

func NewAssignmentService(repository repositories.IAssignmentRepository, submissionRepository repositories.ISubmissionRepository) IAssignmentService {
	return &AssignmentService{
		repository:           repository,
		submissionRepository: submissionRepository,
	}
}

func (s *AssignmentService) Create(createAssignmentInput dto.CreateAssignmentInput, teacherID uint) (*models.Assignment, error) {
	dueDate, err := time.Parse(constants.DueDateLayout, createAssignmentInput.DueDate)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	newAssignment := models.Assignment{
		Title:       createAssignmentInput.Title,
		Description: createAssignmentInput.Description,
		DueDate:     dueDate,
		TeacherID:   teacherID,
	}
	return s.repository.Create(newAssignment)
}

func (s *AssignmentService) Submit(assignmentID uint, submitAssignmentInput dto.SubmitAssignmentInput, studentID uint) (*models.Submission, error) {
	if _, err := s.repository.FindById(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	newSubmission := models.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      submitAssignmentInput.Content,
		SubmittedAt:  time.Now(),
	}
	return s.submissionRepository.Create(newSubmission)
}

// FindSubmissions 課題の存在確認を所有者チェックより先に行う
// （存在しない課題は403ではなく404として扱う）
func (s *AssignmentService) FindSubmissions(assignmentID uint, teacherID uint) (*[]models.Submission, error) {
	assignment, err := s.repository.FindById(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	if assignment.TeacherID != teacherID {
		return nil, ErrNotAssignmentOwner
	}

	return s.submissionRepository.FindByAssignmentId(assignmentID)
}
