package services

import (
	"testing"
	"time"

	"assignment-tracker/dto"
	"assignment-tracker/models"
	"assignment-tracker/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAssignmentTest(t *testing.T) (*gorm.DB, IAssignmentService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Assignment{}, &models.Submission{}))

	assignmentRepository := repositories.NewAssignmentRepository(db)
	submissionRepository := repositories.NewSubmissionRepository(db)
	return db, NewAssignmentService(assignmentRepository, submissionRepository)
}

func TestCreateAssignment(t *testing.T) {
	_, service := setupAssignmentTest(t)

	input := dto.CreateAssignmentInput{
		Title:       "Essay",
		Description: "Write about Go",
		DueDate:     "2024-12-31",
	}
	assignment, err := service.Create(input, 1)
	require.NoError(t, err)
	assert.Equal(t, "Essay", assignment.Title)
	assert.Equal(t, uint(1), assignment.TeacherID)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), assignment.DueDate)
}

func TestCreateAssignmentInvalidDueDate(t *testing.T) {
	db, service := setupAssignmentTest(t)

	input := dto.CreateAssignmentInput{
		Title:   "Essay",
		DueDate: "31-12-2024",
	}
	_, err := service.Create(input, 1)
	assert.ErrorIs(t, err, ErrInvalidDueDate)

	var count int64
	require.NoError(t, db.Model(&models.Assignment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubmitAssignmentNotFound(t *testing.T) {
	_, service := setupAssignmentTest(t)

	_, err := service.Submit(999, dto.SubmitAssignmentInput{Content: "hello"}, 2)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestSubmitCreatesSubmission(t *testing.T) {
	db, service := setupAssignmentTest(t)

	assignment, err := service.Create(dto.CreateAssignmentInput{Title: "Essay", DueDate: "2024-12-31"}, 1)
	require.NoError(t, err)

	submission, err := service.Submit(assignment.ID, dto.SubmitAssignmentInput{Content: "hello"}, 2)
	require.NoError(t, err)
	assert.Equal(t, assignment.ID, submission.AssignmentID)
	assert.Equal(t, uint(2), submission.StudentID)
	assert.False(t, submission.SubmittedAt.IsZero())

	// 同じ学生が再提出しても新しい行が増える
	_, err = service.Submit(assignment.ID, dto.SubmitAssignmentInput{Content: "hello again"}, 2)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Submission{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestFindSubmissionsOrderedBySubmissionTime(t *testing.T) {
	db, service := setupAssignmentTest(t)

	assignment, err := service.Create(dto.CreateAssignmentInput{Title: "Essay", DueDate: "2024-12-31"}, 1)
	require.NoError(t, err)

	base := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	// 提出順と逆にして昇順ソートを確かめる
	require.NoError(t, db.Create(&models.Submission{AssignmentID: assignment.ID, StudentID: 3, Content: "late", SubmittedAt: base.Add(time.Hour)}).Error)
	require.NoError(t, db.Create(&models.Submission{AssignmentID: assignment.ID, StudentID: 2, Content: "early", SubmittedAt: base}).Error)

	submissions, err := service.FindSubmissions(assignment.ID, 1)
	require.NoError(t, err)
	require.Len(t, *submissions, 2)
	assert.Equal(t, "early", (*submissions)[0].Content)
	assert.Equal(t, "late", (*submissions)[1].Content)
}

func TestFindSubmissionsNotOwner(t *testing.T) {
	_, service := setupAssignmentTest(t)

	assignment, err := service.Create(dto.CreateAssignmentInput{Title: "Essay", DueDate: "2024-12-31"}, 1)
	require.NoError(t, err)

	_, err = service.FindSubmissions(assignment.ID, 99)
	assert.ErrorIs(t, err, ErrNotAssignmentOwner)
}

func TestFindSubmissionsMissingAssignmentBeforeOwnership(t *testing.T) {
	_, service := setupAssignmentTest(t)

	// 存在しない課題は呼び出し元が誰でもNotFound
	_, err := service.FindSubmissions(999, 99)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}
