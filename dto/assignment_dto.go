package dto

import "time"

type CreateAssignmentInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"required"`
}

type SubmitAssignmentInput struct {
	Content string `json:"content" binding:"required"`
}

type SubmissionResponse struct {
	StudentID   uint      `json:"student_id"`
	Content     string    `json:"content"`
	SubmittedAt time.Time `json:"submitted_at"`
}
