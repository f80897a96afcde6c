package constants

// ユーザーロール
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// 期限日のフォーマット（YYYY-MM-DD固定）
const DueDateLayout = "2006-01-02"

// エラーメッセージ
const (
	ErrAssignmentNotFound = "Assignment not found"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
	ErrInvalidDueDate     = "Invalid due date format"
	ErrInvalidCredentials = "Invalid credentials"
	ErrEmailTaken         = "Email already exists"
	ErrNotOwner           = "Only the assignment owner can view submissions"
)
