package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/service/school"
)

// Request payloads. Validation tags drive the validation pipeline; update
// payloads use pointer fields so absent values are distinguishable from
// zero values, and constraints apply only when a field is present.

// RegisterRequest defines the payload for the user registration endpoint.
// Role is optional and defaults to "user".
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateStudentRequest defines the payload for creating a student.
type CreateStudentRequest struct {
	Name  string `json:"name"  validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age"   validate:"required,gt=0,lte=120"`
}

// UpdateStudentRequest defines the partial payload for updating a student.
type UpdateStudentRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=2"`
	Email *string `json:"email" validate:"omitempty,email"`
	Age   *int    `json:"age"   validate:"omitempty,gt=0,lte=120"`
}

// CreateTeacherRequest defines the payload for creating a teacher.
type CreateTeacherRequest struct {
	Name  string `json:"name"  validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateTeacherRequest defines the partial payload for updating a teacher.
type UpdateTeacherRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=2"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// CreateCourseRequest defines the payload for creating a course.
type CreateCourseRequest struct {
	Title   string `json:"title"   validate:"required"`
	Code    string `json:"code"    validate:"required,min=2"`
	Credits int    `json:"credits" validate:"required,gte=1"`
}

// UpdateCourseRequest defines the partial payload for updating a course.
type UpdateCourseRequest struct {
	Title   *string `json:"title"   validate:"omitempty,min=1"`
	Code    *string `json:"code"    validate:"omitempty,min=2"`
	Credits *int    `json:"credits" validate:"omitempty,gte=1"`
}

// EnrollRequest defines the payload for the enroll/remove course endpoints.
type EnrollRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
}

// Response models.

// UserInfo is the public view of a user account. Credentials never appear.
type UserInfo struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt *time.Time  `json:"createdAt,omitempty"`
}

// AuthResponse is the successful response for the register and login
// endpoints.
type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// ProfileResponse is the successful response for the profile endpoint.
type ProfileResponse struct {
	User UserInfo `json:"user"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// StudentResponse is a student with its course references expanded to full
// course objects.
type StudentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Age       int             `json:"age"`
	Courses   []domain.Course `json:"courses"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TeacherResponse is a teacher with its course references expanded to full
// course objects.
type TeacherResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Courses   []domain.Course `json:"courses"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newUserInfo(user *domain.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

func newStudentResponse(detail *school.StudentDetail) StudentResponse {
	courses := detail.Courses
	if courses == nil {
		courses = []domain.Course{}
	}
	return StudentResponse{
		ID:        detail.Student.ID,
		Name:      detail.Student.Name,
		Email:     detail.Student.Email,
		Age:       detail.Student.Age,
		Courses:   courses,
		CreatedAt: detail.Student.CreatedAt,
		UpdatedAt: detail.Student.UpdatedAt,
	}
}

func newTeacherResponse(detail *school.TeacherDetail) TeacherResponse {
	courses := detail.Courses
	if courses == nil {
		courses = []domain.Course{}
	}
	return TeacherResponse{
		ID:        detail.Teacher.ID,
		Name:      detail.Teacher.Name,
		Email:     detail.Teacher.Email,
		Courses:   courses,
		CreatedAt: detail.Teacher.CreatedAt,
		UpdatedAt: detail.Teacher.UpdatedAt,
	}
}
