package domain

import "time"

// 以下是发送给后端的请求体，validate 标签由 validation 包使用

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Registration struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type EnrollmentInput struct {
	CourseID   string    `json:"courseId" validate:"required"`
	EnrolledAt time.Time `json:"enrolledAt" validate:"required"`
	Score      *float64  `json:"score" validate:"omitempty,min=0"`
}

type StudentInput struct {
	Name        string            `json:"name" validate:"required"`
	Age         int               `json:"age" validate:"required,min=1,max=120"`
	Email       string            `json:"email" validate:"required,email"`
	Gender      string            `json:"gender" validate:"required"`
	Nickname    string            `json:"nickname" validate:"required"`
	Enrollments []EnrollmentInput `json:"enrollments,omitempty" validate:"dive"`
}

type CourseInput struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Code        string       `json:"code" validate:"required"`
	TeacherID   string       `json:"teacherId" validate:"required"`
	StartDate   time.Time    `json:"startDate" validate:"required"`
	EndDate     time.Time    `json:"endDate" validate:"required"`
	Status      CourseStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type GradeInput struct {
	Grade    *float64 `json:"grade" validate:"required,min=0,max=5"`
	Comments string   `json:"comments"`
}

type StudentListParams struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
