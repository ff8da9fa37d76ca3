package domain

import "time"

type Enrollment struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"courseId"` // 弱引用，课程可能已经不在 courses 集合中
	EnrolledAt time.Time `json:"enrolledAt"`
	Score      *float64  `json:"score"`
}

type Student struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Age         int          `json:"age"`
	Email       string       `json:"email"`
	Gender      string       `json:"gender"`
	Nickname    string       `json:"nickname"`
	Enrollments []Enrollment `json:"enrollments"`
}

func (s Student) EntityID() string { return s.ID }

// IsActive 有至少一个选课记录的学生视为活跃
func (s Student) IsActive() bool {
	return len(s.Enrollments) > 0
}
