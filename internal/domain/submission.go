package domain

import "time"

type SubmissionStatus string

const (
	SubmissionPending SubmissionStatus = "PENDING"
	SubmissionGraded  SubmissionStatus = "GRADED"
)

type SubmissionCourse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type SubmissionStudent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Submission struct {
	ID          string            `json:"id"`
	Course      SubmissionCourse  `json:"course"`
	Student     SubmissionStudent `json:"student"`
	FileURL     string            `json:"fileUrl"`
	Comments    string            `json:"comments"`
	Grade       *float64          `json:"grade"` // nil 表示尚未评分
	SubmittedAt time.Time         `json:"submittedAt"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (s Submission) EntityID() string { return s.ID }

func (s Submission) IsGraded() bool {
	return s.Grade != nil
}

func (s Submission) Status() SubmissionStatus {
	if s.IsGraded() {
		return SubmissionGraded
	}
	return SubmissionPending
}
