package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err)
	return v
}

func validCourse() domain.CourseInput {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return domain.CourseInput{
		Name:        "Curso de Go",
		Description: "Concurrencia y servicios",
		Code:        "GO101",
		TeacherID:   "t1",
		StartDate:   start,
		EndDate:     start.AddDate(0, 4, 0),
		Status:      domain.CourseActive,
	}
}

func TestCourse(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name      string
		mutate    func(*domain.CourseInput)
		wantField string
	}{
		{name: "valid", mutate: func(*domain.CourseInput) {}},
		{name: "missing name", mutate: func(c *domain.CourseInput) { c.Name = "" }, wantField: "name"},
		{name: "missing teacher", mutate: func(c *domain.CourseInput) { c.TeacherID = "" }, wantField: "teacherId"},
		{name: "bad status", mutate: func(c *domain.CourseInput) { c.Status = "ARCHIVED" }, wantField: "status"},
		{name: "empty status", mutate: func(c *domain.CourseInput) { c.Status = "" }},
		{name: "end equals start", mutate: func(c *domain.CourseInput) { c.EndDate = c.StartDate }, wantField: "endDate"},
		{name: "end before start", mutate: func(c *domain.CourseInput) { c.EndDate = c.StartDate.AddDate(0, 0, -1) }, wantField: "endDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCourse()
			tt.mutate(&in)
			err := v.Course(in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.NotEmpty(t, ve.Message)
		})
	}
}

func TestStudent(t *testing.T) {
	v := newValidator(t)
	in := domain.StudentInput{
		Name:     "Juan Pérez",
		Age:      20,
		Email:    "juan.perez@example.com",
		Gender:   "Male",
		Nickname: "juanito",
	}
	assert.NoError(t, v.Student(in))

	noName := in
	noName.Name = ""
	var ve *ValidationError
	require.True(t, errors.As(v.Student(noName), &ve))
	assert.Equal(t, "name", ve.Field)

	badEmail := in
	badEmail.Email = "no-es-un-email"
	require.True(t, errors.As(v.Student(badEmail), &ve))
	assert.Equal(t, "email", ve.Field)

	enrolled := in
	enrolled.Enrollments = []domain.EnrollmentInput{
		{CourseID: "c1", EnrolledAt: time.Now()},
		{CourseID: "c1", EnrolledAt: time.Now()},
	}
	require.True(t, errors.As(v.Student(enrolled), &ve))
	assert.Equal(t, "enrollments", ve.Field)
}

func TestGrade(t *testing.T) {
	v := newValidator(t)
	g := func(f float64) *float64 { return &f }

	assert.NoError(t, v.Grade(domain.GradeInput{Grade: g(4.5)}))
	assert.NoError(t, v.Grade(domain.GradeInput{Grade: g(0)}))
	assert.Error(t, v.Grade(domain.GradeInput{Grade: g(5.1)}))
	assert.Error(t, v.Grade(domain.GradeInput{Grade: g(-1)}))
	assert.Error(t, v.Grade(domain.GradeInput{}))
}

func TestCredentials(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Credentials(domain.Credentials{Email: "a@b.co", Password: "x"}))
	assert.Error(t, v.Credentials(domain.Credentials{Email: "a@b.co"}))
	assert.Error(t, v.Registration(domain.Registration{FullName: "A", Email: "a@b.co", Password: "123"}))
}
