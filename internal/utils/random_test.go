package utils

import (
	"testing"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomStudent(t *testing.T) {
	courseIDs := []string{"c1", "c2", "c3"}

	for i := 0; i < 50; i++ {
		s := GenerateRandomStudent("example.com", courseIDs)
		require.NotNil(t, s)
		assert.NotEmpty(t, s.Name)
		assert.Contains(t, s.Email, "@example.com")
		assert.GreaterOrEqual(t, s.Age, 17)
		assert.LessOrEqual(t, s.Age, 29)
		assert.LessOrEqual(t, len(s.Enrollments), len(courseIDs))
		assert.NoError(t, ValidateEnrollments(s))
	}
}

func TestGenerateRandomCourse(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := GenerateRandomCourse("t1")
		assert.Equal(t, "t1", c.TeacherID)
		assert.Contains(t, []domain.CourseStatus{domain.CourseActive, domain.CourseInactive}, c.Status)
		assert.NoError(t, ValidateCoursePeriod(c))
	}
}

func TestGenerateRandomGrade(t *testing.T) {
	for i := 0; i < 100; i++ {
		g := GenerateRandomGrade()
		assert.GreaterOrEqual(t, g, 0.0)
		assert.LessOrEqual(t, g, 5.0)
	}
}

func TestGenerateNicknameFromName(t *testing.T) {
	n := GenerateNicknameFromName("Sebastián Díaz")
	assert.Regexp(t, `^[a-z]+[0-9]{1,3}$`, n)
}

func TestGenerateRandomSubset(t *testing.T) {
	arr := []string{"a", "b", "c"}
	sub := GenerateRandomSubset(arr)
	assert.LessOrEqual(t, len(sub), 3)
	assert.Equal(t, []string{"a", "b", "c"}, arr)
	assert.Empty(t, GenerateRandomSubset(nil))
}
