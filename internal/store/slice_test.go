package store

import (
	"testing"
	"time"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockCourse(id, name string) domain.Course {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return domain.Course{
		ID:          id,
		Name:        name,
		Code:        "TS101",
		Description: "Aprende TypeScript desde cero.",
		Teacher: domain.Teacher{
			ID:       "teacher-1",
			Email:    "teacher@example.com",
			FullName: "Profesor Ejemplo",
			Roles:    []domain.Role{domain.RoleTeacher},
		},
		Status:    domain.CourseActive,
		StartDate: start,
		EndDate:   start.AddDate(0, 4, 0),
		CreatedAt: start,
		UpdatedAt: start,
	}
}

type unknownCourseAction struct{}

func (unknownCourseAction) ActionType() string        { return "unknown" }
func (unknownCourseAction) sliceAction(domain.Course) {}

func TestSliceReducerInitialState(t *testing.T) {
	r := NewSliceReducer(InitialCourses)
	assert.Equal(t, InitialCourses(), r.Reduce(nil, unknownCourseAction{}))

	students := NewSliceReducer(InitialStudents)
	got := students.Reduce(nil, Reset[domain.Student]{})
	require.NotNil(t, got.Pagination)
	assert.Equal(t, domain.Pagination{Limit: 10, Offset: 0, Total: 0}, *got.Pagination)
	assert.Empty(t, got.Items)
}

func TestSliceReducerUnknownActionKeepsState(t *testing.T) {
	r := NewSliceReducer(InitialCourses)
	state := &SliceState[domain.Course]{Items: []domain.Course{mockCourse("course-1", "A")}}
	assert.Same(t, state, r.Reduce(state, unknownCourseAction{}))
}

func TestSliceReducerTransitions(t *testing.T) {
	r := NewSliceReducer(InitialCourses)
	c1 := mockCourse("course-1", "Curso de TypeScript")
	c2 := mockCourse("course-2", "Curso de React Avanzado")

	t.Run("startFetching", func(t *testing.T) {
		state := &SliceState[domain.Course]{Items: []domain.Course{}, Error: "Error previo"}
		got := r.Reduce(state, StartFetching[domain.Course]{})
		assert.True(t, got.Loading)
		assert.Empty(t, got.Error)
		assert.Equal(t, "Error previo", state.Error, "input must not be mutated")
	})

	t.Run("setData replaces", func(t *testing.T) {
		state := &SliceState[domain.Course]{Items: []domain.Course{c1}, Loading: true}
		got := r.Reduce(state, SetData[domain.Course]{Items: []domain.Course{c2}})
		assert.False(t, got.Loading)
		assert.Equal(t, []domain.Course{c2}, got.Items)
		assert.Equal(t, []domain.Course{c1}, state.Items)
	})

	t.Run("setCurrent", func(t *testing.T) {
		got := r.Reduce(InitialCourses(), SetCurrent[domain.Course]{Item: &c1})
		require.NotNil(t, got.Current)
		assert.Equal(t, c1, *got.Current)

		cleared := r.Reduce(got, SetCurrent[domain.Course]{})
		assert.Nil(t, cleared.Current)
	})

	t.Run("add appends", func(t *testing.T) {
		items := make([]domain.Course, 1, 4)
		items[0] = c1
		state := &SliceState[domain.Course]{Items: items}
		got := r.Reduce(state, Add[domain.Course]{Item: c2})
		assert.Equal(t, []domain.Course{c1, c2}, got.Items)
		assert.Len(t, state.Items, 1)
		assert.Equal(t, []domain.Course{c1}, items[:1])
	})

	t.Run("update replaces matching id", func(t *testing.T) {
		state := &SliceState[domain.Course]{Items: []domain.Course{c1, c2}, Current: &c1}
		updated := c1
		updated.Name = "Curso de TypeScript Actualizado"
		got := r.Reduce(state, Update[domain.Course]{Item: updated})
		assert.Equal(t, []domain.Course{updated, c2}, got.Items)
		assert.Equal(t, updated, *got.Current)
		assert.Equal(t, "Curso de TypeScript", state.Items[0].Name)
	})

	t.Run("update without match is a no-op", func(t *testing.T) {
		state := &SliceState[domain.Course]{Items: []domain.Course{c1}}
		missing := c2
		missing.ID = "course-non-existent"
		assert.Same(t, state, r.Reduce(state, Update[domain.Course]{Item: missing}))
	})

	t.Run("update without match still clears loading", func(t *testing.T) {
		state := &SliceState[domain.Course]{Items: []domain.Course{c1}, Loading: true}
		got := r.Reduce(state, Update[domain.Course]{Item: c2})
		assert.False(t, got.Loading)
		assert.Equal(t, state.Items, got.Items)
	})

	t.Run("remove", func(t *testing.T) {
		state := &SliceState[domain.Course]{Items: []domain.Course{c1, c2}, Current: &c1}
		got := r.Reduce(state, Remove[domain.Course]{ID: c1.ID})
		assert.Equal(t, []domain.Course{c2}, got.Items)
		assert.Nil(t, got.Current)
		assert.Equal(t, []domain.Course{c1, c2}, state.Items)
	})

	t.Run("remove without match is a no-op", func(t *testing.T) {
		state := &SliceState[domain.Course]{Items: []domain.Course{c1, c2}}
		assert.Same(t, state, r.Reduce(state, Remove[domain.Course]{ID: "id-no-existente"}))
	})

	t.Run("fail", func(t *testing.T) {
		state := &SliceState[domain.Course]{Items: []domain.Course{}, Loading: true}
		got := r.Reduce(state, Fail[domain.Course]{Message: "Error al obtener los cursos"})
		assert.False(t, got.Loading)
		assert.Equal(t, "Error al obtener los cursos", got.Error)
	})

	t.Run("reset", func(t *testing.T) {
		state := &SliceState[domain.Course]{Items: []domain.Course{c1}, Error: "x"}
		assert.Equal(t, InitialCourses(), r.Reduce(state, Reset[domain.Course]{}))
	})
}

func TestSliceReducerSetPagination(t *testing.T) {
	r := NewSliceReducer(InitialStudents)
	got := r.Reduce(nil, SetPagination[domain.Student]{Pagination: domain.Pagination{Limit: 20, Offset: 10, Total: 100}})
	assert.Equal(t, domain.Pagination{Limit: 20, Offset: 10, Total: 100}, *got.Pagination)
}

func TestSliceReducerSetDataIsIdempotent(t *testing.T) {
	r := NewSliceReducer(InitialCourses)
	items := []domain.Course{mockCourse("course-1", "A"), mockCourse("course-2", "B")}

	once := r.Reduce(InitialCourses(), SetData[domain.Course]{Items: items})
	twice := r.Reduce(once, SetData[domain.Course]{Items: items})
	assert.Equal(t, once, twice)
}
