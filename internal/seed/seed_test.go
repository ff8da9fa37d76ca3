package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-academic/dashboard/internal/actions"
	"github.com/nexus-academic/dashboard/internal/config"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/service"
	"github.com/nexus-academic/dashboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryBackend 是一个只保存在内存中的后端
type memoryBackend struct {
	mu          sync.Mutex
	courses     []domain.CourseInput
	students    []domain.StudentInput
	submissions []domain.Submission
}

func (b *memoryBackend) router() http.Handler {
	write := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		write(w, map[string]any{"id": "t1", "email": "profe@example.com", "fullName": "Profe", "roles": []string{"teacher"}, "token": "tok"})
	})
	r.Post("/courses", func(w http.ResponseWriter, r *http.Request) {
		var in domain.CourseInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		b.courses = append(b.courses, in)
		id := len(b.courses)
		b.mu.Unlock()
		write(w, domain.Course{ID: fmt.Sprintf("c%d", id), Name: in.Name, Code: in.Code, Teacher: domain.Teacher{ID: in.TeacherID}})
	})
	r.Post("/students", func(w http.ResponseWriter, r *http.Request) {
		var in domain.StudentInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		b.students = append(b.students, in)
		id := len(b.students)
		b.mu.Unlock()
		write(w, domain.Student{ID: fmt.Sprintf("s%d", id), Name: in.Name})
	})
	r.Get("/submissions", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		write(w, b.submissions)
	})
	r.Patch("/submissions/{id}/grade", func(w http.ResponseWriter, r *http.Request) {
		var in domain.GradeInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		write(w, domain.Submission{ID: chi.URLParam(r, "id"), Grade: in.Grade, Comments: in.Comments})
	})
	return r
}

func newSeeder(t *testing.T, b *memoryBackend, loggedIn bool) *Seeder {
	t.Helper()
	srv := httptest.NewServer(b.router())
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = srv.URL
	cfg.Backend.RequestTimeout = 5

	st := store.New()
	client := service.NewClient(cfg, func() string { return st.Auth().Token })
	act := actions.New(st, actions.FromClient(client))
	if loggedIn {
		require.NoError(t, act.Login(context.Background(), domain.Credentials{Email: "profe@example.com", Password: "x"}))
	}

	s, err := NewSeeder(act, "example.com")
	require.NoError(t, err)
	return s
}

func TestSeedCourses(t *testing.T) {
	b := &memoryBackend{}
	s := newSeeder(t, b, true)

	courses, err := s.SeedCourses(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, courses, 3)
	require.Len(t, b.courses, 3)
	for _, c := range b.courses {
		assert.Equal(t, "t1", c.TeacherID)
		assert.True(t, c.EndDate.After(c.StartDate))
	}
}

func TestSeedStudents(t *testing.T) {
	b := &memoryBackend{}
	s := newSeeder(t, b, true)

	students, err := s.SeedStudents(context.Background(), 5, []string{"c1", "c2"})
	require.NoError(t, err)
	assert.Len(t, students, 5)
	assert.Len(t, b.students, 5)
}

func TestSeedRequiresSession(t *testing.T) {
	s := newSeeder(t, &memoryBackend{}, false)

	_, err := s.SeedCourses(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = s.SeedStudents(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestGradePending(t *testing.T) {
	g := 4.0
	b := &memoryBackend{submissions: []domain.Submission{{ID: "sub1"}, {ID: "sub2", Grade: &g}, {ID: "sub3"}}}
	s := newSeeder(t, b, true)

	cnt, err := s.GradePending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)

	for _, sub := range s.actions.Store().Submissions().Items {
		assert.True(t, sub.IsGraded(), sub.ID)
	}
}
