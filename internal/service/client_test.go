package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-academic/dashboard/internal/config"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, r http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = srv.URL + "/"
	cfg.Backend.RequestTimeout = 5
	return NewClient(cfg, func() string { return token })
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestAuthLogin(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in domain.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "profe@example.com", in.Email)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		writeJSON(w, http.StatusOK, map[string]any{
			"id":       "u1",
			"email":    in.Email,
			"fullName": "Profe",
			"roles":    []string{"teacher"},
			"isActive": true,
			"token":    "tok-123",
		})
	})

	c := newTestClient(t, r, "")
	resp, err := c.Auth.Login(context.Background(), domain.Credentials{Email: "profe@example.com", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", resp.Token)

	user := resp.User()
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, []domain.Role{domain.RoleTeacher}, user.Roles)
}

func TestAPIErrorMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Credenciales inválidas"})
	})
	r.Get("/courses", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c := newTestClient(t, r, "")

	_, err := c.Auth.Login(context.Background(), domain.Credentials{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Credenciales inválidas", apiErr.Message)

	_, err = c.Courses.List(context.Background())
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Message)
}

func TestStudentsList(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/students", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		writeJSON(w, http.StatusOK, []domain.Student{{ID: "s1", Name: "Juan"}, {ID: "s2", Name: "Ana"}})
	})

	c := newTestClient(t, r, "tok")
	students, err := c.Students.List(context.Background(), domain.StudentListParams{Limit: 1000, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, students, 2)
	assert.Equal(t, "Ana", students[1].Name)
}

func TestCourseCRUD(t *testing.T) {
	var deleted string
	r := chi.NewRouter()
	r.Put("/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in domain.CourseInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusOK, domain.Course{ID: chi.URLParam(r, "id"), Name: in.Name})
	})
	r.Delete("/courses/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = chi.URLParam(r, "id")
		w.WriteHeader(http.StatusNoContent)
	})

	c := newTestClient(t, r, "tok")

	course, err := c.Courses.Update(context.Background(), "c1", domain.CourseInput{Name: "React Avanzado"})
	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
	assert.Equal(t, "React Avanzado", course.Name)

	require.NoError(t, c.Courses.Delete(context.Background(), "c1"))
	assert.Equal(t, "c1", deleted)
}

func TestSubmissionGrade(t *testing.T) {
	r := chi.NewRouter()
	r.Patch("/submissions/{id}/grade", func(w http.ResponseWriter, r *http.Request) {
		var in domain.GradeInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.NotNil(t, in.Grade)
		writeJSON(w, http.StatusOK, domain.Submission{ID: chi.URLParam(r, "id"), Grade: in.Grade, Comments: in.Comments})
	})

	c := newTestClient(t, r, "tok")
	grade := 4.2
	sub, err := c.Submissions.Grade(context.Background(), "sub1", domain.GradeInput{Grade: &grade, Comments: "Bien"})
	require.NoError(t, err)
	assert.True(t, sub.IsGraded())
	assert.Equal(t, 4.2, *sub.Grade)
	assert.Equal(t, "Bien", sub.Comments)
}
