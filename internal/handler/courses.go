package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/filter"
)

func (h *Handler) GetCourses(w http.ResponseWriter, r *http.Request) {
	if err := h.actions.GetCourses(r.Context()); err != nil {
		h.actionFailed(w, r, err)
		return
	}

	view := newListView(h.store.Courses().Items, filter.Courses, criteriaFromQuery(r))
	h.successResponse(w, r, "Cursos obtenidos", view)
}

// GetCourseTeachers 从已加载的课程中整理出可选的教师列表，不会请求后端
func (h *Handler) GetCourseTeachers(w http.ResponseWriter, r *http.Request) {
	seen := make(map[string]bool)
	users := make([]domain.User, 0)
	for _, course := range h.store.Courses().Items {
		t := course.Teacher
		if t.ID == "" || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		users = append(users, domain.User{ID: t.ID, Email: t.Email, FullName: t.FullName, Roles: t.Roles, IsActive: true})
	}

	// 快照中没有角色的教师视为 teacher
	for i := range users {
		if len(users[i].Roles) == 0 {
			users[i].Roles = []domain.Role{domain.RoleTeacher}
		}
	}

	teachers := filter.ByRole(users, string(domain.RoleTeacher))
	view := newListView(teachers, filter.Users, filter.Criteria{SearchTerm: r.URL.Query().Get("search")})
	h.successResponse(w, r, "Profesores obtenidos", view)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.actions.GetCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Curso obtenido", course)
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req domain.CourseInput

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validator.Course(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.Status == "" {
		req.Status = domain.CourseActive
	}

	course, err := h.actions.CreateCourse(r.Context(), req)
	if err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Curso creado", course)
}

func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var req domain.CourseInput

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validator.Course(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	course, err := h.actions.UpdateCourse(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Curso actualizado", course)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.actions.DeleteCourse(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Curso eliminado", nil)
}
