package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/filter"
)

func (h *Handler) GetStudents(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	offset, err := intQuery(r, "offset")
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.actions.GetStudents(r.Context(), domain.StudentListParams{Limit: limit, Offset: offset}); err != nil {
		h.actionFailed(w, r, err)
		return
	}

	state := h.store.Students()
	view := newListView(state.Items, filter.Students, criteriaFromQuery(r))
	view.Pagination = state.Pagination
	h.successResponse(w, r, "Estudiantes obtenidos", view)
}

func (h *Handler) SetStudentPage(w http.ResponseWriter, r *http.Request) {
	var req domain.StudentListParams

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validator.Struct(struct {
		Limit  int `json:"limit" validate:"min=1,max=1000"`
		Offset int `json:"offset" validate:"min=0"`
	}(req)); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.actions.SetStudentPage(req.Limit, req.Offset)
	h.successResponse(w, r, "Paginación actualizada", h.store.Students().Pagination)
}

func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.actions.GetStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Estudiante obtenido", student)
}

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req domain.StudentInput

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validator.Student(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	student, err := h.actions.CreateStudent(r.Context(), req)
	if err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Estudiante creado", student)
}

func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var req domain.StudentInput

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validator.Student(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	student, err := h.actions.UpdateStudent(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Estudiante actualizado", student)
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := h.actions.DeleteStudent(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Estudiante eliminado", nil)
}
