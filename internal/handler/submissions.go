package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/filter"
)

func (h *Handler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	if err := h.actions.GetSubmissions(r.Context()); err != nil {
		h.actionFailed(w, r, err)
		return
	}

	view := newListView(h.store.Submissions().Items, filter.Submissions, criteriaFromQuery(r))
	h.successResponse(w, r, "Entregas obtenidas", view)
}

func (h *Handler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	submission, err := h.actions.GetSubmission(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Entrega obtenida", submission)
}

func (h *Handler) GradeSubmission(w http.ResponseWriter, r *http.Request) {
	var req domain.GradeInput

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validator.Grade(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	submission, err := h.actions.GradeSubmission(r.Context(), chi.URLParam(r, "id"), *req.Grade, req.Comments)
	if err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Entrega calificada", submission)
}

func (h *Handler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	if err := h.actions.DeleteSubmission(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Entrega eliminada", nil)
}
