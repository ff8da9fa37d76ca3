package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nexus-academic/dashboard/internal/actions"
	"github.com/nexus-academic/dashboard/internal/validation"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("服务器内部错误", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

// badRequest 只返回第一个字段错误，表单错误不会写入共享状态
func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) {
		h.writeJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Message: validationErr.Message,
			Data:    map[string]string{"field": validationErr.Field},
		})
		return
	}

	h.writeJSON(w, r, http.StatusBadRequest, Response{
		Success: false,
		Message: "Solicitud inválida",
		Data:    nil,
	})
}

// actionFailed 返回 thunk 错误携带的信息，与该 thunk 派发到切片的信息相同
func (h *Handler) actionFailed(w http.ResponseWriter, r *http.Request, err error) {
	msg := actions.Message(err)
	if msg == "" {
		h.internalServerError(w, r, err)
		return
	}

	slog.Warn("操作失败", "method", r.Method, "path", r.URL.Path, "error", err)
	h.errorResponse(w, r, msg)
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "Error interno del servidor",
		Data:    nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}
