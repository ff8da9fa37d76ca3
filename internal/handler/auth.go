package handler

import (
	"net/http"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/guard"
	"github.com/nexus-academic/dashboard/internal/store"
)

// authView 是返回给界面的认证状态，token 不会出现在其中
type authView struct {
	User            *domain.User   `json:"user"`
	IsAuthenticated bool           `json:"isAuthenticated"`
	IsInitialized   bool           `json:"isInitialized"`
	Loading         bool           `json:"loading"`
	Error           string         `json:"error,omitempty"`
	Guard           guard.Decision `json:"guard"`
}

func (h *Handler) authView(state *store.AuthState) authView {
	return authView{
		User:            state.User,
		IsAuthenticated: state.IsAuthenticated,
		IsInitialized:   state.IsInitialized,
		Loading:         state.Loading,
		Error:           state.Error,
		Guard:           guard.Decide(state, nil, h.routes),
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.Credentials

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validator.Credentials(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.actions.Login(r.Context(), req); err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Sesión iniciada", h.authView(h.store.Auth()))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.Registration

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validator.Registration(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.actions.Register(r.Context(), req); err != nil {
		h.actionFailed(w, r, err)
		return
	}

	h.successResponse(w, r, "Usuario registrado", h.authView(h.store.Auth()))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.actions.Logout(r.Context())
	h.successResponse(w, r, "Sesión cerrada", h.authView(h.store.Auth()))
}

func (h *Handler) GetAuthStatus(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "Estado de autenticación", h.authView(h.store.Auth()))
}

// CheckAuthStatus 向后端重新确认会话，失败时状态已被清空，返回的仍是成功响应
func (h *Handler) CheckAuthStatus(w http.ResponseWriter, r *http.Request) {
	_ = h.actions.CheckAuthStatus(r.Context())
	h.successResponse(w, r, "Estado de autenticación", h.authView(h.store.Auth()))
}
