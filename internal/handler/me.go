package handler

import (
	"net/http"

	"github.com/nexus-academic/dashboard/internal/domain"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(UserCtxKey).(*domain.User)
	h.successResponse(w, r, "Información personal", myInfo)
}

// stateView 是整个状态树的快照，auth 切片不含 token
type stateView struct {
	Auth        authView `json:"auth"`
	Students    any      `json:"students"`
	Courses     any      `json:"courses"`
	Submissions any      `json:"submissions"`
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	state := h.store.State()
	h.successResponse(w, r, "Estado actual", stateView{
		Auth:        h.authView(state.Auth),
		Students:    state.Students,
		Courses:     state.Courses,
		Submissions: state.Submissions,
	})
}
