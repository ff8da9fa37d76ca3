package guard

import (
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/store"
)

type Outcome string

const (
	Render   Outcome = "render"
	Wait     Outcome = "wait"
	Redirect Outcome = "redirect"
)

type Decision struct {
	Outcome Outcome `json:"action"`
	Target  string  `json:"target,omitempty"`
}

type Routes struct {
	Login   string
	Default string
}

var DefaultRoutes = Routes{
	Login:   "/auth/login",
	Default: "/dashboard/main",
}

// Decide 根据认证状态决定受保护的视图是渲染、等待还是重定向
//
// 每次认证状态变化后都应重新调用。
func Decide(state *store.AuthState, requiredRoles []domain.Role, routes Routes) Decision {
	switch {
	case state == nil || !state.IsInitialized:
		return Decision{Outcome: Wait}
	case state.Loading:
		return Decision{Outcome: Wait}
	case !state.IsAuthenticated || state.User == nil:
		return Decision{Outcome: Redirect, Target: routes.Login}
	case len(requiredRoles) > 0 && !state.User.HasAnyRole(requiredRoles):
		return Decision{Outcome: Redirect, Target: routes.Default}
	default:
		return Decision{Outcome: Render}
	}
}
