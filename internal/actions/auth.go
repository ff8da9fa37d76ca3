package actions

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/service"
	"github.com/nexus-academic/dashboard/internal/session"
	"github.com/nexus-academic/dashboard/internal/store"
)

const (
	msgLoginFailed    = "Error al iniciar sesión"
	msgRegisterFailed = "Error al registrar usuario"
)

var ErrIncompleteCredentials = errors.New("respuesta de autenticación incompleta")

func (a *Actions) authenticated(ctx context.Context, t store.Ticket, resp *service.AuthResponse, fallback string) error {
	if resp.ID == "" || resp.Token == "" {
		a.store.CommitAuth(ctx, t, store.SetAuthError{Message: fallback})
		return &Error{Message: fallback, Err: ErrIncompleteCredentials}
	}
	a.store.CommitAuth(ctx, t, store.SetCredentials{User: resp.User(), Token: resp.Token})
	return nil
}

func (a *Actions) Login(ctx context.Context, in domain.Credentials) error {
	t := a.store.Begin(ctx, store.SliceAuth)

	resp, err := a.services.Auth.Login(ctx, in)
	if err != nil {
		fail := failure(err, msgLoginFailed)
		a.store.CommitAuth(ctx, t, store.SetAuthError{Message: fail.Message})
		return fail
	}

	return a.authenticated(ctx, t, resp, msgLoginFailed)
}

func (a *Actions) Register(ctx context.Context, in domain.Registration) error {
	t := a.store.Begin(ctx, store.SliceAuth)

	resp, err := a.services.Auth.Register(ctx, in)
	if err != nil {
		fail := failure(err, msgRegisterFailed)
		a.store.CommitAuth(ctx, t, store.SetAuthError{Message: fail.Message})
		return fail
	}

	return a.authenticated(ctx, t, resp, msgRegisterFailed)
}

// CheckAuthStatus 用当前 token 向后端确认会话，任何失败都会清空凭证
func (a *Actions) CheckAuthStatus(ctx context.Context) error {
	t := a.store.Begin(ctx, store.SliceAuth)

	token := a.store.Auth().Token
	if token == "" {
		a.store.CommitAuth(ctx, t, store.ClearCredentials{})
		return nil
	}

	resp, err := a.services.Auth.CheckStatus(ctx)
	if err != nil {
		a.store.CommitAuth(ctx, t, store.ClearCredentials{})
		return err
	}

	// 状态接口可能不返回新的 token，此时沿用当前的
	if resp.Token == "" {
		resp.Token = token
	}
	if resp.ID == "" {
		a.store.CommitAuth(ctx, t, store.ClearCredentials{})
		return ErrIncompleteCredentials
	}
	a.store.CommitAuth(ctx, t, store.SetCredentials{User: resp.User(), Token: resp.Token})
	return nil
}

// Logout 即使后端退出失败也会清空本地凭证
func (a *Actions) Logout(ctx context.Context) {
	a.store.Begin(ctx, store.SliceAuth)

	if err := a.services.Auth.Logout(ctx); err != nil {
		slog.Warn("后端退出登录失败", "error", err)
	}

	a.store.DispatchAuth(ctx, store.ClearCredentials{})
	if a.resetOnLogout {
		a.store.ResetData()
	}
}

// Initialize 在启动时读取保存的 token，过期的 token 直接清除，否则向后端确认
func (a *Actions) Initialize(ctx context.Context) error {
	stored := ""
	if a.tokens != nil {
		token, err := a.tokens.Get(ctx)
		if err != nil {
			slog.Warn("无法读取保存的 token", "error", err)
		} else {
			stored = token
		}
	}

	a.store.DispatchAuth(ctx, store.InitializeAuth{StoredToken: stored})

	if stored != "" && session.Expired(stored, a.now()) {
		slog.Info("保存的 token 已过期")
		a.store.DispatchAuth(ctx, store.ClearCredentials{})
		return nil
	}

	return a.CheckAuthStatus(ctx)
}
