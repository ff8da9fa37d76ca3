package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/guard"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w, StatusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requireSession 按会话守卫的结果决定放行、等待还是重定向
func (h *Handler) requireSession(roles ...domain.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := h.store.Auth()
			decision := guard.Decide(auth, roles, h.routes)

			switch decision.Outcome {
			case guard.Wait:
				// 认证状态尚未确定，不能渲染也不能重定向
				w.Header().Set("Retry-After", "1")
				h.writeJSON(w, r, http.StatusServiceUnavailable, Response{
					Success: false,
					Message: "Verificando autenticación...",
					Data:    decision,
				})
			case guard.Redirect:
				w.Header().Set("Location", decision.Target)
				h.writeJSON(w, r, http.StatusSeeOther, Response{
					Success: false,
					Message: "Redirigiendo",
					Data:    decision,
				})
			default:
				ctx := context.WithValue(r.Context(), UserCtxKey, auth.User)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

func (h *Handler) RequiredRole(roles []domain.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value(UserCtxKey).(*domain.User)
			if !ok || user == nil || !user.HasAnyRole(roles) {
				h.writeJSON(w, r, http.StatusForbidden, Response{
					Success: false,
					Message: "Permisos insuficientes",
					Data:    nil,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
