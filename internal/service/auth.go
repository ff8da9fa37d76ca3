package service

import (
	"context"
	"net/http"

	"github.com/nexus-academic/dashboard/internal/domain"
)

// AuthResponse 是登录、注册和状态检查共用的响应体
type AuthResponse struct {
	ID       string        `json:"id"`
	Email    string        `json:"email"`
	FullName string        `json:"fullName"`
	Roles    []domain.Role `json:"roles"`
	IsActive bool          `json:"isActive"`
	Token    string        `json:"token"`
}

func (r *AuthResponse) User() domain.User {
	return domain.User{
		ID:       r.ID,
		Email:    r.Email,
		FullName: r.FullName,
		Roles:    r.Roles,
		IsActive: r.IsActive,
	}
}

type AuthService struct {
	c *Client
}

func (s *AuthService) Login(ctx context.Context, in domain.Credentials) (*AuthResponse, error) {
	resp := &AuthResponse{}
	if err := s.c.do(ctx, http.MethodPost, "/auth/login", in, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) Register(ctx context.Context, in domain.Registration) (*AuthResponse, error) {
	resp := &AuthResponse{}
	if err := s.c.do(ctx, http.MethodPost, "/auth/register", in, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) CheckStatus(ctx context.Context) (*AuthResponse, error) {
	resp := &AuthResponse{}
	if err := s.c.do(ctx, http.MethodGet, "/auth/status", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
