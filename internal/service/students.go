package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nexus-academic/dashboard/internal/domain"
)

type StudentService struct {
	c *Client
}

func (s *StudentService) List(ctx context.Context, params domain.StudentListParams) ([]domain.Student, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(params.Limit))
	q.Set("offset", fmt.Sprint(params.Offset))

	var students []domain.Student
	if err := s.c.do(ctx, http.MethodGet, "/students?"+q.Encode(), nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	student := &domain.Student{}
	if err := s.c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(id), nil, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Create(ctx context.Context, in domain.StudentInput) (*domain.Student, error) {
	student := &domain.Student{}
	if err := s.c.do(ctx, http.MethodPost, "/students", in, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Update(ctx context.Context, id string, in domain.StudentInput) (*domain.Student, error) {
	student := &domain.Student{}
	if err := s.c.do(ctx, http.MethodPut, "/students/"+url.PathEscape(id), in, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/students/"+url.PathEscape(id), nil, nil)
}
