package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nexus-academic/dashboard/internal/domain"
)

type CourseService struct {
	c *Client
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := s.c.do(ctx, http.MethodGet, "/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	course := &domain.Course{}
	if err := s.c.do(ctx, http.MethodGet, "/courses/"+url.PathEscape(id), nil, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Create(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
	course := &domain.Course{}
	if err := s.c.do(ctx, http.MethodPost, "/courses", in, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id string, in domain.CourseInput) (*domain.Course, error) {
	course := &domain.Course{}
	if err := s.c.do(ctx, http.MethodPut, "/courses/"+url.PathEscape(id), in, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/courses/"+url.PathEscape(id), nil, nil)
}
