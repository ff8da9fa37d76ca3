package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nexus-academic/dashboard/internal/domain"
)

type SubmissionService struct {
	c *Client
}

func (s *SubmissionService) List(ctx context.Context) ([]domain.Submission, error) {
	var submissions []domain.Submission
	if err := s.c.do(ctx, http.MethodGet, "/submissions", nil, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*domain.Submission, error) {
	submission := &domain.Submission{}
	if err := s.c.do(ctx, http.MethodGet, "/submissions/"+url.PathEscape(id), nil, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) Grade(ctx context.Context, id string, in domain.GradeInput) (*domain.Submission, error) {
	submission := &domain.Submission{}
	if err := s.c.do(ctx, http.MethodPatch, "/submissions/"+url.PathEscape(id)+"/grade", in, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/submissions/"+url.PathEscape(id), nil, nil)
}
