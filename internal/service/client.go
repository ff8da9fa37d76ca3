package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexus-academic/dashboard/internal/config"
)

// APIError 是后端返回非 2xx 时的错误，Message 来自响应体中的 message 字段
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("请求失败，状态码 %d", e.Status)
	}
	return e.Message
}

// TokenSource 返回当前的 token，为空时不发送 Authorization 头
type TokenSource func() string

type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource

	Auth        *AuthService
	Students    *StudentService
	Courses     *CourseService
	Submissions *SubmissionService
}

func NewClient(cfg *config.Config, token TokenSource) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(cfg.Backend.RequestTimeout) * time.Second},
		token:   token,
	}
	c.Auth = &AuthService{c: c}
	c.Students = &StudentService{c: c}
	c.Courses = &CourseService{c: c}
	c.Submissions = &SubmissionService{c: c}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func errorFromResponse(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
