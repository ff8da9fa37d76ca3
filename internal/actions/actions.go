package actions

import (
	"context"
	"errors"
	"time"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/service"
	"github.com/nexus-academic/dashboard/internal/store"
)

type AuthAPI interface {
	Login(ctx context.Context, in domain.Credentials) (*service.AuthResponse, error)
	Register(ctx context.Context, in domain.Registration) (*service.AuthResponse, error)
	CheckStatus(ctx context.Context) (*service.AuthResponse, error)
	Logout(ctx context.Context) error
}

type StudentAPI interface {
	List(ctx context.Context, params domain.StudentListParams) ([]domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	Create(ctx context.Context, in domain.StudentInput) (*domain.Student, error)
	Update(ctx context.Context, id string, in domain.StudentInput) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}

type CourseAPI interface {
	List(ctx context.Context) ([]domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, in domain.CourseInput) (*domain.Course, error)
	Update(ctx context.Context, id string, in domain.CourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

type SubmissionAPI interface {
	List(ctx context.Context) ([]domain.Submission, error)
	Get(ctx context.Context, id string) (*domain.Submission, error)
	Grade(ctx context.Context, id string, in domain.GradeInput) (*domain.Submission, error)
	Delete(ctx context.Context, id string) error
}

type Services struct {
	Auth        AuthAPI
	Students    StudentAPI
	Courses     CourseAPI
	Submissions SubmissionAPI
}

func FromClient(c *service.Client) Services {
	return Services{
		Auth:        c.Auth,
		Students:    c.Students,
		Courses:     c.Courses,
		Submissions: c.Submissions,
	}
}

// Actions 中的每个操作都先派发开始 action，再根据服务调用的结果派发恰好一个结果 action
type Actions struct {
	store    *store.Store
	services Services
	tokens   store.TokenStore

	resetOnLogout bool
	now           func() time.Time
}

type Option func(*Actions)

// WithTokenStore 用于启动时读取上次保存的 token
func WithTokenStore(ts store.TokenStore) Option {
	return func(a *Actions) {
		a.tokens = ts
	}
}

func WithResetOnLogout(reset bool) Option {
	return func(a *Actions) {
		a.resetOnLogout = reset
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Actions) {
		a.now = now
	}
}

func New(st *store.Store, services Services, opts ...Option) *Actions {
	a := &Actions{
		store:    st,
		services: services,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Actions) Store() *store.Store {
	return a.store
}

// Error 是 thunk 失败时返回的错误，Message 与派发到切片的错误信息一致
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message 返回 thunk 错误中给界面显示的信息，err 不是 *Error 时返回空字符串
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

func failure(err error, fallback string) *Error {
	return &Error{Message: errorMessage(err, fallback), Err: err}
}

// errorMessage 优先使用后端返回的错误信息，否则使用操作对应的默认信息
func errorMessage(err error, fallback string) string {
	var apiErr *service.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
