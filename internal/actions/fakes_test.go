package actions

import (
	"context"
	"sync"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/service"
	"github.com/nexus-academic/dashboard/internal/store"
)

type fakeAuth struct {
	login       func(domain.Credentials) (*service.AuthResponse, error)
	register    func(domain.Registration) (*service.AuthResponse, error)
	status      func() (*service.AuthResponse, error)
	logoutErr   error
	statusCalls int
	logoutCalls int
}

func (f *fakeAuth) Login(_ context.Context, in domain.Credentials) (*service.AuthResponse, error) {
	return f.login(in)
}

func (f *fakeAuth) Register(_ context.Context, in domain.Registration) (*service.AuthResponse, error) {
	return f.register(in)
}

func (f *fakeAuth) CheckStatus(context.Context) (*service.AuthResponse, error) {
	f.statusCalls++
	return f.status()
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

type fakeStudents struct {
	list       func(domain.StudentListParams) ([]domain.Student, error)
	create     func(domain.StudentInput) (*domain.Student, error)
	lastParams domain.StudentListParams
	err        error
}

func (f *fakeStudents) List(_ context.Context, p domain.StudentListParams) ([]domain.Student, error) {
	f.lastParams = p
	return f.list(p)
}

func (f *fakeStudents) Get(_ context.Context, id string) (*domain.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Student{ID: id, Name: "Juan Pérez"}, nil
}

func (f *fakeStudents) Create(_ context.Context, in domain.StudentInput) (*domain.Student, error) {
	if f.create != nil {
		return f.create(in)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Student{ID: "s-new", Name: in.Name, Email: in.Email}, nil
}

func (f *fakeStudents) Update(_ context.Context, id string, in domain.StudentInput) (*domain.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Student{ID: id, Name: in.Name}, nil
}

func (f *fakeStudents) Delete(context.Context, string) error {
	return f.err
}

type fakeCourses struct {
	list func(context.Context) ([]domain.Course, error)
	err  error
}

func (f *fakeCourses) List(ctx context.Context) ([]domain.Course, error) {
	return f.list(ctx)
}

func (f *fakeCourses) Get(_ context.Context, id string) (*domain.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Course{ID: id, Name: "Curso de React"}, nil
}

func (f *fakeCourses) Create(_ context.Context, in domain.CourseInput) (*domain.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Course{ID: "c-new", Name: in.Name, Code: in.Code}, nil
}

func (f *fakeCourses) Update(_ context.Context, id string, in domain.CourseInput) (*domain.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Course{ID: id, Name: in.Name}, nil
}

func (f *fakeCourses) Delete(context.Context, string) error {
	return f.err
}

type fakeSubmissions struct {
	items []domain.Submission
	err   error
}

func (f *fakeSubmissions) List(context.Context) ([]domain.Submission, error) {
	return f.items, f.err
}

func (f *fakeSubmissions) Get(_ context.Context, id string) (*domain.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Submission{ID: id}, nil
}

func (f *fakeSubmissions) Grade(_ context.Context, id string, in domain.GradeInput) (*domain.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Submission{ID: id, Grade: in.Grade, Comments: in.Comments}, nil
}

func (f *fakeSubmissions) Delete(context.Context, string) error {
	return f.err
}

// recorder 记录派发过的 action 类型
type recorder struct {
	mu    sync.Mutex
	types []string
}

func record(st *store.Store, slice store.Slice) *recorder {
	r := &recorder{}
	st.Subscribe(func(d store.Dispatched) {
		if d.Slice != slice {
			return
		}
		r.mu.Lock()
		r.types = append(r.types, d.Action)
		r.mu.Unlock()
	})
	return r
}

func (r *recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.types...)
}
