package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/nexus-academic/dashboard/internal/actions"
	"github.com/nexus-academic/dashboard/internal/config"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/guard"
	"github.com/nexus-academic/dashboard/internal/store"
	"github.com/nexus-academic/dashboard/internal/validation"
)

type Handler struct {
	validator *validation.Validator
	config    *config.Config
	actions   *actions.Actions
	store     *store.Store
	routes    guard.Routes

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, act *actions.Actions) (*Handler, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}

	return &Handler{
		validator: v,
		config:    cfg,
		actions:   act,
		store:     act.Store(),
		routes: guard.Routes{
			Login:   cfg.Auth.LoginRoute,
			Default: cfg.Auth.DefaultRoute,
		},

		Mux: chi.NewRouter(),
	}, nil
}

var staffRoles = []domain.Role{domain.RoleTeacher, domain.RoleAdmin}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/logout", h.Logout)
		r.Get("/status", h.GetAuthStatus)
		r.Post("/check", h.CheckAuthStatus)
	})

	// 以下 API 必须要在会话确认后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.requireSession())

		r.Get("/me", h.GetMyInfo)
		r.Get("/state", h.GetState)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/main", h.GetMainDashboard)
			r.Get("/analytics", h.GetAnalytics)
		})

		r.Route("/students", func(r chi.Router) {
			r.Get("/", h.GetStudents)
			r.Post("/", h.CreateStudent)
			r.Put("/page", h.SetStudentPage)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetStudent)
				r.Put("/", h.UpdateStudent)
				r.Delete("/", h.DeleteStudent)
			})
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.GetCourses)
			r.Get("/teachers", h.GetCourseTeachers)
			r.With(h.RequiredRole(staffRoles)).Post("/", h.CreateCourse)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetCourse)
				r.With(h.RequiredRole(staffRoles)).Put("/", h.UpdateCourse)
				r.With(h.RequiredRole(staffRoles)).Delete("/", h.DeleteCourse)
			})
		})

		r.Route("/submissions", func(r chi.Router) {
			r.Get("/", h.GetSubmissions)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetSubmission)
				r.With(h.RequiredRole(staffRoles)).Patch("/grade", h.GradeSubmission)
				r.With(h.RequiredRole(staffRoles)).Delete("/", h.DeleteSubmission)
			})
		})
	})
}
