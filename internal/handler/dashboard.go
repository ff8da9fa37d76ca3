package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/nexus-academic/dashboard/internal/actions"
	"github.com/nexus-academic/dashboard/internal/analytics"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/store"
)

// 仪表盘一次性加载所有学生
var dashboardStudentParams = domain.StudentListParams{Limit: 1000, Offset: 0}

// dashboardView 中的 Errors 记录加载失败的切片，指标仍按已有数据计算
type dashboardView struct {
	Metrics analytics.Metrics      `json:"metrics"`
	Errors  map[store.Slice]string `json:"errors,omitempty"`
}

// refreshAll 并发刷新三个数据切片，返回每个失败切片的错误信息
func (h *Handler) refreshAll(ctx context.Context) map[store.Slice]string {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs = make(map[store.Slice]string)
	)
	refresh := func(slice store.Slice, fetch func() error) {
		defer wg.Done()
		if err := fetch(); err != nil {
			mu.Lock()
			errs[slice] = actions.Message(err)
			mu.Unlock()
		}
	}

	wg.Add(3)
	go refresh(store.SliceStudents, func() error { return h.actions.GetStudents(ctx, dashboardStudentParams) })
	go refresh(store.SliceCourses, func() error { return h.actions.GetCourses(ctx) })
	go refresh(store.SliceSubmissions, func() error { return h.actions.GetSubmissions(ctx) })
	wg.Wait()

	return errs
}

func (h *Handler) metrics() analytics.Metrics {
	state := h.store.State()
	return analytics.Aggregate(state.Students.Items, state.Courses.Items, state.Submissions.Items)
}

func (h *Handler) GetMainDashboard(w http.ResponseWriter, r *http.Request) {
	errs := h.refreshAll(r.Context())
	h.successResponse(w, r, "Datos del panel", dashboardView{
		Metrics: h.metrics(),
		Errors:  errs,
	})
}

// GetAnalytics 只根据当前状态计算指标，不会重新加载
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "true" {
		errs := h.refreshAll(r.Context())
		h.successResponse(w, r, "Analíticas", dashboardView{Metrics: h.metrics(), Errors: errs})
		return
	}
	h.successResponse(w, r, "Analíticas", dashboardView{Metrics: h.metrics()})
}
