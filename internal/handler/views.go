package handler

import (
	"net/http"
	"strconv"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/filter"
	"github.com/nexus-academic/dashboard/internal/validation"
)

// listView 是按搜索条件过滤后的集合，Total 是过滤前的数量
type listView[T any] struct {
	Items      []T                `json:"items"`
	Total      int                `json:"total"`
	Criteria   filter.Criteria    `json:"criteria"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

func newListView[T any](items []T, spec filter.Spec[T], c filter.Criteria) listView[T] {
	return listView[T]{
		Items:    filter.Apply(items, spec, c),
		Total:    len(items),
		Criteria: c,
	}
}

func criteriaFromQuery(r *http.Request) filter.Criteria {
	q := r.URL.Query()
	status := q.Get("status")
	if status == "" {
		status = filter.StatusAll
	}
	return filter.Criteria{
		SearchTerm: q.Get("search"),
		Status:     status,
	}
}

func intQuery(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, &validation.ValidationError{Field: key, Message: "El parámetro " + key + " debe ser un entero no negativo"}
	}
	return n, nil
}
