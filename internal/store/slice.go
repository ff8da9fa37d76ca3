package store

import (
	"slices"

	"github.com/nexus-academic/dashboard/internal/domain"
)

// SliceState 是一个实体集合在应用状态中的切片
//
// reducer 从不修改传入的 SliceState，任何变更都会返回一个新的指针，
// 因此调用方可以放心地持有旧快照。
type SliceState[T domain.Entity] struct {
	Items      []T                `json:"items"`
	Current    *T                 `json:"currentItem"`
	Loading    bool               `json:"loading"`
	Error      string             `json:"error,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

func (s *SliceState[T]) clone() *SliceState[T] {
	next := *s
	return &next
}

func (s *SliceState[T]) indexOf(id string) int {
	return slices.IndexFunc(s.Items, func(item T) bool {
		return item.EntityID() == id
	})
}

// SliceAction 是所有实体 reducer 可以处理的 action 的封闭集合
type SliceAction[T domain.Entity] interface {
	ActionType() string
	sliceAction(T)
}

type StartFetching[T domain.Entity] struct{}

type SetData[T domain.Entity] struct {
	Items []T
}

type SetCurrent[T domain.Entity] struct {
	Item *T
}

type Add[T domain.Entity] struct {
	Item T
}

type Update[T domain.Entity] struct {
	Item T
}

type Remove[T domain.Entity] struct {
	ID string
}

type Fail[T domain.Entity] struct {
	Message string
}

type SetPagination[T domain.Entity] struct {
	Pagination domain.Pagination
}

type Reset[T domain.Entity] struct{}

func (StartFetching[T]) sliceAction(T) {}
func (SetData[T]) sliceAction(T)       {}
func (SetCurrent[T]) sliceAction(T)    {}
func (Add[T]) sliceAction(T)           {}
func (Update[T]) sliceAction(T)        {}
func (Remove[T]) sliceAction(T)        {}
func (Fail[T]) sliceAction(T)          {}
func (SetPagination[T]) sliceAction(T) {}
func (Reset[T]) sliceAction(T)         {}

func (StartFetching[T]) ActionType() string { return "startFetching" }
func (SetData[T]) ActionType() string       { return "setData" }
func (SetCurrent[T]) ActionType() string    { return "setCurrent" }
func (Add[T]) ActionType() string           { return "add" }
func (Update[T]) ActionType() string        { return "update" }
func (Remove[T]) ActionType() string        { return "remove" }
func (Fail[T]) ActionType() string          { return "fail" }
func (SetPagination[T]) ActionType() string { return "setPagination" }
func (Reset[T]) ActionType() string         { return "reset" }

type SliceReducer[T domain.Entity] struct {
	initial func() *SliceState[T]
}

func NewSliceReducer[T domain.Entity](initial func() *SliceState[T]) *SliceReducer[T] {
	return &SliceReducer[T]{initial: initial}
}

func (r *SliceReducer[T]) Initial() *SliceState[T] {
	return r.initial()
}

// Reduce 计算 action 作用后的新状态
//
// state 为 nil 时视为初始状态。无法匹配的 update / remove 以及未知 action
// 直接返回原指针。
func (r *SliceReducer[T]) Reduce(state *SliceState[T], action SliceAction[T]) *SliceState[T] {
	if state == nil {
		state = r.initial()
	}

	switch a := action.(type) {
	case StartFetching[T]:
		next := state.clone()
		next.Loading = true
		next.Error = ""
		return next

	case SetData[T]:
		next := state.clone()
		next.Loading = false
		// 整体替换而不是合并
		next.Items = append(make([]T, 0, len(a.Items)), a.Items...)
		return next

	case SetCurrent[T]:
		next := state.clone()
		next.Loading = false
		next.Current = nil
		if a.Item != nil {
			item := *a.Item
			next.Current = &item
		}
		return next

	case Add[T]:
		next := state.clone()
		next.Loading = false
		next.Items = append(slices.Clip(state.Items), a.Item)
		return next

	case Update[T]:
		idx := state.indexOf(a.Item.EntityID())
		if idx < 0 {
			if !state.Loading {
				return state
			}
			next := state.clone()
			next.Loading = false
			return next
		}
		next := state.clone()
		next.Loading = false
		next.Items = slices.Clone(state.Items)
		next.Items[idx] = a.Item
		if state.Current != nil && (*state.Current).EntityID() == a.Item.EntityID() {
			item := a.Item
			next.Current = &item
		}
		return next

	case Remove[T]:
		idx := state.indexOf(a.ID)
		if idx < 0 {
			if !state.Loading {
				return state
			}
			next := state.clone()
			next.Loading = false
			return next
		}
		next := state.clone()
		next.Loading = false
		next.Items = slices.Delete(slices.Clone(state.Items), idx, idx+1)
		if state.Current != nil && (*state.Current).EntityID() == a.ID {
			next.Current = nil
		}
		return next

	case Fail[T]:
		next := state.clone()
		next.Loading = false
		next.Error = a.Message
		return next

	case SetPagination[T]:
		next := state.clone()
		p := a.Pagination
		next.Pagination = &p
		return next

	case Reset[T]:
		return r.initial()

	default:
		return state
	}
}

func InitialStudents() *SliceState[domain.Student] {
	return &SliceState[domain.Student]{
		Items: []domain.Student{},
		Pagination: &domain.Pagination{
			Limit:  10,
			Offset: 0,
			Total:  0,
		},
	}
}

func InitialCourses() *SliceState[domain.Course] {
	return &SliceState[domain.Course]{Items: []domain.Course{}}
}

func InitialSubmissions() *SliceState[domain.Submission] {
	return &SliceState[domain.Submission]{Items: []domain.Submission{}}
}
