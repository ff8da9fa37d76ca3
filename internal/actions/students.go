package actions

import (
	"context"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/store"
)

const (
	msgGetStudentsFailed   = "Error al obtener estudiantes"
	msgGetStudentFailed    = "Error al obtener estudiante"
	msgCreateStudentFailed = "Error al crear estudiante"
	msgUpdateStudentFailed = "Error al actualizar estudiante"
	msgDeleteStudentFailed = "Error al eliminar estudiante"
)

type studentFail = store.Fail[domain.Student]

// SetStudentPage 修改分页参数，total 保持不变
func (a *Actions) SetStudentPage(limit, offset int) {
	p := domain.Pagination{Limit: limit, Offset: offset}
	if current := a.store.Students().Pagination; current != nil {
		p.Total = current.Total
	}
	a.store.DispatchStudents(store.SetPagination[domain.Student]{Pagination: p})
}

// GetStudents 在 params.Limit 为 0 时使用状态中的分页参数
func (a *Actions) GetStudents(ctx context.Context, params domain.StudentListParams) error {
	if params.Limit == 0 {
		if p := a.store.Students().Pagination; p != nil {
			params.Limit = p.Limit
			params.Offset = p.Offset
		}
	}

	t := a.store.Begin(ctx, store.SliceStudents)

	students, err := a.services.Students.List(ctx, params)
	if err != nil {
		fail := failure(err, msgGetStudentsFailed)
		a.store.CommitStudents(t, studentFail{Message: fail.Message})
		return fail
	}

	a.store.CommitStudents(t, store.SetData[domain.Student]{Items: students})
	return nil
}

func (a *Actions) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	t := a.store.BeginCurrent(ctx, store.SliceStudents)

	student, err := a.services.Students.Get(ctx, id)
	if err != nil {
		fail := failure(err, msgGetStudentFailed)
		a.store.CommitStudents(t, studentFail{Message: fail.Message})
		return nil, fail
	}

	a.store.CommitStudents(t, store.SetCurrent[domain.Student]{Item: student})
	return student, nil
}

func (a *Actions) CreateStudent(ctx context.Context, in domain.StudentInput) (*domain.Student, error) {
	a.store.Start(ctx, store.SliceStudents)

	student, err := a.services.Students.Create(ctx, in)
	if err != nil {
		fail := failure(err, msgCreateStudentFailed)
		a.store.DispatchStudents(studentFail{Message: fail.Message})
		return nil, fail
	}

	a.store.DispatchStudents(store.Add[domain.Student]{Item: *student})
	return student, nil
}

func (a *Actions) UpdateStudent(ctx context.Context, id string, in domain.StudentInput) (*domain.Student, error) {
	a.store.Start(ctx, store.SliceStudents)

	student, err := a.services.Students.Update(ctx, id, in)
	if err != nil {
		fail := failure(err, msgUpdateStudentFailed)
		a.store.DispatchStudents(studentFail{Message: fail.Message})
		return nil, fail
	}

	a.store.DispatchStudents(store.Update[domain.Student]{Item: *student})
	return student, nil
}

func (a *Actions) DeleteStudent(ctx context.Context, id string) error {
	a.store.Start(ctx, store.SliceStudents)

	if err := a.services.Students.Delete(ctx, id); err != nil {
		fail := failure(err, msgDeleteStudentFailed)
		a.store.DispatchStudents(studentFail{Message: fail.Message})
		return fail
	}

	a.store.DispatchStudents(store.Remove[domain.Student]{ID: id})
	return nil
}
