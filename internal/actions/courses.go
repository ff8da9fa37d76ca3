package actions

import (
	"context"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/store"
)

const (
	msgGetCoursesFailed   = "Error al obtener cursos"
	msgGetCourseFailed    = "Error al obtener curso"
	msgCreateCourseFailed = "Error al crear curso"
	msgUpdateCourseFailed = "Error al actualizar curso"
	msgDeleteCourseFailed = "Error al eliminar curso"
)

type courseFail = store.Fail[domain.Course]

func (a *Actions) GetCourses(ctx context.Context) error {
	t := a.store.Begin(ctx, store.SliceCourses)

	courses, err := a.services.Courses.List(ctx)
	if err != nil {
		fail := failure(err, msgGetCoursesFailed)
		a.store.CommitCourses(t, courseFail{Message: fail.Message})
		return fail
	}

	a.store.CommitCourses(t, store.SetData[domain.Course]{Items: courses})
	return nil
}

func (a *Actions) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	t := a.store.BeginCurrent(ctx, store.SliceCourses)

	course, err := a.services.Courses.Get(ctx, id)
	if err != nil {
		fail := failure(err, msgGetCourseFailed)
		a.store.CommitCourses(t, courseFail{Message: fail.Message})
		return nil, fail
	}

	a.store.CommitCourses(t, store.SetCurrent[domain.Course]{Item: course})
	return course, nil
}

func (a *Actions) CreateCourse(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
	a.store.Start(ctx, store.SliceCourses)

	course, err := a.services.Courses.Create(ctx, in)
	if err != nil {
		fail := failure(err, msgCreateCourseFailed)
		a.store.DispatchCourses(courseFail{Message: fail.Message})
		return nil, fail
	}

	a.store.DispatchCourses(store.Add[domain.Course]{Item: *course})
	return course, nil
}

func (a *Actions) UpdateCourse(ctx context.Context, id string, in domain.CourseInput) (*domain.Course, error) {
	a.store.Start(ctx, store.SliceCourses)

	course, err := a.services.Courses.Update(ctx, id, in)
	if err != nil {
		fail := failure(err, msgUpdateCourseFailed)
		a.store.DispatchCourses(courseFail{Message: fail.Message})
		return nil, fail
	}

	a.store.DispatchCourses(store.Update[domain.Course]{Item: *course})
	return course, nil
}

func (a *Actions) DeleteCourse(ctx context.Context, id string) error {
	a.store.Start(ctx, store.SliceCourses)

	if err := a.services.Courses.Delete(ctx, id); err != nil {
		fail := failure(err, msgDeleteCourseFailed)
		a.store.DispatchCourses(courseFail{Message: fail.Message})
		return fail
	}

	a.store.DispatchCourses(store.Remove[domain.Course]{ID: id})
	return nil
}
