package actions

import (
	"context"

	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/store"
)

const (
	msgGetSubmissionsFailed   = "Error al obtener entregas"
	msgGetSubmissionFailed    = "Error al obtener entrega"
	msgGradeSubmissionFailed  = "Error al calificar entrega"
	msgDeleteSubmissionFailed = "Error al eliminar entrega"
)

type submissionFail = store.Fail[domain.Submission]

func (a *Actions) GetSubmissions(ctx context.Context) error {
	t := a.store.Begin(ctx, store.SliceSubmissions)

	submissions, err := a.services.Submissions.List(ctx)
	if err != nil {
		fail := failure(err, msgGetSubmissionsFailed)
		a.store.CommitSubmissions(t, submissionFail{Message: fail.Message})
		return fail
	}

	a.store.CommitSubmissions(t, store.SetData[domain.Submission]{Items: submissions})
	return nil
}

func (a *Actions) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	t := a.store.BeginCurrent(ctx, store.SliceSubmissions)

	submission, err := a.services.Submissions.Get(ctx, id)
	if err != nil {
		fail := failure(err, msgGetSubmissionFailed)
		a.store.CommitSubmissions(t, submissionFail{Message: fail.Message})
		return nil, fail
	}

	a.store.CommitSubmissions(t, store.SetCurrent[domain.Submission]{Item: submission})
	return submission, nil
}

// GradeSubmission 评分后用后端返回的实体替换集合中的对应项
func (a *Actions) GradeSubmission(ctx context.Context, id string, grade float64, comments string) (*domain.Submission, error) {
	a.store.Start(ctx, store.SliceSubmissions)

	submission, err := a.services.Submissions.Grade(ctx, id, domain.GradeInput{Grade: &grade, Comments: comments})
	if err != nil {
		fail := failure(err, msgGradeSubmissionFailed)
		a.store.DispatchSubmissions(submissionFail{Message: fail.Message})
		return nil, fail
	}

	a.store.DispatchSubmissions(store.Update[domain.Submission]{Item: *submission})
	return submission, nil
}

func (a *Actions) DeleteSubmission(ctx context.Context, id string) error {
	a.store.Start(ctx, store.SliceSubmissions)

	if err := a.services.Submissions.Delete(ctx, id); err != nil {
		fail := failure(err, msgDeleteSubmissionFailed)
		a.store.DispatchSubmissions(submissionFail{Message: fail.Message})
		return fail
	}

	a.store.DispatchSubmissions(store.Remove[domain.Submission]{ID: id})
	return nil
}
