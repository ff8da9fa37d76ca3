package seed

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nexus-academic/dashboard/internal/actions"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/utils"
	"github.com/nexus-academic/dashboard/internal/validation"
)

var ErrNotAuthenticated = errors.New("no hay una sesión activa")

// Seeder 通过 actions 向后端写入随机数据，写入前与界面使用同样的表单校验
type Seeder struct {
	actions     *actions.Actions
	validator   *validation.Validator
	emailDomain string
}

func NewSeeder(act *actions.Actions, emailDomain string) (*Seeder, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}
	return &Seeder{actions: act, validator: v, emailDomain: emailDomain}, nil
}

// SeedCourses 创建 n 个课程，教师为当前登录的用户，返回成功创建的课程
func (s *Seeder) SeedCourses(ctx context.Context, n int) ([]domain.Course, error) {
	user := s.actions.Store().Auth().User
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	created := make([]domain.Course, 0, n)
	for i := 0; i < n; i++ {
		in := utils.GenerateRandomCourse(user.ID)
		if err := s.validator.Course(*in); err != nil {
			slog.Error("生成的课程未通过校验", "error", err)
			continue
		}

		course, err := s.actions.CreateCourse(ctx, *in)
		if err != nil {
			slog.Error("无法创建课程", "error", err)
			continue
		}
		created = append(created, *course)
	}

	return created, nil
}

// SeedStudents 创建 n 个学生，选课从 courseIDs 中随机选取
func (s *Seeder) SeedStudents(ctx context.Context, n int, courseIDs []string) ([]domain.Student, error) {
	if !s.actions.Store().Auth().IsAuthenticated {
		return nil, ErrNotAuthenticated
	}

	created := make([]domain.Student, 0, n)
	for i := 0; i < n; i++ {
		in := utils.GenerateRandomStudent(s.emailDomain, courseIDs)
		if err := s.validator.Student(*in); err != nil {
			slog.Error("生成的学生未通过校验", "error", err)
			continue
		}

		student, err := s.actions.CreateStudent(ctx, *in)
		if err != nil {
			slog.Error("无法创建学生", "error", err)
			continue
		}
		created = append(created, *student)
	}

	return created, nil
}

// GradePending 为所有未评分的提交随机评分，返回评分成功的数量
func (s *Seeder) GradePending(ctx context.Context) (int, error) {
	if err := s.actions.GetSubmissions(ctx); err != nil {
		return 0, err
	}

	cnt := 0
	for _, submission := range s.actions.Store().Submissions().Items {
		if submission.IsGraded() {
			continue
		}

		grade := utils.GenerateRandomGrade()
		if _, err := s.actions.GradeSubmission(ctx, submission.ID, grade, utils.GenerateRandomComment(grade)); err != nil {
			slog.Error("无法评分", "submission", submission.ID, "error", err)
			continue
		}
		cnt++
	}

	return cnt, nil
}
