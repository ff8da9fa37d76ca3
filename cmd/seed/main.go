package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/nexus-academic/dashboard/internal/actions"
	"github.com/nexus-academic/dashboard/internal/config"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/seed"
	"github.com/nexus-academic/dashboard/internal/service"
	"github.com/nexus-academic/dashboard/internal/store"
)

func main() {
	var op int
	var n int
	var emailDomain string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 创建随机课程, 2: 创建随机学生, 3: 为未评分的提交随机评分)")
	flag.IntVar(&n, "n", 0, "要创建的记录数量，为 0 时使用配置中的数量")
	flag.StringVar(&emailDomain, "email-domain", "nexusacademic.edu", "随机学生的邮箱域名")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// seed 只在内存中保存 token，不影响 dashboard 的会话
	st := store.New()
	client := service.NewClient(cfg, func() string { return st.Auth().Token })
	act := actions.New(st, actions.FromClient(client))

	ctx := context.Background()
	if err := act.Login(ctx, domain.Credentials{Email: cfg.Seed.Email, Password: cfg.Seed.Password}); err != nil {
		logger.Error("无法登录", slog.String("message", st.Auth().Error), slog.String("error", err.Error()))
		os.Exit(1)
	}

	seeder, err := seed.NewSeeder(act, emailDomain)
	if err != nil {
		logger.Error("无法创建 seeder", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			n = cfg.Seed.Courses
		}
		courses, err := seeder.SeedCourses(ctx, n)
		if err != nil {
			slog.Error("无法创建课程", slog.String("error", err.Error()))
			return
		}
		slog.Info("创建课程成功", slog.Int("count", len(courses)))
	case 2:
		if n <= 0 {
			n = cfg.Seed.Students
		}
		// 先获取所有课程，学生的选课从中随机选取
		if err := act.GetCourses(ctx); err != nil {
			slog.Error("无法获取课程", slog.String("message", st.Courses().Error))
			return
		}
		courseIDs := make([]string, 0, len(st.Courses().Items))
		for _, course := range st.Courses().Items {
			courseIDs = append(courseIDs, course.ID)
		}

		students, err := seeder.SeedStudents(ctx, n, courseIDs)
		if err != nil {
			slog.Error("无法创建学生", slog.String("error", err.Error()))
			return
		}
		slog.Info("创建学生成功", slog.Int("count", len(students)))
	case 3:
		cnt, err := seeder.GradePending(ctx)
		if err != nil {
			slog.Error("无法评分", slog.String("message", st.Submissions().Error))
			return
		}
		slog.Info("评分成功", slog.Int("count", cnt))
	default:
		slog.Error("指定的操作非法")
	}

	act.Logout(ctx)
}
