package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nexus-academic/dashboard/internal/actions"
	"github.com/nexus-academic/dashboard/internal/config"
	"github.com/nexus-academic/dashboard/internal/domain"
	"github.com/nexus-academic/dashboard/internal/events"
	"github.com/nexus-academic/dashboard/internal/handler"
	"github.com/nexus-academic/dashboard/internal/service"
	"github.com/nexus-academic/dashboard/internal/session"
	"github.com/nexus-academic/dashboard/internal/store"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置文件", "error", err)
		return
	}

	/**********************************************
	 * 创建 token 存储
	 **********************************************/
	var tokens store.TokenStore
	switch cfg.Session.Store {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Error("无法连接到 redis", "error", err)
			return
		}
		tokens = session.NewRedisStore(rdb, cfg.Session.TokenKey, time.Duration(cfg.Session.TokenTTL)*time.Second)
	case "memory":
		tokens = session.NewMemoryStore()
	case "none":
		// 不持久化 token，重启后需要重新登录
	default:
		logger.Error("不支持的 token 存储类型", "store", cfg.Session.Store)
		return
	}

	/**********************************************
	 * 创建 store
	 **********************************************/
	roles := make([]domain.Role, 0, len(cfg.Auth.DefaultRoles))
	for _, role := range cfg.Auth.DefaultRoles {
		roles = append(roles, domain.Role(role))
	}
	st := store.New(store.WithTokenStore(tokens), store.WithDefaultRoles(roles))

	/**********************************************
	 * 连接 rabbitmq（可选）
	 **********************************************/
	if cfg.RabbitMQ.DSN != "" {
		conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
		if err != nil {
			logger.Error("无法连接到 rabbitmq", "error", err)
			return
		}
		defer conn.Close()

		// 建立通道
		ch, err := conn.Channel()
		if err != nil {
			logger.Error("无法建立通道", "error", err)
			return
		}
		defer ch.Close()

		// 声明队列
		if err := events.DeclareQueue(ch, cfg.RabbitMQ.Queue); err != nil {
			logger.Error("无法声明队列", "error", err)
			return
		}

		publisher := events.NewPublisher(ch, cfg.RabbitMQ.Queue, time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second, 0)
		publisher.Start()
		unsubscribe := st.Subscribe(publisher.Listener())
		defer func() {
			unsubscribe()
			publisher.Close()
		}()
	}

	/**********************************************
	 * 创建 actions 并恢复会话
	 **********************************************/
	client := service.NewClient(cfg, func() string { return st.Auth().Token })
	act := actions.New(st, actions.FromClient(client),
		actions.WithTokenStore(tokens),
		actions.WithResetOnLogout(cfg.Auth.ResetOnLogout),
	)

	initCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Backend.RequestTimeout)*time.Second)
	if err := act.Initialize(initCtx); err != nil {
		// 会话无法恢复时状态已被清空，用户需要重新登录
		logger.Warn("无法恢复会话", "error", err)
	}
	cancel()
	logger.Info("认证状态已初始化", "authenticated", st.Auth().IsAuthenticated)

	/**********************************************
	 * 创建 handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, act)
	if err != nil {
		logger.Error("无法创建 handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("正在启动服务器...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("无法启动服务器", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭服务器失败", slog.String("error", err.Error()))
	}
	logger.Info("服务器已成功关闭")
}
