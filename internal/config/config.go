package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Backend struct {
		BaseURL        string `env:"BASE_URL,required,notEmpty"`
		RequestTimeout int    `env:"REQUEST_TIMEOUT" envDefault:"10"`
	} `envPrefix:"BACKEND_"`
	Auth struct {
		DefaultRoles  []string `env:"DEFAULT_ROLES" envDefault:"teacher" envSeparator:","`
		LoginRoute    string   `env:"LOGIN_ROUTE" envDefault:"/auth/login"`
		DefaultRoute  string   `env:"DEFAULT_ROUTE" envDefault:"/dashboard/main"`
		ResetOnLogout bool     `env:"RESET_ON_LOGOUT" envDefault:"false"`
	} `envPrefix:"AUTH_"`
	Session struct {
		Store    string `env:"STORE" envDefault:"memory"` // memory / redis / none
		TokenKey string `env:"TOKEN_KEY" envDefault:"token"`
		TokenTTL int    `env:"TOKEN_TTL" envDefault:"1209600"` // 14 天
	} `envPrefix:"SESSION_"`
	Redis struct {
		Host           string `env:"HOST" envDefault:"localhost"`
		Port           int    `env:"PORT" envDefault:"6379"`
		Password       string `env:"PASSWORD"`
		DB             int    `env:"DB" envDefault:"0"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
	} `envPrefix:"REDIS_"`
	RabbitMQ struct {
		DSN            string `env:"DSN"` // 为空时不发布 action 日志
		Queue          string `env:"QUEUE" envDefault:"dashboard_actions"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Seed struct {
		Email    string `env:"EMAIL"`
		Password string `env:"PASSWORD"`
		Courses  int    `env:"COURSES" envDefault:"5"`
		Students int    `env:"STUDENTS" envDefault:"20"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
