package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
)

const (
	RosterSourceStatic   = "static"
	RosterSourcePostgres = "postgres"
)

type Config struct {
	Runrun   RunrunConfig
	Telegram TelegramConfig
	Alert    AlertConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
	Log      LogConfig
	Metrics  MetricsConfig
	Server   ServerConfig

	RosterSource string
	DryRun       bool
}

type RunrunConfig struct {
	BaseURL   string
	AppKey    string
	UserToken string
	MaxPages  int
}

type TelegramConfig struct {
	APIURL        string
	BotToken      string
	ChatID        string
	RatePerSecond float64
}

type AlertConfig struct {
	DefaultCapacitySeconds int64
	Threshold              float64
	OnlyTeamIDs            []string
	ExcludeUserIDs         []string
	IncludeWeekends        bool
	Location               *time.Location
}

type HTTPConfig struct {
	Timeout     time.Duration
	Retries     int
	BackoffBase time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	PushgatewayURL string
}

type ServerConfig struct {
	Addr string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("RUNRUN_BASE_URL", "https://runrun.it/api/v1.0")
	v.SetDefault("REPORT_MAX_PAGES", 1000)

	v.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	v.SetDefault("TELEGRAM_RATE_PER_SECOND", 1.0)

	v.SetDefault("DEFAULT_CAPACITY_SECONDS", 28800)
	v.SetDefault("THRESHOLD", 1.0)
	v.SetDefault("ONLY_TEAM_IDS", "")
	v.SetDefault("EXCLUDE_USER_IDS", "")
	v.SetDefault("INCLUDE_WEEKENDS", false)
	v.SetDefault("LOCAL_TZ", "America/Fortaleza")

	v.SetDefault("HTTP_TIMEOUT", 25*time.Second)
	v.SetDefault("HTTP_RETRIES", 3)
	v.SetDefault("HTTP_BACKOFF_BASE", time.Second)

	v.SetDefault("ROSTER_SOURCE", RosterSourceStatic)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "alert")
	v.SetDefault("DB_PASSWORD", "alert")
	v.SetDefault("DB_NAME", "time_worked_alert")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PUSHGATEWAY_URL", "")
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("DRY_RUN", false)
}

func fromViper(v *viper.Viper) (*Config, error) {
	tz := v.GetString("LOCAL_TZ")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, domain.NewConfigError("invalid LOCAL_TZ %q: %v", tz, err)
	}

	cfg := &Config{
		Runrun: RunrunConfig{
			BaseURL:   strings.TrimRight(v.GetString("RUNRUN_BASE_URL"), "/"),
			AppKey:    v.GetString("RUNRUN_APP_KEY"),
			UserToken: v.GetString("RUNRUN_USER_TOKEN"),
			MaxPages:  v.GetInt("REPORT_MAX_PAGES"),
		},
		Telegram: TelegramConfig{
			APIURL:        strings.TrimRight(v.GetString("TELEGRAM_API_URL"), "/"),
			BotToken:      v.GetString("TELEGRAM_BOT_TOKEN"),
			ChatID:        v.GetString("TELEGRAM_CHAT_ID"),
			RatePerSecond: v.GetFloat64("TELEGRAM_RATE_PER_SECOND"),
		},
		Alert: AlertConfig{
			DefaultCapacitySeconds: v.GetInt64("DEFAULT_CAPACITY_SECONDS"),
			Threshold:              v.GetFloat64("THRESHOLD"),
			OnlyTeamIDs:            splitList(v.GetString("ONLY_TEAM_IDS")),
			ExcludeUserIDs:         splitList(v.GetString("EXCLUDE_USER_IDS")),
			IncludeWeekends:        v.GetBool("INCLUDE_WEEKENDS"),
			Location:               loc,
		},
		HTTP: HTTPConfig{
			Timeout:     v.GetDuration("HTTP_TIMEOUT"),
			Retries:     v.GetInt("HTTP_RETRIES"),
			BackoffBase: v.GetDuration("HTTP_BACKOFF_BASE"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Log:          LogConfig{Level: v.GetString("LOG_LEVEL")},
		Metrics:      MetricsConfig{PushgatewayURL: v.GetString("PUSHGATEWAY_URL")},
		Server:       ServerConfig{Addr: v.GetString("SERVER_ADDR")},
		RosterSource: strings.ToLower(strings.TrimSpace(v.GetString("ROSTER_SOURCE"))),
		DryRun:       v.GetBool("DRY_RUN"),
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры. Телеграм нужен только вне dry-run.
func (c *Config) Validate() error {
	if c.Runrun.AppKey == "" || c.Runrun.UserToken == "" {
		return domain.NewConfigError("RUNRUN_APP_KEY and RUNRUN_USER_TOKEN are required")
	}
	if !c.DryRun && (c.Telegram.BotToken == "" || c.Telegram.ChatID == "") {
		return domain.NewConfigError("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required")
	}
	if c.Alert.DefaultCapacitySeconds < 0 {
		return domain.NewConfigError("DEFAULT_CAPACITY_SECONDS must not be negative")
	}
	if c.Alert.Threshold <= 0 {
		return domain.NewConfigError("THRESHOLD must be positive, got %v", c.Alert.Threshold)
	}
	if c.HTTP.Retries < 1 {
		return domain.NewConfigError("HTTP_RETRIES must be at least 1")
	}
	if c.Runrun.MaxPages < 1 {
		return domain.NewConfigError("REPORT_MAX_PAGES must be at least 1")
	}
	switch c.RosterSource {
	case RosterSourceStatic, RosterSourcePostgres:
	default:
		return domain.NewConfigError("unknown ROSTER_SOURCE %q", c.RosterSource)
	}
	return nil
}

// DSN строка подключения к базе со справочником руководителей
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
