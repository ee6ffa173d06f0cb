// Package config reads application settings from the environment, an optional
// .env file and an optional frenchie.yaml file.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values
const (
	DefaultDBType                = "sqlite"
	DefaultDBPath                = "data/frenchie.db"
	DefaultLearner               = "default"
	DefaultQueueSize             = 20
	DefaultDailyGoal             = 10
	DefaultLoadTimeout           = 2 * time.Second
	DefaultSaveTimeout           = 5 * time.Second
	DefaultTimezone              = "UTC"
	DefaultReminderHour          = 9
	DefaultNotificationStartHour = 8  // Время начала уведомлений
	DefaultNotificationEndHour   = 22 // Время окончания уведомлений
)

// Config holds every setting the application reads at startup
type Config struct {
	DBType      string
	DBPath      string
	DatabaseURL string
	Learner     string

	CatalogPath string
	QueueSize   int
	DailyGoal   int

	LoadTimeout time.Duration
	SaveTimeout time.Duration

	StreakTimezone string

	TelegramBotToken      string
	TelegramChatID        int64
	ReminderHour          int
	NotificationStartHour int
	NotificationEndHour   int
}

// Load reads .env (if present), then frenchie.yaml from dir (if present), then
// the environment. Later sources win.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment only")
	}

	v := viper.New()
	v.SetConfigName("frenchie")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading frenchie.yaml: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_type", DefaultDBType)
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("database_url", "")
	v.SetDefault("learner", DefaultLearner)
	v.SetDefault("catalog_path", "")
	v.SetDefault("queue_size", DefaultQueueSize)
	v.SetDefault("daily_goal", DefaultDailyGoal)
	v.SetDefault("load_timeout", DefaultLoadTimeout)
	v.SetDefault("save_timeout", DefaultSaveTimeout)
	v.SetDefault("streak_timezone", DefaultTimezone)
	v.SetDefault("telegram_bot_token", "")
	v.SetDefault("telegram_chat_id", 0)
	v.SetDefault("reminder_hour", DefaultReminderHour)
	v.SetDefault("notification_start_hour", DefaultNotificationStartHour)
	v.SetDefault("notification_end_hour", DefaultNotificationEndHour)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		DBType:                strings.ToLower(v.GetString("db_type")),
		DBPath:                v.GetString("db_path"),
		DatabaseURL:           v.GetString("database_url"),
		Learner:               v.GetString("learner"),
		CatalogPath:           v.GetString("catalog_path"),
		QueueSize:             v.GetInt("queue_size"),
		DailyGoal:             v.GetInt("daily_goal"),
		LoadTimeout:           v.GetDuration("load_timeout"),
		SaveTimeout:           v.GetDuration("save_timeout"),
		StreakTimezone:        v.GetString("streak_timezone"),
		TelegramBotToken:      v.GetString("telegram_bot_token"),
		TelegramChatID:        v.GetInt64("telegram_chat_id"),
		ReminderHour:          v.GetInt("reminder_hour"),
		NotificationStartHour: v.GetInt("notification_start_hour"),
		NotificationEndHour:   v.GetInt("notification_end_hour"),
	}
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	switch c.DBType {
	case "sqlite", "sqlite3":
	case "postgres", "postgresql", "mysql":
		if c.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDBType, c.DBType)
	}
	if c.QueueSize <= 0 {
		return ErrInvalidQueueSize
	}
	if c.DailyGoal <= 0 {
		return ErrInvalidDailyGoal
	}
	if c.LoadTimeout <= 0 || c.SaveTimeout <= 0 {
		return ErrInvalidTimeout
	}
	for _, h := range []int{c.ReminderHour, c.NotificationStartHour, c.NotificationEndHour} {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: %d", ErrInvalidHour, h)
		}
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.TelegramBotToken != "" && c.TelegramChatID == 0 {
		return ErrMissingChatID
	}
	return nil
}

// Location returns the timezone streak days are counted in
func (c *Config) Location() (*time.Location, error) {
	if c.StreakTimezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.StreakTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, c.StreakTimezone)
	}
	return loc, nil
}

// RemindersEnabled reports whether a Telegram bot is configured
func (c *Config) RemindersEnabled() bool {
	return c.TelegramBotToken != ""
}
