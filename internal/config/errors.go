package config

import "errors"

var (
	ErrInvalidDBType      = errors.New("config: unknown database type")
	ErrInvalidQueueSize   = errors.New("config: queue size must be positive")
	ErrInvalidDailyGoal   = errors.New("config: daily goal must be positive")
	ErrInvalidTimeout     = errors.New("config: timeouts must be positive")
	ErrInvalidHour        = errors.New("config: hour must be between 0 and 23")
	ErrInvalidTimezone    = errors.New("config: unknown timezone")
	ErrMissingChatID      = errors.New("config: TELEGRAM_CHAT_ID is required when a bot token is set")
	ErrMissingDatabaseURL = errors.New("config: DATABASE_URL is required for postgres and mysql")
)
