package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Auth          AuthConfig          `toml:"auth"`
	Schedule      ScheduleConfig      `toml:"schedule"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки кеша каталога услуг
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды жизни снапшота каталога
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки доступа к админским операциям
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// ScheduleConfig рабочие часы и выходные дни салона.
// Часы задаются целыми (8 = 08:00). Дни недели: 0=воскресенье .. 6=суббота.
type ScheduleConfig struct {
	WorkStartHour int   `toml:"work_start_hour"`
	WorkEndHour   int   `toml:"work_end_hour"`
	ClosedDays    []int `toml:"closed_days"`
}

// IsClosedDay проверяет, является ли день недели выходным
func (s ScheduleConfig) IsClosedDay(weekday int) bool {
	for _, d := range s.ClosedDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// NotificationsConfig настройки отправки email подтверждений через Brevo
type NotificationsConfig struct {
	Enabled     bool   `toml:"enabled"`
	BrevoURL    string `toml:"brevo_url"`
	APIKey      string `toml:"api_key"`
	SenderName  string `toml:"sender_name"`
	SenderEmail string `toml:"sender_email"`
	Timeout     int    `toml:"timeout"` // секунды
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Schedule.WorkStartHour < 0 || c.Schedule.WorkEndHour > 24 ||
		c.Schedule.WorkStartHour >= c.Schedule.WorkEndHour {
		return fmt.Errorf("config: invalid working hours %d-%d",
			c.Schedule.WorkStartHour, c.Schedule.WorkEndHour)
	}
	for _, d := range c.Schedule.ClosedDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("config: invalid closed day %d, expected 0-6", d)
		}
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	return nil
}
