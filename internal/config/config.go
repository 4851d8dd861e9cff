// Package config загружает и валидирует конфигурацию сервиса из TOML-файла.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация сервиса
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Redis    Redis    `toml:"redis"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Booking  Booking  `toml:"booking"`
}

// Server настройки HTTP сервера (таймауты в секундах)
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN собирает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Redis настройки подключения к Redis (кеш доступности)
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Booking параметры модели вместимости ресторана
type Booking struct {
	TotalSeats                 int  `toml:"total_seats"`
	SlotDurationMinutes        int  `toml:"slot_duration_minutes"`
	ReservationDurationMinutes int  `toml:"reservation_duration_minutes"`
	RevalidateOnUpdate         bool `toml:"revalidate_on_update"`
}

// ToDomain конвертирует секцию booking в доменную конфигурацию
func (b Booking) ToDomain() domain.BookingConfig {
	return domain.BookingConfig{
		TotalSeats:                 b.TotalSeats,
		SlotDurationMinutes:        b.SlotDurationMinutes,
		ReservationDurationMinutes: b.ReservationDurationMinutes,
		RevalidateOnUpdate:         b.RevalidateOnUpdate,
	}
}

// Load читает конфигурацию из TOML-файла, применяет значения по умолчанию
// и валидирует результат
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: Database{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: Redis{
			Addr: "localhost:6379",
		},
		Logs: Logs{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: Metrics{
			Path:        "/metrics",
			ServiceName: "reservation-service",
		},
		Booking: Booking{
			TotalSeats:                 domain.DefaultTotalSeats,
			SlotDurationMinutes:        domain.DefaultSlotDurationMinutes,
			ReservationDurationMinutes: domain.DefaultReservationDurationMinutes,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in (0, 65535]", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Booking.TotalSeats <= 0 {
		return fmt.Errorf("%w: booking.total_seats must be positive", ErrInvalidConfig)
	}
	if c.Booking.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		c.Booking.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: booking.slot_duration_minutes must be in [%d, %d]",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if domain.MinutesPerDay%c.Booking.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: booking.slot_duration_minutes must divide a day evenly", ErrInvalidConfig)
	}
	if c.Booking.ReservationDurationMinutes <= 0 {
		return fmt.Errorf("%w: booking.reservation_duration_minutes must be positive", ErrInvalidConfig)
	}
	return nil
}
