package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-TableAvailability/internal/availability"
	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Venue        VenueConfig        `toml:"venue"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	// FetchTimeout ограничивает загрузку снимка данных для одного запроса
	FetchTimeout int `toml:"fetch_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
	ApplyMigrations bool   `toml:"apply_migrations"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто = только stdout
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// VenueConfig настройки заведения
type VenueConfig struct {
	Timezone string `toml:"timezone"` // IANA, например "Europe/Berlin"
}

// Location возвращает часовой пояс заведения
func (c VenueConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// AvailabilityConfig параметры расчета доступности
type AvailabilityConfig struct {
	ReferenceStart            string `toml:"reference_start"`
	ReferenceEnd              string `toml:"reference_end"`
	AssumedDurationMinutes    int    `toml:"assumed_duration_minutes"`
	GranularityMinutes        int    `toml:"granularity_minutes"`
	DefaultReservationMinutes int    `toml:"default_reservation_minutes"`
	SameDayCutoff             string `toml:"same_day_cutoff"`
	HorizonDays               int    `toml:"horizon_days"`
	FallbackToFirstRule       bool   `toml:"fallback_to_first_rule"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переменные окружения и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
			FetchTimeout:    5,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "table_availability",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			ApplyMigrations: true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "table-availability",
		},
		Venue: VenueConfig{
			Timezone: "UTC",
		},
		Availability: AvailabilityConfig{
			ReferenceStart:            domain.ReferenceWindowStart.String(),
			ReferenceEnd:              domain.ReferenceWindowEnd.String(),
			AssumedDurationMinutes:    domain.DefaultAssumedDurationMinutes,
			GranularityMinutes:        domain.DefaultGranularityMinutes,
			DefaultReservationMinutes: domain.DefaultReservationDurationMinutes,
			SameDayCutoff:             domain.DefaultSameDayCutoff.String(),
			HorizonDays:               domain.DefaultHorizonDays,
		},
	}
}

// applyEnv переопределяет адрес БД, секреты и порт из переменных окружения
func (c *Config) applyEnv() error {
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.DBName = getEnv("DB_NAME", c.Database.DBName)

	var err error
	if c.Database.Port, err = getEnvInt("DB_PORT", c.Database.Port); err != nil {
		return err
	}
	if c.Server.HTTPPort, err = getEnvInt("HTTP_PORT", c.Server.HTTPPort); err != nil {
		return err
	}
	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if _, err := c.Venue.Location(); err != nil {
		return fmt.Errorf("%w: venue.timezone: %v", ErrInvalidConfig, err)
	}

	a := c.Availability
	start, err := types.NewTimeStringFromString(a.ReferenceStart)
	if err != nil {
		return fmt.Errorf("%w: availability.reference_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(a.ReferenceEnd)
	if err != nil {
		return fmt.Errorf("%w: availability.reference_end: %v", ErrInvalidConfig, err)
	}
	if end.IsBefore(start) {
		return fmt.Errorf("%w: availability reference window ends before it starts", ErrInvalidConfig)
	}
	if _, err := types.NewTimeStringFromString(a.SameDayCutoff); err != nil {
		return fmt.Errorf("%w: availability.same_day_cutoff: %v", ErrInvalidConfig, err)
	}
	if a.AssumedDurationMinutes <= 0 || a.GranularityMinutes <= 0 || a.DefaultReservationMinutes <= 0 {
		return fmt.Errorf("%w: availability durations must be positive", ErrInvalidConfig)
	}
	if a.HorizonDays <= 0 || a.HorizonDays > 3*365 {
		return fmt.Errorf("%w: availability.horizon_days %d", ErrInvalidConfig, a.HorizonDays)
	}
	return nil
}

// EngineOptions собирает параметры движка доступности
func (c *Config) EngineOptions() (availability.Options, error) {
	loc, err := c.Venue.Location()
	if err != nil {
		return availability.Options{}, fmt.Errorf("%w: venue.timezone: %v", ErrInvalidConfig, err)
	}

	a := c.Availability
	opts := availability.Options{
		AssumedDurationMinutes:    a.AssumedDurationMinutes,
		GranularityMinutes:        a.GranularityMinutes,
		DefaultReservationMinutes: a.DefaultReservationMinutes,
		HorizonDays:               a.HorizonDays,
		FallbackToFirstRule:       a.FallbackToFirstRule,
		Location:                  loc,
	}

	// Время нормализуется к HH:MM ("17:30:00" -> "17:30")
	for _, f := range []struct {
		name string
		raw  string
		dst  *types.TimeString
	}{
		{"reference_start", a.ReferenceStart, &opts.ReferenceStart},
		{"reference_end", a.ReferenceEnd, &opts.ReferenceEnd},
		{"same_day_cutoff", a.SameDayCutoff, &opts.SameDayCutoff},
	} {
		ts, err := types.NewTimeStringFromString(f.raw)
		if err != nil {
			return availability.Options{}, fmt.Errorf("%w: availability.%s: %v", ErrInvalidConfig, f.name, err)
		}
		*f.dst = ts
	}

	return opts, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid int for %s: %v", ErrInvalidConfig, key, err)
	}
	return parsed, nil
}
