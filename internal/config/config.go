// Package config загружает конфигурацию сервиса из флагов, файла .env и переменных окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"`                // Адрес для запуска HTTP-сервера
	LogLevel        string        `env:"LOG_LEVEL"`                     // Уровень логирования: debug, info, warn, error
	EnableHTTPS     string        `env:"ENABLE_HTTPS"`                  // Любое непустое значение включает HTTPS
	TLSCertFile     string        `env:"TLS_CERT_FILE"`                 // Путь к сертификату
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`                  // Путь к ключу
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:","` // Разрешённые источники CORS
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`              // Время на корректное завершение
	EnvFile         string        // Файл с переменными окружения
}

// Значения по умолчанию
const (
	DefaultServerAddress   = ":8080"
	DefaultLogLevel        = "info"
	DefaultTLSCertFile     = "server.crt"
	DefaultTLSKeyFile      = "server.key"
	DefaultCORSOrigins     = "*"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultEnvFile         = ".env"
)

// NewConfig инициализирует конфигурацию, читая флаги командной строки.
func NewConfig() (*Config, error) {
	return Load(flag.CommandLine, os.Args[1:])
}

// Load разбирает аргументы в переданном FlagSet, затем загружает файл .env
// (если он есть) и переменные окружения. Переменные окружения имеют наивысший приоритет.
func Load(flags *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{
		ServerAddress:   DefaultServerAddress,
		LogLevel:        DefaultLogLevel,
		TLSCertFile:     DefaultTLSCertFile,
		TLSKeyFile:      DefaultTLSKeyFile,
		CORSOrigins:     []string{DefaultCORSOrigins},
		ShutdownTimeout: DefaultShutdownTimeout,
		EnvFile:         DefaultEnvFile,
	}

	var origins string
	flags.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	flags.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Уровень логирования (env: LOG_LEVEL)")
	flags.StringVar(&cfg.EnableHTTPS, "s", cfg.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")
	flags.StringVar(&cfg.TLSCertFile, "cert", cfg.TLSCertFile, "Файл сертификата TLS (env: TLS_CERT_FILE)")
	flags.StringVar(&cfg.TLSKeyFile, "key", cfg.TLSKeyFile, "Файл ключа TLS (env: TLS_KEY_FILE)")
	flags.StringVar(&origins, "cors", DefaultCORSOrigins, "Разрешённые источники CORS через запятую (env: CORS_ORIGINS)")
	flags.DurationVar(&cfg.ShutdownTimeout, "t", cfg.ShutdownTimeout, "Таймаут завершения сервера (env: SHUTDOWN_TIMEOUT)")
	flags.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Файл с переменными окружения")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	cfg.CORSOrigins = splitOrigins(origins)

	// .env не перезаписывает уже заданные переменные окружения
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// IsHTTPSEnabled проверяет, включен ли HTTPS
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS != ""
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
