package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SummaryConfig содержит конфигурацию сервиса агрегации
type SummaryConfig struct {
	// Адрес внешнего API со списком пользователей
	SourceURL string `mapstructure:"source_url"`

	// Таймаут запроса к внешнему API
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`

	// Настройки HTTP-сервера
	ServerAddr   string        `mapstructure:"server_addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`

	// Интервал запуска агрегации по расписанию
	RunInterval time.Duration `mapstructure:"run_interval"`

	// Логирование
	LogLevel              string `mapstructure:"log_level"`
	LogDir                string `mapstructure:"log_dir"`
	EnableDetailedLogging bool   `mapstructure:"enable_detailed_logging"`
}

// Префикс переменных окружения, например SUMMARY_SOURCE_URL
const envPrefix = "SUMMARY"

// Значения конфигурации по умолчанию
var DefaultSummaryConfig = SummaryConfig{
	SourceURL:             "https://dummyjson.com/users",
	FetchTimeout:          10 * time.Second,
	ServerAddr:            ":8080",
	ReadTimeout:           15 * time.Second,
	WriteTimeout:          15 * time.Second,
	IdleTimeout:           60 * time.Second,
	RunInterval:           1 * time.Hour,
	LogLevel:              "info",
	EnableDetailedLogging: false,
}

// LoadConfig читает конфигурацию из .env, файла конфигурации (если указан)
// и переменных окружения. Отсутствие файлов не является ошибкой.
func LoadConfig(configFile string) (SummaryConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return SummaryConfig{}, fmt.Errorf("ошибка чтения файла конфигурации %s: %w", configFile, err)
		}
	}

	var cfg SummaryConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SummaryConfig{}, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return SummaryConfig{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultSummaryConfig
	v.SetDefault("source_url", d.SourceURL)
	v.SetDefault("fetch_timeout", d.FetchTimeout)
	v.SetDefault("server_addr", d.ServerAddr)
	v.SetDefault("read_timeout", d.ReadTimeout)
	v.SetDefault("write_timeout", d.WriteTimeout)
	v.SetDefault("idle_timeout", d.IdleTimeout)
	v.SetDefault("run_interval", d.RunInterval)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_dir", d.LogDir)
	v.SetDefault("enable_detailed_logging", d.EnableDetailedLogging)
}

// Validate проверяет значения конфигурации
func (c SummaryConfig) Validate() error {
	if c.SourceURL == "" {
		return fmt.Errorf("не задан source_url")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout должен быть положительным, получено %v", c.FetchTimeout)
	}
	if c.RunInterval <= 0 {
		return fmt.Errorf("run_interval должен быть положительным, получено %v", c.RunInterval)
	}
	return nil
}
