package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Поддерживаемые бэкенды key-value хранилища.
const (
	StorageMemory   = "memory"
	StorageBolt     = "bolt"
	StoragePostgres = "postgres"
)

// ConfigFile — имя yaml-файла конфигурации в рабочей директории.
const ConfigFile = "bakeshop.yaml"

// Config описывает настройки запуска приложения.
type Config struct {
	// HTTPAddr — адрес API магазина и админки.
	HTTPAddr string `yaml:"http_addr"`
	// MetricsAddr — адрес метрик и health-проверок.
	MetricsAddr string `yaml:"metrics_addr"`
	// Storage выбирает бэкенд хранилища: memory, bolt или postgres.
	Storage string `yaml:"storage"`
	// BoltPath — путь к файлу bbolt (для storage: bolt).
	BoltPath string `yaml:"bolt_path"`
	// PostgresDSN — строка подключения (для storage: postgres).
	PostgresDSN string `yaml:"postgres_dsn"`
	// KafkaBrokers — список брокеров через запятую; пусто = уведомления в лог.
	KafkaBrokers string `yaml:"kafka_brokers"`
	// KafkaTopic — topic событий заказов; пусто = topic по умолчанию.
	KafkaTopic string `yaml:"kafka_topic"`
}

// DefaultConfig возвращает конфигурацию для локального запуска без внешних
// зависимостей.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		MetricsAddr: ":9090",
		Storage:     StorageMemory,
		BoltPath:    "bakeshop.db",
	}
}

// LoadConfig собирает конфигурацию слоями: значения по умолчанию,
// yaml-файл (если есть), переменные окружения.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Файл опционален.
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BAKESHOP_HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("BAKESHOP_METRICS_ADDR"); v != "" {
		c.MetricsAddr = v
	}
	if v := os.Getenv("BAKESHOP_STORAGE"); v != "" {
		c.Storage = v
	}
	if v := os.Getenv("BAKESHOP_BOLT_PATH"); v != "" {
		c.BoltPath = v
	}
	if v := os.Getenv("BAKESHOP_POSTGRES_DSN"); v != "" {
		c.PostgresDSN = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.KafkaBrokers = v
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.KafkaTopic = v
	}
}

// Validate проверяет согласованность конфигурации.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StorageBolt:
		if c.BoltPath == "" {
			return fmt.Errorf("bolt storage requires bolt_path")
		}
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres storage requires postgres_dsn")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	return nil
}
