// config предоставляет структуру конфигурации news-api и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Политики обработки тегов, ни одно имя которых не найдено в словаре.
const (
	// UnknownTagsAll — фильтр по тегам не применяется, отдаётся вся лента.
	UnknownTagsAll = "all"
	// UnknownTagsNone — ответ «найдено», но пустой.
	UnknownTagsNone = "none"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	DB       DBConfig      `yaml:"db"`
	News     NewsConfig    `yaml:"news"`
	Cache    CacheConfig   `yaml:"cache"`
	S3       S3Config      `yaml:"s3"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — публичный HTTP-сервер.
type HTTPConfig struct {
	Host     string `yaml:"host"      env:"HTTP_HOST"      env-default:"0.0.0.0"`
	Port     string `yaml:"port"      env:"HTTP_PORT"      env-default:"8080"`
	NewsPath string `yaml:"news_path" env:"HTTP_NEWS_PATH" env-default:"/news"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// NewsConfig — параметры выдачи новостей.
type NewsConfig struct {
	// Kind — тип контента, который отдаёт эндпоинт.
	Kind string `yaml:"kind" env:"NEWS_KIND" env-default:"news"`
	// Vocabulary — словарь таксономии, по которому разрешаются теги.
	Vocabulary string `yaml:"vocabulary" env:"NEWS_VOCABULARY" env-default:"tags"`
	// AuthSetting — ключ настройки с общим секретом.
	AuthSetting string `yaml:"auth_setting" env:"NEWS_AUTH_SETTING" env-default:"auth_key"`
	// UnknownTags — UnknownTagsAll или UnknownTagsNone.
	UnknownTags string `yaml:"unknown_tags" env:"NEWS_UNKNOWN_TAGS" env-default:"all"`
}

// CacheConfig — кэш словаря тегов в Redis. Пустой RedisURL отключает кэш.
type CacheConfig struct {
	RedisURL string        `yaml:"redis_url" env:"REDIS_URL"`
	TTL      time.Duration `yaml:"ttl"       env:"CACHE_TTL"    env-default:"5m"`
	Prefix   string        `yaml:"prefix"    env:"CACHE_PREFIX" env-default:"news-api:"`
}

// S3Config — проверка файлов изображений в MinIO/S3 и сборка публичных URL.
type S3Config struct {
	Enabled       bool   `yaml:"enabled"         env:"S3_ENABLED"         env-default:"false"`
	Endpoint      string `yaml:"endpoint"        env:"S3_ENDPOINT"`
	RootUser      string `yaml:"root_user"       env:"S3_ROOT_USER"`
	RootPassword  string `yaml:"root_password"   env:"S3_ROOT_PASSWORD"`
	Bucket        string `yaml:"bucket"          env:"S3_BUCKET"`
	PublicBaseURL string `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Request  time.Duration `yaml:"request"  env:"REQUEST_TIMEOUT"  env-default:"5s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV накладывается поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if !strings.HasPrefix(c.HTTP.NewsPath, "/") {
		return fmt.Errorf("http.news_path must start with '/'")
	}

	if c.News.Kind == "" {
		return fmt.Errorf("news.kind is required")
	}

	if c.News.Vocabulary == "" {
		return fmt.Errorf("news.vocabulary is required")
	}

	if c.News.AuthSetting == "" {
		return fmt.Errorf("news.auth_setting is required")
	}

	switch c.News.UnknownTags {
	case UnknownTagsAll, UnknownTagsNone:
	default:
		return fmt.Errorf("news.unknown_tags must be %q or %q, got %q", UnknownTagsAll, UnknownTagsNone, c.News.UnknownTags)
	}

	if c.Cache.RedisURL != "" && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when cache is enabled")
	}

	if c.S3.Enabled {
		if c.S3.Endpoint == "" || c.S3.Bucket == "" {
			return fmt.Errorf("s3.endpoint and s3.bucket are required when s3 is enabled")
		}

		if c.S3.PublicBaseURL == "" {
			return fmt.Errorf("s3.public_base_url is required when s3 is enabled")
		}
	}

	if c.Timeouts.Request <= 0 {
		return fmt.Errorf("timeouts.request must be > 0")
	}

	if c.Timeouts.Shutdown <= 0 {
		return fmt.Errorf("timeouts.shutdown must be > 0")
	}

	return nil
}
