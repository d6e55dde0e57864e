// news-authkey записывает общий секрет ленты (настройка news.auth_setting)
// в хранилище настроек.
//
// Использование:
//
//	news-authkey --config ./local.yaml --key <secret>
//	NEWS_AUTH_KEY=<secret> news-authkey
//	news-authkey --generate   # секрет генерируется и печатается в stdout
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-news-api/internal/config"
	"github.com/pribylovaa/go-news-api/internal/storage"
	"github.com/pribylovaa/go-news-api/internal/storage/postgres"
)

// ErrEmptyKey — секрет не передан или состоит из пробелов.
var ErrEmptyKey = errors.New("auth key is empty")

func main() {
	var (
		configPath string
		key        string
		generate   bool
	)
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.StringVar(&key, "key", "", "secret to store (defaults to NEWS_AUTH_KEY env)")
	flag.BoolVar(&generate, "generate", false, "generate a random secret and print it")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("config_load_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	secret, err := resolveKey(key, os.Getenv("NEWS_AUTH_KEY"), generate)
	if err != nil {
		log.Error("auth_key_invalid", slog.String("err", err.Error()))
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := postgres.New(ctx, cfg.DB.URL)
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	if err := storeKey(ctx, store, cfg.News.AuthSetting, secret); err != nil {
		log.Error("auth_key_store_failed", slog.String("err", err.Error()))
		store.Close()
		os.Exit(1)
	}

	log.Info("auth_key_stored", slog.String("setting", cfg.News.AuthSetting))

	if generate {
		fmt.Println(secret)
	}
}

// resolveKey выбирает секрет: флаг, затем переменная окружения, затем генерация.
func resolveKey(flagKey, envKey string, generate bool) (string, error) {
	switch {
	case strings.TrimSpace(flagKey) != "":
		return flagKey, nil
	case strings.TrimSpace(envKey) != "":
		return envKey, nil
	case generate:
		return strings.ReplaceAll(uuid.NewString(), "-", ""), nil
	default:
		return "", ErrEmptyKey
	}
}

func storeKey(ctx context.Context, st storage.SettingsStorage, setting, secret string) error {
	const op = "news-authkey.storeKey"

	if strings.TrimSpace(secret) == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyKey)
	}

	if err := st.SetSetting(ctx, setting, secret); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
