package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-news-api/internal/cache"
	"github.com/pribylovaa/go-news-api/internal/config"
	newshttp "github.com/pribylovaa/go-news-api/internal/http"
	"github.com/pribylovaa/go-news-api/internal/http/handlers"
	"github.com/pribylovaa/go-news-api/internal/service"
	"github.com/pribylovaa/go-news-api/internal/storage/minio"
	"github.com/pribylovaa/go-news-api/internal/storage/postgres"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting news-api", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("news_api_failed", slog.String("err", err.Error()))
		stop()
		os.Exit(1)
	}

	log.Info("service_stopped")
}

// run поднимает хранилища и HTTP-сервер и блокируется до отмены ctx
// или ошибки сервера. Ресурсы закрываются на выходе.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	store, err := postgres.New(dbCtx, cfg.DB.URL)
	dbCancel()
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info("postgres_connected")

	deps, closeDeps, err := buildDeps(ctx, cfg, store, log)
	if err != nil {
		return err
	}
	defer closeDeps()

	svc := service.New(deps, *cfg)

	api := newshttp.NewRouter(handlers.New(svc), newshttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Request,
		NewsPath: cfg.HTTP.NewsPath,
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/healthz", healthz(&ready, store, log))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", api)

	addr := cfg.HTTP.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Info("http_listen_start", slog.String("addr", addr), slog.String("news_path", cfg.HTTP.NewsPath))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("news_api_ready")

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown_requested")
	case serveErr = <-serveErrCh:
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	return serveErr
}

// buildDeps собирает зависимости сервиса: postgres по умолчанию,
// Redis-кэш словаря и MinIO для файлов, если они включены в конфиге.
func buildDeps(ctx context.Context, cfg *config.Config, store *postgres.Storage, log *slog.Logger) (service.Deps, func(), error) {
	deps := service.Deps{
		Settings: store,
		Taxonomy: store,
		Content:  store,
		Files:    store,
	}
	closeFn := func() {}

	if cfg.Cache.RedisURL != "" {
		tc, err := cache.New(ctx, cfg.Cache.RedisURL, cfg.Cache.Prefix, cfg.Cache.TTL, store)
		if err != nil {
			return service.Deps{}, nil, err
		}

		deps.Taxonomy = tc
		closeFn = func() {
			if err := tc.Close(); err != nil {
				log.Warn("redis_close_failed", slog.String("err", err.Error()))
			}
		}
		log.Info("tag_cache_enabled", slog.Duration("ttl", cfg.Cache.TTL))
	}

	if cfg.S3.Enabled {
		s3Ctx, s3Cancel := context.WithTimeout(ctx, 10*time.Second)
		files, err := minio.New(s3Ctx, cfg.S3, store)
		s3Cancel()
		if err != nil {
			closeFn()
			return service.Deps{}, nil, err
		}

		deps.Files = files
		log.Info("minio_connected", slog.String("bucket", cfg.S3.Bucket))
	}

	return deps, closeFn, nil
}

// pinger — хранилище, доступность которого проверяет /healthz.
type pinger interface {
	Ping(ctx context.Context) error
}

// healthz: готов, если сервер принял трафик и база отвечает.
func healthz(ready *int32, db pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(ready) != 1 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Warn("healthz_db_unavailable", slog.String("err", err.Error()))
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
