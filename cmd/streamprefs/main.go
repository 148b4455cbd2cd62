package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"streamprefs/api"
	"streamprefs/config"
	"streamprefs/handlers"
	"streamprefs/models"
	"streamprefs/services/language_groups"
	"streamprefs/services/user_settings"
	"streamprefs/utils"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] %v", err)
	}

	if closer := setupLogging(cfg); closer != nil {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clientKey := api.ClientIP
	if cfg.TrustProxyHeaders {
		clientKey = api.ProxiedClientIP
	}
	limiter := api.NewKeyedRateLimiter(api.PerMinute(cfg.EditorRatePerMinute), cfg.EditorBurst, clientKey)
	go limiter.Run(ctx)

	editors := language_groups.NewRegistryWithTimeout(cfg.EditorIdleTimeout)
	go editors.Run(ctx)

	router := utils.NewRouter(utils.NewCORSPolicy(cfg.AllowedOrigins))
	languages := handlers.NewLanguagesHandler(
		user_settings.NewService(),
		editors,
		models.DefaultUserSettings(cfg.DefaultLanguages),
	)
	languages.Register(router, limiter.Middleware)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[main] listening on %s (default languages: %v)", cfg.Addr(), cfg.DefaultLanguages)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[main] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown: %v", err)
	}
}

// setupLogging tees the standard logger into a rotating file when one is configured.
func setupLogging(cfg *config.Config) io.Closer {
	if cfg.LogFile == "" {
		return nil
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	return rotator
}
