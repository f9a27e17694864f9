package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/Dzigojty/Audio-file-downloader/internal/auth"
	"github.com/Dzigojty/Audio-file-downloader/internal/config"
	"github.com/Dzigojty/Audio-file-downloader/internal/delivery"
	"github.com/Dzigojty/Audio-file-downloader/internal/domain"
	"github.com/Dzigojty/Audio-file-downloader/internal/infra"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {

	// LOGGER
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// CONFIG
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	// POSTGRES
	ctx := context.Background()

	if err := infra.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := infra.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("cannot connect pgxpool", zap.Error(err))
	}
	defer pool.Close()

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		logger.Fatal("postgres ping failed", zap.Error(err))
	}

	// UPLOADS DIR
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("cannot create upload dir", zap.Error(err))
	}

	// SERVICES
	tokens, err := auth.NewManager(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenTTL())
	if err != nil {
		logger.Fatal("token manager init failed", zap.Error(err))
	}

	users := infra.NewPostgresUserRepo(pool)
	audios := infra.NewPostgresAudioRepo(pool)
	provider := infra.NewYandexOAuth(cfg.YandexClientID, cfg.YandexClientSecret, cfg.YandexRedirectURI)

	authService := domain.NewAuthService(provider, users, tokens)
	audioService := domain.NewAudioService(audios, infra.NewDiskStore(cfg.UploadDir))

	// HANDLERS
	hAuth := delivery.NewAuthHandler(authService, logger)
	hAudio := delivery.NewAudioHandler(audioService, logger)
	hUsers := delivery.NewUserHandler(users, logger)

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, hAuth, hAudio, hUsers, delivery.Authenticate(users, tokens))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	logger.Info("server started", zap.String("port", cfg.Port))

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Error("server crashed", zap.Error(err))
	}
}
