package main

import (
	"fmt"
	"os"

	"github.com/abhidesai17/gigflow/internal/auth"
	"github.com/abhidesai17/gigflow/internal/config"
	"github.com/abhidesai17/gigflow/internal/db"
	"github.com/abhidesai17/gigflow/internal/export"
	httphandler "github.com/abhidesai17/gigflow/internal/http"
	"github.com/abhidesai17/gigflow/internal/http/middleware"
	"github.com/abhidesai17/gigflow/internal/logger"
	"github.com/abhidesai17/gigflow/internal/notify"
	"github.com/abhidesai17/gigflow/internal/repository"
	"github.com/abhidesai17/gigflow/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	userRepo := repository.NewUserRepository(database)
	gigRepo := repository.NewGigRepository(database)
	bidRepo := repository.NewBidRepository(database)

	hub := notify.NewHub()
	defer hub.Close()

	tokenManager := auth.NewManager(cfg.Auth.AccessSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(userRepo, tokenManager)
	gigService := service.NewGigService(gigRepo)
	bidService := service.NewBidService(gigRepo, bidRepo)
	hireCoordinator := service.NewHireCoordinator(gigRepo, bidRepo, hub, log)
	exportService := service.NewExportService(
		gigRepo, bidRepo, userRepo,
		export.NewBidSheetGenerator(),
		export.NewAgreementGenerator(),
	)

	handler := httphandler.NewHandler(
		authService, gigService, bidService, hireCoordinator, exportService, hub,
		httphandler.CookieSettings{
			Name:   cfg.Auth.CookieName,
			MaxAge: int(cfg.Auth.TokenTTL.Seconds()),
			Secure: cfg.Environment == "production",
		},
		log,
	)
	authMiddleware := middleware.Auth(tokenManager, cfg.Auth.CookieName)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.CORS.Origins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting gigflow service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
