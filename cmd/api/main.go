package main

import (
	"github.com/gin-gonic/gin"

	"starwars/internal/config"
	"starwars/internal/database"
	"starwars/internal/pkg/logger"
	"starwars/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, database.Options{LogLevel: cfg.DBLogLevel})
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("migration failed")
		}
	}

	r := server.NewRouter(db, cfg)

	logger.Info().Str("addr", cfg.Addr()).Str("env", cfg.AppEnv).Msg("starting API server")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
