// Package server assembles the gin engine: middleware chain, handlers and
// the repositories they share.
package server

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"starwars/internal/config"
	"starwars/internal/middleware"
	"starwars/internal/modules/catalog"
	"starwars/internal/modules/favourite"
	"starwars/internal/modules/sitemap"
	"starwars/internal/modules/user"
	"starwars/internal/pkg/response"
	"starwars/internal/repository"
)

// NewRouter wires every handler against db. The *gorm.DB is the only state
// shared between requests.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	favouriteRepo := repository.NewFavouriteRepository(db)

	favouriteService := favourite.NewService(userRepo, characterRepo, planetRepo, vehicleRepo, favouriteRepo)

	catalogHandler := catalog.NewHandler(characterRepo, planetRepo, vehicleRepo)
	userHandler := user.NewHandler(userRepo, favouriteService)
	favouriteHandler := favourite.NewHandler(favouriteService)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.CORS(cfg.AllowedOrigins()),
		middleware.APIErrors(),
	)
	r.NoRoute(response.RouteNotFound)

	root := &r.RouterGroup
	sitemap.NewHandler(r).RegisterRoutes(root)
	userHandler.RegisterRoutes(root)
	catalogHandler.RegisterRoutes(root)
	favouriteHandler.RegisterRoutes(root)
	r.GET("/metrics", middleware.MetricsHandler())

	return r
}
