package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bookable-dev/resource-booking-backend/internal/auth"
	"github.com/bookable-dev/resource-booking-backend/internal/booking"
	bookingHttp "github.com/bookable-dev/resource-booking-backend/internal/booking/http"
	"github.com/bookable-dev/resource-booking-backend/internal/category"
	catHttp "github.com/bookable-dev/resource-booking-backend/internal/category/http"
	"github.com/bookable-dev/resource-booking-backend/internal/resource"
	resHttp "github.com/bookable-dev/resource-booking-backend/internal/resource/http"
	"github.com/bookable-dev/resource-booking-backend/internal/user"
)

// Config bundles the services and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	UserService    user.Service
	CatService     category.Service
	ResService     resource.Service
	BookingService booking.Service
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine. It assembles middleware
// (CORS, Logger, Recovery, Auth) and registers routes for all modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware validates the bearer token; servicerMiddleware further
	// requires the servicer role for the /servicer group.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	servicerMiddleware := RequireServicer(cfg.UserService)

	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager)
	catHandler := catHttp.NewHandler(cfg.CatService)
	resHandler := resHttp.NewHandler(cfg.ResService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/me", authMiddleware, authHandler.Me)

		// Public catalog.
		catHttp.RegisterRoutes(v1, catHandler)
		resHttp.RegisterRoutes(v1, resHandler)

		// User-facing booking workflow.
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)

		// Servicer-scoped management surface.
		servicer := v1.Group("/servicer", authMiddleware, servicerMiddleware)
		{
			catHttp.RegisterServicerRoutes(servicer, catHandler)
			resHttp.RegisterServicerRoutes(servicer, resHandler)
			bookingHttp.RegisterServicerRoutes(servicer, bookingHandler)
		}
	}

	return r
}
