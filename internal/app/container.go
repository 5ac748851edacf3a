package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookable-dev/resource-booking-backend/internal/api"
	"github.com/bookable-dev/resource-booking-backend/internal/auth"
	"github.com/bookable-dev/resource-booking-backend/internal/booking"
	"github.com/bookable-dev/resource-booking-backend/internal/category"
	"github.com/bookable-dev/resource-booking-backend/internal/resource"
	"github.com/bookable-dev/resource-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Category module
	catRepo := category.NewPgxRepository(cfg.DBPool)
	catService := category.NewService(catRepo)

	// Resource module
	resRepo := resource.NewPgxRepository(cfg.DBPool)
	resService := resource.NewService(resRepo, catService)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, resService, userService)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		CatService:     catService,
		ResService:     resService,
		BookingService: bookingService,
		JWTManager:     jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
