package server

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pricepilot/internal/auth"
	"pricepilot/internal/email"
	"pricepilot/internal/events"
	"pricepilot/internal/forecast"
	"pricepilot/internal/models"
	"pricepilot/internal/pricing"
	"pricepilot/internal/repositories"
)

// BookingSource supplies the booking dataset for menu pricing. It is read
// fresh on every pricing call, so external updates to the dataset are picked
// up without invalidation logic.
type BookingSource interface {
	LoadBookings(ctx context.Context) ([]models.Booking, error)
}

// Deps bundles everything the HTTP layer delegates to.
type Deps struct {
	Users      repositories.UserRepository
	Products   repositories.ProductRepository
	MenuItems  repositories.MenuItemRepository
	Auth       *auth.Service
	Tokens     *auth.TokenManager
	Optimizer  *pricing.PriceOptimizer
	Forecaster *forecast.DemandForecaster
	Bookings   BookingSource
	Publisher  events.Publisher
	Mailer     email.Sender
}

type Server struct {
	cfg    *models.Config
	engine *gin.Engine
	deps   Deps
}

func New(cfg *models.Config, deps Deps) *Server {
	if deps.Publisher == nil {
		deps.Publisher = events.NopPublisher{}
	}
	if deps.Mailer == nil {
		deps.Mailer = email.NopSender{}
	}

	s := &Server{cfg: cfg, engine: gin.Default(), deps: deps}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	r := s.engine

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to the Product Management API"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/login", s.handleLogin)
		authGroup.POST("/verify-email", s.handleVerifyEmail)
		authGroup.GET("/users/me", s.authRequired(), s.handleCurrentUser)
	}

	products := r.Group("/products", s.authRequired())
	{
		products.POST("", s.requireRoles(models.RoleSupplier), s.handleCreateProduct)
		products.GET("", s.handleListProducts)
		products.PUT("/:id", s.requireRoles(models.RoleAdmin, models.RoleSupplier), s.handleUpdateProduct)
		products.DELETE("/:id", s.requireRoles(models.RoleAdmin, models.RoleSupplier), s.handleDeleteProduct)
		products.POST("/forecast", s.requireRoles(models.RoleAdmin, models.RoleSupplier), s.handleProductForecast)
	}

	menu := r.Group("/menu", s.authRequired(), s.requireRoles(models.RoleAdmin, models.RoleSupplier))
	{
		menu.POST("", s.handleCreateMenuItem)
		menu.GET("", s.handleListMenuItems)
	}
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	return s.engine.Run(s.cfg.ServerAddress)
}
