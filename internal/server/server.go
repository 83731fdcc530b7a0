package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"

	"github.com/micronlogivdev/iftaway/internal/config"
	"github.com/micronlogivdev/iftaway/internal/handler"
	"github.com/micronlogivdev/iftaway/internal/middleware"
	"github.com/micronlogivdev/iftaway/internal/service"
	"github.com/micronlogivdev/iftaway/internal/store"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	store      store.Store
	limiter    middleware.RateLimiter
	nats       *nats.Conn
	events     service.EventPublisher
	eventsMode string
	wsHub      *handler.WSHub
	auth       *service.AuthService
	reports    *service.ReportService
}

// NewServer creates a new server instance. limiter, natsConn and events may
// be nil: rate limiting is then skipped, and events go straight to the
// websocket hub.
func NewServer(cfg *config.Config, st store.Store, limiter middleware.RateLimiter, natsConn *nats.Conn, events service.EventPublisher) *Server {
	return &Server{
		config:  cfg,
		store:   st,
		limiter: limiter,
		nats:    natsConn,
		events:  events,
	}
}

// Setup initializes routes and handlers
func (s *Server) Setup() {
	s.wsHub = handler.NewWSHub(s.nats)
	wsHandler := handler.NewWSHandler(s.wsHub)

	switch {
	case s.events != nil:
		s.eventsMode = "jetstream"
	case s.nats != nil:
		s.events = service.NewNATSPublisher(s.nats)
		s.eventsMode = "nats"
	default:
		s.events = s.wsHub
		s.eventsMode = "local"
	}

	// Initialize services
	s.auth = service.NewAuthService(s.store, s.config.JWTSecret, s.config.JWTTTL)
	entryService := service.NewEntryService(s.store, s.events)
	s.reports = service.NewReportService(s.store, s.events)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(s.auth)
	entryHandler := handler.NewEntryHandler(entryService)
	reportHandler := handler.NewReportHandler(s.reports)

	go s.wsHub.Run()
	log.Println("[Server] WebSocket hub started")

	s.router = gin.Default()

	// CORS middleware
	s.router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Swagger UI
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	s.router.GET("/health", s.health)
	s.router.POST("/api/register", s.limited("/api/register", authHandler.Register)...)
	s.router.POST("/api/login", s.limited("/api/login", authHandler.Login)...)

	// WebSocket routes, token passed as ?token=
	s.router.GET("/ws/entries", authHandler.AuthMiddleware(), wsHandler.HandleEntries)
	s.router.GET("/ws/stats", wsHandler.GetStats)

	// Protected routes
	api := s.router.Group("/api")
	api.Use(authHandler.AuthMiddleware())
	{
		api.GET("/me", authHandler.GetMe)
		entryHandler.RegisterRoutes(api, s.rateLimit("/api/entries/import"))
		reportHandler.RegisterRoutes(api)
	}
}

// rateLimit returns the limiter middleware configured for path, or nil
func (s *Server) rateLimit(path string) gin.HandlerFunc {
	if s.limiter == nil || !s.config.RateLimit.Enabled {
		return nil
	}
	rule, ok := s.config.RuleForPath(path)
	if !ok {
		return nil
	}
	return middleware.RateLimit(s.limiter, rule.ToMiddlewareConfig())
}

func (s *Server) limited(path string, h gin.HandlerFunc) []gin.HandlerFunc {
	if limit := s.rateLimit(path); limit != nil {
		return []gin.HandlerFunc{limit, h}
	}
	return []gin.HandlerFunc{h}
}

func (s *Server) health(c *gin.Context) {
	health := gin.H{
		"status":     "ok",
		"events":     s.eventsMode,
		"ws_clients": s.wsHub.GetClientCount(),
	}
	if s.nats != nil {
		health["nats"] = s.nats.Status().String()
	}
	c.JSON(http.StatusOK, health)
}

// EnsureDemoUser creates the demo account when it is missing
func (s *Server) EnsureDemoUser(ctx context.Context) error {
	if s.config.DemoUserEmail == "" {
		return nil
	}
	return s.auth.EnsureDemoUser(ctx, s.config.DemoUserEmail, s.config.DemoUserPassword)
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("[Server] HTTP server listening on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// GetRouter returns the gin router for testing
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Printf("[Server] HTTP shutdown error: %v", err)
		}
	}
	if s.wsHub != nil {
		s.wsHub.Stop()
		log.Println("[Server] WebSocket hub stopped")
	}
}
