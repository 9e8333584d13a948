package web

import (
	"context"
	"net/http"

	"sahayak-agent/config"
	"sahayak-agent/web/handlers"
	"sahayak-agent/web/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router   *gin.Engine
	sessions *SessionRegistry
	logger   *zap.Logger
	config   *config.Config
}

func NewServer(sessions *SessionRegistry, logger *zap.Logger, cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router:   router,
		sessions: sessions,
		logger:   logger,
		config:   cfg,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	chatHandler := handlers.NewChatHandler(s.sessions, s.logger)
	rateLimiter := middleware.NewMessageRateLimiter(
		s.config.RateLimitMessagesPerMin, s.config.RateLimitBurstSize, s.logger)

	session := s.router.Group("/", middleware.SessionMiddleware())
	session.GET("/welcome", chatHandler.Welcome)
	session.POST("/chat", rateLimiter.Middleware(), chatHandler.SendMessage)
	session.GET("/recommendations", chatHandler.Recommendations)
	session.GET("/recommendations/:position", chatHandler.SchemeDetails)
	session.GET("/profile", chatHandler.ProfileStatus)

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.Len()})
	})
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	return srv.Shutdown(context.Background())
}
