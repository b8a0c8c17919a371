package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/pkg/storage"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the match log over HTTP.
type Server struct {
	matchLog storage.MatchLog
	logger   *zap.Logger
	router   *gin.Engine
}

func NewServer(matchLog storage.MatchLog, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	s := &Server{
		matchLog: matchLog,
		logger:   logger.Named("api"),
		router:   router,
	}
	s.initRoutes()
	return s
}

func (s *Server) initRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/mission-log", s.saveMatch)
		api.GET("/mission-log/:seeds/replay", s.replayMatch)
		api.GET("/players/:playerID/mission-logs", s.listMatches)
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:    address,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("failed to shutdown", zap.Error(err))
		}
	}()

	s.logger.Info("listening", zap.String("address", address))
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Wrap(err, "match log service stopped")
}
