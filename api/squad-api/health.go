package squad_api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ServeHealth exposes liveness and readiness endpoints beside the gRPC
// listener. Readiness simply reflects that the downstream channel pools were
// connected at startup; a failed pool never gets this far.
func (s *SpeechSquadAPI) ServeHealth(ctx context.Context) error {
	if s.cfg.HealthURI == "" {
		<-ctx.Done()
		return nil
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	started := time.Now()
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(started).String(),
		})
	})
	engine.GET("/readiness", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server := &http.Server{Addr: s.cfg.HealthURI, Handler: engine}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	s.logger.Infof("health endpoints listening on %s", s.cfg.HealthURI)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
