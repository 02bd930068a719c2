package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/internal/handler"
	"github.com/weiawesome/qa-service/internal/repository"
	"github.com/weiawesome/qa-service/internal/service"
	"github.com/weiawesome/qa-service/pkg/database"
	pkglog "github.com/weiawesome/qa-service/pkg/log"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := pkglog.L()

		db, conn, err := openStore()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if migrateOnStart {
			if err := database.AutoMigrate(db, domain.Models()...); err != nil {
				return err
			}
			logger.Info().Msg("database migration completed")
		}

		repos := repository.NewRepositories(conn)
		svc := service.NewQAService(repos)
		httpHandler := handler.NewHandler(repos, svc)

		r := NewRouter(httpHandler)

		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		srv := &http.Server{Addr: addr, Handler: r}

		errCh := make(chan error, 1)
		go func() {
			logger.Info().Str("addr", addr).Msg("qa-service starting")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("HTTP server error: %w", err)
			}
			return nil
		case <-cmd.Context().Done():
			logger.Info().Msg("shutdown signal received")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("HTTP server forced to shutdown")
		}
		logger.Info().Msg("qa-service stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", true, "Create missing tables before serving")
	rootCmd.AddCommand(serveCmd)
}

// NewRouter builds the Gin engine with logging, recovery and health routes.
func NewRouter(h *handler.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(pkglog.L()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	h.RegisterRoutes(r)
	return r
}
