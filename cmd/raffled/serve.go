package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"raffle-draw/cmd/bootstrap"
	"raffle-draw/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const shutdownTimeout = 30 * time.Second

// @title           raffle-draw
// @version         1.0
// @description     Queues raffle draws, obtains signed random numbers and stores verification records.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the draw queue worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := fx.New(
				bootstrap.Module,
				fx.Provide(
					func() *gin.Engine {
						return gin.New()
					},
				),
				fx.Invoke(
					startServer,
				),
				fx.StopTimeout(shutdownTimeout),
			)

			if err := app.Start(cmd.Context()); err != nil {
				return err
			}

			<-app.Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := app.Stop(stopCtx); err != nil {
				slog.Error("application did not stop cleanly", "error", err)
			}

			slog.Info("application stopped")
			return nil
		},
	}
}
