package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/aria3ppp/intraship/internal/intraship/app"
	"github.com/aria3ppp/intraship/internal/intraship/app/config"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.OutOrStdout())

			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.JournalEnabled() {
		var err error
		db, err = sql.Open("postgres", cfg.DatabaseConfig.URL)
		if err != nil {
			logger.Error("failed to open connection", slog.Any("error", err))
			return err
		}
		defer db.Close()

		if err := app.RunMigrations(db, cfg.DatabaseConfig.MigrationsPath, logger); err != nil {
			logger.Error("failed running migrations", slog.Any("error", err))
			return err
		}
	} else {
		logger.Info("database url not set: rendered requests are not journaled")
	}

	a := app.New(cfg, db, logger)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.StartServer()
		stop()
	}()

	<-ctx.Done()
	logger.Info("captured closing signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.ShutdownServer(shutdownCtx)

	wg.Wait()
	return nil
}
