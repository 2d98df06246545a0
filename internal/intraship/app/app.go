package app

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/aria3ppp/intraship/internal/intraship/app/config"
	"github.com/aria3ppp/intraship/internal/intraship/app/router"
	"github.com/aria3ppp/intraship/internal/intraship/infras/repo"
	"github.com/aria3ppp/intraship/internal/intraship/infras/xmldoc"
	"github.com/aria3ppp/intraship/internal/intraship/usecase"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type app struct {
	logger *slog.Logger
	sqlDB  *sql.DB
	server *http.Server
}

// New wires the render use case. sqlDB may be nil, in which case rendered
// requests are not journaled.
func New(
	config *config.Config,
	sqlDB *sql.DB,
	logger *slog.Logger,
) *app {
	usecase := NewUseCase(config, sqlDB, logger)

	router := router.NewRouter(usecase, logger)
	server := &http.Server{
		Addr:    config.ServerConfig.Addr,
		Handler: router,
	}

	return &app{
		logger: logger,
		sqlDB:  sqlDB,
		server: server,
	}
}

func NewUseCase(config *config.Config, sqlDB *sql.DB, logger *slog.Logger) usecase.UseCase {
	var journal usecase.Repo
	if sqlDB != nil {
		journal = repo.NewRepo(sqlDB, logger)
	}

	return usecase.NewUseCase(config.Account, NewDocument, journal, logger)
}

func NewDocument(sequenceNumber string) usecase.Document {
	return xmldoc.NewShipmentOrder(sequenceNumber)
}

func (a *app) StartServer() {
	a.logger.Info("Starting server", slog.String("addr", a.server.Addr))
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		a.logger.Error("Failed to listen and serve", slog.String("addr", a.server.Addr), slog.Any("error", err))
	}
}

func (a *app) ShutdownServer(ctx context.Context) {
	a.logger.Info("Shutting down server")
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("Failed to shutdown server", slog.Any("error", err))
	}
}

func RunMigrations(db *sql.DB, migrationsPath string, logger *slog.Logger) error {
	logger = logger.With("func", "RunMigrations")

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		logger.Error("could not create migration driver", slog.Any("error", err))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationsPath,
		"postgres", driver)
	if err != nil {
		logger.Error("migration instance error", slog.Any("error", err))
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logger.Error("migration failed", slog.Any("error", err))
		return err
	}

	return nil
}
