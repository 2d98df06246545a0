package repo

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/aria3ppp/intraship/internal/intraship/domain"
	"github.com/aria3ppp/intraship/internal/intraship/usecase"
	"github.com/lib/pq"
)

type repo struct {
	sqlDB  *sql.DB
	logger *slog.Logger
}

var _ usecase.Repo = (*repo)(nil)

func NewRepo(
	sqlDB *sql.DB,
	logger *slog.Logger,
) *repo {
	return &repo{
		sqlDB:  sqlDB,
		logger: logger,
	}
}

func (r *repo) InsertRenderedRequest(ctx context.Context, request *domain.RenderedRequest) error {
	logger := r.logger.With(slog.Any("infra", "repo"), slog.String("method", "insert_rendered_request"))

	insertStmt := `
		INSERT INTO rendered_requests(
			customer_reference, product_code,
			service_kinds, item_count,
			document
		) VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	row := r.sqlDB.QueryRowContext(
		ctx,
		insertStmt,
		request.CustomerReference,
		request.ProductCode,
		pq.Array(request.ServiceKinds),
		request.ItemCount,
		request.Document,
	)

	if err := row.Scan(&request.ID, &request.CreatedAt); err != nil {
		logger.Error("failed to insert record", slog.Any("error", err))
		return err
	}

	return nil
}

func (r *repo) GetRenderedRequest(ctx context.Context, id int64) (*domain.RenderedRequest, error) {
	logger := r.logger.With(slog.Any("infra", "repo"), slog.String("method", "get_rendered_request"))

	queryStmt := `
	SELECT id, customer_reference, product_code, service_kinds, item_count, document, created_at
	FROM rendered_requests
	WHERE id = $1
	`

	row := r.sqlDB.QueryRowContext(ctx, queryStmt, id)

	var request domain.RenderedRequest
	err := row.Scan(
		&request.ID,
		&request.CustomerReference,
		&request.ProductCode,
		pq.Array(&request.ServiceKinds),
		&request.ItemCount,
		&request.Document,
		&request.CreatedAt,
	)
	if err != nil {
		logger.Error("error scanning rendered request", slog.Int64("id", id), slog.Any("error", err))
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("rendered request %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	return &request, nil
}
