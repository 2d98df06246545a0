package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aria3ppp/intraship/internal/intraship/domain"
	internal_error "github.com/aria3ppp/intraship/internal/intraship/error"
)

// One shipment per document, so every order carries the same sequence number.
const sequenceNumber = "1"

type usecase struct {
	account     domain.Account
	newDocument DocumentFactory
	repo        Repo
	logger      *slog.Logger
}

var _ UseCase = (*usecase)(nil)

// NewUseCase wires the render flow. A nil repo disables the journal.
func NewUseCase(
	account domain.Account,
	newDocument DocumentFactory,
	repo Repo,
	logger *slog.Logger,
) *usecase {
	return &usecase{
		account:     account,
		newDocument: newDocument,
		repo:        repo,
		logger:      logger,
	}
}

func (u *usecase) Render(ctx context.Context, input *domain.RenderInput) (*domain.RenderResult, error) {
	logger := u.logger.With(slog.Any("usecase", "render"), slog.String("customer_reference", input.CustomerReference))

	if err := input.Validate(); err != nil {
		logger.Error("input validation failed", slog.Any("error", err))
		return nil, internal_error.ValidationError(err.Error())
	}

	attrs, err := input.Attributes()
	if err != nil {
		logger.Error("failed to map input to shipment attributes", slog.Any("error", err))
		return nil, internal_error.ValidationError(err.Error())
	}

	shipment, err := domain.NewShipment(attrs)
	if err != nil {
		logger.Error("failed to build shipment", slog.Any("error", err))
		return nil, err
	}

	for _, diagnostic := range shipment.Diagnostics() {
		logger.Warn(diagnostic.Message, slog.String("code", diagnostic.Code))
	}

	doc := u.newDocument(sequenceNumber)
	if err := shipment.AppendToXML(u.account.EKP, u.account.PartnerID, doc.Writer()); err != nil {
		logger.Error("failed to render shipment", slog.Any("error", err))
		return nil, err
	}

	document, err := doc.String()
	if err != nil {
		logger.Error("failed to serialize document", slog.Any("error", err))
		return nil, err
	}

	result := &domain.RenderResult{
		Document:    document,
		ProductCode: shipment.ProductCode(),
		Diagnostics: shipment.Diagnostics(),
	}

	if u.repo != nil {
		request := &domain.RenderedRequest{
			CustomerReference: shipment.CustomerReference(),
			ProductCode:       shipment.ProductCode(),
			ServiceKinds:      domain.ServiceKinds(shipment.Services()),
			ItemCount:         len(shipment.ShipmentItems()),
			Document:          document,
		}
		if err := u.repo.InsertRenderedRequest(ctx, request); err != nil {
			logger.Error("failed to journal rendered request", slog.Any("error", err))
			return nil, err
		}
		result.JournalID = request.ID
	}

	logger.Info("shipment rendered", slog.String("product_code", result.ProductCode.String()), slog.Int64("journal_id", result.JournalID))

	return result, nil
}

func (u *usecase) GetRenderedRequest(ctx context.Context, id int64) (*domain.RenderedRequest, error) {
	logger := u.logger.With(slog.Any("usecase", "get_rendered_request"), slog.Int64("id", id))

	if u.repo == nil {
		logger.Debug("journal is disabled")
		return nil, fmt.Errorf("journal is disabled: %w", domain.ErrNotFound)
	}

	request, err := u.repo.GetRenderedRequest(ctx, id)
	if err != nil {
		logger.Error("failed to fetch rendered request", slog.Any("error", err))
		return nil, err
	}

	return request, nil
}
