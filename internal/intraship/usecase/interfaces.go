package usecase

import (
	"context"

	"github.com/aria3ppp/intraship/internal/intraship/domain"
)

type (
	Document interface {
		Writer() domain.XMLWriter
		String() (string, error)
	}

	// DocumentFactory opens a fresh document for one shipment order.
	DocumentFactory func(sequenceNumber string) Document

	Repo interface {
		InsertRenderedRequest(ctx context.Context, request *domain.RenderedRequest) error
		GetRenderedRequest(ctx context.Context, id int64) (*domain.RenderedRequest, error)
	}

	UseCase interface {
		Render(ctx context.Context, input *domain.RenderInput) (*domain.RenderResult, error)
		GetRenderedRequest(ctx context.Context, id int64) (*domain.RenderedRequest, error)
	}
)
