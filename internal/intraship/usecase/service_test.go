package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aria3ppp/intraship/internal/intraship/domain"
	internal_error "github.com/aria3ppp/intraship/internal/intraship/error"
	"github.com/aria3ppp/intraship/internal/intraship/infras/xmldoc"
	"github.com/aria3ppp/intraship/internal/intraship/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	inserted  []*domain.RenderedRequest
	insertErr error
}

func (r *fakeRepo) InsertRenderedRequest(ctx context.Context, request *domain.RenderedRequest) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	request.ID = int64(len(r.inserted) + 1)
	request.CreatedAt = time.Now()
	r.inserted = append(r.inserted, request)
	return nil
}

func (r *fakeRepo) GetRenderedRequest(ctx context.Context, id int64) (*domain.RenderedRequest, error) {
	if id < 1 || int(id) > len(r.inserted) {
		return nil, domain.ErrNotFound
	}
	return r.inserted[id-1], nil
}

var account = domain.Account{EKP: "5000000000", PartnerID: "01"}

func newDocument(sequenceNumber string) usecase.Document {
	return xmldoc.NewShipmentOrder(sequenceNumber)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validInput() *domain.RenderInput {
	return &domain.RenderInput{
		SenderAddress: &domain.Address{
			Company: "Sender GmbH", Street: "Hauptstrasse", HouseNumber: "1",
			Zip: "10115", City: "Berlin", CountryCode: "DE",
		},
		ReceiverAddress: &domain.Address{
			FirstName: "Erika", LastName: "Mustermann", Street: "Nebenstrasse", HouseNumber: "2",
			Zip: "80331", City: "Muenchen", CountryCode: "DE",
		},
		ShipmentDate:      "2024-03-05",
		CustomerReference: "ORDER-42",
		ShipmentItems: []domain.ShipmentItem{
			domain.NewShipmentItem(2, 10, 10, 10),
			domain.NewShipmentItem(1, 5, 5, 5),
		},
		Services: []domain.ServiceInput{{Kind: domain.ServiceKindBulkfreight}},
	}
}

func TestRender_JournalsDocument(t *testing.T) {
	repo := &fakeRepo{}
	uc := usecase.NewUseCase(account, newDocument, repo, discardLogger())

	result, err := uc.Render(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, domain.ProductCodeDhlPackage, result.ProductCode)
	assert.Equal(t, int64(1), result.JournalID)
	assert.Empty(t, result.Diagnostics)
	assert.Contains(t, result.Document, "<SequenceNumber>1</SequenceNumber>")
	assert.Contains(t, result.Document, "<cis:EKP>5000000000</cis:EKP>")
	assert.Contains(t, result.Document, "<Multipack>True</Multipack>")

	require.Len(t, repo.inserted, 1)
	journaled := repo.inserted[0]
	assert.Equal(t, "ORDER-42", journaled.CustomerReference)
	assert.Equal(t, []string{"bulkfreight"}, journaled.ServiceKinds)
	assert.Equal(t, 2, journaled.ItemCount)
	assert.Equal(t, result.Document, journaled.Document)

	got, err := uc.GetRenderedRequest(context.Background(), 1)
	require.NoError(t, err)
	assert.Same(t, journaled, got)
}

func TestRender_WithoutJournal(t *testing.T) {
	uc := usecase.NewUseCase(account, newDocument, nil, discardLogger())

	result, err := uc.Render(context.Background(), validInput())
	require.NoError(t, err)
	assert.Zero(t, result.JournalID)

	_, err = uc.GetRenderedRequest(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRender_ReportsLegacyDiagnostics(t *testing.T) {
	uc := usecase.NewUseCase(account, newDocument, nil, discardLogger())

	input := validInput()
	weight := 3.0
	input.ShipmentItems = nil
	input.Weight = &weight

	result, err := uc.Render(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, domain.DiagnosticLegacySingleItem, result.Diagnostics[0].Code)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(input *domain.RenderInput)
		check  func(t *testing.T, err error)
	}{
		{
			name:   "malformed input",
			modify: func(input *domain.RenderInput) { input.ShipmentDate = "yesterday" },
			check: func(t *testing.T, err error) {
				var validationErr internal_error.ValidationError
				assert.True(t, errors.As(err, &validationErr))
			},
		},
		{
			name:   "invalid product code",
			modify: func(input *domain.RenderInput) { input.ProductCode = "XYZ" },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidProductCode)
			},
		},
		{
			name:   "missing receiver",
			modify: func(input *domain.RenderInput) { input.ReceiverAddress = nil },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
			},
		},
		{
			name: "express without domestic express",
			modify: func(input *domain.RenderInput) {
				input.Services = append(input.Services, domain.ServiceInput{Kind: domain.ServiceKindDhlExpress})
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrServiceConstraintViolation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := usecase.NewUseCase(account, newDocument, repo, discardLogger())

			input := validInput()
			tt.modify(input)

			result, err := uc.Render(context.Background(), input)
			assert.Nil(t, result)
			require.Error(t, err)
			tt.check(t, err)
			assert.Empty(t, repo.inserted)
		})
	}
}

func TestRender_JournalFailure(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("connection refused")}
	uc := usecase.NewUseCase(account, newDocument, repo, discardLogger())

	_, err := uc.Render(context.Background(), validInput())
	assert.EqualError(t, err, "connection refused")
}
