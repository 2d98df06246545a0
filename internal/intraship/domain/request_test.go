package domain_test

import (
	"testing"

	"github.com/aria3ppp/intraship/internal/intraship/domain"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *domain.RenderInput {
	s, r := sender(), receiver()
	return &domain.RenderInput{
		SenderAddress:     &s,
		ReceiverAddress:   &r,
		ShipmentDate:      "2024-03-05",
		ProductCode:       domain.ProductCodeDomesticExpress,
		CustomerReference: "ORDER-42",
		ShipmentItems:     []domain.ShipmentItem{domain.NewShipmentItem(2, 10, 10, 10)},
		Services: []domain.ServiceInput{
			{Kind: domain.ServiceKindDhlExpress, Option: domain.ExpressOptionDeliveryEarly},
			{Kind: domain.ServiceKindCashOnDelivery, Amount: 12.5},
		},
	}
}

func TestRenderInput_Validate(t *testing.T) {
	require.NoError(t, validInput().Validate())

	input := validInput()
	input.SenderAddress.City = ""
	input.ShipmentDate = "05.03.2024"
	input.ShipmentItems[0].Weight = 0
	input.Services = append(input.Services, domain.ServiceInput{Kind: "gift_wrap"})

	err := input.Validate()
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 4)
	assert.EqualError(t, merr.Errors[0], "sender_address.city is required")
	assert.EqualError(t, merr.Errors[1], "shipment_date must be formatted as YYYY-MM-DD")
	assert.EqualError(t, merr.Errors[2], "shipment_items[0].weight must be positive")
	assert.EqualError(t, merr.Errors[3], `services[2].kind "gift_wrap" is unknown`)
}

func TestRenderInput_ValidateLeavesMissingFieldsToShipment(t *testing.T) {
	assert.NoError(t, (&domain.RenderInput{}).Validate())
}

func TestServiceInput_Validate(t *testing.T) {
	assert.Error(t, (&domain.ServiceInput{Kind: domain.ServiceKindDhlExpress, Option: "Noon"}).Validate())
	assert.Error(t, (&domain.ServiceInput{Kind: domain.ServiceKindCashOnDelivery}).Validate())
	assert.Error(t, (&domain.ServiceInput{Kind: domain.ServiceKindHigherInsurance, Amount: -1}).Validate())
	assert.NoError(t, (&domain.ServiceInput{Kind: domain.ServiceKindHigherInsurance}).Validate())
	assert.NoError(t, (&domain.ServiceInput{Kind: domain.ServiceKindMultipack}).Validate())
}

func TestRenderInput_Attributes(t *testing.T) {
	attrs, err := validInput().Attributes()
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", attrs.ShipmentDate.Format(domain.ShipmentDateLayout))
	assert.Equal(t, domain.ProductCodeDomesticExpress, attrs.ProductCode)
	assert.Equal(t, "Berlin", attrs.SenderAddress.City)
	require.Len(t, attrs.Services, 2)
	assert.Equal(t, domain.DhlExpressService{Option: domain.ExpressOptionDeliveryEarly}, attrs.Services[0])
	assert.Equal(t, domain.CashOnDeliveryService{Amount: 12.5, Currency: "EUR"}, attrs.Services[1])
}

func TestRenderInput_AttributesLegacyFields(t *testing.T) {
	weight, length := 4.0, 50
	input := &domain.RenderInput{Weight: &weight, Length: &length}

	attrs, err := input.Attributes()
	require.NoError(t, err)

	s, err := domain.NewShipment(attrs)
	require.NoError(t, err)
	require.Len(t, s.ShipmentItems(), 1)
	assert.Equal(t, 4.0, s.ShipmentItems()[0].Weight)
	assert.Equal(t, 50, s.ShipmentItems()[0].Length)
	assert.Len(t, s.Diagnostics(), 1)
}

func TestServiceInput_Service(t *testing.T) {
	service, err := (&domain.ServiceInput{Kind: domain.ServiceKindHigherInsurance, Amount: 25000}).Service()
	require.NoError(t, err)
	assert.Equal(t, domain.HigherInsuranceService{Amount: 25000, Currency: "EUR"}, service)

	service, err = (&domain.ServiceInput{Kind: domain.ServiceKindDhlExpress}).Service()
	require.NoError(t, err)
	assert.Equal(t, domain.DhlExpressService{Option: domain.ExpressOptionDeliveryOnTime}, service)

	_, err = (&domain.ServiceInput{Kind: "gift_wrap"}).Service()
	assert.Error(t, err)
}

func TestAccount_Validate(t *testing.T) {
	assert.NoError(t, (&domain.Account{EKP: "5000000000", PartnerID: "01"}).Validate())
	assert.EqualError(t, (&domain.Account{EKP: "500", PartnerID: "01"}).Validate(), ".ekp must be a 10 digit customer number")
	assert.EqualError(t, (&domain.Account{EKP: "5000000000", PartnerID: "1"}).Validate(), ".partner_id must be 2 digits")
}
