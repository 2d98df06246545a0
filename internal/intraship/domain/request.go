package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

type ServiceInput struct {
	Kind     ServiceKind   `json:"kind" yaml:"kind"`
	Option   ExpressOption `json:"option,omitempty" yaml:"option,omitempty"`
	Amount   float64       `json:"amount,omitempty" yaml:"amount,omitempty"`
	Currency string        `json:"currency,omitempty" yaml:"currency,omitempty"`
}

func (o *ServiceInput) Validate() error {
	if !o.Kind.Valid() {
		return fmt.Errorf(".kind %q is unknown", string(o.Kind))
	}

	switch o.Kind {
	case ServiceKindDhlExpress:
		if o.Option != "" && !o.Option.Valid() {
			return fmt.Errorf(".option %q is unknown", string(o.Option))
		}
	case ServiceKindCashOnDelivery:
		if o.Amount <= 0 {
			return errors.New(".amount must be positive")
		}
	case ServiceKindHigherInsurance:
		if o.Amount < 0 {
			return errors.New(".amount must not be negative")
		}
	}

	return nil
}

func (o *ServiceInput) Service() (Service, error) {
	switch o.Kind {
	case ServiceKindDhlExpress:
		option := o.Option
		if option == "" {
			option = ExpressOptionDeliveryOnTime
		}
		return NewDhlExpressService(option)
	case ServiceKindMultipack:
		return MultipackService{}, nil
	case ServiceKindHigherInsurance:
		service := NewHigherInsuranceService()
		if o.Amount > 0 {
			service.Amount = o.Amount
		}
		if o.Currency != "" {
			service.Currency = o.Currency
		}
		return service, nil
	case ServiceKindBulkfreight:
		return BulkfreightService{}, nil
	case ServiceKindCashOnDelivery:
		return CashOnDeliveryService{Amount: o.Amount, Currency: currencyOrDefault(o.Currency)}, nil
	default:
		return nil, fmt.Errorf("unknown service kind %q", string(o.Kind))
	}
}

// RenderInput is the loosely-typed request body a shipment is rendered
// from. Keys the decoder does not know are dropped.
type RenderInput struct {
	SenderAddress     *Address       `json:"sender_address" yaml:"sender_address"`
	ReceiverAddress   *Address       `json:"receiver_address" yaml:"receiver_address"`
	ShipmentDate      string         `json:"shipment_date" yaml:"shipment_date"`
	ProductCode       ProductCode    `json:"product_code" yaml:"product_code"`
	CustomerReference string         `json:"customer_reference" yaml:"customer_reference"`
	ShipmentItems     []ShipmentItem `json:"shipment_items" yaml:"shipment_items"`
	Services          []ServiceInput `json:"services" yaml:"services"`

	// Deprecated single parcel fields.
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Length *int     `json:"length,omitempty" yaml:"length,omitempty"`
	Width  *int     `json:"width,omitempty" yaml:"width,omitempty"`
	Height *int     `json:"height,omitempty" yaml:"height,omitempty"`
}

// Validate reports every malformed field at once. Missing required fields
// are left to the shipment so they surface in render order.
func (o *RenderInput) Validate() error {
	var result *multierror.Error

	if o.SenderAddress != nil {
		if err := o.SenderAddress.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("sender_address%s", err))
		}
	}

	if o.ReceiverAddress != nil {
		if err := o.ReceiverAddress.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("receiver_address%s", err))
		}
	}

	if o.ShipmentDate != "" {
		if _, err := time.Parse(ShipmentDateLayout, o.ShipmentDate); err != nil {
			result = multierror.Append(result, errors.New("shipment_date must be formatted as YYYY-MM-DD"))
		}
	}

	for i := range o.ShipmentItems {
		if err := o.ShipmentItems[i].Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("shipment_items[%d]%s", i, err))
		}
	}

	for i := range o.Services {
		if err := o.Services[i].Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("services[%d]%s", i, err))
		}
	}

	return result.ErrorOrNil()
}

func (o *RenderInput) Attributes() (Attributes, error) {
	attrs := Attributes{
		SenderAddress:     o.SenderAddress,
		ReceiverAddress:   o.ReceiverAddress,
		ProductCode:       o.ProductCode,
		CustomerReference: o.CustomerReference,
		ShipmentItems:     o.ShipmentItems,
		Weight:            o.Weight,
		Length:            o.Length,
		Width:             o.Width,
		Height:            o.Height,
	}

	if o.ShipmentDate != "" {
		date, err := time.Parse(ShipmentDateLayout, o.ShipmentDate)
		if err != nil {
			return Attributes{}, err
		}
		attrs.ShipmentDate = date
	}

	for _, input := range o.Services {
		service, err := input.Service()
		if err != nil {
			return Attributes{}, err
		}
		attrs.Services = append(attrs.Services, service)
	}

	return attrs, nil
}

type RenderResult struct {
	Document    string       `json:"document"`
	ProductCode ProductCode  `json:"product_code"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
	JournalID   int64        `json:"journal_id,omitempty"`
}
