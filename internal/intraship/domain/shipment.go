package domain

import (
	"slices"
	"strings"
	"time"
)

const ShipmentDateLayout = "2006-01-02"

// Shipment is one shipment request for the carrier. It is meant to be built
// and rendered by a single goroutine; share nothing across requests.
type Shipment struct {
	senderAddress     *Address
	receiverAddress   *Address
	shipmentDate      time.Time
	productCode       ProductCode
	customerReference string
	shipmentItems     []ShipmentItem
	services          []Service

	diagnostics []Diagnostic
}

// NewShipment builds a shipment from attrs. Deprecated legacy fields are
// honoured and reported through Diagnostics.
func NewShipment(attrs Attributes) (*Shipment, error) {
	s := &Shipment{
		productCode:   ProductCodeDhlPackage,
		shipmentItems: []ShipmentItem{},
		services:      []Service{},
	}

	if attrs.hasLegacyItem() {
		s.diagnostics = append(s.diagnostics, Diagnostic{
			Code:    DiagnosticLegacySingleItem,
			Message: "the single shipment constructor is deprecated, please pass in a ShipmentItem",
		})
		s.AddShipmentItem(attrs.legacyItem())
	} else {
		for _, item := range attrs.ShipmentItems {
			s.AddShipmentItem(item)
		}
	}

	if attrs.ProductCode != "" {
		if err := s.SetProductCode(attrs.ProductCode); err != nil {
			return nil, err
		}
	}

	s.senderAddress = attrs.SenderAddress
	s.receiverAddress = attrs.ReceiverAddress
	s.shipmentDate = attrs.ShipmentDate
	s.customerReference = attrs.CustomerReference
	for _, service := range attrs.Services {
		s.AddService(service)
	}

	return s, nil
}

func (s *Shipment) SenderAddress() *Address { return s.senderAddress }
func (s *Shipment) SetSenderAddress(address *Address) { s.senderAddress = address }

func (s *Shipment) ReceiverAddress() *Address { return s.receiverAddress }
func (s *Shipment) SetReceiverAddress(address *Address) { s.receiverAddress = address }

func (s *Shipment) ShipmentDate() time.Time { return s.shipmentDate }
func (s *Shipment) SetShipmentDate(date time.Time) { s.shipmentDate = date }

func (s *Shipment) CustomerReference() string { return s.customerReference }
func (s *Shipment) SetCustomerReference(reference string) { s.customerReference = reference }

func (s *Shipment) ProductCode() ProductCode { return s.productCode }

func (s *Shipment) SetProductCode(code ProductCode) error {
	if !code.Valid() {
		return &InvalidProductCodeError{Code: code}
	}
	s.productCode = code
	return nil
}

// AddService attaches a service. Rules between services and the product
// code are only checked when the shipment is rendered.
func (s *Shipment) AddService(service Service) {
	s.services = append(s.services, service)
}

func (s *Shipment) AddShipmentItem(item ShipmentItem) {
	s.shipmentItems = append(s.shipmentItems, item)
}

func (s *Shipment) Services() []Service {
	return slices.Clone(s.services)
}

func (s *Shipment) ShipmentItems() []ShipmentItem {
	return slices.Clone(s.shipmentItems)
}

func (s *Shipment) Diagnostics() []Diagnostic {
	return slices.Clone(s.diagnostics)
}

func (s *Shipment) IsDomesticExpress() bool {
	return s.productCode == ProductCodeDomesticExpress
}

// AppendToXML validates the shipment and writes its Shipment block into w.
// Nothing is written when validation fails. The shipment itself is not
// modified, so rendering twice gives the same document.
func (s *Shipment) AppendToXML(ekp string, partnerID string, w XMLWriter) error {
	if err := s.validateRequiredFields(); err != nil {
		return err
	}

	services, err := s.reconcileServices()
	if err != nil {
		return err
	}

	w.Node("Shipment", func(w XMLWriter) {
		w.Node("ShipmentDetails", func(w XMLWriter) {
			w.Leaf("ProductCode", s.productCode.String())
			w.Leaf("ShipmentDate", s.shipmentDate.Format(ShipmentDateLayout))
			w.Leaf("cis:EKP", ekp)
			w.Node("Attendance", func(w XMLWriter) {
				w.Leaf("cis:partnerID", partnerID)
			})
			if strings.TrimSpace(s.customerReference) != "" {
				w.Leaf("CustomerReference", s.customerReference)
			}

			for _, item := range s.shipmentItems {
				item.AppendToXML(w)
			}
			for _, service := range services {
				service.AppendToXML(w)
			}
		})

		w.Node("Shipper", s.senderAddress.AppendToXML)
		w.Node("Receiver", s.receiverAddress.AppendToXML)
	})

	return nil
}

func (s *Shipment) validateRequiredFields() error {
	if s.shipmentDate.IsZero() {
		return &MissingRequiredFieldError{Field: "shipment date"}
	}

	if s.senderAddress == nil {
		return &MissingRequiredFieldError{Field: "sender address"}
	}

	if s.receiverAddress == nil {
		return &MissingRequiredFieldError{Field: "receiver address"}
	}

	if len(s.shipmentItems) == 0 {
		return &MissingRequiredFieldError{Field: "shipment items"}
	}

	return nil
}

// reconcileServices returns the attached services plus the ones implied by
// the product code and item count. Order of the steps matters: the
// constraint check has to see the auto-attached services.
func (s *Shipment) reconcileServices() ([]Service, error) {
	services := slices.Clone(s.services)

	// Several parcels of a DHL Paket shipment need the multipack service.
	if len(s.shipmentItems) > 1 && s.productCode == ProductCodeDhlPackage &&
		!HasService(services, ServiceKindMultipack) {
		services = append(services, MultipackService{})
	}

	if s.IsDomesticExpress() && !HasService(services, ServiceKindHigherInsurance) {
		services = append(services, NewHigherInsuranceService())
	}

	if HasService(services, ServiceKindDhlExpress) && !s.IsDomesticExpress() {
		return nil, &ServiceConstraintViolationError{
			Service:     ServiceKindDhlExpress,
			ProductCode: s.productCode,
		}
	}

	return services, nil
}
