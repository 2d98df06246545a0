package domain

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

type ServiceKind string

const (
	ServiceKindDhlExpress      ServiceKind = "dhl_express"
	ServiceKindMultipack       ServiceKind = "multipack"
	ServiceKindHigherInsurance ServiceKind = "higher_insurance"
	ServiceKindBulkfreight     ServiceKind = "bulkfreight"
	ServiceKindCashOnDelivery  ServiceKind = "cash_on_delivery"
)

var ValidServiceKinds = []ServiceKind{
	ServiceKindDhlExpress,
	ServiceKindMultipack,
	ServiceKindHigherInsurance,
	ServiceKindBulkfreight,
	ServiceKindCashOnDelivery,
}

func (k ServiceKind) Valid() bool {
	return slices.Contains(ValidServiceKinds, k)
}

func (k ServiceKind) String() string {
	return string(k)
}

// Service is an add-on attached to a shipment. Variants are told apart by
// Kind, never by their concrete type.
type Service interface {
	XMLAppender
	Kind() ServiceKind
}

// ExpressOption selects the delivery time slot of a DHL express service.
type ExpressOption string

const (
	ExpressOptionDeliveryOnTime    ExpressOption = "DeliveryOnTime"
	ExpressOptionDeliveryEarly     ExpressOption = "DeliveryEarly"
	ExpressOption0900              ExpressOption = "Express0900"
	ExpressOption1000              ExpressOption = "Express1000"
	ExpressOption1200              ExpressOption = "Express1200"
	ExpressOptionDeliveryAfternoon ExpressOption = "DeliveryAfternoon"
)

var ValidExpressOptions = []ExpressOption{
	ExpressOptionDeliveryOnTime,
	ExpressOptionDeliveryEarly,
	ExpressOption0900,
	ExpressOption1000,
	ExpressOption1200,
	ExpressOptionDeliveryAfternoon,
}

func (o ExpressOption) Valid() bool {
	return slices.Contains(ValidExpressOptions, o)
}

const (
	DefaultCurrency        = "EUR"
	DefaultInsuranceAmount = 2500
)

type DhlExpressService struct {
	Option ExpressOption
}

func NewDhlExpressService(option ExpressOption) (DhlExpressService, error) {
	if !option.Valid() {
		return DhlExpressService{}, fmt.Errorf("invalid express option %q", string(option))
	}
	return DhlExpressService{Option: option}, nil
}

func (DhlExpressService) Kind() ServiceKind { return ServiceKindDhlExpress }

func (s DhlExpressService) AppendToXML(w XMLWriter) {
	option := s.Option
	if option == "" {
		option = ExpressOptionDeliveryOnTime
	}

	w.Node("Service", func(w XMLWriter) {
		w.Node("ServiceGroupDateTimeOption", func(w XMLWriter) {
			w.Leaf(string(option), "True")
		})
	})
}

type MultipackService struct{}

func (MultipackService) Kind() ServiceKind { return ServiceKindMultipack }

func (MultipackService) AppendToXML(w XMLWriter) {
	w.Node("Service", func(w XMLWriter) {
		w.Node("ServiceGroupDHLPaket", func(w XMLWriter) {
			w.Leaf("Multipack", "True")
		})
	})
}

type HigherInsuranceService struct {
	Amount   float64
	Currency string
}

func NewHigherInsuranceService() HigherInsuranceService {
	return HigherInsuranceService{Amount: DefaultInsuranceAmount, Currency: DefaultCurrency}
}

func (HigherInsuranceService) Kind() ServiceKind { return ServiceKindHigherInsurance }

func (s HigherInsuranceService) AppendToXML(w XMLWriter) {
	w.Node("Service", func(w XMLWriter) {
		w.Node("ServiceGroupOther", func(w XMLWriter) {
			w.Node("HigherInsurance", func(w XMLWriter) {
				w.Leaf("InsuranceAmount", formatAmount(s.Amount))
				w.Leaf("InsuranceCurrency", currencyOrDefault(s.Currency))
			})
		})
	})
}

type BulkfreightService struct{}

func (BulkfreightService) Kind() ServiceKind { return ServiceKindBulkfreight }

func (BulkfreightService) AppendToXML(w XMLWriter) {
	w.Node("Service", func(w XMLWriter) {
		w.Node("ServiceGroupOther", func(w XMLWriter) {
			w.Leaf("Bulkfreight", "True")
		})
	})
}

type CashOnDeliveryService struct {
	Amount   float64
	Currency string
}

func (CashOnDeliveryService) Kind() ServiceKind { return ServiceKindCashOnDelivery }

func (s CashOnDeliveryService) AppendToXML(w XMLWriter) {
	w.Node("Service", func(w XMLWriter) {
		w.Node("ServiceGroupOther", func(w XMLWriter) {
			w.Node("COD", func(w XMLWriter) {
				w.Leaf("CODAmount", formatAmount(s.Amount))
				w.Leaf("CODCurrency", currencyOrDefault(s.Currency))
			})
		})
	})
}

func HasService(services []Service, kind ServiceKind) bool {
	return lo.ContainsBy(services, func(s Service) bool {
		return s.Kind() == kind
	})
}

func ServiceKinds(services []Service) []string {
	return lo.Map(services, func(s Service, _ int) string {
		return s.Kind().String()
	})
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return DefaultCurrency
	}
	return currency
}
