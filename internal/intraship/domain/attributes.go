package domain

import "time"

// Attributes lists everything a shipment can be constructed from. A zero
// ProductCode keeps the default.
type Attributes struct {
	SenderAddress     *Address
	ReceiverAddress   *Address
	ShipmentDate      time.Time
	ProductCode       ProductCode
	CustomerReference string
	ShipmentItems     []ShipmentItem
	Services          []Service

	// Deprecated: single parcel fields, use ShipmentItems. When any of them
	// is set ShipmentItems is ignored.
	Weight *float64
	Length *int
	Width  *int
	Height *int
}

func (a *Attributes) hasLegacyItem() bool {
	return a.Weight != nil || a.Length != nil || a.Width != nil || a.Height != nil
}

func (a *Attributes) legacyItem() ShipmentItem {
	item := ShipmentItem{PackageType: DefaultPackageType}
	if a.Weight != nil {
		item.Weight = *a.Weight
	}
	if a.Length != nil {
		item.Length = *a.Length
	}
	if a.Width != nil {
		item.Width = *a.Width
	}
	if a.Height != nil {
		item.Height = *a.Height
	}
	return item
}

type Builder struct {
	attrs Attributes
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Sender(address Address) *Builder {
	b.attrs.SenderAddress = &address
	return b
}

func (b *Builder) Receiver(address Address) *Builder {
	b.attrs.ReceiverAddress = &address
	return b
}

func (b *Builder) ShipmentDate(date time.Time) *Builder {
	b.attrs.ShipmentDate = date
	return b
}

func (b *Builder) ProductCode(code ProductCode) *Builder {
	b.attrs.ProductCode = code
	return b
}

func (b *Builder) CustomerReference(reference string) *Builder {
	b.attrs.CustomerReference = reference
	return b
}

func (b *Builder) Items(items ...ShipmentItem) *Builder {
	b.attrs.ShipmentItems = append(b.attrs.ShipmentItems, items...)
	return b
}

func (b *Builder) Services(services ...Service) *Builder {
	b.attrs.Services = append(b.attrs.Services, services...)
	return b
}

// Deprecated: use Items.
func (b *Builder) SingleParcel(weight float64, length, width, height int) *Builder {
	b.attrs.Weight = &weight
	b.attrs.Length = &length
	b.attrs.Width = &width
	b.attrs.Height = &height
	return b
}

func (b *Builder) Attributes() Attributes {
	return b.attrs
}

func (b *Builder) Build() (*Shipment, error) {
	return NewShipment(b.attrs)
}
