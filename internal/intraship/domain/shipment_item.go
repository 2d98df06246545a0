package domain

import (
	"errors"
	"strconv"
)

const DefaultPackageType = "PK"

// ShipmentItem is one parcel of a shipment. Weight is in kilograms, the
// dimensions in centimetres.
type ShipmentItem struct {
	Weight      float64 `json:"weight" yaml:"weight"`
	Length      int     `json:"length" yaml:"length"`
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	PackageType string  `json:"package_type" yaml:"package_type"`
}

func NewShipmentItem(weight float64, length, width, height int) ShipmentItem {
	return ShipmentItem{
		Weight:      weight,
		Length:      length,
		Width:       width,
		Height:      height,
		PackageType: DefaultPackageType,
	}
}

func (o *ShipmentItem) Validate() error {
	if o.Weight <= 0 {
		return errors.New(".weight must be positive")
	}

	if o.Length < 0 || o.Width < 0 || o.Height < 0 {
		return errors.New(".dimensions must not be negative")
	}

	return nil
}

func (o ShipmentItem) AppendToXML(w XMLWriter) {
	packageType := o.PackageType
	if packageType == "" {
		packageType = DefaultPackageType
	}

	w.Node("ShipmentItem", func(w XMLWriter) {
		w.Leaf("WeightInKG", strconv.FormatFloat(o.Weight, 'f', -1, 64))
		w.Leaf("LengthInCM", strconv.Itoa(o.Length))
		w.Leaf("WidthInCM", strconv.Itoa(o.Width))
		w.Leaf("HeightInCM", strconv.Itoa(o.Height))
		w.Leaf("PackageType", packageType)
	})
}
