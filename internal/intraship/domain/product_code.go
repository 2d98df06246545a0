package domain

import "slices"

type ProductCode string

const (
	ProductCodeDhlPackage           ProductCode = "EPN"
	ProductCodeWeltpaket            ProductCode = "BPI"
	ProductCodeEuropaket            ProductCode = "EPI"
	ProductCodeEuropaketPlus        ProductCode = "EUP"
	ProductCodeSameDay              ProductCode = "OFP"
	ProductCodeExpressInternational ProductCode = "EXI"
	ProductCodeDomesticExpress      ProductCode = "EXP"
)

var ValidProductCodes = []ProductCode{
	ProductCodeDhlPackage,
	ProductCodeWeltpaket,
	ProductCodeEuropaket,
	ProductCodeEuropaketPlus,
	ProductCodeSameDay,
	ProductCodeExpressInternational,
	ProductCodeDomesticExpress,
}

func (c ProductCode) Valid() bool {
	return slices.Contains(ValidProductCodes, c)
}

func (c ProductCode) String() string {
	return string(c)
}
