package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProductCode         = errors.New("invalid product code")
	ErrMissingRequiredField       = errors.New("missing required field")
	ErrServiceConstraintViolation = errors.New("service constraint violation")
	ErrNotFound                   = errors.New("not found")
)

type InvalidProductCodeError struct {
	Code ProductCode
}

func (e *InvalidProductCodeError) Error() string {
	return fmt.Sprintf("no valid product code %q", string(e.Code))
}

func (e *InvalidProductCodeError) Is(target error) bool {
	return target == ErrInvalidProductCode
}

// MissingRequiredFieldError names the first unset field found at render time.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s must be set", e.Field)
}

func (e *MissingRequiredFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

type ServiceConstraintViolationError struct {
	Service     ServiceKind
	ProductCode ProductCode
}

func (e *ServiceConstraintViolationError) Error() string {
	return fmt.Sprintf(
		"the %s service can only be added to DHL Domestic Express (%s) shipments, got %s",
		e.Service, ProductCodeDomesticExpress, e.ProductCode,
	)
}

func (e *ServiceConstraintViolationError) Is(target error) bool {
	return target == ErrServiceConstraintViolation
}
