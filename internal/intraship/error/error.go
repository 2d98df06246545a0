package error

import (
	"errors"
	"net/http"

	"github.com/aria3ppp/intraship/internal/intraship/domain"
)

// ValidationError marks malformed input, as opposed to a well-formed
// shipment that breaks a carrier rule.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// IsDomainRule reports whether err is one of the shipment rule errors.
func IsDomainRule(err error) bool {
	return errors.Is(err, domain.ErrInvalidProductCode) ||
		errors.Is(err, domain.ErrMissingRequiredField) ||
		errors.Is(err, domain.ErrServiceConstraintViolation)
}

func StatusCode(err error) int {
	var validationErr ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case IsDomainRule(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
