package domain

import (
	"errors"
	"regexp"
)

var (
	ekpPattern       = regexp.MustCompile(`^[0-9]{10}$`)
	partnerIDPattern = regexp.MustCompile(`^[0-9]{2}$`)
)

// Account holds the carrier-assigned identifiers sent with every request.
type Account struct {
	EKP       string `yaml:"ekp"`
	PartnerID string `yaml:"partner_id"`
}

func (o *Account) Validate() error {
	if !ekpPattern.MatchString(o.EKP) {
		return errors.New(".ekp must be a 10 digit customer number")
	}

	if !partnerIDPattern.MatchString(o.PartnerID) {
		return errors.New(".partner_id must be 2 digits")
	}

	return nil
}
