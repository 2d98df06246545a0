package domain

import (
	"errors"
	"strings"
)

// Address is a shipper or receiver. A non-empty Company renders a company
// block, otherwise the person's name is used.
type Address struct {
	Company         string `json:"company" yaml:"company"`
	CompanyAddition string `json:"company_addition" yaml:"company_addition"`
	FirstName       string `json:"first_name" yaml:"first_name"`
	LastName        string `json:"last_name" yaml:"last_name"`
	Street          string `json:"street" yaml:"street"`
	HouseNumber     string `json:"house_number" yaml:"house_number"`
	Zip             string `json:"zip" yaml:"zip"`
	City            string `json:"city" yaml:"city"`
	CountryCode     string `json:"country_code" yaml:"country_code"`
	Phone           string `json:"phone" yaml:"phone"`
	Email           string `json:"email" yaml:"email"`
	ContactPerson   string `json:"contact_person" yaml:"contact_person"`
}

func (o *Address) Validate() error {
	if o.Company == "" && o.LastName == "" {
		return errors.New(".company or .last_name is required")
	}

	if o.Street == "" {
		return errors.New(".street is required")
	}

	if o.Zip == "" {
		return errors.New(".zip is required")
	}

	if o.City == "" {
		return errors.New(".city is required")
	}

	if len(o.CountryCode) != 2 {
		return errors.New(".country_code must be a two letter ISO code")
	}

	return nil
}

func (o *Address) IsCompany() bool {
	return strings.TrimSpace(o.Company) != ""
}

func (o *Address) AppendToXML(w XMLWriter) {
	w.Node("Company", func(w XMLWriter) {
		if o.IsCompany() {
			w.Node("cis:Company", func(w XMLWriter) {
				w.Leaf("cis:name1", o.Company)
				if o.CompanyAddition != "" {
					w.Leaf("cis:name2", o.CompanyAddition)
				}
			})
			return
		}

		w.Node("cis:Person", func(w XMLWriter) {
			w.Leaf("cis:firstname", o.FirstName)
			w.Leaf("cis:lastname", o.LastName)
		})
	})

	w.Node("Address", func(w XMLWriter) {
		w.Leaf("cis:streetName", o.Street)
		w.Leaf("cis:streetNumber", o.HouseNumber)
		w.Node("cis:Zip", func(w XMLWriter) {
			w.Leaf(o.zipTag(), o.Zip)
		})
		w.Leaf("cis:city", o.City)
		w.Node("cis:Origin", func(w XMLWriter) {
			w.Leaf("cis:countryISOCode", strings.ToUpper(o.CountryCode))
		})
	})

	w.Node("Communication", func(w XMLWriter) {
		if o.Phone != "" {
			w.Leaf("cis:phone", o.Phone)
		}
		if o.Email != "" {
			w.Leaf("cis:email", o.Email)
		}
		contact := o.ContactPerson
		if contact == "" && !o.IsCompany() {
			contact = strings.TrimSpace(o.FirstName + " " + o.LastName)
		}
		if contact != "" {
			w.Leaf("cis:contactPerson", contact)
		}
	})
}

// The carrier keys zip formats by country.
func (o *Address) zipTag() string {
	switch strings.ToUpper(o.CountryCode) {
	case "DE":
		return "cis:germany"
	case "GB":
		return "cis:england"
	default:
		return "cis:other"
	}
}
