package shipment

import (
	"errors"

	"fulfillment/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory function.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the destination of a shipment. Immutable value object; two
// addresses are equal when all fields match.
type Address struct {
	line1      string
	line2      string
	city       string
	region     string
	postalCode string
	country    string

	isSet bool
}

// NewAddress creates a destination address. Line 2 and region are optional.
func NewAddress(line1, line2, city, region, postalCode, country string) (Address, error) {
	if line1 == "" {
		return Address{}, errs.NewValueIsRequiredError("address line 1")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if postalCode == "" {
		return Address{}, errs.NewValueIsRequiredError("postal code")
	}
	if country == "" {
		return Address{}, errs.NewValueIsRequiredError("country")
	}

	return Address{
		line1:      line1,
		line2:      line2,
		city:       city,
		region:     region,
		postalCode: postalCode,
		country:    country,
		isSet:      true,
	}, nil
}

// Validate checks that the Address was constructed through the factory.
func (a Address) Validate() error {
	if !a.isSet {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Line1 returns the first address line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the optional second address line.
func (a Address) Line2() string { return a.line2 }

// City returns the city.
func (a Address) City() string { return a.city }

// Region returns the optional state or province.
func (a Address) Region() string { return a.region }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country code.
func (a Address) Country() string { return a.country }

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a == other
}
