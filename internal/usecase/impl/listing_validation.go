package impl

import (
	"strings"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
)

// fieldErrors collects per-field problems into a single validation error.
type fieldErrors []string

func (f *fieldErrors) add(field, problem string) {
	*f = append(*f, field+" "+problem)
}

func (f *fieldErrors) require(ok bool, field string) {
	if !ok {
		f.add(field, "is required")
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(f, "; "))
}

// validateListing checks required fields, including those that depend on
// property type and purpose.
func validateListing(l *entity.Listing) error {
	var errs fieldErrors

	errs.require(strings.TrimSpace(l.Address.Locality) != "", "address.locality")
	errs.require(strings.TrimSpace(l.Address.City) != "", "address.city")
	errs.require(strings.TrimSpace(l.Address.State) != "", "address.state")
	errs.require(strings.TrimSpace(l.Address.PostalCode) != "", "address.postalCode")

	if l.Price <= 0 {
		errs.add("price", "must be positive")
	}
	if !l.Purpose.IsValid() {
		errs.add("purpose", "must be one of Sell, Rent/Lease, Paying Guest")
	}
	if err := l.Location.Validate(); err != nil {
		errs.add("location", err.Error())
	}

	switch l.PropertyType {
	case entity.PropertyTypeResidential:
		validateResidential(l, &errs)
	case entity.PropertyTypeCommercial:
		if !l.CommercialType.IsValid() {
			errs.add("commercialType", "is required for commercial properties")
		}
	default:
		errs.add("propertyType", "must be Residential or Commercial")
	}

	if l.Purpose.IsRental() {
		errs.require(l.Rental.NoticePeriodDays != nil, "rental.noticePeriodDays")
		errs.require(l.Rental.FoodIncluded != nil, "rental.foodIncluded")
	}
	if l.Purpose == entity.PurposePayingGuest {
		errs.require(l.Rental.PGType != "", "rental.pgType")
		errs.require(l.Rental.SharingType != "", "rental.sharingType")
	}

	return errs.err()
}

func validateResidential(l *entity.Listing, errs *fieldErrors) {
	if !l.ResidentialType.IsValid() {
		errs.add("residentialType", "is required for residential properties")

		return
	}
	// Plots have no rooms or floors.
	if l.ResidentialType == entity.ResidentialPlot {
		return
	}

	d := l.Residential
	errs.require(d.Bedrooms != nil, "residential.bedrooms")
	errs.require(d.Bathrooms != nil, "residential.bathrooms")
	errs.require(d.Balconies != nil, "residential.balconies")
	errs.require(d.FloorNumber != nil, "residential.floorNumber")
	errs.require(d.TotalFloors != nil, "residential.totalFloors")
}
