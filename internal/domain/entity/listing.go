package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Purpose is why a property is listed.
type Purpose string

const (
	PurposeSell        Purpose = "Sell"
	PurposeRentLease   Purpose = "Rent/Lease"
	PurposePayingGuest Purpose = "Paying Guest"
)

func (p Purpose) IsValid() bool {
	switch p {
	case PurposeSell, PurposeRentLease, PurposePayingGuest:
		return true
	default:
		return false
	}
}

// IsRental reports purposes that require rent terms.
func (p Purpose) IsRental() bool {
	return p == PurposeRentLease || p == PurposePayingGuest
}

type PropertyType string

const (
	PropertyTypeResidential PropertyType = "Residential"
	PropertyTypeCommercial  PropertyType = "Commercial"
)

func (t PropertyType) IsValid() bool {
	return t == PropertyTypeResidential || t == PropertyTypeCommercial
}

type ResidentialType string

const (
	ResidentialFlat  ResidentialType = "Flat"
	ResidentialHouse ResidentialType = "House"
	ResidentialVilla ResidentialType = "Villa"
	ResidentialPlot  ResidentialType = "Plot"
)

func (t ResidentialType) IsValid() bool {
	switch t {
	case ResidentialFlat, ResidentialHouse, ResidentialVilla, ResidentialPlot:
		return true
	default:
		return false
	}
}

type CommercialType string

const (
	CommercialOffice    CommercialType = "Office"
	CommercialShop      CommercialType = "Shop"
	CommercialShowroom  CommercialType = "Showroom"
	CommercialWarehouse CommercialType = "Warehouse"
	CommercialLand      CommercialType = "Land"
)

func (t CommercialType) IsValid() bool {
	switch t {
	case CommercialOffice, CommercialShop, CommercialShowroom, CommercialWarehouse, CommercialLand:
		return true
	default:
		return false
	}
}

// Address is the postal address of a listing.
type Address struct {
	Street     string `json:"street,omitempty"`
	Locality   string `json:"locality"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// GeocodeQuery joins the non-empty parts, most specific first.
func (a Address) GeocodeQuery() string {
	return JoinAddressParts(a.Street, a.Locality, a.City, a.State, a.PostalCode)
}

// JoinAddressParts concatenates trimmed, non-empty parts with ", ".
func JoinAddressParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, ", ")
}

// ResidentialDetails apply to Residential listings that are not plots.
type ResidentialDetails struct {
	Bedrooms    *int   `json:"bedrooms,omitempty"`
	Bathrooms   *int   `json:"bathrooms,omitempty"`
	Balconies   *int   `json:"balconies,omitempty"`
	FloorNumber *int   `json:"floorNumber,omitempty"`
	TotalFloors *int   `json:"totalFloors,omitempty"`
	Furnishing  string `json:"furnishing,omitempty"`
}

// RentalDetails apply to Rent/Lease and Paying Guest listings.
type RentalDetails struct {
	NoticePeriodDays *int   `json:"noticePeriodDays,omitempty"`
	FoodIncluded     *bool  `json:"foodIncluded,omitempty"`
	PGType           string `json:"pgType,omitempty"`      // Paying Guest only: Boys, Girls, Co-living
	SharingType      string `json:"sharingType,omitempty"` // Paying Guest only: Single, Double, Triple
}

// Visit is one entry in a listing's visitor log, unique per user.
type Visit struct {
	UserID    uuid.UUID `json:"userId"`
	VisitedAt time.Time `json:"visitedAt"`
}

// Listing is a property posted by exactly one user or one admin.
type Listing struct {
	ID              uuid.UUID          `json:"id"`                        // Store-assigned identifier.
	CustomID        string             `json:"customId"`                  // Human readable identifier, unique and immutable.
	OwnerUserID     *uuid.UUID         `json:"ownerUserId,omitempty"`     // Set when a user posted the listing.
	OwnerAdminID    *uuid.UUID         `json:"ownerAdminId,omitempty"`    // Set when an admin posted the listing.
	PostedByAdmin   bool               `json:"postedByAdmin"`             // Mirrors which owner field is set.
	Address         Address            `json:"address"`                   // Postal address.
	Location        GeoPoint           `json:"location"`                  // (0,0) when the address could not be geocoded.
	Price           float64            `json:"price"`                     // Asking price or monthly rent.
	Description     string             `json:"description,omitempty"`     // Free text.
	Purpose         Purpose            `json:"purpose"`                   // Sell, Rent/Lease or Paying Guest.
	PropertyType    PropertyType       `json:"propertyType"`              // Residential or Commercial.
	ResidentialType ResidentialType    `json:"residentialType,omitempty"` // Residential only.
	CommercialType  CommercialType     `json:"commercialType,omitempty"`  // Commercial only.
	Residential     ResidentialDetails `json:"residential"`               // Room and floor counts.
	Rental          RentalDetails      `json:"rental"`                    // Rent terms.
	Images          []string           `json:"images"`                    // Public image URLs.
	IsSold          bool               `json:"isSold"`                    // Sold or rented out.
	VisitCount      int                `json:"visitCount"`                // Every visit, including repeats.
	VisitedBy       []Visit            `json:"visitedBy"`                 // Unique visitors with their latest visit time.
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// Owner returns the posting principal.
func (l *Listing) Owner() Principal {
	if l.OwnerAdminID != nil {
		return NewAdminPrincipal(*l.OwnerAdminID)
	}
	if l.OwnerUserID != nil {
		return NewUserPrincipal(*l.OwnerUserID)
	}

	return Principal{}
}

// SetOwner stamps the owner fields from a principal.
func (l *Listing) SetOwner(p Principal) {
	id := p.ID
	l.OwnerUserID, l.OwnerAdminID = nil, nil
	l.PostedByAdmin = p.Kind == PrincipalAdmin
	if l.PostedByAdmin {
		l.OwnerAdminID = &id
	} else {
		l.OwnerUserID = &id
	}
}

// RecordVisit bumps the counter and upserts the visitor. It returns true on
// the user's first visit.
func (l *Listing) RecordVisit(userID uuid.UUID, at time.Time) bool {
	l.VisitCount++
	for i := range l.VisitedBy {
		if l.VisitedBy[i].UserID == userID {
			l.VisitedBy[i].VisitedAt = at

			return false
		}
	}
	l.VisitedBy = append(l.VisitedBy, Visit{UserID: userID, VisitedAt: at})

	return true
}

// AdminCustomID formats the identifier for admin-posted listings.
func AdminCustomID(adminID uuid.UUID, seq int64) string {
	return fmt.Sprintf("A-%s-%d", Last4(adminID), seq)
}

// UserCustomID formats the identifier for user-posted listings.
func UserCustomID(serial, seq int64) string {
	return fmt.Sprintf("S%d-%d", serial, seq)
}

// NearbyListing is a search hit with its distance from the search center.
type NearbyListing struct {
	*Listing
	DistanceKm float64 `json:"distanceKm"`
}

// ListingFilter narrows the full listing feed.
type ListingFilter struct {
	Purpose      Purpose
	PropertyType PropertyType
	City         string
	IncludeSold  bool
	Limit        int
	Offset       int
}
