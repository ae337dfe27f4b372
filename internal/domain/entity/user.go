package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered end user who can post, save and visit listings.
type User struct {
	ID           uuid.UUID      `json:"id"`                     // The Global Unique Identifier (GUID) for the user.
	Name         string         `json:"name"`                   // Display name.
	Email        string         `json:"email,omitempty"`        // Login identifier for password and Google sign-in.
	Phone        string         `json:"phone,omitempty"`        // Login identifier for OTP sign-in, E.164.
	PasswordHash string         `json:"-"`                      // bcrypt hash, empty for OTP and Google accounts.
	GoogleID     string         `json:"-"`                      // Subject of the verified Google ID token.
	Profile      ProfileAddress `json:"profileAddress"`         // Used as the search center when none is given.
	SerialNumber *int64         `json:"serialNumber,omitempty"` // Assigned once, on the first listing.
	ListingCount int            `json:"listingCount"`           // Number of live listings posted by this user.
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// ProfileAddress is the user's home address.
type ProfileAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// GeocodeQuery joins street, city, state and postal code.
func (a ProfileAddress) GeocodeQuery() string {
	return JoinAddressParts(a.Street, a.City, a.State, a.PostalCode)
}

// Admin is a back-office account. Admin listings carry an A- prefixed id.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MarkKind is the relation a user keeps with a listing.
type MarkKind string

const (
	MarkSaved  MarkKind = "saved"
	MarkBought MarkKind = "bought"
)

func (k MarkKind) IsValid() bool {
	return k == MarkSaved || k == MarkBought
}
