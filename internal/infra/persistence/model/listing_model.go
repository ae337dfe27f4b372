package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table. The PostGIS 'location' column is
// generated from latitude/longitude and is never written by GORM.
type ListingModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomID      string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	OwnerUserID   *uuid.UUID `gorm:"type:uuid;index"`
	OwnerAdminID  *uuid.UUID `gorm:"type:uuid;index"`
	PostedByAdmin bool       `gorm:"not null;default:false"`

	Street     string `gorm:"type:varchar(255)"`
	Locality   string `gorm:"type:varchar(255);not null"`
	City       string `gorm:"type:varchar(120);not null"`
	State      string `gorm:"type:varchar(120);not null"`
	PostalCode string `gorm:"type:varchar(20);not null"`

	Latitude  float64 `gorm:"not null;default:0"`
	Longitude float64 `gorm:"not null;default:0"`

	Price           float64 `gorm:"type:numeric(14,2);not null"`
	Description     string  `gorm:"type:text"`
	Purpose         string  `gorm:"type:varchar(20);not null"`
	PropertyType    string  `gorm:"type:varchar(20);not null"`
	ResidentialType string  `gorm:"type:varchar(20)"`
	CommercialType  string  `gorm:"type:varchar(20)"`

	Bedrooms    *int
	Bathrooms   *int
	Balconies   *int
	FloorNumber *int
	TotalFloors *int
	Furnishing  string `gorm:"type:varchar(30)"`

	NoticePeriodDays *int
	FoodIncluded     *bool
	PGType           string `gorm:"column:pg_type;type:varchar(20)"`
	SharingType      string `gorm:"type:varchar(20)"`

	Images     []string          `gorm:"type:jsonb;serializer:json;not null;default:'[]'"`
	IsSold     bool              `gorm:"not null;default:false;index"`
	VisitCount int               `gorm:"not null;default:0"`
	VisitedBy  []VisitEntryModel `gorm:"type:jsonb;serializer:json;not null;default:'[]'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VisitEntryModel is one element of the visited_by JSON array.
type VisitEntryModel struct {
	UserID    uuid.UUID `json:"userId"`
	VisitedAt time.Time `json:"visitedAt"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
