package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100)"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex"`
	Phone        *string   `gorm:"type:varchar(20);uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	GoogleID     *string   `gorm:"type:varchar(255);uniqueIndex"`

	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(120)"`
	State      string `gorm:"type:varchar(120)"`
	PostalCode string `gorm:"type:varchar(20)"`

	SerialNumber *int64 `gorm:"uniqueIndex"`
	ListingCount int    `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AdminModel mirrors the 'admins' table.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}

// CounterModel mirrors the 'counters' table.
type CounterModel struct {
	Key   string `gorm:"type:varchar(64);primary_key"`
	Value int64  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CounterModel) TableName() string {
	return "counters"
}

// ListingMarkModel mirrors the 'listing_marks' table.
type ListingMarkModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"type:varchar(10);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingMarkModel) TableName() string {
	return "listing_marks"
}
