package entity

import (
	"strings"

	"github.com/google/uuid"
)

// PrincipalKind distinguishes the two kinds of authenticated caller.
type PrincipalKind string

const (
	PrincipalUser  PrincipalKind = "user"
	PrincipalAdmin PrincipalKind = "admin"
)

func (k PrincipalKind) String() string {
	return string(k)
}

func (k PrincipalKind) IsValid() bool {
	switch k {
	case PrincipalUser, PrincipalAdmin:
		return true
	default:
		return false
	}
}

// Principal is the authenticated caller. Exactly one kind is set; the kind
// comes from the verified token, never from inspecting the record shape.
type Principal struct {
	Kind PrincipalKind `json:"kind"`
	ID   uuid.UUID     `json:"id"`
}

func NewUserPrincipal(id uuid.UUID) Principal {
	return Principal{Kind: PrincipalUser, ID: id}
}

func NewAdminPrincipal(id uuid.UUID) Principal {
	return Principal{Kind: PrincipalAdmin, ID: id}
}

// IsZero reports an unauthenticated caller.
func (p Principal) IsZero() bool {
	return !p.Kind.IsValid() || p.ID == uuid.Nil
}

func (p Principal) IsAdmin() bool {
	return p.Kind == PrincipalAdmin && p.ID != uuid.Nil
}

func (p Principal) IsUser() bool {
	return p.Kind == PrincipalUser && p.ID != uuid.Nil
}

// Owns reports whether the principal is the poster of the listing.
func (p Principal) Owns(l *Listing) bool {
	if l == nil || p.IsZero() {
		return false
	}

	switch p.Kind {
	case PrincipalAdmin:
		return l.OwnerAdminID != nil && *l.OwnerAdminID == p.ID
	case PrincipalUser:
		return l.OwnerUserID != nil && *l.OwnerUserID == p.ID
	default:
		return false
	}
}

// CanManage reports whether the principal may mutate the listing.
// Any admin may manage any listing.
func (p Principal) CanManage(l *Listing) bool {
	return p.IsAdmin() || p.Owns(l)
}

// Last4 returns the final four characters of the id's canonical form,
// or the whole string when shorter.
func Last4(id uuid.UUID) string {
	s := strings.ReplaceAll(id.String(), "-", "")
	if len(s) <= 4 {
		return s
	}

	return s[len(s)-4:]
}
