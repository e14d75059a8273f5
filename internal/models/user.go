package models

import (
	"strings"
	"time"
)

// Role of a marketplace account.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

// UserStatus marks whether an account may log in.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// UserRecord is a marketplace account. Email is the global identity and is
// compared case-insensitively everywhere. Password must never reach the local
// cache or a login/register response; use Sanitized before persisting.
type UserRecord struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password,omitempty"`
	Mobile   string     `json:"mobile,omitempty"`
	Role     Role       `json:"role,omitempty"`
	Status   UserStatus `json:"status,omitempty"`

	// Seller-only fields.
	SubscriptionPlan string  `json:"subscriptionPlan,omitempty"`
	FeaturedCredits  int     `json:"featuredCredits,omitempty"`
	Verified         bool    `json:"verified,omitempty"`
	TrustScore       float64 `json:"trustScore,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Sanitized returns a copy with the password stripped.
func (u UserRecord) Sanitized() UserRecord {
	u.Password = ""
	return u
}

// EmailKey returns the normalized form of an email used for identity
// comparisons.
func EmailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameEmail reports whether two emails identify the same account.
func SameEmail(a, b string) bool {
	return EmailKey(a) == EmailKey(b)
}
