package enums

import "fmt"

// UserRole represents the actor roles recognized by the owner API.
type UserRole string

const (
	UserRoleOwner    UserRole = "owner"
	UserRoleCustomer UserRole = "customer"
)

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

var validUserStatuses = []UserStatus{
	UserStatusActive,
	UserStatusSuspended,
	UserStatusBanned,
}

// String implements fmt.Stringer.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known UserStatus.
func (s UserStatus) IsValid() bool {
	for _, candidate := range validUserStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseUserStatus converts raw input into a UserStatus.
func ParseUserStatus(value string) (UserStatus, error) {
	for _, candidate := range validUserStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user status %q", value)
}
