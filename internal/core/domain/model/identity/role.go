package identity

import (
	"fmt"

	"hortifruti/internal/pkg/errs"
)

// Role represents the access level of an authenticated user.
// It is a closed set: every identity carries exactly one role, and the role
// is immutable for the lifetime of the session (a role change requires
// re-authentication).
//
// Role is a value object that validates membership in the closed set and
// provides string representations for persistence and display.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleManager can view all deliveries, filter them, and assign couriers.
	RoleManager

	// RoleCourier can view their own deliveries and drive the delivery
	// status lifecycle.
	RoleCourier

	// RoleStockist manages stock; it has no delivery responsibilities but
	// belongs to the closed role set.
	RoleStockist
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleManager:  "Manager",
		RoleCourier:  "Courier",
		RoleStockist: "Stockist",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleManager:  "Manager",
		RoleCourier:  "Courier",
		RoleStockist: "Stockist",
	}
}

// RoleFromString parses a role name as delivered by the backend.
// Parsing is case-sensitive and accepts exactly the values produced
// by String on valid roles.
//
// Returns:
//   - the matching Role on success
//   - an error if the name does not belong to the closed role set
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
//
// Valid roles are: Manager, Courier, Stockist.
// RoleUnknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the role is valid
//   - error with details if the role is invalid
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
//
// Returns:
//   - "Manager", "Courier", or "Stockist" for valid roles
//   - "Unknown" for invalid role values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
