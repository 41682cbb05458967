package identity

import (
	"errors"
	"net/mail"
	"strings"

	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/pkg/errs"
)

var (
	// ErrIdentityIsNotConstructed is returned when an Identity instance was not created
	// through the NewIdentity factory method. This ensures all identities are properly validated.
	ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")
)

// Identity represents the authenticated user's profile and role, held for the
// lifetime of the browsing session.
//
// Identity follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty full name and a well-formed email address
//   - Must carry a role from the closed role set
//   - Role is immutable for the lifetime of the identity; a role change
//     requires re-authentication
//   - Can only be created through the NewIdentity constructor
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through the validated constructor.
type Identity struct {
	// id is the unique identifier for the user
	id kernel.UUID

	// fullName is the user's display name
	fullName string

	// email is the login email address
	email string

	// role is the user's access level
	role Role

	// isConstructed ensures the identity was created via NewIdentity
	isConstructed bool
}

// NewIdentity creates a new Identity instance with validation. This is the only
// way to create a valid Identity, ensuring all invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the user (must be valid UUID)
//   - fullName: Display name (must be non-empty)
//   - email: Login email address (must be well-formed)
//   - role: Access level from the closed role set
//
// Returns:
//   - *Identity: The created identity if all validations pass
//   - error: Validation error if any parameter is invalid
func NewIdentity(id kernel.UUID, fullName, email string, role Role) (*Identity, error) {
	ident := &Identity{
		isConstructed: true,
	}

	if err := errors.Join(
		ident.setID(id),
		ident.setFullName(fullName),
		ident.setEmail(email),
		ident.setRole(role),
	); err != nil {
		return nil, err
	}

	return ident, nil
}

// Validate ensures the Identity instance was properly constructed through NewIdentity.
// This prevents bypassing validation by directly instantiating the struct.
func (i *Identity) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIdentityIsNotConstructed
	}
	return nil
}

// IsEqual compares two identities by their unique identifiers.
func (i *Identity) IsEqual(other *Identity) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (i *Identity) ID() kernel.UUID {
	return i.id
}

// FullName returns the user's display name.
func (i *Identity) FullName() string {
	return i.fullName
}

// Email returns the user's login email address.
func (i *Identity) Email() string {
	return i.email
}

// Role returns the user's access level.
func (i *Identity) Role() Role {
	return i.role
}

// HasRole reports whether the identity carries exactly the required role.
// It is a pure predicate with no side effects.
func (i *Identity) HasRole(required Role) bool {
	return i != nil && i.isConstructed && i.role == required
}

// setID validates and sets the identity's unique identifier.
// This is a private method used only during construction.
func (i *Identity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setFullName validates and sets the display name.
func (i *Identity) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	i.fullName = fullName
	return nil
}

// setEmail validates and sets the email address.
func (i *Identity) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	i.email = email
	return nil
}

// setRole validates and sets the role.
func (i *Identity) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	i.role = role
	return nil
}
