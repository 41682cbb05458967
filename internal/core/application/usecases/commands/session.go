package commands

import "hortifruti/internal/core/domain/model/identity"

// Session supplies the current authenticated state to command and query
// handlers. It is implemented by the session manager.
type Session interface {
	// Identity returns the active identity, or nil when logged out.
	Identity() *identity.Identity

	// Credential returns the bearer token and whether one is active.
	Credential() (string, bool)
}

// actualRole names the current role for access-denied errors.
// A missing identity reads as "Unknown".
func actualRole(s Session) string {
	if ident := s.Identity(); ident != nil {
		return ident.Role().String()
	}
	return identity.RoleUnknown.String()
}
