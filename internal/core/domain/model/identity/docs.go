// Package identity contains the Identity aggregate and the Role value object.
//
// An Identity is created on successful login or session restore, held in the
// session manager for the lifetime of the browsing session, and destroyed on
// logout or credential invalidation. At most one identity is active at a time,
// and its role never changes while it lives.
package identity
