package ports

// CredentialStore is the durable client-side key-value storage that holds the
// bearer token and the denormalized identity snapshot under fixed keys.
//
// The session manager is the only writer; both keys are always cleared
// together on logout or on session-restore failure. Implementations must be
// injectable so tests can run without a real storage backend.
type CredentialStore interface {
	// Get returns the stored value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
