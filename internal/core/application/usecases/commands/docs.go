// Package commands contains the write-side use cases of the panel: delivery
// status transitions (courier) and courier assignment (manager). Commands are
// constructor-guarded and validated before their handlers touch the backend,
// so authorization and payload failures never produce a network call.
package commands
