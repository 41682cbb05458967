// Package queries contains the read-side use cases of the panel: the
// courier-scoped "my deliveries" listing and the manager-scoped filtered
// listing. Queries are constructor-guarded; role checks fail locally.
package queries
