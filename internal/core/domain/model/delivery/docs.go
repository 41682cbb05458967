// Package delivery contains the Delivery aggregate and its supporting value
// objects: the Status state machine, courier Transitions with their
// per-transition payloads, and the read-only customer Order snapshot.
//
// A Delivery is created by the backend when an order is ready for dispatch,
// mutated only through status transitions issued by the assigned courier (or
// by a manager for the assignment step), and becomes immutable once it
// reaches a terminal status.
package delivery
