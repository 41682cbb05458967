// Package tracking implements the delivery lifecycle tracker: a polled local
// view of the courier's deliveries with new-assignment detection and guarded
// status transitions.
package tracking
