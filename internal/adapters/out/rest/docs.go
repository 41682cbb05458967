// Package rest implements the BackendClient port over the retail backend's
// HTTP/JSON API.
package rest
