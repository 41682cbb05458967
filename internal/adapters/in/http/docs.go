// Package http exposes the panel over HTTP: authentication endpoints, the
// courier and manager delivery surfaces, notices, health and metrics.
//
// Two kinds of protection exist: RequireRole for API endpoints (JSON status
// codes) and GuardView for panel views (redirects through the role landing
// map).
package http
