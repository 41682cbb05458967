// Package notify implements the Notifier port as a toast-style notice
// center with capability-gated audio alerts and push messages.
package notify
