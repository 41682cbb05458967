// Package storage provides CredentialStore implementations: a JSON file
// store for durable client-side credentials and an in-memory store for
// tests.
package storage
