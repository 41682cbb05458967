// Package session owns authentication state for the panel: login, logout and
// the restore of a previously persisted credential.
//
// The Manager is the single writer of the credential store and the single
// source of the current identity. Handlers receive it behind the Session
// contract and never touch the token directly.
package session
