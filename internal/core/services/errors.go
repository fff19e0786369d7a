// internal/core/services/errors.go
package services

import "errors"

// Sentinel errors shared by the services so handlers can map them to
// status codes without string matching.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenRevoked       = errors.New("token has been revoked")
)
