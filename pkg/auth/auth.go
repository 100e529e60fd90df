// Package auth defines the authentication provider the dashboard signs in
// with and a local implementation of it.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// Principal is an authenticated identity.
type Principal struct {
	UID   string `json:"uid" example:"0190d3a4-1111-7c2b-9a1d-3e4f5a6b7c8d"`
	Email string `json:"email" example:"ana@example.com"`
}

// StateFunc receives the signed in principal, or nil after sign out.
type StateFunc func(p *Principal)

// Provider is an authentication provider.
type Provider interface {
	// SignIn authenticates with email and password and makes the principal
	// the current one.
	SignIn(ctx context.Context, email, password string) (Principal, error)

	// SignOut clears the current principal.
	SignOut(ctx context.Context) error

	// OnAuthStateChange calls fn with the current principal immediately and
	// on every later transition. The returned function detaches fn.
	OnAuthStateChange(fn StateFunc) (unsubscribe func())

	// CreateUser creates a new account. The current principal does not
	// change.
	CreateUser(ctx context.Context, email, password string) (Principal, error)
}

// Code is a provider error code.
type Code string

const (
	CodeInvalidCredential Code = "auth/invalid-credential"
	CodeInvalidEmail      Code = "auth/invalid-email"
	CodeEmailInUse        Code = "auth/email-already-in-use"
	CodeWeakPassword      Code = "auth/weak-password"
	CodeUserNotFound      Code = "auth/user-not-found"
	CodeWrongPassword     Code = "auth/wrong-password"
	CodeInvalidToken      Code = "auth/invalid-id-token"
	CodeTokenExpired      Code = "auth/id-token-expired"
)

// Error is an error reported by the provider.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Err)
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code Code, err error) error {
	return &Error{Code: code, Err: err}
}

// CodeOf returns the provider code of err, or "" if err is no provider
// error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// MinPasswordLength is the minimum length of a password.
const MinPasswordLength = 6
