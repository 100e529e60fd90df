// Package controllers implements the JSON API of the dashboard.
package controllers

import (
	"context"
	"time"

	"github.com/nremp/dashboard/pkg/auth"
	"github.com/nremp/dashboard/pkg/notes"
	"github.com/nremp/dashboard/pkg/session"
	"github.com/nremp/dashboard/pkg/users"
	"github.com/nremp/dashboard/pkg/workspace"
	"gorm.io/gorm"
)

// Authenticator signs principals in and out and issues the ID tokens the
// API is called with.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (auth.Principal, error)
	SignOut(ctx context.Context) error
	IDToken(p auth.Principal) (string, error)
	Verify(token string) (auth.Principal, error)
}

// Controller holds the dependencies of all handlers.
type Controller struct {
	DB        *gorm.DB
	Auth      Authenticator
	Session   *session.Session
	Workspace *workspace.Workspace
	Notes     *notes.Service
	Users     *users.Service

	// Clock for the "current month" figures, time.Now if nil
	Now func() time.Time
}

func (co Controller) now() time.Time {
	if co.Now != nil {
		return co.Now()
	}
	return time.Now()
}

// ContextPrincipal is the gin context key of the authenticated principal.
const ContextPrincipal = "principal"
