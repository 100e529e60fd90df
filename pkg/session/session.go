// Package session resolves the authenticated principal into a profile with
// permissions and notifies listeners whenever it changes.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nremp/dashboard/pkg/auth"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/permissions"
	"github.com/nremp/dashboard/pkg/sanitize"
	"github.com/nremp/dashboard/pkg/store"
	"github.com/rs/zerolog/log"
)

// ProfileFunc receives the current profile, nil when nobody is signed in.
type ProfileFunc func(p *permissions.Profile)

// Session is the authorization context of the signed in principal.
type Session struct {
	provider       auth.Provider
	store          store.Store
	bootstrapAdmin string

	// resolveMu serializes profile resolution
	resolveMu sync.Mutex

	mu          sync.Mutex
	principal   *auth.Principal
	profile     *permissions.Profile
	listeners   map[int]ProfileFunc
	nextID      int
	unsubscribe func()
}

// New returns a session on top of the provider. Accounts signing in for
// the first time are created with the admin role if their email equals
// bootstrapAdmin, otherwise as viewer.
func New(provider auth.Provider, st store.Store, bootstrapAdmin string) *Session {
	return &Session{
		provider:       provider,
		store:          st,
		bootstrapAdmin: strings.TrimSpace(bootstrapAdmin),
		listeners:      make(map[int]ProfileFunc),
	}
}

// Start follows the auth state of the provider until ctx is done or Close
// is called.
func (s *Session) Start(ctx context.Context) {
	unsubscribe := s.provider.OnAuthStateChange(func(p *auth.Principal) {
		s.resolve(ctx, p)
	})

	stop := context.AfterFunc(ctx, s.Close)

	s.mu.Lock()
	s.unsubscribe = func() {
		stop()
		unsubscribe()
	}
	s.mu.Unlock()
}

// Close detaches the session from the provider.
func (s *Session) Close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Principal returns the signed in principal.
func (s *Session) Principal() *auth.Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.principal
}

// Profile returns the resolved profile of the signed in principal.
func (s *Session) Profile() *permissions.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// HasModuleAccess reports whether the signed in principal may use the
// module.
func (s *Session) HasModuleAccess(m permissions.Module) bool {
	return permissions.HasModuleAccess(s.Profile(), m)
}

// OnChange calls fn with the current profile immediately and after every
// change. The returned function detaches fn.
func (s *Session) OnChange(fn ProfileFunc) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.profile
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// resolve turns the principal into a profile. Any failure signs the
// session out locally.
func (s *Session) resolve(ctx context.Context, p *auth.Principal) {
	s.resolveMu.Lock()
	defer s.resolveMu.Unlock()

	if p == nil {
		s.set(nil, nil)
		return
	}

	account, err := s.account(ctx, *p)
	if err != nil {
		log.Error().Err(err).Str("uid", p.UID).Msg("Session")
		s.set(nil, nil)
		return
	}

	email := p.Email
	if email == "" {
		email = account.Email
	}

	s.set(p, permissions.NewProfile(p.UID, email, account.Role))
}

// account reads the account of the principal and creates it on first
// sign in.
func (s *Session) account(ctx context.Context, p auth.Principal) (models.UserAccount, error) {
	path := store.Join(store.CollectionUsers, p.UID)

	raw, err := s.store.Get(ctx, path)
	if errors.Is(err, store.ErrNotFound) {
		role := models.RoleViewer
		if s.bootstrapAdmin != "" && strings.EqualFold(p.Email, s.bootstrapAdmin) {
			role = models.RoleAdmin
		}

		account := models.UserAccount{UID: p.UID, Email: p.Email, Role: role}
		if err := s.store.Set(ctx, path, account.Document()); err != nil {
			return models.UserAccount{}, fmt.Errorf("creating account: %w", err)
		}
		log.Info().Str("uid", p.UID).Str("role", string(role)).Msg("Session: account created")

		raw, err = s.store.Get(ctx, path)
	}
	if err != nil {
		return models.UserAccount{}, fmt.Errorf("reading account: %w", err)
	}

	account, ok := sanitize.User(p.UID, sanitize.RawJSON(raw))
	if !ok {
		return models.UserAccount{}, fmt.Errorf("account %s is not a record", p.UID)
	}
	return account, nil
}

func (s *Session) set(p *auth.Principal, profile *permissions.Profile) {
	s.mu.Lock()
	s.principal = p
	s.profile = profile
	listeners := make([]ProfileFunc, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(profile)
	}
}
