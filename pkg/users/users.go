// Package users implements the administration of user accounts.
//
// A principal can never change the role of or remove its own account. These
// requests are rejected before the document store is touched.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nremp/dashboard/internal/search"
	"github.com/nremp/dashboard/pkg/auth"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/permissions"
	"github.com/nremp/dashboard/pkg/store"
	"github.com/rs/zerolog/log"
)

// ProfileSource returns the profile of the signed in principal.
type ProfileSource interface {
	Profile() *permissions.Profile
}

// AccountCreator creates authentication accounts without signing them in.
type AccountCreator interface {
	CreateUser(ctx context.Context, email, password string) (auth.Principal, error)
}

// Service administers user accounts.
type Service struct {
	store    store.Store
	accounts AccountCreator
	profiles ProfileSource
}

// NewService returns a Service acting on behalf of the signed in principal.
func NewService(st store.Store, accounts AccountCreator, profiles ProfileSource) *Service {
	return &Service{store: st, accounts: accounts, profiles: profiles}
}

// caller returns the profile of the caller if it may administer users.
func (s *Service) caller() (*permissions.Profile, error) {
	p := s.profiles.Profile()
	if !permissions.CanEdit(p, permissions.ModuleUsers) {
		return nil, ErrForbidden
	}
	return p, nil
}

// Create creates an authentication account and its user record. The
// session of the caller is not affected.
func (s *Service) Create(ctx context.Context, email, password string, role models.Role) (models.UserAccount, error) {
	if _, err := s.caller(); err != nil {
		return models.UserAccount{}, err
	}

	if strings.TrimSpace(email) == "" || password == "" {
		return models.UserAccount{}, ErrCredentialsRequired
	}
	if _, ok := models.ParseRole(string(role)); !ok {
		return models.UserAccount{}, fmt.Errorf("%w: %s", models.ErrUnknownRole, role)
	}

	p, err := s.accounts.CreateUser(ctx, email, password)
	if err != nil {
		return models.UserAccount{}, err
	}

	account := models.UserAccount{UID: p.UID, Email: p.Email, Role: role}
	if err := s.store.Set(ctx, store.Join(store.CollectionUsers, p.UID), account.Document()); err != nil {
		return models.UserAccount{}, err
	}

	log.Info().Str("uid", account.UID).Str("role", string(role)).Msg("Users: created")
	return account, nil
}

// ChangeRole sets the role of the account.
func (s *Service) ChangeRole(ctx context.Context, uid string, role models.Role) error {
	caller, err := s.caller()
	if err != nil {
		return err
	}
	if uid == caller.UID {
		return ErrSelfRoleChange
	}
	if _, ok := models.ParseRole(string(role)); !ok {
		return fmt.Errorf("%w: %s", models.ErrUnknownRole, role)
	}

	path, err := s.path(ctx, uid)
	if err != nil {
		return err
	}

	return s.store.Set(ctx, store.Join(path, "role"), string(role))
}

// Remove deletes the user record of the account. The authentication
// account is kept.
func (s *Service) Remove(ctx context.Context, uid string) error {
	caller, err := s.caller()
	if err != nil {
		return err
	}
	if uid == caller.UID {
		return ErrSelfRemoval
	}

	path, err := s.path(ctx, uid)
	if err != nil {
		return err
	}

	return s.store.Remove(ctx, path)
}

// path returns the store path of an existing account.
func (s *Service) path(ctx context.Context, uid string) (string, error) {
	path := store.Join(store.CollectionUsers, uid)
	if ref, err := store.ParsePath(path); uid == "" || err != nil || ref.Key != uid || ref.Field != "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, uid)
	}

	if _, err := s.store.Get(ctx, path); errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, uid)
	} else if err != nil {
		return "", err
	}

	return path, nil
}

// Filter returns the accounts whose email matches the query.
func Filter(accounts []models.UserAccount, query string) []models.UserAccount {
	filtered := make([]models.UserAccount, 0, len(accounts))
	for _, a := range accounts {
		if search.Match(query, a.Email) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
