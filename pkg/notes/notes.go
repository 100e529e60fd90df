// Package notes implements the write operations on notes.
//
// All writes require a profile that may edit the management module.
package notes

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nremp/dashboard/internal/search"
	"github.com/nremp/dashboard/pkg/importer"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/permissions"
	"github.com/nremp/dashboard/pkg/store"
	"github.com/rs/zerolog/log"
)

// ProfileSource returns the profile of the signed in principal.
type ProfileSource interface {
	Profile() *permissions.Profile
}

// Service writes notes to the document store.
type Service struct {
	store    store.Store
	profiles ProfileSource
}

// NewService returns a Service writing to st on behalf of the signed in
// principal.
func NewService(st store.Store, profiles ProfileSource) *Service {
	return &Service{store: st, profiles: profiles}
}

func (s *Service) authorize() error {
	if !permissions.CanEdit(s.profiles.Profile(), permissions.ModuleManagement) {
		return ErrForbidden
	}
	return nil
}

// Add creates a new note and returns its id.
func (s *Service) Add(ctx context.Context, in Input) (string, error) {
	if err := s.authorize(); err != nil {
		return "", err
	}
	if err := in.Validate(); err != nil {
		return "", err
	}

	id, err := s.store.Push(ctx, store.CollectionNotes)
	if err != nil {
		return "", err
	}

	if err := s.store.Set(ctx, store.Join(store.CollectionNotes, id), document(in.Data())); err != nil {
		return "", err
	}

	log.Debug().Str("id", id).Msg("Notes: added")
	return id, nil
}

// Update replaces all user editable fields of a note.
func (s *Service) Update(ctx context.Context, id string, in Input) error {
	if err := s.authorize(); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	return s.update(ctx, id, in.Patch())
}

// Patch changes the fields of a note the patch sets.
func (s *Service) Patch(ctx context.Context, id string, p models.NotePatch) error {
	if err := s.authorize(); err != nil {
		return err
	}
	if err := validatePatch(p); err != nil {
		return err
	}
	if p.Empty() {
		return nil
	}

	return s.update(ctx, id, p)
}

func (s *Service) update(ctx context.Context, id string, p models.NotePatch) error {
	path, err := s.path(ctx, id)
	if err != nil {
		return err
	}

	return s.store.Update(ctx, path, p.Fields())
}

// Delete removes a note.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.authorize(); err != nil {
		return err
	}

	path, err := s.path(ctx, id)
	if err != nil {
		return err
	}

	return s.store.Remove(ctx, path)
}

// path returns the store path of an existing note.
func (s *Service) path(ctx context.Context, id string) (string, error) {
	path := store.Join(store.CollectionNotes, id)
	if ref, err := store.ParsePath(path); id == "" || err != nil || ref.Key != id || ref.Field != "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if _, err := s.store.Get(ctx, path); errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	} else if err != nil {
		return "", err
	}

	return path, nil
}

// Import parses a CSV file and writes all valid rows in a single atomic
// update. Rows are not checked against existing notes, importing a file
// twice creates every note twice.
//
// If the file has no valid rows, nothing is written and
// importer.ErrNoValidRows is returned.
func (s *Service) Import(ctx context.Context, f io.Reader) (importer.Result, error) {
	if err := s.authorize(); err != nil {
		return importer.Result{}, err
	}

	result, err := importer.ParseCSV(f)
	if err != nil {
		return result, err
	}

	update := make(map[string]any, len(result.Notes))
	for _, data := range result.Notes {
		id, err := s.store.Push(ctx, store.CollectionNotes)
		if err != nil {
			return result, err
		}
		update[store.Join(store.CollectionNotes, id)] = document(data)
	}

	if err := s.store.Update(ctx, "", update); err != nil {
		return result, err
	}

	log.Info().Int("imported", len(result.Notes)).Int("skipped", len(result.Skipped)).Msg("Notes: import")
	return result, nil
}

// document returns the stored form of a new note.
func document(data models.NoteData) map[string]any {
	doc := data.Document()
	doc[store.OrderCreatedAt] = store.ServerTimestamp
	return doc
}

// Filter returns the notes matching the query in their number, client,
// category or material.
func Filter(notes []models.Note, query string) []models.Note {
	filtered := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if search.Match(query, n.Number, n.Client, n.Category, n.Material) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
