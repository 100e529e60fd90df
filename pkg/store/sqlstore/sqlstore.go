// Package sqlstore implements store.Store on top of SQLite.
//
// Documents are kept as JSON in a single table. Every committed write
// notifies the subscriptions of the collections it touched, which then
// deliver a fresh snapshot of the whole collection.
package sqlstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/nremp/dashboard/pkg/store"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is a realtime document store backed by SQLite.
type Store struct {
	db *gorm.DB

	mu            sync.Mutex
	subscriptions map[string]map[*subscription]struct{}
	lastTimestamp int64
	closed        bool

	// Clock, replaceable in tests
	now func() time.Time
}

var _ store.Store = (*Store)(nil)

// Open opens the SQLite database at dsn and migrates the document table.
func Open(dsn string) (*Store, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors and keeps
	// in-memory databases alive for the lifetime of the store.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &Store{
		db:            db,
		subscriptions: make(map[string]map[*subscription]struct{}),
		now:           time.Now,
	}, nil
}

// DB returns the underlying database so that other components can keep
// their tables in the same file.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close detaches all subscriptions and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true

	var subs []*subscription
	for _, set := range s.subscriptions {
		for sub := range set {
			subs = append(subs, sub)
		}
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// timestamp returns the next server timestamp in milliseconds.
func (s *Store) timestamp() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now().UnixMilli()
	if ts <= s.lastTimestamp {
		ts = s.lastTimestamp + 1
	}
	s.lastTimestamp = ts
	return ts
}

// Subscribe implements store.Store.
func (s *Store) Subscribe(ctx context.Context, path, orderBy string, fn store.SnapshotFunc) (store.Subscription, error) {
	ref, err := store.ParsePath(path)
	if err != nil {
		return nil, err
	}
	if ref.Key != "" {
		return nil, fmt.Errorf("%w: subscriptions are only supported on collections", store.ErrInvalidPath)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, store.ErrClosed
	}

	sub := newSubscription(ctx, s, ref.Collection, orderBy, fn)
	if s.subscriptions[ref.Collection] == nil {
		s.subscriptions[ref.Collection] = make(map[*subscription]struct{})
	}
	s.subscriptions[ref.Collection][sub] = struct{}{}
	s.mu.Unlock()

	go sub.run()
	return sub, nil
}

func (s *Store) unregister(sub *subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.subscriptions[sub.collection], sub)
	if len(s.subscriptions[sub.collection]) == 0 {
		delete(s.subscriptions, sub.collection)
	}
}

// notify signals all subscriptions of the collections.
func (s *Store) notify(collections ...string) {
	s.mu.Lock()
	var subs []*subscription
	for _, c := range collections {
		for sub := range s.subscriptions[c] {
			subs = append(subs, sub)
		}
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.signal()
	}
}

// snapshot reads the complete collection in order.
func (s *Store) snapshot(ctx context.Context, collection, orderBy string) (store.Snapshot, error) {
	var docs []document
	err := s.db.WithContext(ctx).Where("collection = ?", collection).Find(&docs).Error
	if err != nil {
		return store.Snapshot{Path: collection}, err
	}

	sortDocuments(docs, orderBy)

	snap := store.Snapshot{Path: collection, Children: make([]store.Child, 0, len(docs))}
	for _, d := range docs {
		snap.Children = append(snap.Children, store.Child{Key: d.Key, Value: json.RawMessage(d.Body)})
	}
	return snap, nil
}

// Get implements store.Store.
func (s *Store) Get(ctx context.Context, path string) (json.RawMessage, error) {
	if s.isClosed() {
		return nil, store.ErrClosed
	}

	ref, err := documentRef(path)
	if err != nil {
		return nil, err
	}

	doc, err := load(s.db.WithContext(ctx), ref)
	if err != nil {
		return nil, err
	}

	if ref.Field == "" {
		return json.RawMessage(doc.Body), nil
	}

	value := gjson.GetBytes(doc.Body, ref.Field)
	if !value.Exists() {
		return nil, fmt.Errorf("%w %s", store.ErrNotFound, path)
	}
	return json.RawMessage(value.Raw), nil
}

// Set implements store.Store.
func (s *Store) Set(ctx context.Context, path string, value any) error {
	if value == nil {
		return s.Remove(ctx, path)
	}

	ref, err := documentRef(path)
	if err != nil {
		return err
	}

	return s.write(ctx, func(tx *gorm.DB) ([]string, error) {
		return []string{ref.Collection}, s.set(tx, ref, value)
	})
}

// Update implements store.Store.
func (s *Store) Update(ctx context.Context, path string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	// Multi-location update
	if path == "" || path == "/" {
		paths := make([]string, 0, len(fields))
		for p := range fields {
			paths = append(paths, p)
		}
		sort.Strings(paths)

		refs := make([]store.Ref, 0, len(paths))
		for _, p := range paths {
			ref, err := documentRef(p)
			if err != nil {
				return fmt.Errorf("%w: %s", err, p)
			}
			refs = append(refs, ref)
		}

		return s.write(ctx, func(tx *gorm.DB) ([]string, error) {
			var touched []string
			for i, ref := range refs {
				value := fields[paths[i]]

				var err error
				if value == nil {
					err = remove(tx, ref)
				} else {
					err = s.set(tx, ref, value)
				}
				if err != nil {
					return nil, err
				}
				touched = append(touched, ref.Collection)
			}
			return touched, nil
		})
	}

	ref, err := documentRef(path)
	if err != nil {
		return err
	}
	if ref.Field != "" {
		return fmt.Errorf("%w: updates must target a document", store.ErrInvalidPath)
	}

	return s.write(ctx, func(tx *gorm.DB) ([]string, error) {
		body, err := existingBody(tx, ref)
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if _, err := store.ParsePath(name); err != nil {
				return nil, fmt.Errorf("%w: field %q", store.ErrInvalidPath, name)
			}

			if fields[name] == nil {
				body, err = sjson.DeleteBytes(body, name)
			} else {
				var encoded []byte
				encoded, err = resolveServerValues(fields[name], s.timestamp)
				if err == nil {
					body, err = sjson.SetRawBytes(body, name, encoded)
				}
			}
			if err != nil {
				return nil, err
			}
		}

		return []string{ref.Collection}, save(tx, ref, body)
	})
}

// Remove implements store.Store.
func (s *Store) Remove(ctx context.Context, path string) error {
	ref, err := documentRef(path)
	if err != nil {
		return err
	}

	return s.write(ctx, func(tx *gorm.DB) ([]string, error) {
		return []string{ref.Collection}, remove(tx, ref)
	})
}

// Push implements store.Store.
func (s *Store) Push(_ context.Context, path string) (string, error) {
	if s.isClosed() {
		return "", store.ErrClosed
	}

	ref, err := store.ParsePath(path)
	if err != nil {
		return "", err
	}
	if ref.Key != "" {
		return "", fmt.Errorf("%w: push requires a collection", store.ErrInvalidPath)
	}

	// Version 7 UUIDs are time ordered
	key, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return key.String(), nil
}

// write runs fn in a transaction and notifies the collections it touched
// after the commit.
func (s *Store) write(ctx context.Context, fn func(tx *gorm.DB) ([]string, error)) error {
	if s.isClosed() {
		return store.ErrClosed
	}

	var touched []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		touched, err = fn(tx)
		return err
	})
	if err != nil {
		return err
	}

	s.notify(touched...)
	return nil
}

// set replaces the document or field of ref with value.
func (s *Store) set(tx *gorm.DB, ref store.Ref, value any) error {
	encoded, err := resolveServerValues(value, s.timestamp)
	if err != nil {
		return err
	}

	if ref.Field == "" {
		return save(tx, ref, encoded)
	}

	body, err := existingBody(tx, ref)
	if err != nil {
		return err
	}

	body, err = sjson.SetRawBytes(body, ref.Field, encoded)
	if err != nil {
		return err
	}
	return save(tx, ref, body)
}

func remove(tx *gorm.DB, ref store.Ref) error {
	if ref.Field == "" {
		return tx.Where("collection = ? AND doc_key = ?", ref.Collection, ref.Key).Delete(&document{}).Error
	}

	doc, err := load(tx, ref)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}

	body, err := sjson.DeleteBytes(doc.Body, ref.Field)
	if err != nil {
		return err
	}
	return save(tx, ref, body)
}

func save(tx *gorm.DB, ref store.Ref, body []byte) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&document{
		Collection: ref.Collection,
		Key:        ref.Key,
		Body:       body,
	}).Error
}

func load(tx *gorm.DB, ref store.Ref) (document, error) {
	var doc document
	err := tx.Where("collection = ? AND doc_key = ?", ref.Collection, ref.Key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return doc, fmt.Errorf("%w %s", store.ErrNotFound, ref)
	}
	return doc, err
}

// existingBody returns the body of the document to merge into. Missing
// documents and documents that are no JSON object start out empty.
func existingBody(tx *gorm.DB, ref store.Ref) ([]byte, error) {
	doc, err := load(tx, ref)
	if errors.Is(err, store.ErrNotFound) {
		return []byte(`{}`), nil
	} else if err != nil {
		return nil, err
	}

	if !gjson.ParseBytes(doc.Body).IsObject() {
		return []byte(`{}`), nil
	}
	return []byte(doc.Body), nil
}

// documentRef parses a path that must address a document or a field.
func documentRef(path string) (store.Ref, error) {
	ref, err := store.ParsePath(path)
	if err != nil {
		return ref, err
	}
	if ref.Key == "" {
		return ref, fmt.Errorf("%w: %s is a collection", store.ErrInvalidPath, path)
	}
	return ref, nil
}
