// Package workspace owns the data behind the dashboard views.
//
// It follows the session: subscriptions for a view are only started while
// the signed in principal has access to that view's module and are detached
// as soon as access is lost, the principal changes or the workspace is
// closed.
package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/nremp/dashboard/pkg/fleet"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/permissions"
	"github.com/nremp/dashboard/pkg/realtime"
	"github.com/nremp/dashboard/pkg/session"
	"github.com/nremp/dashboard/pkg/stats"
	"github.com/nremp/dashboard/pkg/store"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Vehicles is the name Loaded uses for the fleet inventory.
const Vehicles = "vehicles"

// Session is the authorization context the workspace follows.
type Session interface {
	OnChange(fn session.ProfileFunc) (unsubscribe func())
}

// Workspace holds the latest snapshots of notes, users and vehicles.
type Workspace struct {
	store   store.Store
	fleet   fleet.Service
	session Session

	// lifecycleMu serializes starting and stopping subscriptions
	lifecycleMu sync.Mutex
	ctx         context.Context
	detach      func()
	notesSub    realtime.Subscription
	usersSub    realtime.Subscription
	fleetCancel context.CancelFunc
	fleetDone   chan struct{}

	mu       sync.RWMutex
	profile  *permissions.Profile
	notes    []models.Note
	users    []models.UserAccount
	vehicles []models.Vehicle
	fleetErr error
	loaded   map[string]bool
}

// New returns a workspace. It does nothing until Start is called.
func New(st store.Store, fleetService fleet.Service, s Session) *Workspace {
	return &Workspace{
		store:   st,
		fleet:   fleetService,
		session: s,
		loaded:  make(map[string]bool),
	}
}

// Start follows the session until Close is called.
func (w *Workspace) Start(ctx context.Context) {
	w.lifecycleMu.Lock()
	w.ctx = ctx
	w.lifecycleMu.Unlock()

	detach := w.session.OnChange(w.apply)

	w.lifecycleMu.Lock()
	w.detach = detach
	w.lifecycleMu.Unlock()
}

// Close detaches all subscriptions and waits for a running fleet fetch to
// stop. No data is updated after Close returned.
func (w *Workspace) Close() {
	w.lifecycleMu.Lock()
	detach := w.detach
	w.detach = nil
	w.lifecycleMu.Unlock()

	if detach != nil {
		detach()
	}

	w.lifecycleMu.Lock()
	defer w.lifecycleMu.Unlock()
	w.stopAll()
	w.ctx = nil
}

// apply reconciles the running subscriptions with the profile.
func (w *Workspace) apply(profile *permissions.Profile) {
	w.lifecycleMu.Lock()
	defer w.lifecycleMu.Unlock()

	// Closed or not started
	if w.ctx == nil {
		return
	}

	w.mu.RLock()
	previous := w.profile
	w.mu.RUnlock()

	if profile == nil || previous == nil || previous.UID != profile.UID {
		w.stopAll()
	}

	w.mu.Lock()
	w.profile = profile
	w.mu.Unlock()

	if profile == nil {
		return
	}

	// Notes back the home summary, which every principal can see
	w.startNotes()

	if permissions.HasModuleAccess(profile, permissions.ModuleUsers) {
		w.startUsers()
	} else {
		w.stopUsers()
	}

	w.startFleet()
}

func (w *Workspace) startNotes() {
	if w.notesSub != nil {
		return
	}

	sub, err := realtime.Notes(w.ctx, w.store, func(notes []models.Note) {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.notes = notes
		w.loaded[store.CollectionNotes] = true
	})
	if err != nil {
		log.Error().Err(err).Str("path", store.CollectionNotes).Msg("Workspace")
		return
	}
	w.notesSub = sub
}

func (w *Workspace) stopNotes() {
	if w.notesSub == nil {
		return
	}
	w.notesSub.Close()
	w.notesSub = nil

	w.mu.Lock()
	defer w.mu.Unlock()
	w.notes = nil
	delete(w.loaded, store.CollectionNotes)
}

func (w *Workspace) startUsers() {
	if w.usersSub != nil {
		return
	}

	sub, err := realtime.Users(w.ctx, w.store, func(users []models.UserAccount) {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.users = users
		w.loaded[store.CollectionUsers] = true
	})
	if err != nil {
		log.Error().Err(err).Str("path", store.CollectionUsers).Msg("Workspace")
		return
	}
	w.usersSub = sub
}

func (w *Workspace) stopUsers() {
	if w.usersSub == nil {
		return
	}
	w.usersSub.Close()
	w.usersSub = nil

	w.mu.Lock()
	defer w.mu.Unlock()
	w.users = nil
	delete(w.loaded, store.CollectionUsers)
}

// startFleet fetches the vehicles once per principal.
func (w *Workspace) startFleet() {
	if w.fleetCancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(w.ctx)
	done := make(chan struct{})
	w.fleetCancel = cancel
	w.fleetDone = done

	go func() {
		defer close(done)

		vehicles, err := w.fleet.ListVehicles(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("Fleet")
			vehicles = nil
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		w.vehicles = vehicles
		w.fleetErr = err
		w.loaded[Vehicles] = true
	}()
}

func (w *Workspace) stopFleet() {
	if w.fleetCancel == nil {
		return
	}
	w.fleetCancel()
	<-w.fleetDone
	w.fleetCancel = nil
	w.fleetDone = nil

	w.mu.Lock()
	defer w.mu.Unlock()
	w.vehicles = nil
	w.fleetErr = nil
	delete(w.loaded, Vehicles)
}

func (w *Workspace) stopAll() {
	w.stopNotes()
	w.stopUsers()
	w.stopFleet()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.profile = nil
}

// Profile returns the profile the workspace currently serves.
func (w *Workspace) Profile() *permissions.Profile {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.profile
}

// view returns the read-locked state if the profile has access to the
// module. An empty module only requires a signed in principal.
func (w *Workspace) view(m permissions.Module) (func(), error) {
	w.mu.RLock()
	if w.profile == nil {
		w.mu.RUnlock()
		return nil, ErrUnauthenticated
	}
	if m != "" && !permissions.HasModuleAccess(w.profile, m) {
		w.mu.RUnlock()
		return nil, ErrForbidden
	}
	return w.mu.RUnlock, nil
}

// Loaded reports whether the first snapshot of the collection, or the
// fleet inventory for Vehicles, has arrived.
func (w *Workspace) Loaded(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.loaded[name]
}

// Notes returns the notes, newest first.
func (w *Workspace) Notes() ([]models.Note, error) {
	unlock, err := w.view(permissions.ModuleManagement)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return slices.Clone(w.notes), nil
}

// Users returns the user accounts.
func (w *Workspace) Users() ([]models.UserAccount, error) {
	unlock, err := w.view(permissions.ModuleUsers)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return slices.Clone(w.users), nil
}

// Dashboard computes the dashboard statistics.
func (w *Workspace) Dashboard(now time.Time) (stats.Dashboard, error) {
	unlock, err := w.view(permissions.ModuleDashboard)
	if err != nil {
		return stats.Dashboard{}, err
	}
	defer unlock()
	return stats.Compute(w.notes, now), nil
}

// FleetStatus is the fleet part of the home summary.
type FleetStatus struct {
	Total        int                          `json:"total" example:"5"`
	StatusCounts map[models.VehicleStatus]int `json:"statusCounts"`
}

// Home is the summary shown to every signed in principal.
type Home struct {
	Financial stats.Financial `json:"financial"`
	Fleet     FleetStatus     `json:"fleet"`
}

// Home computes the home summary.
func (w *Workspace) Home(now time.Time) (Home, error) {
	unlock, err := w.view("")
	if err != nil {
		return Home{}, err
	}
	defer unlock()

	fleetSummary := stats.Fleet(nil, w.vehicles)
	return Home{
		Financial: stats.Summarize(w.notes, now),
		Fleet: FleetStatus{
			Total:        fleetSummary.Total,
			StatusCounts: fleetSummary.StatusCounts,
		},
	}, nil
}

// Fleet computes the fleet view.
func (w *Workspace) Fleet() (stats.FleetSummary, error) {
	unlock, err := w.view(permissions.ModuleFleet)
	if err != nil {
		return stats.FleetSummary{}, err
	}
	defer unlock()
	return stats.Fleet(w.notes, w.vehicles), nil
}

// FleetError returns the error of the last fleet fetch. The vehicle list
// is empty while it is set.
func (w *Workspace) FleetError() error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.fleetErr
}
