// Package app implements the data-access layer over the record store: resource
// and announcement operations, admin user management, and statistics views.
package app

import (
	"math/rand"
	"time"

	"eduvault/internal/store"
)

// App wires the record store to the data-access operations. Construct one per
// process or per test; it holds no state of its own.
type App struct {
	store store.Store

	now  func() time.Time
	intn func(n int) int
}

// New constructs the application service over the given store.
func New(st store.Store) *App {
	return &App{
		store: st,
		now:   time.Now,
		intn:  rand.Intn,
	}
}

// Store exposes the underlying record store.
func (a *App) Store() store.Store {
	return a.store
}
