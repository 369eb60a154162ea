// Package session holds the authenticated identity for the running process and
// mirrors it into a durable slot so it survives a restart.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"eduvault/internal/domain"
	"eduvault/internal/store"
)

var (
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password; callers are not told which.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserExists indicates the username or email is already registered.
	ErrUserExists = errors.New("username or email already exists")
	// ErrEmailNotRegistered indicates no account carries the given email.
	ErrEmailNotRegistered = errors.New("email is not registered")
	// ErrNotAuthenticated indicates an operation that requires a signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
)

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateLoading         State = "loading"
	StateAuthenticated   State = "authenticated"
)

// Manager holds at most one authenticated identity at a time and keeps the
// durable slot in sync with it.
type Manager struct {
	mu    sync.Mutex
	store store.Store
	slot  Slot

	state   State
	current domain.Identity

	now func() time.Time
}

// NewManager starts unauthenticated; call Restore to pick up a stored session.
func NewManager(st store.Store, slot Slot) *Manager {
	return &Manager{
		store: st,
		slot:  slot,
		state: StateUnauthenticated,
		now:   time.Now,
	}
}

// State reports the manager's current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current returns the authenticated identity, if any.
func (m *Manager) Current() (domain.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		return domain.Identity{}, false
	}
	return m.current, true
}

// Login matches the identifier against username, email, or student ID and
// compares the stored password. On success the password-free identity is held
// in memory and written to the slot.
func (m *Manager) Login(identifier, password string) (domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.store.FindUserByLogin(identifier)
	if !ok || user.Password != password {
		return domain.Identity{}, ErrInvalidCredentials
	}
	return m.authenticate(user)
}

// Register appends a new account and behaves as an implicit successful login.
func (m *Manager) Register(u domain.User) (domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := u.Validate(); err != nil {
		return domain.Identity{}, err
	}
	if m.store.HasUsername(u.Username) || m.store.HasEmail(u.Email) {
		return domain.Identity{}, ErrUserExists
	}
	now := m.now()
	u.Status = domain.StatusActive
	u.CreatedAt = now
	u.LastLogin = now
	saved, err := m.store.AddUser(u)
	if err != nil {
		return domain.Identity{}, ErrUserExists
	}
	return m.authenticate(saved)
}

// Logout drops the identity and clears the slot.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateUnauthenticated
	m.current = domain.Identity{}
	return m.slot.Clear()
}

// RecoverPassword verifies the email belongs to an account. No password is
// changed; the reset mail is a simulated side effect.
func (m *Manager) RecoverPassword(email string) error {
	if _, ok := m.store.FindUserByEmail(email); !ok {
		return ErrEmailNotRegistered
	}
	return nil
}

// ProfilePatch is the subset of account fields a signed-in user may change
// about themselves. Identifier, password, role, and status are not reachable
// from the session path; those stay with admin user management.
type ProfilePatch struct {
	Username   *string
	Email      *string
	Name       *string
	Department *string
	StudentID  *string
	Avatar     *string
}

// UpdateUserInfo merges the patch into both the session identity and the
// underlying user record.
func (m *Manager) UpdateUserInfo(patch ProfilePatch) (domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		return domain.Identity{}, ErrNotAuthenticated
	}
	user, ok := m.store.UpdateUser(m.current.ID, store.UserPatch{
		Username:   patch.Username,
		Email:      patch.Email,
		Name:       patch.Name,
		Department: patch.Department,
		StudentID:  patch.StudentID,
		Avatar:     patch.Avatar,
	})
	if !ok {
		return domain.Identity{}, ErrNotAuthenticated
	}
	return m.authenticate(user)
}

// Restore loads the slot and validates the stored identity against the user
// collection: the account must still exist, keep its username, and be active.
// Anything stale clears the slot and leaves the manager unauthenticated.
func (m *Manager) Restore() (domain.Identity, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateLoading
	stored, ok, err := m.slot.Load()
	if err != nil {
		m.state = StateUnauthenticated
		return domain.Identity{}, false, err
	}
	if !ok {
		m.state = StateUnauthenticated
		return domain.Identity{}, false, nil
	}
	user, found := m.store.GetUser(stored.ID)
	if !found || user.Username != stored.Username || user.Status != domain.StatusActive {
		m.state = StateUnauthenticated
		if err := m.slot.Clear(); err != nil {
			return domain.Identity{}, false, err
		}
		return domain.Identity{}, false, nil
	}
	// Re-derive the identity from the live record rather than trusting the
	// stored copy.
	id, err := m.authenticate(user)
	if err != nil {
		return domain.Identity{}, false, err
	}
	return id, true, nil
}

// authenticate installs the user as the current identity and persists it.
// Callers hold the lock.
func (m *Manager) authenticate(user domain.User) (domain.Identity, error) {
	id := domain.IdentityOf(user)
	if err := m.slot.Save(id); err != nil {
		m.state = StateUnauthenticated
		m.current = domain.Identity{}
		return domain.Identity{}, fmt.Errorf("persist session: %w", err)
	}
	m.state = StateAuthenticated
	m.current = id
	return id, nil
}
