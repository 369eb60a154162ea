package app

// Admin user management. Every operation here is gated on the acting user's
// role; non-admins get ErrForbidden.

import (
	"eduvault/internal/domain"
	"eduvault/internal/store"
)

// Users returns every account.
func (a *App) Users(actor domain.Identity) ([]domain.User, error) {
	if !actor.Role.CanManageUsers() {
		return nil, ErrForbidden
	}
	return a.store.ListUsers(), nil
}

// OtherUsers returns every account except the acting admin's own, which is the
// shape the management table renders.
func (a *App) OtherUsers(actor domain.Identity) ([]domain.User, error) {
	if !actor.Role.CanManageUsers() {
		return nil, ErrForbidden
	}
	var out []domain.User
	for _, u := range a.store.ListUsers() {
		if u.ID != actor.ID {
			out = append(out, u)
		}
	}
	return out, nil
}

// CreateUser inserts an account with a server-assigned identifier.
func (a *App) CreateUser(actor domain.Identity, u domain.User) (domain.User, error) {
	if !actor.Role.CanManageUsers() {
		return domain.User{}, ErrForbidden
	}
	if err := u.Validate(); err != nil {
		return domain.User{}, err
	}
	if u.Status == "" {
		u.Status = domain.StatusActive
	}
	return a.store.AddUser(u)
}

// UpdateUser merges a patch into an existing account.
func (a *App) UpdateUser(actor domain.Identity, id int, patch store.UserPatch) (domain.User, error) {
	if !actor.Role.CanManageUsers() {
		return domain.User{}, ErrForbidden
	}
	u, ok := a.store.UpdateUser(id, patch)
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return u, nil
}

// DeleteUser removes an account from the collection. Admins cannot delete
// their own account.
func (a *App) DeleteUser(actor domain.Identity, id int) error {
	if !actor.Role.CanManageUsers() {
		return ErrForbidden
	}
	if id == actor.ID {
		return ErrForbidden
	}
	if !a.store.DeleteUser(id) {
		return ErrNotFound
	}
	return nil
}
