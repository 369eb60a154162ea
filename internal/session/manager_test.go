package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"eduvault/internal/domain"
	"eduvault/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.MemoryStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	st := store.NewSeededStore()
	slot := NewRedisSlot(mr.Addr(), "", "", 0)
	return NewManager(st, slot), st, mr
}

func TestLoginSuccess(t *testing.T) {
	m, _, mr := newTestManager(t)
	id, err := m.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id.Role != domain.RoleAdmin {
		t.Fatalf("role = %q, want admin", id.Role)
	}
	if m.State() != StateAuthenticated {
		t.Fatalf("state = %q, want authenticated", m.State())
	}

	stored, err := mr.Get(DefaultKey)
	if err != nil {
		t.Fatalf("read slot: %v", err)
	}
	if strings.Contains(stored, "admin123") || strings.Contains(stored, "password") {
		t.Fatalf("persisted session leaks the password: %s", stored)
	}
	if !strings.Contains(stored, `"username":"admin"`) {
		t.Fatalf("persisted session missing identity: %s", stored)
	}
}

func TestLoginByEmailAndStudentID(t *testing.T) {
	m, _, _ := newTestManager(t)
	for _, identifier := range []string{"student1@example.com", "20230001"} {
		id, err := m.Login(identifier, "student123")
		if err != nil {
			t.Fatalf("login %q: %v", identifier, err)
		}
		if id.ID != 4 {
			t.Fatalf("login %q = user %d, want 4", identifier, id.ID)
		}
	}
}

func TestLoginFailure(t *testing.T) {
	m, _, mr := newTestManager(t)
	if _, err := m.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := m.Login("ghost", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown identifier err = %v, want ErrInvalidCredentials", err)
	}
	if m.State() != StateUnauthenticated {
		t.Fatalf("state = %q, want unauthenticated", m.State())
	}
	if mr.Exists(DefaultKey) {
		t.Fatalf("failed login wrote the session slot")
	}
}

func TestRegister(t *testing.T) {
	m, st, _ := newTestManager(t)
	id, err := m.Register(domain.NewStudent("student3", "pw12345", "student3@example.com", "刘同学", "物理系", "20230003"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id.ID != 6 {
		t.Fatalf("new user ID = %d, want previous length + 1 = 6", id.ID)
	}
	if m.State() != StateAuthenticated {
		t.Fatalf("register did not behave as a login")
	}
	saved, ok := st.GetUser(6)
	if !ok {
		t.Fatalf("registered user missing from store")
	}
	if saved.Status != domain.StatusActive {
		t.Fatalf("status = %q, want active", saved.Status)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	m, st, _ := newTestManager(t)
	tests := []domain.User{
		domain.NewStudent("student1", "pw", "fresh@example.com", "X", "d", "20230009"),
		domain.NewStudent("fresh", "pw", "student1@example.com", "X", "d", "20230009"),
	}
	for _, u := range tests {
		if _, err := m.Register(u); !errors.Is(err, ErrUserExists) {
			t.Fatalf("duplicate register err = %v, want ErrUserExists", err)
		}
	}
	if st.UserCount() != 5 {
		t.Fatalf("user count = %d, want 5 after rejected registrations", st.UserCount())
	}
	if m.State() != StateUnauthenticated {
		t.Fatalf("failed register authenticated the manager")
	}
}

func TestLogoutClearsSlot(t *testing.T) {
	m, _, mr := newTestManager(t)
	if _, err := m.Login("admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := m.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if m.State() != StateUnauthenticated {
		t.Fatalf("state = %q after logout", m.State())
	}
	if _, ok := m.Current(); ok {
		t.Fatalf("identity survived logout")
	}
	if mr.Exists(DefaultKey) {
		t.Fatalf("slot survived logout")
	}
}

func TestRecoverPassword(t *testing.T) {
	m, st, _ := newTestManager(t)
	if err := m.RecoverPassword("student1@example.com"); err != nil {
		t.Fatalf("recover: %v", err)
	}
	// No password is actually changed.
	u, _ := st.GetUser(4)
	if u.Password != "student123" {
		t.Fatalf("recover mutated the password to %q", u.Password)
	}
	if err := m.RecoverPassword("nobody@example.com"); !errors.Is(err, ErrEmailNotRegistered) {
		t.Fatalf("unknown email err = %v, want ErrEmailNotRegistered", err)
	}
}

func TestUpdateUserInfo(t *testing.T) {
	m, st, _ := newTestManager(t)
	dept := "人工智能系"
	if _, err := m.UpdateUserInfo(ProfilePatch{Department: &dept}); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("unauthenticated update err = %v, want ErrNotAuthenticated", err)
	}

	if _, err := m.Login("student1", "student123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	id, err := m.UpdateUserInfo(ProfilePatch{Department: &dept})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if id.Department != dept {
		t.Fatalf("session department = %q", id.Department)
	}
	u, _ := st.GetUser(4)
	if u.Department != dept {
		t.Fatalf("store department = %q", u.Department)
	}
}

func TestUpdateUserInfoCannotTouchCredentialsOrRole(t *testing.T) {
	m, st, _ := newTestManager(t)
	if _, err := m.Login("student1", "student123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	name := "王同学（改名）"
	id, err := m.UpdateUserInfo(ProfilePatch{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if id.Role != domain.RoleStudent {
		t.Fatalf("session role = %q, want student", id.Role)
	}

	// The profile path must leave password, role, and status exactly as the
	// account had them; only admin user management may change those.
	u, _ := st.GetUser(4)
	if u.Password != "student123" {
		t.Fatalf("profile update changed the password to %q", u.Password)
	}
	if u.Role != domain.RoleStudent {
		t.Fatalf("profile update changed the role to %q", u.Role)
	}
	if u.Status != domain.StatusActive {
		t.Fatalf("profile update changed the status to %q", u.Status)
	}
	if u.Name != name {
		t.Fatalf("profile update dropped the patched name: %q", u.Name)
	}
}

func TestRestoreValidSession(t *testing.T) {
	mr := miniredis.RunT(t)
	st := store.NewSeededStore()
	slot := NewRedisSlot(mr.Addr(), "", "", 0)

	first := NewManager(st, slot)
	if _, err := first.Login("teacher1", "teacher123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	second := NewManager(st, slot)
	id, ok, err := second.Restore()
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !ok {
		t.Fatalf("restore found no session")
	}
	if id.ID != 2 || id.Username != "teacher1" {
		t.Fatalf("restored identity = %+v", id)
	}
	if second.State() != StateAuthenticated {
		t.Fatalf("state = %q after restore", second.State())
	}
}

func TestRestoreRejectsStaleSession(t *testing.T) {
	mr := miniredis.RunT(t)
	st := store.NewSeededStore()
	slot := NewRedisSlot(mr.Addr(), "", "", 0)

	first := NewManager(st, slot)
	if _, err := first.Login("teacher1", "teacher123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	// The account disappears between sessions.
	if !st.DeleteUser(2) {
		t.Fatalf("delete user 2 failed")
	}

	second := NewManager(st, slot)
	_, ok, err := second.Restore()
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if ok {
		t.Fatalf("restore accepted a deleted account")
	}
	if second.State() != StateUnauthenticated {
		t.Fatalf("state = %q, want unauthenticated", second.State())
	}
	if mr.Exists(DefaultKey) {
		t.Fatalf("stale slot was not cleared")
	}
}

func TestRestoreRejectsInactiveAccount(t *testing.T) {
	mr := miniredis.RunT(t)
	st := store.NewSeededStore()
	slot := NewRedisSlot(mr.Addr(), "", "", 0)

	first := NewManager(st, slot)
	if _, err := first.Login("teacher1", "teacher123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	status := domain.StatusInactive
	if _, ok := st.UpdateUser(2, store.UserPatch{Status: &status}); !ok {
		t.Fatalf("deactivate user 2 failed")
	}

	second := NewManager(st, slot)
	if _, ok, err := second.Restore(); err != nil || ok {
		t.Fatalf("restore = ok=%v err=%v, want rejection of inactive account", ok, err)
	}
}

func TestRestoreEmptySlot(t *testing.T) {
	m, _, _ := newTestManager(t)
	if _, ok, err := m.Restore(); err != nil || ok {
		t.Fatalf("restore of empty slot = ok=%v err=%v", ok, err)
	}
	if m.State() != StateUnauthenticated {
		t.Fatalf("state = %q", m.State())
	}
}
