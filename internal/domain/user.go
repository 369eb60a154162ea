package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrUsernameRequired  = errors.New("username is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrEmailRequired     = errors.New("email is required")
	ErrUnknownRole       = errors.New("unknown role")
	ErrStudentIDRequired = errors.New("student accounts require a student id")
	ErrStudentIDOnly     = errors.New("student id is only valid on student accounts")
)

// NewAdmin builds an active admin account. The caller assigns the ID on insert.
func NewAdmin(username, password, email, name, department string) User {
	return newUser(RoleAdmin, username, password, email, name, department, "")
}

// NewTeacher builds an active teacher account.
func NewTeacher(username, password, email, name, department string) User {
	return newUser(RoleTeacher, username, password, email, name, department, "")
}

// NewStudent builds an active student account; students carry a student ID.
func NewStudent(username, password, email, name, department, studentID string) User {
	return newUser(RoleStudent, username, password, email, name, department, studentID)
}

func newUser(role Role, username, password, email, name, department, studentID string) User {
	now := time.Now()
	return User{
		Username:   strings.TrimSpace(username),
		Password:   password,
		Email:      strings.TrimSpace(email),
		Role:       role,
		Name:       name,
		Department: department,
		StudentID:  studentID,
		Status:     StatusActive,
		CreatedAt:  now,
		LastLogin:  now,
	}
}

// Validate checks the role-variant constraint: a student ID must be present on
// student accounts and absent everywhere else.
func (u User) Validate() error {
	if u.Username == "" {
		return ErrUsernameRequired
	}
	if u.Password == "" {
		return ErrPasswordRequired
	}
	if u.Email == "" {
		return ErrEmailRequired
	}
	switch u.Role {
	case RoleStudent:
		if u.StudentID == "" {
			return ErrStudentIDRequired
		}
	case RoleAdmin, RoleTeacher:
		if u.StudentID != "" {
			return ErrStudentIDOnly
		}
	default:
		return ErrUnknownRole
	}
	return nil
}

// Identity is the password-free projection of a User that the session layer
// serializes to durable storage.
type Identity struct {
	ID         int        `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Name       string     `json:"name"`
	Department string     `json:"department"`
	StudentID  string     `json:"studentId,omitempty"`
	Status     UserStatus `json:"status"`
	Avatar     string     `json:"avatar,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastLogin  time.Time  `json:"lastLogin"`
}

// IdentityOf strips the password from a user record.
func IdentityOf(u User) Identity {
	return Identity{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		Name:       u.Name,
		Department: u.Department,
		StudentID:  u.StudentID,
		Status:     u.Status,
		Avatar:     u.Avatar,
		CreatedAt:  u.CreatedAt,
		LastLogin:  u.LastLogin,
	}
}
