package store

import (
	"time"

	"eduvault/internal/domain"
)

// Store defines the record collections backing the dashboard: users, resources,
// announcements, and the download audit log. Implementations own identifier
// assignment; callers never pick IDs.
type Store interface {
	// users
	ListUsers() []domain.User
	GetUser(id int) (domain.User, bool)
	FindUserByLogin(identifier string) (domain.User, bool)
	FindUserByEmail(email string) (domain.User, bool)
	HasUsername(username string) bool
	HasEmail(email string) bool
	AddUser(u domain.User) (domain.User, error)
	UpdateUser(id int, patch UserPatch) (domain.User, bool)
	DeleteUser(id int) bool
	UserCount() int

	// resources
	ListResources() []domain.Resource
	GetResource(id int) (domain.Resource, bool)
	AddResource(r domain.Resource) domain.Resource
	UpdateResource(id int, patch ResourcePatch) (domain.Resource, bool)
	DeleteResource(id int) bool
	RateResource(id int, rating float64) (domain.Resource, bool)
	AddComment(resourceID, userID int, content string, at time.Time) (domain.Comment, bool)
	AddReply(resourceID, commentID, userID int, content string, at time.Time) (domain.Reply, bool)

	// downloads; AddDownload appends the audit record and bumps the resource
	// counter as one atomic update.
	AddDownload(resourceID, userID int, ip string, at time.Time) (domain.Download, bool)
	ListDownloads() []domain.Download
	DownloadsByUser(userID int) []domain.Download

	// announcements
	ListAnnouncements() []domain.Announcement
	GetAnnouncement(id int) (domain.Announcement, bool)
	AddAnnouncement(a domain.Announcement) domain.Announcement
	UpdateAnnouncement(id int, patch AnnouncementPatch) (domain.Announcement, bool)
	DeactivateAnnouncement(id int) bool
	ViewAnnouncement(id int) (domain.Announcement, bool)
}

// UserPatch is a partial user update; nil fields are left untouched. The
// identifier is never patchable. Password, role, status, and last-login fields
// serve admin user management; the session profile path accepts only the
// narrower session.ProfilePatch.
type UserPatch struct {
	Username   *string
	Password   *string
	Email      *string
	Name       *string
	Department *string
	StudentID  *string
	Status     *domain.UserStatus
	Avatar     *string
	LastLogin  *time.Time
	Role       *domain.Role
}

// ResourcePatch is a partial resource update. The uploaded file is immutable,
// so URL, format, and size have no patch fields.
type ResourcePatch struct {
	Title       *string
	Description *string
	Subject     *string
	Type        *domain.ResourceType
	Tags        *[]string
}

type AnnouncementPatch struct {
	Title      *string
	Content    *string
	Importance *domain.Importance
}
