package store

import (
	"errors"
	"sync"
	"time"

	"eduvault/internal/domain"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// MemoryStore keeps every collection in ordered in-process slices guarded by a
// single lock. It is the only Store implementation; the dashboard holds no
// durable state beyond the session slot.
type MemoryStore struct {
	mu            sync.RWMutex
	users         []domain.User
	resources     []domain.Resource
	announcements []domain.Announcement
	downloads     []domain.Download

	// store-wide monotonic counters; comment and reply IDs are unique across
	// all resources, not per parent.
	nextCommentID int
	nextReplyID   int
}

// NewMemoryStore initializes an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextCommentID: 1, nextReplyID: 1}
}

func nextUserID(users []domain.User) int {
	max := 0
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// ListUsers returns users in insertion order.
func (m *MemoryStore) ListUsers() []domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.User, len(m.users))
	copy(out, m.users)
	return out
}

// GetUser returns a user by ID.
func (m *MemoryStore) GetUser(id int) (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// FindUserByLogin matches the identifier against username, email, or student ID.
func (m *MemoryStore) FindUserByLogin(identifier string) (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == identifier || u.Email == identifier ||
			(u.StudentID != "" && u.StudentID == identifier) {
			return u, true
		}
	}
	return domain.User{}, false
}

// FindUserByEmail looks up a user by email.
func (m *MemoryStore) FindUserByEmail(email string) (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

// HasUsername checks if a username is taken.
func (m *MemoryStore) HasUsername(username string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			return true
		}
	}
	return false
}

// HasEmail checks if an email is taken.
func (m *MemoryStore) HasEmail(email string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return true
		}
	}
	return false
}

// AddUser appends a user with the next free ID. Uniqueness of username and
// email is enforced here so admin inserts and registration share one check.
func (m *MemoryStore) AddUser(u domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return domain.User{}, ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return domain.User{}, ErrEmailTaken
		}
	}
	u.ID = nextUserID(m.users)
	m.users = append(m.users, u)
	return u, nil
}

// UpdateUser merges a patch into the matching record.
func (m *MemoryStore) UpdateUser(id int, patch UserPatch) (domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID != id {
			continue
		}
		u := &m.users[i]
		if patch.Username != nil {
			u.Username = *patch.Username
		}
		if patch.Password != nil {
			u.Password = *patch.Password
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Department != nil {
			u.Department = *patch.Department
		}
		if patch.StudentID != nil {
			u.StudentID = *patch.StudentID
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		if patch.Avatar != nil {
			u.Avatar = *patch.Avatar
		}
		if patch.LastLogin != nil {
			u.LastLogin = *patch.LastLogin
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		return *u, true
	}
	return domain.User{}, false
}

// DeleteUser removes a user from the collection.
func (m *MemoryStore) DeleteUser(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return true
		}
	}
	return false
}

// UserCount returns the number of users.
func (m *MemoryStore) UserCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// cloneResource detaches the tag, comment, and reply slices so a returned
// snapshot does not alias the store's backing arrays.
func cloneResource(r domain.Resource) domain.Resource {
	if r.Tags != nil {
		r.Tags = append([]string(nil), r.Tags...)
	}
	if r.Comments != nil {
		comments := make([]domain.Comment, len(r.Comments))
		copy(comments, r.Comments)
		for i := range comments {
			if comments[i].Replies != nil {
				comments[i].Replies = append([]domain.Reply(nil), comments[i].Replies...)
			}
		}
		r.Comments = comments
	}
	return r
}

// ListResources returns resources in insertion order.
func (m *MemoryStore) ListResources() []domain.Resource {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Resource, len(m.resources))
	for i, r := range m.resources {
		out[i] = cloneResource(r)
	}
	return out
}

// GetResource returns a resource by ID.
func (m *MemoryStore) GetResource(id int) (domain.Resource, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.resources {
		if r.ID == id {
			return cloneResource(r), true
		}
	}
	return domain.Resource{}, false
}

// AddResource appends a resource with the next free ID and zeroed counters.
func (m *MemoryStore) AddResource(r domain.Resource) domain.Resource {
	m.mu.Lock()
	defer m.mu.Unlock()
	max := 0
	for _, existing := range m.resources {
		if existing.ID > max {
			max = existing.ID
		}
	}
	r.ID = max + 1
	r.Views = 0
	r.Downloads = 0
	r.Rating = 0
	r.Comments = nil
	m.resources = append(m.resources, r)
	return r
}

// UpdateResource merges a metadata patch; file fields are not reachable here.
func (m *MemoryStore) UpdateResource(id int, patch ResourcePatch) (domain.Resource, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.resources {
		if m.resources[i].ID != id {
			continue
		}
		r := &m.resources[i]
		if patch.Title != nil {
			r.Title = *patch.Title
		}
		if patch.Description != nil {
			r.Description = *patch.Description
		}
		if patch.Subject != nil {
			r.Subject = *patch.Subject
		}
		if patch.Type != nil {
			r.Type = *patch.Type
		}
		if patch.Tags != nil {
			r.Tags = *patch.Tags
		}
		return cloneResource(*r), true
	}
	return domain.Resource{}, false
}

// DeleteResource removes a resource from the collection.
func (m *MemoryStore) DeleteResource(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.resources {
		if m.resources[i].ID == id {
			m.resources = append(m.resources[:i], m.resources[i+1:]...)
			return true
		}
	}
	return false
}

// RateResource folds a rating into the running average. The divisor is the
// download count, matching the source system's observable behavior.
func (m *MemoryStore) RateResource(id int, rating float64) (domain.Resource, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.resources {
		if m.resources[i].ID != id {
			continue
		}
		r := &m.resources[i]
		r.Rating = (r.Rating*float64(r.Downloads) + rating) / float64(r.Downloads+1)
		return cloneResource(*r), true
	}
	return domain.Resource{}, false
}

// AddComment appends a comment with a store-wide unique ID.
func (m *MemoryStore) AddComment(resourceID, userID int, content string, at time.Time) (domain.Comment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.resources {
		if m.resources[i].ID != resourceID {
			continue
		}
		c := domain.Comment{
			ID:      m.nextCommentID,
			UserID:  userID,
			Content: content,
			Time:    at,
		}
		m.nextCommentID++
		m.resources[i].Comments = append(m.resources[i].Comments, c)
		return c, true
	}
	return domain.Comment{}, false
}

// AddReply appends a reply under the matching comment.
func (m *MemoryStore) AddReply(resourceID, commentID, userID int, content string, at time.Time) (domain.Reply, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.resources {
		if m.resources[i].ID != resourceID {
			continue
		}
		for j := range m.resources[i].Comments {
			if m.resources[i].Comments[j].ID != commentID {
				continue
			}
			r := domain.Reply{
				ID:      m.nextReplyID,
				UserID:  userID,
				Content: content,
				Time:    at,
			}
			m.nextReplyID++
			m.resources[i].Comments[j].Replies = append(m.resources[i].Comments[j].Replies, r)
			return r, true
		}
		return domain.Reply{}, false
	}
	return domain.Reply{}, false
}

// AddDownload appends an audit record and increments the resource's download
// counter under one lock acquisition, so the two writes cannot tear.
func (m *MemoryStore) AddDownload(resourceID, userID int, ip string, at time.Time) (domain.Download, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := -1
	for i := range m.resources {
		if m.resources[i].ID == resourceID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Download{}, false
	}
	max := 0
	for _, d := range m.downloads {
		if d.ID > max {
			max = d.ID
		}
	}
	rec := domain.Download{
		ID:           max + 1,
		ResourceID:   resourceID,
		UserID:       userID,
		DownloadTime: at,
		IP:           ip,
	}
	m.downloads = append(m.downloads, rec)
	m.resources[idx].Downloads++
	return rec, true
}

// ListDownloads returns the full audit log in append order.
func (m *MemoryStore) ListDownloads() []domain.Download {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Download, len(m.downloads))
	copy(out, m.downloads)
	return out
}

// DownloadsByUser filters the audit log by downloading user.
func (m *MemoryStore) DownloadsByUser(userID int) []domain.Download {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Download
	for _, d := range m.downloads {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out
}

// ListAnnouncements returns announcements in insertion order, inactive included.
func (m *MemoryStore) ListAnnouncements() []domain.Announcement {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Announcement, len(m.announcements))
	copy(out, m.announcements)
	return out
}

// GetAnnouncement returns an announcement by ID.
func (m *MemoryStore) GetAnnouncement(id int) (domain.Announcement, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.announcements {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Announcement{}, false
}

// AddAnnouncement appends an announcement with the next free ID, zero views,
// and the active flag set.
func (m *MemoryStore) AddAnnouncement(a domain.Announcement) domain.Announcement {
	m.mu.Lock()
	defer m.mu.Unlock()
	max := 0
	for _, existing := range m.announcements {
		if existing.ID > max {
			max = existing.ID
		}
	}
	a.ID = max + 1
	a.Views = 0
	a.IsActive = true
	m.announcements = append(m.announcements, a)
	return a
}

// UpdateAnnouncement merges a patch into the matching record.
func (m *MemoryStore) UpdateAnnouncement(id int, patch AnnouncementPatch) (domain.Announcement, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.announcements {
		if m.announcements[i].ID != id {
			continue
		}
		a := &m.announcements[i]
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Content != nil {
			a.Content = *patch.Content
		}
		if patch.Importance != nil {
			a.Importance = *patch.Importance
		}
		return *a, true
	}
	return domain.Announcement{}, false
}

// DeactivateAnnouncement clears the active flag; the record is retained.
func (m *MemoryStore) DeactivateAnnouncement(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.announcements {
		if m.announcements[i].ID == id {
			m.announcements[i].IsActive = false
			return true
		}
	}
	return false
}

// ViewAnnouncement increments the view counter. Every call counts a view,
// repeat views by the same reader included.
func (m *MemoryStore) ViewAnnouncement(id int) (domain.Announcement, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.announcements {
		if m.announcements[i].ID == id {
			m.announcements[i].Views++
			return m.announcements[i], true
		}
	}
	return domain.Announcement{}, false
}
