package app

import (
	"fmt"
	"sort"

	"eduvault/internal/domain"
	"eduvault/internal/store"
)

// unknownPublisher is rendered when an announcement's publisher no longer
// resolves to a user record.
const unknownPublisher = "未知"

// Announcement returns an announcement by ID, inactive ones included.
func (a *App) Announcement(id int) (domain.Announcement, bool) {
	return a.store.GetAnnouncement(id)
}

// Announcements returns every announcement, inactive ones included.
func (a *App) Announcements() []domain.Announcement {
	return a.store.ListAnnouncements()
}

// ActiveAnnouncements returns announcements whose active flag is still set.
func (a *App) ActiveAnnouncements() []domain.Announcement {
	var out []domain.Announcement
	for _, ann := range a.store.ListAnnouncements() {
		if ann.IsActive {
			out = append(out, ann)
		}
	}
	return out
}

// AnnouncementsByPublisher filters by publishing user, inactive ones included.
func (a *App) AnnouncementsByPublisher(publisherID int) []domain.Announcement {
	var out []domain.Announcement
	for _, ann := range a.store.ListAnnouncements() {
		if ann.Publisher == publisherID {
			out = append(out, ann)
		}
	}
	return out
}

// AnnouncementsByImportance returns active announcements with the given
// importance.
func (a *App) AnnouncementsByImportance(imp domain.Importance) []domain.Announcement {
	var out []domain.Announcement
	for _, ann := range a.store.ListAnnouncements() {
		if ann.IsActive && ann.Importance == imp {
			out = append(out, ann)
		}
	}
	return out
}

// LatestAnnouncements returns up to limit active announcements, newest first.
func (a *App) LatestAnnouncements(limit int) []domain.Announcement {
	active := a.ActiveAnnouncements()
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].PublishTime.After(active[j].PublishTime)
	})
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active
}

// AnnouncementsWithPublisher decorates every announcement with its publisher's
// name and role.
func (a *App) AnnouncementsWithPublisher() []domain.AnnouncementView {
	anns := a.store.ListAnnouncements()
	out := make([]domain.AnnouncementView, 0, len(anns))
	for _, ann := range anns {
		view := domain.AnnouncementView{
			Announcement:  ann,
			PublisherName: unknownPublisher,
			PublisherRole: unknownPublisher,
		}
		if u, ok := a.store.GetUser(ann.Publisher); ok {
			view.PublisherName = u.Name
			view.PublisherRole = string(u.Role)
		}
		out = append(out, view)
	}
	return out
}

// PublishRequest carries the caller-supplied fields of a new announcement.
type PublishRequest struct {
	Title      string
	Content    string
	Importance domain.Importance
}

// PublishAnnouncement appends an announcement published by the acting user.
// Students may not publish.
func (a *App) PublishAnnouncement(actor domain.Identity, req PublishRequest) (domain.Announcement, error) {
	if !actor.Role.CanPublish() {
		return domain.Announcement{}, ErrForbidden
	}
	if req.Title == "" || req.Content == "" {
		return domain.Announcement{}, fmt.Errorf("title and content are required")
	}
	imp := req.Importance
	if imp == "" {
		imp = domain.ImportanceNormal
	}
	ann := domain.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		Publisher:   actor.ID,
		PublishTime: a.now(),
		Importance:  imp,
	}
	return a.store.AddAnnouncement(ann), nil
}

// EditAnnouncement merges a patch. Only the publisher or an admin may edit.
func (a *App) EditAnnouncement(actor domain.Identity, id int, patch store.AnnouncementPatch) (domain.Announcement, error) {
	ann, ok := a.store.GetAnnouncement(id)
	if !ok {
		return domain.Announcement{}, ErrNotFound
	}
	if actor.Role != domain.RoleAdmin && ann.Publisher != actor.ID {
		return domain.Announcement{}, ErrForbidden
	}
	updated, ok := a.store.UpdateAnnouncement(id, patch)
	if !ok {
		return domain.Announcement{}, ErrNotFound
	}
	return updated, nil
}

// DeleteAnnouncement is a soft delete: the record stays in the collection with
// its active flag cleared. Only the publisher or an admin may delete.
func (a *App) DeleteAnnouncement(actor domain.Identity, id int) error {
	ann, ok := a.store.GetAnnouncement(id)
	if !ok {
		return ErrNotFound
	}
	if actor.Role != domain.RoleAdmin && ann.Publisher != actor.ID {
		return ErrForbidden
	}
	if !a.store.DeactivateAnnouncement(id) {
		return ErrNotFound
	}
	return nil
}

// ViewAnnouncement counts one view and returns the updated record.
func (a *App) ViewAnnouncement(id int) (domain.Announcement, error) {
	ann, ok := a.store.ViewAnnouncement(id)
	if !ok {
		return domain.Announcement{}, ErrNotFound
	}
	return ann, nil
}
