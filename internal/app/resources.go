package app

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"

	"eduvault/internal/domain"
	"eduvault/internal/store"
)

// Resource returns a resource by ID.
func (a *App) Resource(id int) (domain.Resource, bool) {
	return a.store.GetResource(id)
}

// Resources returns every resource in upload order.
func (a *App) Resources() []domain.Resource {
	return a.store.ListResources()
}

// ResourcesByUploader filters resources by their uploading user.
func (a *App) ResourcesByUploader(uploaderID int) []domain.Resource {
	var out []domain.Resource
	for _, r := range a.store.ListResources() {
		if r.Uploader == uploaderID {
			out = append(out, r)
		}
	}
	return out
}

// ResourcesBySubject filters resources by subject.
func (a *App) ResourcesBySubject(subject string) []domain.Resource {
	var out []domain.Resource
	for _, r := range a.store.ListResources() {
		if r.Subject == subject {
			out = append(out, r)
		}
	}
	return out
}

// ResourcesByType filters resources by type.
func (a *App) ResourcesByType(t domain.ResourceType) []domain.Resource {
	var out []domain.Resource
	for _, r := range a.store.ListResources() {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// SearchResources matches the keyword case-insensitively against title,
// description, and tags.
func (a *App) SearchResources(keyword string) []domain.Resource {
	kw := strings.ToLower(keyword)
	var out []domain.Resource
	for _, r := range a.store.ListResources() {
		if strings.Contains(strings.ToLower(r.Title), kw) ||
			strings.Contains(strings.ToLower(r.Description), kw) {
			out = append(out, r)
			continue
		}
		for _, tag := range r.Tags {
			if strings.Contains(strings.ToLower(tag), kw) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// PopularResources returns up to limit resources ordered by download count.
func (a *App) PopularResources(limit int) []domain.Resource {
	all := a.store.ListResources()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Downloads > all[j].Downloads
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

// LatestResources returns up to limit resources ordered by upload time, newest
// first.
func (a *App) LatestResources(limit int) []domain.Resource {
	all := a.store.ListResources()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].UploadTime.After(all[j].UploadTime)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Subjects returns the distinct subjects in first-seen order, so filter
// dropdowns track the live collection.
func (a *App) Subjects() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range a.store.ListResources() {
		if !seen[r.Subject] {
			seen[r.Subject] = true
			out = append(out, r.Subject)
		}
	}
	return out
}

// ResourceTypes returns the distinct resource types in first-seen order.
func (a *App) ResourceTypes() []domain.ResourceType {
	seen := make(map[domain.ResourceType]bool)
	var out []domain.ResourceType
	for _, r := range a.store.ListResources() {
		if !seen[r.Type] {
			seen[r.Type] = true
			out = append(out, r.Type)
		}
	}
	return out
}

// UploadRequest carries the caller-supplied fields of a new resource.
// Counters, timestamps, and the identifier are server-assigned.
type UploadRequest struct {
	Title       string
	Description string
	Subject     string
	Type        domain.ResourceType
	Format      string
	URL         string
	Size        string
	Tags        []string
}

// UploadResource appends a resource owned by the acting user. Students may not
// upload. An empty URL gets a generated storage key.
func (a *App) UploadResource(actor domain.Identity, req UploadRequest) (domain.Resource, error) {
	if !actor.Role.CanPublish() {
		return domain.Resource{}, ErrForbidden
	}
	if req.Title == "" || req.Subject == "" || req.Type == "" {
		return domain.Resource{}, fmt.Errorf("title, subject, and type are required")
	}
	url := req.URL
	if url == "" {
		ext := strings.ToLower(req.Format)
		if ext == "" {
			ext = "bin"
		}
		url = path.Join("/files/uploads", uuid.NewString()+"."+ext)
	}
	r := domain.Resource{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		Type:        req.Type,
		Format:      req.Format,
		URL:         url,
		Size:        req.Size,
		Uploader:    actor.ID,
		UploadTime:  a.now(),
		Tags:        req.Tags,
	}
	return a.store.AddResource(r), nil
}

// EditResource merges a metadata patch. Only the uploader or an admin may
// edit; the file itself (URL, format, size) is immutable after upload.
func (a *App) EditResource(actor domain.Identity, id int, patch store.ResourcePatch) (domain.Resource, error) {
	r, ok := a.store.GetResource(id)
	if !ok {
		return domain.Resource{}, ErrNotFound
	}
	if actor.Role != domain.RoleAdmin && r.Uploader != actor.ID {
		return domain.Resource{}, ErrForbidden
	}
	updated, ok := a.store.UpdateResource(id, patch)
	if !ok {
		return domain.Resource{}, ErrNotFound
	}
	return updated, nil
}

// DeleteResource removes a resource outright. Only the uploader or an admin
// may delete.
func (a *App) DeleteResource(actor domain.Identity, id int) error {
	r, ok := a.store.GetResource(id)
	if !ok {
		return ErrNotFound
	}
	if actor.Role != domain.RoleAdmin && r.Uploader != actor.ID {
		return ErrForbidden
	}
	if !a.store.DeleteResource(id) {
		return ErrNotFound
	}
	return nil
}

// DownloadResource records one download action: a new audit record plus a
// counter increment, applied atomically by the store. The origin address is
// simulated.
func (a *App) DownloadResource(resourceID, userID int) (domain.Download, error) {
	ip := fmt.Sprintf("192.168.1.%d", a.intn(255))
	rec, ok := a.store.AddDownload(resourceID, userID, ip, a.now())
	if !ok {
		return domain.Download{}, ErrNotFound
	}
	return rec, nil
}

// RateResource folds one rating into the resource's running average.
func (a *App) RateResource(id int, rating float64) (domain.Resource, error) {
	if rating < 0 || rating > 5 {
		return domain.Resource{}, ErrInvalidRating
	}
	r, ok := a.store.RateResource(id, rating)
	if !ok {
		return domain.Resource{}, ErrNotFound
	}
	return r, nil
}

// AddComment appends a comment to a resource.
func (a *App) AddComment(resourceID, userID int, content string) (domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, ErrEmptyContent
	}
	c, ok := a.store.AddComment(resourceID, userID, content, a.now())
	if !ok {
		return domain.Comment{}, ErrNotFound
	}
	return c, nil
}

// AddReply appends a reply under an existing comment.
func (a *App) AddReply(resourceID, commentID, userID int, content string) (domain.Reply, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Reply{}, ErrEmptyContent
	}
	r, ok := a.store.AddReply(resourceID, commentID, userID, content, a.now())
	if !ok {
		return domain.Reply{}, ErrNotFound
	}
	return r, nil
}

// UserDownloads returns a user's download history decorated with resource and
// uploader details. Records whose resource has since been deleted keep empty
// summaries rather than dropping out of the history.
func (a *App) UserDownloads(userID int) []domain.DownloadDetail {
	var out []domain.DownloadDetail
	for _, d := range a.store.DownloadsByUser(userID) {
		detail := domain.DownloadDetail{Download: d}
		if r, ok := a.store.GetResource(d.ResourceID); ok {
			detail.Resource = domain.ResourceSummary{
				ID:      r.ID,
				Title:   r.Title,
				Subject: r.Subject,
				Type:    r.Type,
				Format:  r.Format,
			}
			if u, ok := a.store.GetUser(r.Uploader); ok {
				detail.Uploader = domain.UploaderSummary{
					ID:         u.ID,
					Name:       u.Name,
					Department: u.Department,
				}
			}
		}
		out = append(out, detail)
	}
	return out
}
