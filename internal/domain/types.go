package domain

import "time"

// TimeLayout is the timestamp format used across records ("2023-10-15 10:30:00").
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout is the day-granularity format used for account creation dates.
const DateLayout = "2006-01-02"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// CanPublish reports whether the role may upload resources or publish announcements.
func (r Role) CanPublish() bool {
	return r == RoleAdmin || r == RoleTeacher
}

// CanManageUsers reports whether the role may create, edit, or delete accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

// ResourceType enumerates the original upload categories.
type ResourceType string

const (
	TypeCourseware ResourceType = "课件"
	TypeVideo      ResourceType = "视频"
	TypeLessonPlan ResourceType = "教案"
	TypeTest       ResourceType = "试题"
	TypeOther      ResourceType = "其他"
)

type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceNormal Importance = "normal"
)

type User struct {
	ID         int        `json:"id"`
	Username   string     `json:"username"`
	Password   string     `json:"-"`
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

type Resource struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Subject     string       `json:"subject"`
	Type        ResourceType `json:"type"`
	Format      string       `json:"format"`
	URL         string       `json:"url"`
	Size        string       `json:"size"`
	Uploader    int          `json:"uploader"`
	UploadTime  time.Time    `json:"uploadTime"`
	Views       int          `json:"views"`
	Downloads   int          `json:"downloads"`
	Rating      float64      `json:"rating"`
	Tags        []string     `json:"tags"`
	Comments    []Comment    `json:"comments"`
}

type Comment struct {
	ID      int       `json:"id"`
	UserID  int       `json:"userId"`
	Content string    `json:"content"`
	Time    time.Time `json:"time"`
	Replies []Reply   `json:"replies"`
}

type Reply struct {
	ID      int       `json:"id"`
	UserID  int       `json:"userId"`
	Content string    `json:"content"`
	Time    time.Time `json:"time"`
}

type Announcement struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Publisher   int        `json:"publisher"`
	PublishTime time.Time  `json:"publishTime"`
	Importance  Importance `json:"importance"`
	Views       int        `json:"views"`
	IsActive    bool       `json:"isActive"`
}

// AnnouncementView decorates an announcement with its publisher's identity.
type AnnouncementView struct {
	Announcement
	PublisherName string `json:"publisherName"`
	PublisherRole string `json:"publisherRole"`
}

// Download is an append-only audit record; one per download action.
type Download struct {
	ID           int       `json:"id"`
	ResourceID   int       `json:"resourceId"`
	UserID       int       `json:"userId"`
	DownloadTime time.Time `json:"downloadTime"`
	IP           string    `json:"ip"`
}

// ResourceSummary and UploaderSummary are the trimmed shapes embedded in
// download history views.
type ResourceSummary struct {
	ID      int          `json:"id"`
	Title   string       `json:"title"`
	Subject string       `json:"subject"`
	Type    ResourceType `json:"type"`
	Format  string       `json:"format"`
}

type UploaderSummary struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// DownloadDetail decorates a download record with resource and uploader info.
type DownloadDetail struct {
	Download
	Resource ResourceSummary `json:"resource"`
	Uploader UploaderSummary `json:"uploader"`
}
