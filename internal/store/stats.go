package store

// Aggregate statistics shown on the statistics dashboard. The snapshot is a
// fixed platform-wide rollup; per-collection live numbers come from the app
// layer's overview.

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type SubjectCount struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type DayActivity struct {
	Date      string `json:"date"`
	Logins    int    `json:"logins"`
	Downloads int    `json:"downloads"`
	Uploads   int    `json:"uploads"`
}

type Totals struct {
	TotalResources int     `json:"totalResources"`
	TotalDownloads int     `json:"totalDownloads"`
	TotalUsers     int     `json:"totalUsers"`
	TotalTeachers  int     `json:"totalTeachers"`
	TotalStudents  int     `json:"totalStudents"`
	TotalAdmins    int     `json:"totalAdmins"`
	AverageRating  float64 `json:"averageRating"`
}

type Stats struct {
	ResourceTypes    []TypeCount    `json:"resourceTypes"`
	Subjects         []SubjectCount `json:"subjects"`
	MonthlyUploads   []MonthCount   `json:"monthlyUploads"`
	MonthlyDownloads []MonthCount   `json:"monthlyDownloads"`
	UserActivity     []DayActivity  `json:"userActivity"`
	Totals           Totals         `json:"totals"`
}

// StatsSnapshot returns the seeded platform statistics.
func StatsSnapshot() Stats {
	return Stats{
		ResourceTypes: []TypeCount{
			{Type: "课件", Count: 15},
			{Type: "视频", Count: 8},
			{Type: "教案", Count: 12},
			{Type: "试题", Count: 20},
			{Type: "其他", Count: 5},
		},
		Subjects: []SubjectCount{
			{Subject: "数学", Count: 18},
			{Subject: "计算机科学", Count: 15},
			{Subject: "英语", Count: 10},
			{Subject: "物理", Count: 8},
			{Subject: "文学", Count: 5},
			{Subject: "化学", Count: 4},
		},
		MonthlyUploads: []MonthCount{
			{Month: "2023-01", Count: 8},
			{Month: "2023-02", Count: 12},
			{Month: "2023-03", Count: 10},
			{Month: "2023-04", Count: 15},
			{Month: "2023-05", Count: 20},
			{Month: "2023-06", Count: 18},
			{Month: "2023-07", Count: 16},
			{Month: "2023-08", Count: 22},
			{Month: "2023-09", Count: 25},
			{Month: "2023-10", Count: 30},
		},
		MonthlyDownloads: []MonthCount{
			{Month: "2023-01", Count: 45},
			{Month: "2023-02", Count: 60},
			{Month: "2023-03", Count: 75},
			{Month: "2023-04", Count: 90},
			{Month: "2023-05", Count: 120},
			{Month: "2023-06", Count: 135},
			{Month: "2023-07", Count: 105},
			{Month: "2023-08", Count: 150},
			{Month: "2023-09", Count: 180},
			{Month: "2023-10", Count: 210},
		},
		UserActivity: []DayActivity{
			{Date: "2023-10-25", Logins: 35, Downloads: 28, Uploads: 5},
			{Date: "2023-10-26", Logins: 40, Downloads: 32, Uploads: 4},
			{Date: "2023-10-27", Logins: 38, Downloads: 30, Uploads: 6},
			{Date: "2023-10-28", Logins: 42, Downloads: 35, Uploads: 3},
			{Date: "2023-10-29", Logins: 45, Downloads: 38, Uploads: 7},
			{Date: "2023-10-30", Logins: 50, Downloads: 42, Uploads: 8},
			{Date: "2023-10-31", Logins: 48, Downloads: 40, Uploads: 5},
		},
		Totals: Totals{
			TotalResources: 60,
			TotalDownloads: 1250,
			TotalUsers:     120,
			TotalTeachers:  25,
			TotalStudents:  94,
			TotalAdmins:    1,
			AverageRating:  4.6,
		},
	}
}
