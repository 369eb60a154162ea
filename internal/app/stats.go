package app

import (
	"eduvault/internal/domain"
	"eduvault/internal/store"
)

// Stats returns the seeded platform-wide statistics snapshot.
func (a *App) Stats() store.Stats {
	return store.StatsSnapshot()
}

// Overview summarizes the live collections.
type Overview struct {
	ResourceTypes  []store.TypeCount    `json:"resourceTypes"`
	Subjects       []store.SubjectCount `json:"subjects"`
	TotalResources int                  `json:"totalResources"`
	TotalDownloads int                  `json:"totalDownloads"`
	TotalUsers     int                  `json:"totalUsers"`
	TotalTeachers  int                  `json:"totalTeachers"`
	TotalStudents  int                  `json:"totalStudents"`
	TotalAdmins    int                  `json:"totalAdmins"`
	AverageRating  float64              `json:"averageRating"`
}

// Overview computes distribution and totals from the current store contents,
// unlike Stats which reports the fixed snapshot.
func (a *App) Overview() Overview {
	var ov Overview

	resources := a.store.ListResources()
	typeIdx := make(map[domain.ResourceType]int)
	subjIdx := make(map[string]int)
	var ratingSum float64
	for _, r := range resources {
		if i, ok := typeIdx[r.Type]; ok {
			ov.ResourceTypes[i].Count++
		} else {
			typeIdx[r.Type] = len(ov.ResourceTypes)
			ov.ResourceTypes = append(ov.ResourceTypes, store.TypeCount{Type: string(r.Type), Count: 1})
		}
		if i, ok := subjIdx[r.Subject]; ok {
			ov.Subjects[i].Count++
		} else {
			subjIdx[r.Subject] = len(ov.Subjects)
			ov.Subjects = append(ov.Subjects, store.SubjectCount{Subject: r.Subject, Count: 1})
		}
		ratingSum += r.Rating
	}
	ov.TotalResources = len(resources)
	if len(resources) > 0 {
		ov.AverageRating = ratingSum / float64(len(resources))
	}

	ov.TotalDownloads = len(a.store.ListDownloads())

	for _, u := range a.store.ListUsers() {
		ov.TotalUsers++
		switch u.Role {
		case domain.RoleAdmin:
			ov.TotalAdmins++
		case domain.RoleTeacher:
			ov.TotalTeachers++
		case domain.RoleStudent:
			ov.TotalStudents++
		}
	}
	return ov
}
