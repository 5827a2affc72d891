package model

import "time"

// Snapshot is the editable content of a careers page: the three record
// families that are copied together between draft and live.
type Snapshot struct {
	Company  Company          `json:"company"`
	Settings CompanySettings  `json:"settings"`
	Sections []ContentSection `json:"sections"`
}

// Draft is the shadow copy of a company's live snapshot.
type Draft struct {
	Snapshot
	CompanyID       int64      `json:"company_id"`
	UpdatedAt       time.Time  `json:"updated_at"`
	LastPublishedAt *time.Time `json:"last_published_at"`
}

// PublicPage is what candidates see: live content and active jobs.
type PublicPage struct {
	Snapshot
	Jobs []Job `json:"jobs"`
}

// DepartmentGroup is one bucket of a grouped job listing.
type DepartmentGroup struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
	Jobs       []Job  `json:"jobs"`
}
