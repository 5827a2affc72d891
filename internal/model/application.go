package model

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusInterviewed,
		ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID        int64             `json:"id"`
	CompanyID int64             `json:"company_id"`
	JobID     int64             `json:"job_id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
