package model

import "time"

type EmploymentType string

const (
	EmploymentTypeFullTime   EmploymentType = "full_time"
	EmploymentTypePartTime   EmploymentType = "part_time"
	EmploymentTypeContract   EmploymentType = "contract"
	EmploymentTypeInternship EmploymentType = "internship"
	EmploymentTypeTemporary  EmploymentType = "temporary"
)

func (t EmploymentType) IsValid() bool {
	switch t {
	case EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeContract,
		EmploymentTypeInternship, EmploymentTypeTemporary:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceLevelEntry     ExperienceLevel = "entry"
	ExperienceLevelMid       ExperienceLevel = "mid"
	ExperienceLevelSenior    ExperienceLevel = "senior"
	ExperienceLevelLead      ExperienceLevel = "lead"
	ExperienceLevelExecutive ExperienceLevel = "executive"
)

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceLevelEntry, ExperienceLevelMid, ExperienceLevelSenior,
		ExperienceLevelLead, ExperienceLevelExecutive:
		return true
	}
	return false
}

type WorkPolicy string

const (
	WorkPolicyRemote WorkPolicy = "remote"
	WorkPolicyHybrid WorkPolicy = "hybrid"
	WorkPolicyOnsite WorkPolicy = "onsite"
)

func (p WorkPolicy) IsValid() bool {
	switch p {
	case WorkPolicyRemote, WorkPolicyHybrid, WorkPolicyOnsite:
		return true
	}
	return false
}

type Job struct {
	ID              int64           `json:"id"`
	CompanyID       int64           `json:"company_id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Location        string          `json:"location"`
	Department      string          `json:"department"`
	EmploymentType  EmploymentType  `json:"employment_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	WorkPolicy      WorkPolicy      `json:"work_policy"`
	SalaryMin       *int32          `json:"salary_min,omitempty"`
	SalaryMax       *int32          `json:"salary_max,omitempty"`
	SalaryCurrency  string          `json:"salary_currency"`
	Description     string          `json:"description"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
