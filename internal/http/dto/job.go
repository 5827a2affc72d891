package dto

import (
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/service"
)

type JobRequest struct {
	CompanyID       int64                 `json:"company_id"`
	Title           string                `json:"title" binding:"required,min=1,max=255"`
	Location        string                `json:"location" binding:"max=255"`
	Department      string                `json:"department" binding:"max=255"`
	EmploymentType  model.EmploymentType  `json:"employment_type" binding:"required,employment_type"`
	ExperienceLevel model.ExperienceLevel `json:"experience_level" binding:"required,experience_level"`
	WorkPolicy      model.WorkPolicy      `json:"work_policy" binding:"required,work_policy"`
	SalaryMin       *int32                `json:"salary_min,omitempty" binding:"omitempty,min=0"`
	SalaryMax       *int32                `json:"salary_max,omitempty" binding:"omitempty,min=0"`
	SalaryCurrency  string                `json:"salary_currency" binding:"omitempty,len=3"`
	Description     string                `json:"description"`
	IsActive        *bool                 `json:"is_active"`
}

func (r JobRequest) ToInput() service.JobInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return service.JobInput{
		Title:           r.Title,
		Location:        r.Location,
		Department:      r.Department,
		EmploymentType:  r.EmploymentType,
		ExperienceLevel: r.ExperienceLevel,
		WorkPolicy:      r.WorkPolicy,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		SalaryCurrency:  r.SalaryCurrency,
		Description:     r.Description,
		IsActive:        active,
	}
}

type JobDetail struct {
	Company PublicCompany `json:"company"`
	Job     model.Job     `json:"job"`
}
