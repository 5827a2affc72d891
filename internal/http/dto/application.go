package dto

import "careerline.app/studio/internal/model"

type ApplyRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Email string `json:"email" binding:"required,email,max=255"`
}

type ApplicationQuery struct {
	CompanyID int64                   `form:"company_id" binding:"required"`
	Status    model.ApplicationStatus `form:"status" binding:"omitempty,application_status"`
}

type UpdateStatusRequest struct {
	Status model.ApplicationStatus `json:"status" binding:"required,application_status"`
}
