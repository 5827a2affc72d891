package service

import "errors"

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrDraftNotFound       = errors.New("draft not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrForbidden           = errors.New("not the owner of this company")
	ErrJobClosed           = errors.New("job is not accepting applications")
	ErrInvalidSection      = errors.New("invalid section")
	ErrInvalidJob          = errors.New("invalid job")
	ErrInvalidStatus       = errors.New("invalid application status")
)
