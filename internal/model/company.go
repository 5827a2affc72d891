package model

import "time"

// Company holds the identity and branding fields of a tenant.
type Company struct {
	ID          int64     `json:"id"`
	OwnerUserID int64     `json:"owner_user_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Tagline     string    `json:"tagline"`
	Website     string    `json:"website"`
	LogoURL     string    `json:"logo_url"`
	BannerURL   string    `json:"banner_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanySettings is the theme of a company's careers page. One per company.
type CompanySettings struct {
	CompanyID       int64  `json:"company_id"`
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	AccentColor     string `json:"accent_color"`
	DarkMode        bool   `json:"dark_mode"`
	CultureVideoURL string `json:"culture_video_url"`
}

const (
	DefaultPrimaryColor   = "#1f2937"
	DefaultSecondaryColor = "#4b5563"
	DefaultAccentColor    = "#2563eb"
)

func DefaultSettings(companyID int64) CompanySettings {
	return CompanySettings{
		CompanyID:      companyID,
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
		AccentColor:    DefaultAccentColor,
	}
}
