package dto

import (
	"time"

	"careerline.app/studio/internal/model"
)

type CreateCompanyRequest struct {
	Name string  `json:"name" binding:"required,min=1,max=255"`
	Slug *string `json:"slug,omitempty" binding:"omitempty,min=1,max=255,slug"`
}

type CompanyQuery struct {
	CompanyID int64 `form:"company_id" binding:"required"`
}

type SlugQuery struct {
	Slug string `form:"slug" binding:"required,slug"`
}

// DraftCompany carries the brand fields an editor may change. Identity fields
// (id, slug, owner) are taken from the stored company.
type DraftCompany struct {
	Name      string `json:"name" binding:"required,max=255"`
	Tagline   string `json:"tagline" binding:"max=500"`
	Website   string `json:"website" binding:"omitempty,url,max=2048"`
	LogoURL   string `json:"logo_url" binding:"omitempty,url,max=2048"`
	BannerURL string `json:"banner_url" binding:"omitempty,url,max=2048"`
}

type DraftSettings struct {
	PrimaryColor    string `json:"primary_color" binding:"required,hexcolor"`
	SecondaryColor  string `json:"secondary_color" binding:"required,hexcolor"`
	AccentColor     string `json:"accent_color" binding:"required,hexcolor"`
	DarkMode        bool   `json:"dark_mode"`
	CultureVideoURL string `json:"culture_video_url" binding:"omitempty,url,max=2048"`
}

type DraftSection struct {
	ID        string            `json:"id" binding:"required,max=64"`
	Title     string            `json:"title" binding:"max=255"`
	Type      model.SectionType `json:"type" binding:"required,section_type"`
	Content   string            `json:"content"`
	IsVisible bool              `json:"is_visible"`
}

type SaveDraftRequest struct {
	CompanyID int64          `json:"company_id" binding:"required"`
	Company   DraftCompany   `json:"company"`
	Settings  DraftSettings  `json:"settings"`
	Sections  []DraftSection `json:"sections" binding:"max=50,dive"`
}

func (r SaveDraftRequest) ToSnapshot() model.Snapshot {
	sections := make([]model.ContentSection, len(r.Sections))
	for i, s := range r.Sections {
		sections[i] = model.ContentSection{
			ID:           s.ID,
			Title:        s.Title,
			Type:         s.Type,
			Content:      s.Content,
			IsVisible:    s.IsVisible,
			DisplayOrder: i,
		}
	}

	return model.Snapshot{
		Company: model.Company{
			ID:        r.CompanyID,
			Name:      r.Company.Name,
			Tagline:   r.Company.Tagline,
			Website:   r.Company.Website,
			LogoURL:   r.Company.LogoURL,
			BannerURL: r.Company.BannerURL,
		},
		Settings: model.CompanySettings{
			CompanyID:       r.CompanyID,
			PrimaryColor:    r.Settings.PrimaryColor,
			SecondaryColor:  r.Settings.SecondaryColor,
			AccentColor:     r.Settings.AccentColor,
			DarkMode:        r.Settings.DarkMode,
			CultureVideoURL: r.Settings.CultureVideoURL,
		},
		Sections: sections,
	}
}

type SaveDraftResponse struct {
	Success   bool      `json:"success"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DraftResponse has a null draft when the company has never been edited.
type DraftResponse struct {
	Success bool         `json:"success"`
	Draft   *model.Draft `json:"draft"`
}

type PublishRequest struct {
	CompanyID int64 `json:"company_id" binding:"required"`
}

type PublishResponse struct {
	Success     bool      `json:"success"`
	PublishedAt time.Time `json:"publishedAt"`
	URL         string    `json:"url"`
}

// PublicCompany is the candidate-facing view of a company. The owner is left out.
type PublicCompany struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Tagline   string `json:"tagline"`
	Website   string `json:"website"`
	LogoURL   string `json:"logo_url"`
	BannerURL string `json:"banner_url"`
}

func ToPublicCompany(c model.Company) PublicCompany {
	return PublicCompany{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Tagline:   c.Tagline,
		Website:   c.Website,
		LogoURL:   c.LogoURL,
		BannerURL: c.BannerURL,
	}
}

type PublicPageResponse struct {
	Company  PublicCompany          `json:"company"`
	Settings model.CompanySettings  `json:"settings"`
	Sections []model.ContentSection `json:"sections"`
	Jobs     []model.Job            `json:"jobs"`
}

func ToPublicPageResponse(p *model.PublicPage) *PublicPageResponse {
	return &PublicPageResponse{
		Company:  ToPublicCompany(p.Company),
		Settings: p.Settings,
		Sections: p.Sections,
		Jobs:     p.Jobs,
	}
}
