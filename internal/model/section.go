package model

type SectionType string

const (
	SectionTypeAbout    SectionType = "about"
	SectionTypeCulture  SectionType = "culture"
	SectionTypeBenefits SectionType = "benefits"
	SectionTypeValues   SectionType = "values"
	SectionTypeTeam     SectionType = "team"
	SectionTypeCustom   SectionType = "custom"
)

func (t SectionType) IsValid() bool {
	switch t {
	case SectionTypeAbout, SectionTypeCulture, SectionTypeBenefits,
		SectionTypeValues, SectionTypeTeam, SectionTypeCustom:
		return true
	}
	return false
}

// ContentSection is one rich-text block of a careers page. Content is raw HTML.
type ContentSection struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Type         SectionType `json:"type"`
	Content      string      `json:"content"`
	IsVisible    bool        `json:"is_visible"`
	DisplayOrder int         `json:"display_order"`
}
