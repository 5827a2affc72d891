package content

import "careerline.app/studio/internal/model"

// DefaultTitle is the heading a freshly added section starts with.
func DefaultTitle(t model.SectionType) string {
	switch t {
	case model.SectionTypeAbout:
		return "About Us"
	case model.SectionTypeCulture:
		return "Our Culture"
	case model.SectionTypeBenefits:
		return "Benefits & Perks"
	case model.SectionTypeValues:
		return "Our Values"
	case model.SectionTypeTeam:
		return "Meet the Team"
	default:
		return "New Section"
	}
}

// DefaultTemplate is the starter HTML of a freshly added section. The section
// type has no other effect on behavior.
func DefaultTemplate(t model.SectionType) string {
	switch t {
	case model.SectionTypeAbout:
		return "<p>Tell candidates who you are, what you build and why it matters.</p>"
	case model.SectionTypeCulture:
		return "<p>Describe what a typical week looks like and how your team works together.</p>"
	case model.SectionTypeBenefits:
		return "<ul><li>Competitive salary</li><li>Health coverage</li><li>Flexible time off</li></ul>"
	case model.SectionTypeValues:
		return "<ul><li><strong>Ownership</strong> ship it and own it</li><li><strong>Candor</strong> say the hard thing kindly</li></ul>"
	case model.SectionTypeTeam:
		return "<p>Introduce the people candidates will work with.</p>"
	default:
		return "<p>Add your content here.</p>"
	}
}
