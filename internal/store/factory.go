package store

import (
	"careerline.app/studio/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Companies() CompanyStore {
	return newCompanyStore(s.queries)
}

func (s *Stores) Settings() SettingsStore {
	return newSettingsStore(s.queries)
}

func (s *Stores) Sections() SectionStore {
	return newSectionStore(s.queries)
}

func (s *Stores) Drafts() DraftStore {
	return newDraftStore(s.queries)
}

func (s *Stores) Jobs() JobStore {
	return newJobStore(s.queries)
}

func (s *Stores) Applications() ApplicationStore {
	return newApplicationStore(s.queries)
}
