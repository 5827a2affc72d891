package service

import (
	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"careerline.app/studio/core/config"
	"careerline.app/studio/internal/queue"
	"careerline.app/studio/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	cache     PageCache
	producer  queue.Producer
	workOSCfg config.WorkOSConfig
	siteURL   string
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	cache PageCache,
	producer queue.Producer,
	workOSCfg config.WorkOSConfig,
	siteURL string,
) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		cache:     cache,
		producer:  producer,
		workOSCfg: workOSCfg,
		siteURL:   siteURL,
	}
}

func (s *Services) Auth() AuthService {
	identity := usermanagement.NewClient(s.workOSCfg.APIKey)
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), identity, s.workOSCfg)
}

func (s *Services) Companies() CompanyService {
	return NewCompanyService(s.stores.Companies(), s.stores.Settings(), s.stores.Sections(), s.txRunner, s.cache)
}

func (s *Services) Drafts() DraftService {
	return NewDraftService(s.stores.Companies(), s.stores.Drafts(), s.txRunner, s.cache, s.producer, s.siteURL)
}

func (s *Services) Careers() CareersService {
	return NewCareersService(s.stores.Companies(), s.stores.Settings(), s.stores.Sections(), s.stores.Jobs(), s.cache)
}

func (s *Services) Jobs() JobService {
	return NewJobService(s.stores.Companies(), s.stores.Jobs(), s.cache)
}

func (s *Services) Applications() ApplicationService {
	return NewApplicationService(s.stores.Companies(), s.stores.Jobs(), s.stores.Applications(), s.producer)
}
