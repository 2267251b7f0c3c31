package services

import (
	portssvc "github.com/SscSPs/user_profile_aggregator/internal/core/ports/services"
	"github.com/SscSPs/user_profile_aggregator/internal/core/ports/upstreams"
	"github.com/SscSPs/user_profile_aggregator/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, sources upstreams.UpstreamProvider, profileOptions ...ProfileServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Person = NewPersonService(sources.Person)
	container.Country = NewCountryService(sources.Country)
	container.Exchange = NewExchangeService(sources.Exchange)
	container.News = NewNewsService(sources.News, cfg.NewsSource == config.NewsSourceStatic)

	// The profile service only talks to the other services
	container.Profile = NewProfileService(
		container.Person,
		container.Country,
		container.Exchange,
		container.News,
		profileOptions...,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PersonSvc        = (*personService)(nil)
	_ portssvc.CountrySvc       = (*countryService)(nil)
	_ portssvc.ExchangeSvc      = (*exchangeService)(nil)
	_ portssvc.NewsSvc          = (*newsService)(nil)
	_ portssvc.ProfileSvcFacade = (*profileService)(nil)
)
