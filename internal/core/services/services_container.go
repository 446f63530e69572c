package services

import (
	portsrepo "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/repositories"
	portssvc "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/services"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/platform/config"
)

// NewServiceContainer initializes all application services with their
// dependencies. The credit service is built first because splits and
// subscriptions both drive it for the balance side of their work.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	creditSvc := NewCreditService(repos.LedgerRepo, cfg.SignupBonusCredits, cfg.LedgerRetryLimit)

	return &portssvc.ServiceContainer{
		Credit:       creditSvc,
		Split:        NewSplitService(repos.SplitRepo, creditSvc),
		Boost:        NewBoostService(repos.BoostRepo, cfg.LedgerRetryLimit),
		Subscription: NewSubscriptionService(repos.SubscriptionRepo, repos.PlanRepo, creditSvc),
	}
}
