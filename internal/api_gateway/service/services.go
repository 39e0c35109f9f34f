package service

import (
	"log/slog"

	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/platform/messaging/producers"
)

// Services bundles the treasury services over one session
type Services struct {
	Accounts     AccountService
	Rates        RateService
	Transactions TransactionService
	Schedules    ScheduleService
	Analytics    AnalyticsService
}

// NewServices wires every service to the same repository, publisher and clock.
// base is the currency analytics values the portfolio in.
func NewServices(
	logger *slog.Logger,
	repo ledger.Repository,
	mutator *ledger.Mutator,
	publisher producers.EventPublisher,
	clock ledger.Clock,
	base currency.Code,
) Services {
	return Services{
		Accounts:     NewAccountService(logger, repo, publisher, clock),
		Rates:        NewRateService(logger, repo, publisher, clock),
		Transactions: NewTransactionService(logger, repo, mutator, publisher, clock),
		Schedules:    NewScheduleService(logger, repo, mutator, publisher, clock),
		Analytics:    NewAnalyticsService(repo, base),
	}
}
