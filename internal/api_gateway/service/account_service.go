package service

import (
	"context"
	"log/slog"

	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shannicec/moneymorph/internal/platform/messaging/producers"
	"github.com/shannicec/moneymorph/internal/report"
)

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	repo   ledger.Repository
	events eventEmitter
	logger *slog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(logger *slog.Logger, repo ledger.Repository, publisher producers.EventPublisher, clock ledger.Clock) AccountService {
	return &AccountServiceImpl{
		repo:   repo,
		events: eventEmitter{publisher: publisher, clock: clock, logger: logger},
		logger: logger,
	}
}

func (s *AccountServiceImpl) ListAccounts(ctx context.Context) (account.Accounts, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return state.Accounts, nil
}

func (s *AccountServiceImpl) GetAccount(ctx context.Context, id string) (account.Account, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return account.Account{}, err
	}
	return state.Accounts.Get(id)
}

func (s *AccountServiceImpl) ExportAccounts(ctx context.Context) ([]byte, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return report.ExportAccounts(state.Accounts)
}

// ImportAccounts swaps in a new account set. The transaction log and the
// scheduled list are kept as they are.
func (s *AccountServiceImpl) ImportAccounts(ctx context.Context, csv string) (account.Accounts, error) {
	logger := loggerFor(ctx, s.logger)

	accounts, err := report.ParseAccounts(csv)
	if err != nil {
		logger.Warn("Rejected account import", "error", err)
		return nil, err
	}

	err = s.repo.Update(ctx, func(state ledger.State) (ledger.State, error) {
		state.Accounts = accounts
		return state, nil
	})
	if err != nil {
		logger.Error("Failed to store imported accounts", "error", err)
		return nil, err
	}

	logger.Info("Accounts imported", "count", len(accounts))
	s.events.emit(ctx, shared.EventTypeAccountsImported, "accounts", accounts)
	return accounts, nil
}
