package service

import (
	"context"

	"github.com/shannicec/moneymorph/internal/domain/analytics"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
)

// AnalyticsServiceImpl implements the AnalyticsService interface
type AnalyticsServiceImpl struct {
	repo ledger.Repository
	base currency.Code
}

// NewAnalyticsService values portfolios in base
func NewAnalyticsService(repo ledger.Repository, base currency.Code) AnalyticsService {
	return &AnalyticsServiceImpl{repo: repo, base: base}
}

func (s *AnalyticsServiceImpl) Summary(ctx context.Context) (analytics.Summary, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(state.Accounts, state.Transactions, state.Rates, s.base), nil
}
