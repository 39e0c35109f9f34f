package service

import (
	"context"
	"log/slog"

	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shannicec/moneymorph/internal/platform/messaging/producers"
	"github.com/shopspring/decimal"
)

// RateServiceImpl implements the RateService interface
type RateServiceImpl struct {
	repo   ledger.Repository
	events eventEmitter
	logger *slog.Logger
}

// NewRateService creates a new rate service
func NewRateService(logger *slog.Logger, repo ledger.Repository, publisher producers.EventPublisher, clock ledger.Clock) RateService {
	return &RateServiceImpl{
		repo:   repo,
		events: eventEmitter{publisher: publisher, clock: clock, logger: logger},
		logger: logger,
	}
}

func (s *RateServiceImpl) GetRates(ctx context.Context) (currency.RateTable, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return state.Rates, nil
}

func (s *RateServiceImpl) UpdateRates(ctx context.Context, edits map[string]string) (currency.RateTable, error) {
	var updated currency.RateTable
	err := s.repo.Update(ctx, func(state ledger.State) (ledger.State, error) {
		next := ledger.ApplyRateEdits(state, edits)
		updated = next.Rates
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	loggerFor(ctx, s.logger).Info("Rate table updated", "edits", len(edits), "pairs", len(updated))
	s.events.emit(ctx, shared.EventTypeRatesUpdated, "rates", updated)
	return updated, nil
}

func (s *RateServiceImpl) Convert(ctx context.Context, amount decimal.Decimal, from, to currency.Code) (Conversion, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return Conversion{}, err
	}

	converted, err := currency.Convert(amount, from, to, state.Rates)
	if err != nil {
		return Conversion{}, err
	}

	conv := Conversion{Amount: amount, From: from, To: to, ConvertedAmount: converted}
	if from != to {
		rate, _ := state.Rates.Rate(from, to)
		conv.Rate = &rate
	}
	return conv, nil
}
