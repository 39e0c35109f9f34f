package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shannicec/moneymorph/internal/platform/messaging/producers"
)

// ScheduleServiceImpl implements the ScheduleService interface
type ScheduleServiceImpl struct {
	repo    ledger.Repository
	mutator *ledger.Mutator
	events  eventEmitter
	logger  *slog.Logger
}

// NewScheduleService creates a new schedule service
func NewScheduleService(logger *slog.Logger, repo ledger.Repository, mutator *ledger.Mutator, publisher producers.EventPublisher, clock ledger.Clock) ScheduleService {
	return &ScheduleServiceImpl{
		repo:    repo,
		mutator: mutator,
		events:  eventEmitter{publisher: publisher, clock: clock, logger: logger},
		logger:  logger,
	}
}

func (s *ScheduleServiceImpl) ScheduleTransfer(ctx context.Context, req ledger.ScheduleRequest) (ledger.ScheduledTransfer, error) {
	logger := loggerFor(ctx, s.logger)

	var scheduled ledger.ScheduledTransfer
	err := s.repo.Update(ctx, func(state ledger.State) (ledger.State, error) {
		next, st, err := s.mutator.ApplySchedule(state, req)
		scheduled = st
		return next, err
	})
	if err != nil {
		logger.Info("Schedule rejected",
			"from_account_id", req.FromAccountID,
			"to_account_id", req.ToAccountID,
			"reason", string(ledger.ReasonOf(err)),
		)
		return ledger.ScheduledTransfer{}, err
	}

	logger.Info("Transfer scheduled",
		"scheduled_id", scheduled.ID,
		"scheduled_date", scheduled.ScheduledDate.Format(time.DateOnly),
	)
	s.events.emit(ctx, shared.EventTypeTransferScheduled, scheduled.ID, scheduled)
	return scheduled, nil
}

func (s *ScheduleServiceImpl) ListScheduled(ctx context.Context) ([]ledger.ScheduledTransfer, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return state.Scheduled, nil
}

func (s *ScheduleServiceImpl) CancelScheduled(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := s.repo.Update(ctx, func(state ledger.State) (ledger.State, error) {
		next, ok := ledger.ApplyCancel(state, id)
		removed = ok
		return next, nil
	})
	if err != nil {
		return false, err
	}

	if removed {
		loggerFor(ctx, s.logger).Info("Scheduled transfer cancelled", "scheduled_id", id)
		s.events.emit(ctx, shared.EventTypeScheduleCancelled, id, map[string]string{"id": id})
	}
	return removed, nil
}
