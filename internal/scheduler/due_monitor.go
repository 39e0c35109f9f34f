// Package scheduler watches scheduled transfers and announces the ones whose
// date has arrived. It never executes them.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shannicec/moneymorph/internal/config"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shannicec/moneymorph/internal/platform/messaging/producers"
)

// DueMonitor publishes one scheduled_transfer.due event per scheduled
// transfer once its date is reached
type DueMonitor struct {
	repo      ledger.Repository
	publisher producers.EventPublisher
	clock     ledger.Clock
	logger    *slog.Logger
	interval  time.Duration

	notified map[string]struct{}
}

func NewDueMonitor(
	cfg *config.SchedulerConfig,
	repo ledger.Repository,
	publisher producers.EventPublisher,
	clock ledger.Clock,
	logger *slog.Logger,
) *DueMonitor {
	return &DueMonitor{
		repo:      repo,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
		interval:  cfg.Interval,
		notified:  make(map[string]struct{}),
	}
}

// Start checks once immediately, then on every tick until ctx is canceled
func (m *DueMonitor) Start(ctx context.Context) {
	m.logger.Info("Starting scheduled transfer monitor", "interval", m.interval.String())
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		if err := m.checkDue(ctx); err != nil {
			m.logger.Error("Error while checking due scheduled transfers", "error", err)
		}

		select {
		case <-ctx.Done():
			m.logger.Info("Scheduled transfer monitor stopping due to context cancellation")
			return
		case <-ticker.C:
		}
	}
}

func (m *DueMonitor) checkDue(ctx context.Context) error {
	state, err := m.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	now := m.clock.Now()
	m.forgetCancelled(state.Scheduled)

	for _, st := range state.DueScheduled(now) {
		if _, done := m.notified[st.ID]; done {
			continue
		}

		event, err := shared.NewEvent(shared.EventTypeScheduledTransferDue, st.ID, "", now, st)
		if err != nil {
			return fmt.Errorf("failed to build due event for %s: %w", st.ID, err)
		}

		if err := m.publisher.Publish(ctx, event); err != nil {
			// retried on the next tick
			m.logger.Error("Failed to publish due event", "scheduled_id", st.ID, "error", err)
			continue
		}

		m.notified[st.ID] = struct{}{}
		m.logger.Info("Scheduled transfer is due",
			"scheduled_id", st.ID,
			"scheduled_date", st.ScheduledDate.Format(time.DateOnly),
			"from_account_id", st.FromAccountID,
			"to_account_id", st.ToAccountID,
		)
	}
	return nil
}

// forgetCancelled drops ids that are no longer scheduled
func (m *DueMonitor) forgetCancelled(scheduled []ledger.ScheduledTransfer) {
	live := make(map[string]struct{}, len(scheduled))
	for _, st := range scheduled {
		live[st.ID] = struct{}{}
	}
	for id := range m.notified {
		if _, ok := live[id]; !ok {
			delete(m.notified, id)
		}
	}
}
