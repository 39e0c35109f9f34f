package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shannicec/moneymorph/internal/domain/ledger"
)

// SessionRepository implements the ledger.Repository interface in process
// memory. State lives as long as the repository does.
type SessionRepository struct {
	mu     sync.Mutex
	state  ledger.State
	logger *slog.Logger
}

// NewSessionRepository creates a repository starting from initial
func NewSessionRepository(logger *slog.Logger, initial ledger.State) ledger.Repository {
	return &SessionRepository{
		state:  initial.Clone(),
		logger: logger,
	}
}

// Load returns a copy of the current state
func (r *SessionRepository) Load(ctx context.Context) (ledger.State, error) {
	if err := ctx.Err(); err != nil {
		return ledger.State{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone(), nil
}

// Update applies fn under the session lock. The returned state replaces the
// current one only when fn succeeds.
func (r *SessionRepository) Update(ctx context.Context, fn func(ledger.State) (ledger.State, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := fn(r.state.Clone())
	if err != nil {
		return err
	}
	r.state = next.Clone()

	r.logger.Debug("Session state updated",
		"accounts", len(r.state.Accounts),
		"transactions", len(r.state.Transactions),
		"scheduled", len(r.state.Scheduled),
	)
	return nil
}
