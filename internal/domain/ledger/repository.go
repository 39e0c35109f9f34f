package ledger

import "context"

// Repository holds the state of one session. Update runs fn against the
// current state and installs the result only when fn succeeds; concurrent
// updates are serialized.
type Repository interface {
	Load(ctx context.Context) (State, error)
	Update(ctx context.Context, fn func(State) (State, error)) error
}
