package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shannicec/moneymorph/internal/data/memory"
	"github.com/shannicec/moneymorph/internal/data/seed"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *shared.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load(ctx context.Context) (ledger.State, error) {
	args := m.Called(ctx)
	return args.Get(0).(ledger.State), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, fn func(ledger.State) (ledger.State, error)) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

var errStore = errors.New("store unavailable")

func brokenRepository() *MockRepository {
	repo := new(MockRepository)
	repo.On("Load", mock.Anything).Return(ledger.State{}, errStore)
	repo.On("Update", mock.Anything, mock.Anything).Return(errStore)
	return repo
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClock() ledger.Clock {
	return ledger.ClockFunc(func() time.Time { return fixedNow })
}

func testMutator() *ledger.Mutator {
	n := 0
	return ledger.NewMutator(testClock(), ledger.IDGeneratorFunc(func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}))
}

func seededRepository() ledger.Repository {
	return memory.NewSessionRepository(testLogger(), seed.State())
}

func eventOfType(t shared.EventType) any {
	return mock.MatchedBy(func(e *shared.Event) bool { return e.Type == t })
}
