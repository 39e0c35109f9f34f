package ledger

import (
	"time"

	"github.com/google/uuid"
)

// ID prefixes for generated records
const (
	TransactionIDPrefix = "txn"
	ScheduledIDPrefix   = "scheduled"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock
func SystemClock() Clock {
	return ClockFunc(time.Now)
}

// IDGenerator stamps new records with unique, time-ordered ids
type IDGenerator interface {
	NewID(prefix string) string
}

// IDGeneratorFunc adapts a function to IDGenerator
type IDGeneratorFunc func(prefix string) string

func (f IDGeneratorFunc) NewID(prefix string) string { return f(prefix) }

// UUIDv7Generator builds ids like "txn-<uuidv7>". Version 7 UUIDs sort by
// creation time.
func UUIDv7Generator() IDGenerator {
	return IDGeneratorFunc(func(prefix string) string {
		id, err := uuid.NewV7()
		if err != nil {
			id = uuid.New()
		}
		return prefix + "-" + id.String()
	})
}
