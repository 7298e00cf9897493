package store

import (
	"context"
	"time"
)

// QueryOpts configures journal queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before (0 = no bound)
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // exact match when set
	Family    string    // exact match when set
	Kind      string    // exact match when set
}

// JournalEntryData captures one dispatched message.
type JournalEntryData struct {
	MessageID   string
	SessionID   string
	SessionType string // empty when the message carried none
	Family      string
	Kind        string
	Summary     string // diagnostic text of the value
	Envelope    []byte // encoded JSON envelope
	Handled     bool
	Error       string
}

// JournalEntry is a stored journal row.
type JournalEntry struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	JournalEntryData
}

// KindCount is the number of journal entries of one family and kind.
type KindCount struct {
	Family string
	Kind   string
	Count  int
}

// JournalRepo records and reads back the messages that passed through the
// dispatcher.
type JournalRepo interface {
	// Append records a dispatched message.
	Append(ctx context.Context, data JournalEntryData) error

	// List returns entries in sequence order.
	List(ctx context.Context, opts QueryOpts) ([]JournalEntry, error)

	// Stats returns entry counts grouped by family and kind.
	Stats(ctx context.Context) ([]KindCount, error)

	// Reset deletes every entry and returns how many were removed.
	Reset(ctx context.Context) (int64, error)
}
