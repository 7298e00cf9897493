package dispatch

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorlink/internal/codec"
	"github.com/abhisek/tutorlink/internal/logging"
	"github.com/abhisek/tutorlink/internal/store"
)

// JournalDispatcher is a decorator that records every dispatched message in
// the journal.
type JournalDispatcher struct {
	inner Dispatcher
	repo  store.JournalRepo
}

// WithJournal wraps a Dispatcher with journaling.
func WithJournal(d Dispatcher, repo store.JournalRepo) Dispatcher {
	return &JournalDispatcher{inner: d, repo: repo}
}

func (j *JournalDispatcher) Dispatch(ctx context.Context, m *codec.Message) error {
	err := j.inner.Dispatch(ctx, m)

	data := store.JournalEntryData{
		MessageID: m.ID,
		SessionID: m.SessionID,
		Summary:   fmt.Sprint(m.Value),
		Handled:   err == nil,
	}
	if m.SessionType.IsValid() {
		data.SessionType = m.SessionType.String()
	}
	if family, kind, cerr := m.Classify(); cerr == nil {
		data.Family = string(family)
		data.Kind = kind
	}
	if raw, encErr := codec.Encode(m); encErr == nil {
		data.Envelope = raw
	}
	if err != nil {
		data.Error = err.Error()
	}

	// Journal failures never fail the dispatch.
	if logErr := j.repo.Append(ctx, data); logErr != nil {
		logging.FromContext(ctx).Warn("failed to journal message",
			"message_id", m.ID, "kind", data.Kind, "error", logErr)
	}

	return err
}
