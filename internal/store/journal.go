package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// journalRepo implements JournalRepo with ent's SQL builder and the global
// sequence counter.
type journalRepo struct {
	db      *sql.DB
	builder *entsql.DialectBuilder
	seq     *sequenceCounter
}

func (r *journalRepo) Append(ctx context.Context, data JournalEntryData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	envelope := string(data.Envelope)
	if envelope == "" {
		envelope = "null"
	}

	query, args := r.builder.Insert(journalTable).
		Columns(colSequence, colTimestamp, colMessageID, colSessionID, colSessionType,
			colFamily, colKind, colSummary, colEnvelope, colHandled, colError).
		Values(seqNum, time.Now().UTC(), data.MessageID, data.SessionID, data.SessionType,
			data.Family, data.Kind, data.Summary, envelope, data.Handled, data.Error).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save journal entry: %w", err)
	}
	return nil
}

func (r *journalRepo) List(ctx context.Context, opts QueryOpts) ([]JournalEntry, error) {
	sel := r.builder.Select(colID, colSequence, colTimestamp, colMessageID, colSessionID,
		colSessionType, colFamily, colKind, colSummary, colEnvelope, colHandled, colError).
		From(r.builder.Table(journalTable)).
		OrderBy(colSequence)

	if opts.After > 0 {
		sel.Where(entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colTimestamp, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colTimestamp, opts.To.UTC()))
	}
	if opts.SessionID != "" {
		sel.Where(entsql.EQ(colSessionID, opts.SessionID))
	}
	if opts.Family != "" {
		sel.Where(entsql.EQ(colFamily, opts.Family))
	}
	if opts.Kind != "" {
		sel.Where(entsql.EQ(colKind, opts.Kind))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var (
			e        JournalEntry
			envelope string
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.MessageID, &e.SessionID,
			&e.SessionType, &e.Family, &e.Kind, &e.Summary, &envelope, &e.Handled, &e.Error); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Envelope = []byte(envelope)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	return entries, nil
}

func (r *journalRepo) Stats(ctx context.Context) ([]KindCount, error) {
	query, args := r.builder.Select(colFamily, colKind, entsql.Count("*")).
		From(r.builder.Table(journalTable)).
		GroupBy(colFamily, colKind).
		OrderBy(colFamily, colKind).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal stats: %w", err)
	}
	defer rows.Close()

	var counts []KindCount
	for rows.Next() {
		var c KindCount
		if err := rows.Scan(&c.Family, &c.Kind, &c.Count); err != nil {
			return nil, fmt.Errorf("scan journal stats: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal stats: %w", err)
	}
	return counts, nil
}

func (r *journalRepo) Reset(ctx context.Context) (int64, error) {
	query, args := r.builder.Delete(journalTable).Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("reset journal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset journal: %w", err)
	}
	return n, nil
}
