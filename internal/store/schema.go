package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const journalTable = "journal_entries"

// Journal column names.
const (
	colID          = "id"
	colSequence    = "sequence"
	colTimestamp   = "timestamp"
	colMessageID   = "message_id"
	colSessionID   = "session_id"
	colSessionType = "session_type"
	colFamily      = "family"
	colKind        = "kind"
	colSummary     = "summary"
	colEnvelope    = "envelope"
	colHandled     = "handled"
	colError       = "error_message"
)

var journalColumns = []*schema.Column{
	{Name: colID, Type: field.TypeInt, Increment: true},
	{Name: colSequence, Type: field.TypeInt64, Unique: true},
	{Name: colTimestamp, Type: field.TypeTime},
	{Name: colMessageID, Type: field.TypeString},
	{Name: colSessionID, Type: field.TypeString, Default: ""},
	{Name: colSessionType, Type: field.TypeString, Default: ""},
	{Name: colFamily, Type: field.TypeString},
	{Name: colKind, Type: field.TypeString},
	{Name: colSummary, Type: field.TypeString, Size: 2147483647},
	{Name: colEnvelope, Type: field.TypeJSON},
	{Name: colHandled, Type: field.TypeBool, Default: false},
	{Name: colError, Type: field.TypeString, Default: ""},
}

// JournalEntriesTable holds the schema of the journal table.
var JournalEntriesTable = &schema.Table{
	Name:       journalTable,
	Columns:    journalColumns,
	PrimaryKey: []*schema.Column{journalColumns[0]},
	Indexes: []*schema.Index{
		{Name: "journalentry_timestamp", Columns: []*schema.Column{journalColumns[2]}},
		{Name: "journalentry_session_id", Columns: []*schema.Column{journalColumns[4]}},
		{Name: "journalentry_family_kind", Columns: []*schema.Column{journalColumns[6], journalColumns[7]}},
	},
}

// Tables holds every table the store migrates.
var Tables = []*schema.Table{
	JournalEntriesTable,
}
