package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/tutorlink/internal/store"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List journaled messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := store.QueryOpts{}
		opts.Limit, _ = cmd.Flags().GetInt("limit")
		opts.After, _ = cmd.Flags().GetInt64("after")
		opts.SessionID, _ = cmd.Flags().GetString("session")
		opts.Family, _ = cmd.Flags().GetString("family")
		opts.Kind, _ = cmd.Flags().GetString("kind")
		if since, _ := cmd.Flags().GetDuration("since"); since > 0 {
			opts.From = time.Now().Add(-since)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.JournalRepo().List(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query journal: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No journaled messages found.")
			return nil
		}

		fmt.Fprintf(out, "%-6s  %-19s  %-12s  %-24s  %-28s  %s\n",
			"Seq", "Timestamp", "Session", "Family", "Kind", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, e := range entries {
			ok := "✓"
			if !e.Handled {
				ok = "✗"
			}
			fmt.Fprintf(out, "%-6d  %-19s  %-12s  %-24s  %-28s  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.SessionID, 12),
				e.Family,
				truncate(e.Kind, 28),
				ok,
			)
		}
		return nil
	},
}

var journalViewCmd = &cobra.Command{
	Use:   "view <sequence>",
	Short: "View a journaled message and its envelope",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || seq < 1 {
			return fmt.Errorf("invalid sequence %q", args[0])
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.JournalRepo().List(cmd.Context(), store.QueryOpts{After: seq - 1, Limit: 1})
		if err != nil {
			return fmt.Errorf("query journal: %w", err)
		}
		if len(entries) == 0 || entries[0].Sequence != seq {
			return fmt.Errorf("message %d not found", seq)
		}
		e := entries[0]

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sequence:  %d\n", e.Sequence)
		fmt.Fprintf(out, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Message:   %s\n", e.MessageID)
		fmt.Fprintf(out, "Session:   %s %s\n", e.SessionID, e.SessionType)
		fmt.Fprintf(out, "Kind:      %s/%s\n", e.Family, e.Kind)
		fmt.Fprintf(out, "Handled:   %v\n", e.Handled)
		if e.Error != "" {
			fmt.Fprintf(out, "Error:     %s\n", e.Error)
		}
		fmt.Fprintf(out, "Summary:   %s\n", e.Summary)

		sep := strings.Repeat("─", 60)
		fmt.Fprintln(out)
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, "ENVELOPE")
		fmt.Fprintln(out, sep)

		var pretty bytes.Buffer
		if len(e.Envelope) > 0 && string(e.Envelope) != "null" && json.Indent(&pretty, e.Envelope, "", "  ") == nil {
			fmt.Fprintln(out, pretty.String())
		} else {
			fmt.Fprintln(out, "(not captured)")
		}
		return nil
	},
}

func init() {
	f := journalCmd.Flags()
	f.Int("limit", 50, "Maximum number of messages")
	f.Int64("after", 0, "Only messages after this sequence number")
	f.Duration("since", 0, "Only messages newer than this, e.g. 1h")
	f.String("session", "", "Filter by session id")
	f.String("family", "", "Filter by message family")
	f.String("kind", "", "Filter by message kind")

	journalCmd.AddCommand(journalViewCmd)
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
