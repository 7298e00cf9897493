package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journaled message counts by family and kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		counts, err := s.JournalRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(counts) == 0 {
			fmt.Fprintln(out, "No messages journaled yet.")
			return nil
		}

		fmt.Fprintf(out, "%-24s  %-32s  %8s\n", "Family", "Kind", "Count")
		fmt.Fprintln(out, strings.Repeat("─", 68))

		var total int
		for _, c := range counts {
			fmt.Fprintf(out, "%-24s  %-32s  %8d\n", c.Family, c.Kind, c.Count)
			total += c.Count
		}

		fmt.Fprintln(out, strings.Repeat("─", 68))
		fmt.Fprintf(out, "%-24s  %-32s  %8d\n", "TOTAL", "", total)
		return nil
	},
}
