package cmd

import (
	"fmt"

	"github.com/abhisek/tutorlink/internal/tutorui"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every journaled message",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		var removed int64
		var resetErr error
		cb := tutorui.SaveCancelFuncs{
			OnSave: func() {
				removed, resetErr = s.JournalRepo().Reset(cmd.Context())
			},
			OnCancel: func() {
				fmt.Fprintln(out, "Aborted.")
			},
		}

		if yes, _ := cmd.Flags().GetBool("yes"); yes {
			cb.Save()
		} else if _, err := tutorui.Confirm(cmd.InOrStdin(), out, "Delete all journaled messages?", cb); err != nil {
			return err
		}

		if resetErr != nil {
			return fmt.Errorf("reset journal: %w", resetErr)
		}
		if removed > 0 {
			fmt.Fprintf(out, "Removed %d message(s).\n", removed)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
