package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/tutorlink/internal/codec"
	"github.com/abhisek/tutorlink/internal/feedback"
	"github.com/abhisek/tutorlink/internal/pedagogy"
	"github.com/abhisek/tutorlink/internal/tutoraction"
	"github.com/abhisek/tutorlink/internal/usersession"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List message families, kinds and enumerations",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		for _, f := range codec.Families() {
			printList(out, string(f), kindsOf(f))
		}
		printList(out, "learner action types", names(tutoraction.LearnerActionTypes()))

		var sessionTypes []string
		for _, t := range usersession.Types() {
			sessionTypes = append(sessionTypes, t.String())
		}
		printList(out, "session types", sessionTypes)
	},
}

func kindsOf(f codec.Family) []string {
	switch f {
	case codec.FamilyTutorAction:
		return names(tutoraction.Kinds())
	case codec.FamilyPedagogicalRequest:
		return names(pedagogy.Kinds())
	case codec.FamilyPedagogicalRequestSet:
		return []string{codec.KindRequestSet}
	case codec.FamilyFeedback:
		return names(feedback.Kinds())
	case codec.FamilySurveyResponse:
		return []string{codec.KindSurveyResponse}
	case codec.FamilyRuntimeParameters:
		return []string{codec.KindLTIRuntimeParameters}
	}
	return nil
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func printList(w io.Writer, title string, items []string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", len(title)))
	for _, it := range items {
		fmt.Fprintf(w, "  %s\n", it)
	}
	fmt.Fprintln(w)
}
