package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/tutorlink/internal/codec"
	"github.com/abhisek/tutorlink/internal/dispatch"
	"github.com/abhisek/tutorlink/internal/feedback"
	"github.com/abhisek/tutorlink/internal/logging"
	"github.com/abhisek/tutorlink/internal/pedagogy"
	"github.com/abhisek/tutorlink/internal/tutoraction"
	"github.com/abhisek/tutorlink/internal/tutorui"
	"github.com/abhisek/tutorlink/internal/usersession"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode and validate message envelopes",
	Long:  "Reads one or more JSON envelopes from a file or stdin, validates them and prints each decoded message.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().Bool("record", false, "Record each message in the journal")
	decodeCmd.Flags().String("session", "", "Session id for messages that carry none")
}

func runDecode(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	var d dispatch.Dispatcher = printRouter(out)

	if record, _ := cmd.Flags().GetBool("record"); record {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		d = dispatch.WithJournal(d, s.JournalRepo())
	}

	session, _ := cmd.Flags().GetString("session")
	ctx := cmd.Context()

	dec := json.NewDecoder(in)
	var failed int
	for n := 1; ; n++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("read message %d: %w", n, err)
		}

		m, err := codec.Decode(raw)
		if err != nil {
			failed++
			logging.FromContext(ctx).Error("decode failed", "message", n, "error", err)
			continue
		}
		if m.SessionID == "" {
			m.SessionID = session
		}

		if err := d.Dispatch(ctx, m); err != nil {
			failed++
			logging.FromContext(ctx).Error("dispatch failed", "message_id", m.ID, "error", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d message(s) failed", failed)
	}
	return nil
}

// printRouter returns a Router that writes every message it receives to w.
func printRouter(w io.Writer) *dispatch.Router {
	return dispatch.NewRouter().
		OnTutorAction(func(_ context.Context, a tutoraction.Action) error {
			_, err := fmt.Fprintln(w, a)
			return err
		}).
		OnAssessment(func(_ context.Context, c tutorui.DomainAssessmentContent) error {
			_, err := fmt.Fprintf(w, "  assessment: %s\n", c.AssessmentSummary())
			return err
		}).
		OnPedagogicalRequest(func(_ context.Context, r pedagogy.Request) error {
			_, err := fmt.Fprintln(w, r)
			return err
		}).
		OnRequestSet(func(_ context.Context, s *pedagogy.RequestSet) error {
			_, err := fmt.Fprintln(w, s)
			return err
		}).
		OnFeedback(func(_ context.Context, a feedback.Action) error {
			_, err := fmt.Fprintln(w, a)
			return err
		}).
		OnSurveyCompleted(tutorui.SurveyResultFunc(func(resp tutorui.SurveyResponse) {
			fmt.Fprintf(w, "[SurveyResponse: surveyID = %d, surveyName = %s, answers = %d]\n",
				resp.SurveyID, resp.SurveyName, len(resp.Answers))
		})).
		OnRuntimeParameters(func(_ context.Context, p usersession.RuntimeParameters) error {
			_, err := fmt.Fprintln(w, p)
			return err
		})
}
