package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/tutorlink/internal/codec"
	"github.com/abhisek/tutorlink/internal/feedback"
	"github.com/abhisek/tutorlink/internal/pedagogy"
	"github.com/abhisek/tutorlink/internal/tutoraction"
	"github.com/abhisek/tutorlink/internal/usersession"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build a message and print its JSON envelope",
}

var encodeActionCmd = &cobra.Command{
	Use:   "action [kind]",
	Short: "Encode a learner tutor action",
	Long: "Encodes a tutor action. Without a kind, the action is chosen from the learner action --type.\n" +
		"Run 'tutorlink types' for the accepted kinds and types.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var la *tutoraction.LearnerActionRef
		if t, _ := cmd.Flags().GetString("type"); t != "" {
			lt, err := tutoraction.ParseLearnerActionType(t)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("display-name")
			desc, _ := cmd.Flags().GetString("description")
			la = &tutoraction.LearnerActionRef{DisplayName: name, Type: lt, Description: desc}
		}

		var action tutoraction.Action
		var err error
		if len(args) == 1 {
			kind, perr := tutoraction.ParseKind(args[0])
			if perr != nil {
				return perr
			}
			action, err = tutoraction.New(kind, la)
		} else {
			action, err = tutoraction.FromLearnerAction(la)
		}
		if err != nil {
			return err
		}
		return printEnvelope(cmd, action)
	},
}

var encodeRequestCmd = &cobra.Command{
	Use:   "request <kind> <strategy-name>",
	Short: "Encode a pedagogical request",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := pedagogy.ParseKind(args[0])
		if err != nil {
			return err
		}
		macro, _ := cmd.Flags().GetBool("macro")
		delay, _ := cmd.Flags().GetDuration("delay")
		reason, _ := cmd.Flags().GetString("reason")
		concepts, _ := cmd.Flags().GetIntSlice("concepts")
		if delay < 0 {
			return errors.New("--delay must not be negative")
		}

		req, err := pedagogy.NewRequest(kind, args[1],
			pedagogy.WithMacro(macro),
			pedagogy.WithDelayAfter(delay),
			pedagogy.WithReason(reason),
			pedagogy.WithTaskConcepts(concepts...),
		)
		if err != nil {
			return err
		}
		return printEnvelope(cmd, req)
	},
}

var encodeFeedbackCmd = &cobra.Command{
	Use:   "feedback <kind>",
	Short: "Encode a feedback action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := feedback.ParseKind(args[0])
		if err != nil {
			return err
		}
		text, _ := cmd.Flags().GetString("text")
		mp3, _ := cmd.Flags().GetString("mp3")
		ogg, _ := cmd.Flags().GetString("ogg")
		url, _ := cmd.Flags().GetString("url")

		var action feedback.Action
		switch kind {
		case feedback.KindClearText:
			action = feedback.ClearTextAction{}
		case feedback.KindDisplayText:
			action = feedback.NewDisplayTextAction(text)
		case feedback.KindPlayAudio:
			if mp3 == "" {
				return errors.New("--mp3 is required for " + string(kind))
			}
			action = feedback.NewPlayAudioAction(mp3, ogg)
		case feedback.KindDisplayHTML:
			if url == "" {
				return errors.New("--url is required for " + string(kind))
			}
			action = feedback.NewDisplayHTMLAction(url)
		}
		return printEnvelope(cmd, action)
	},
}

func init() {
	pf := encodeCmd.PersistentFlags()
	pf.String("session", "", "Session id")
	pf.String("session-type", "", "Session type: NORMAL_USER, EXPERIMENT_USER or LTI_USER")

	f := encodeActionCmd.Flags()
	f.String("type", "", "Learner action type, e.g. RADIO")
	f.String("display-name", "", "Learner action display name")
	f.String("description", "", "Learner action description")

	f = encodeRequestCmd.Flags()
	f.Bool("macro", false, "Request is part of a macro strategy")
	f.Duration("delay", 0, "Delay to apply after the request, e.g. 2s")
	f.String("reason", "", "Reason the strategy was chosen")
	f.IntSlice("concepts", nil, "Task concept ids")

	f = encodeFeedbackCmd.Flags()
	f.String("text", "", "Text for DisplayTextAction")
	f.String("mp3", "", "MP3 file for PlayAudioAction")
	f.String("ogg", "", "OGG file for PlayAudioAction")
	f.String("url", "", "URL for DisplayHTMLAction")

	encodeCmd.AddCommand(encodeActionCmd)
	encodeCmd.AddCommand(encodeRequestCmd)
	encodeCmd.AddCommand(encodeFeedbackCmd)
}

func printEnvelope(cmd *cobra.Command, v any) error {
	session, _ := cmd.Flags().GetString("session")

	var st usersession.Type
	if name, _ := cmd.Flags().GetString("session-type"); name != "" {
		var err error
		if st, err = usersession.ParseType(name); err != nil {
			return err
		}
	}

	m := codec.Wrap(session, st, v)
	m.Timestamp = m.Timestamp.Truncate(time.Millisecond)
	raw, err := codec.Encode(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return err
}
