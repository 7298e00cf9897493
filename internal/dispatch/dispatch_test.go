package dispatch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/abhisek/tutorlink/internal/codec"
	"github.com/abhisek/tutorlink/internal/feedback"
	"github.com/abhisek/tutorlink/internal/pedagogy"
	"github.com/abhisek/tutorlink/internal/store"
	"github.com/abhisek/tutorlink/internal/tutoraction"
	"github.com/abhisek/tutorlink/internal/tutorui"
	"github.com/abhisek/tutorlink/internal/usersession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memJournal struct {
	mu      sync.Mutex
	entries []store.JournalEntryData
	err     error
}

func (j *memJournal) Append(_ context.Context, data store.JournalEntryData) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, data)
	return nil
}

func (j *memJournal) List(context.Context, store.QueryOpts) ([]store.JournalEntry, error) {
	return nil, nil
}

func (j *memJournal) Stats(context.Context) ([]store.KindCount, error) {
	return nil, nil
}

func (j *memJournal) Reset(context.Context) (int64, error) {
	return 0, nil
}

var radio = &tutoraction.LearnerActionRef{DisplayName: "Radio", Type: tutoraction.TypeRadio}

func TestRouterTutorAction(t *testing.T) {
	var got []tutoraction.Kind
	r := NewRouter().OnTutorAction(func(_ context.Context, a tutoraction.Action) error {
		got = append(got, a.Kind())
		return nil
	})

	require.NoError(t, r.Dispatch(context.Background(), codec.Wrap("s", 0, tutoraction.NewRadioUsed(radio))))
	require.NoError(t, r.Dispatch(context.Background(), codec.Wrap("s", 0, tutoraction.NewFinishScenario())))
	assert.Equal(t, []tutoraction.Kind{tutoraction.KindRadioUsed, tutoraction.KindFinishScenario}, got)
}

func TestRouterAssessment(t *testing.T) {
	var summaries []string
	r := NewRouter().OnAssessment(func(_ context.Context, c tutorui.DomainAssessmentContent) error {
		summaries = append(summaries, c.AssessmentSummary())
		return nil
	})

	report := tutoraction.NewSpotReport(&tutoraction.LearnerActionRef{Type: tutoraction.TypeSpotReport})
	require.NoError(t, r.Dispatch(context.Background(), codec.Wrap("", 0, report)))
	assert.Equal(t, []string{"Spot report submitted"}, summaries)

	// Non-report actions have no handler here.
	err := r.Dispatch(context.Background(), codec.Wrap("", 0, tutoraction.NewTutorMe(nil)))
	assert.ErrorIs(t, err, ErrUnhandled)
}

func TestRouterActionErrorSkipsAssessment(t *testing.T) {
	boom := errors.New("boom")
	called := false
	r := NewRouter().
		OnTutorAction(func(context.Context, tutoraction.Action) error { return boom }).
		OnAssessment(func(context.Context, tutorui.DomainAssessmentContent) error {
			called = true
			return nil
		})

	report := tutoraction.NewNineLineReport(&tutoraction.LearnerActionRef{Type: tutoraction.TypeNineLineReport})
	err := r.Dispatch(context.Background(), codec.Wrap("", 0, report))
	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}

func TestRouterRequestSetFansOut(t *testing.T) {
	var names []string
	r := NewRouter().OnPedagogicalRequest(func(_ context.Context, req pedagogy.Request) error {
		names = append(names, req.StrategyName())
		return nil
	})

	set := pedagogy.NewRequestSet()
	set.Add("a", pedagogy.NewDoNothingTactic("first"))
	set.Add("b", pedagogy.NewMidLessonMedia("second"))
	set.Add("a", pedagogy.NewScenarioAdaptation("third"))

	require.NoError(t, r.Dispatch(context.Background(), codec.Wrap("", 0, set)))
	assert.Equal(t, []string{"first", "third", "second"}, names)
}

func TestRouterRequestSetHandlerWins(t *testing.T) {
	var sets, requests int
	r := NewRouter().
		OnPedagogicalRequest(func(context.Context, pedagogy.Request) error { requests++; return nil }).
		OnRequestSet(func(context.Context, *pedagogy.RequestSet) error { sets++; return nil })

	set := pedagogy.NewRequestSet()
	set.Add("a", pedagogy.NewDoNothingTactic("x"))
	require.NoError(t, r.Dispatch(context.Background(), codec.Wrap("", 0, set)))
	assert.Equal(t, 1, sets)
	assert.Equal(t, 0, requests)
}

func TestRouterRequestSetStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	r := NewRouter().OnPedagogicalRequest(func(context.Context, pedagogy.Request) error {
		calls++
		return boom
	})

	set := pedagogy.NewRequestSet()
	set.Add("a", pedagogy.NewDoNothingTactic("x"))
	set.Add("a", pedagogy.NewDoNothingTactic("y"))
	err := r.Dispatch(context.Background(), codec.Wrap("", 0, set))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRouterFeedbackSurveyRuntime(t *testing.T) {
	var fb feedback.Action
	var survey tutorui.SurveyResponse
	var params usersession.RuntimeParameters

	r := NewRouter().
		OnFeedback(func(_ context.Context, a feedback.Action) error { fb = a; return nil }).
		OnSurveyCompleted(tutorui.SurveyResultFunc(func(resp tutorui.SurveyResponse) { survey = resp })).
		OnRuntimeParameters(func(_ context.Context, p usersession.RuntimeParameters) error { params = p; return nil })

	ctx := context.Background()
	require.NoError(t, r.Dispatch(ctx, codec.Wrap("", 0, feedback.NewPlayAudioAction("a.mp3", ""))))
	require.NoError(t, r.Dispatch(ctx, codec.Wrap("", 0, tutorui.SurveyResponse{SurveyID: 4})))

	lti, err := usersession.NewLTIRuntimeParameters("k", "u", "s")
	require.NoError(t, err)
	require.NoError(t, r.Dispatch(ctx, codec.Wrap("", 0, lti)))

	assert.True(t, fb.HasAudio())
	assert.Equal(t, 4, survey.SurveyID)
	assert.Equal(t, lti, params)
}

func TestRouterUnhandled(t *testing.T) {
	r := NewRouter()
	err := r.Dispatch(context.Background(), codec.Wrap("", 0, feedback.ClearTextAction{}))
	require.ErrorIs(t, err, ErrUnhandled)
	assert.Contains(t, err.Error(), "feedback/ClearTextAction")
}

func TestRouterUnsupportedValue(t *testing.T) {
	err := NewRouter().Dispatch(context.Background(), codec.Wrap("", 0, "hello"))
	var uv *codec.UnsupportedValueError
	assert.ErrorAs(t, err, &uv)
}

func TestJournalRecordsOutcome(t *testing.T) {
	journal := &memJournal{}
	boom := errors.New("display offline")
	d := WithJournal(NewRouter().OnFeedback(func(_ context.Context, a feedback.Action) error {
		if a.Kind() == feedback.KindDisplayHTML {
			return boom
		}
		return nil
	}), journal)

	ctx := context.Background()
	require.NoError(t, d.Dispatch(ctx, codec.Wrap("s-1", usersession.Experiment, feedback.NewDisplayTextAction("hi"))))
	err := d.Dispatch(ctx, codec.Wrap("s-1", 0, feedback.NewDisplayHTMLAction("https://x")))
	assert.ErrorIs(t, err, boom)

	require.Len(t, journal.entries, 2)

	ok := journal.entries[0]
	assert.True(t, ok.Handled)
	assert.Equal(t, "s-1", ok.SessionID)
	assert.Equal(t, "EXPERIMENT_USER", ok.SessionType)
	assert.Equal(t, "feedback", ok.Family)
	assert.Equal(t, "DisplayTextAction", ok.Kind)
	assert.Contains(t, ok.Summary, "hi")
	assert.Empty(t, ok.Error)

	decoded, err := codec.Decode(ok.Envelope)
	require.NoError(t, err)
	assert.Equal(t, feedback.NewDisplayTextAction("hi"), decoded.Value)

	failed := journal.entries[1]
	assert.False(t, failed.Handled)
	assert.Empty(t, failed.SessionType)
	assert.Equal(t, "display offline", failed.Error)
}

func TestJournalFailureDoesNotFailDispatch(t *testing.T) {
	journal := &memJournal{err: errors.New("disk full")}
	d := WithJournal(NewRouter().OnFeedback(func(context.Context, feedback.Action) error { return nil }), journal)

	err := d.Dispatch(context.Background(), codec.Wrap("", 0, feedback.ClearTextAction{}))
	assert.NoError(t, err)
}

func TestJournalUnsupportedValue(t *testing.T) {
	journal := &memJournal{}
	d := WithJournal(NewRouter(), journal)

	err := d.Dispatch(context.Background(), codec.Wrap("", 0, 3.14))
	require.Error(t, err)
	require.Len(t, journal.entries, 1)
	assert.Empty(t, journal.entries[0].Family)
	assert.Nil(t, journal.entries[0].Envelope)
	assert.Equal(t, "3.14", journal.entries[0].Summary)
}

func TestJournalWithStore(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	repo := s.JournalRepo()
	d := WithJournal(NewRouter().OnTutorAction(func(context.Context, tutoraction.Action) error { return nil }), repo)

	ctx := context.Background()
	require.NoError(t, d.Dispatch(ctx, codec.Wrap("s-9", usersession.LTI, tutoraction.NewRadioUsed(radio))))
	assert.ErrorIs(t, d.Dispatch(ctx, codec.Wrap("s-9", 0, pedagogy.NewDoNothingTactic("wait"))), ErrUnhandled)

	entries, err := repo.List(ctx, store.QueryOpts{SessionID: "s-9"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].Sequence)
	assert.Equal(t, "RadioUsed", entries[0].Kind)
	assert.Equal(t, "LTI_USER", entries[0].SessionType)
	assert.True(t, entries[0].Handled)
	assert.False(t, entries[1].Handled)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats, 2)
}
