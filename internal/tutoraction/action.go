package tutoraction

import (
	"fmt"

	"github.com/abhisek/tutorlink/internal/enum"
)

// Kind identifies a learner tutor action variant.
type Kind string

const (
	KindFinishScenario            Kind = "FinishScenario"
	KindPaceCountStarted          Kind = "PaceCountStarted"
	KindPaceCountEnded            Kind = "PaceCountEnded"
	KindRadioUsed                 Kind = "RadioUsed"
	KindTutorMe                   Kind = "TutorMe"
	KindAssessMyLocation          Kind = "AssessMyLocation"
	KindApplyStrategy             Kind = "ApplyStrategy"
	KindNineLineReport            Kind = "NineLineReport"
	KindSpotReport                Kind = "SpotReport"
	KindExplosiveHazardSpotReport Kind = "ExplosiveHazardSpotReport"
)

// Kinds returns every action kind, reports last.
func Kinds() []Kind {
	return []Kind{
		KindFinishScenario,
		KindPaceCountStarted,
		KindPaceCountEnded,
		KindRadioUsed,
		KindTutorMe,
		KindAssessMyLocation,
		KindApplyStrategy,
		KindNineLineReport,
		KindSpotReport,
		KindExplosiveHazardSpotReport,
	}
}

// ParseKind decodes an external kind name.
func ParseKind(s string) (Kind, error) {
	return enum.Lookup("tutor action kind", s, Kinds(), func(k Kind) string { return string(k) })
}

// Action is a learner-initiated action recorded during a session.
type Action interface {
	Kind() Kind

	// LearnerAction returns a copy of the authored descriptor, or nil when
	// the action carries no authoring metadata.
	LearnerAction() *LearnerActionRef

	String() string

	isAction()
}

// Report is an action in which the learner submitted a report.
type Report interface {
	Action

	// AssessmentSummary describes the submitted report for display.
	AssessmentSummary() string

	isReport()
}

// ref holds the optional descriptor shared by every action variant.
type ref struct {
	la *LearnerActionRef
}

func (r ref) LearnerAction() *LearnerActionRef { return r.la.clone() }
func (ref) isAction() {}

func format(k Kind, la *LearnerActionRef) string {
	return fmt.Sprintf("[%s: learnerAction = %s]", k, la)
}

// FinishScenario asks to end the running scenario. It never carries a
// descriptor.
type FinishScenario struct{ ref }

func NewFinishScenario() FinishScenario { return FinishScenario{} }

func (FinishScenario) Kind() Kind { return KindFinishScenario }
func (a FinishScenario) String() string { return format(a.Kind(), nil) }

// PaceCountStarted marks the learner starting a pace count.
type PaceCountStarted struct{ ref }

func NewPaceCountStarted(la *LearnerActionRef) PaceCountStarted {
	return PaceCountStarted{ref{la.clone()}}
}

func (PaceCountStarted) Kind() Kind { return KindPaceCountStarted }
func (a PaceCountStarted) String() string { return format(a.Kind(), a.la) }

// PaceCountEnded marks the learner ending a pace count.
type PaceCountEnded struct{ ref }

func NewPaceCountEnded(la *LearnerActionRef) PaceCountEnded {
	return PaceCountEnded{ref{la.clone()}}
}

func (PaceCountEnded) Kind() Kind { return KindPaceCountEnded }
func (a PaceCountEnded) String() string { return format(a.Kind(), a.la) }

// RadioUsed marks the learner using the radio.
type RadioUsed struct{ ref }

func NewRadioUsed(la *LearnerActionRef) RadioUsed {
	return RadioUsed{ref{la.clone()}}
}

func (RadioUsed) Kind() Kind { return KindRadioUsed }
func (a RadioUsed) String() string { return format(a.Kind(), a.la) }

// TutorMe is the learner asking the tutor for help.
type TutorMe struct{ ref }

func NewTutorMe(la *LearnerActionRef) TutorMe {
	return TutorMe{ref{la.clone()}}
}

func (TutorMe) Kind() Kind { return KindTutorMe }
func (a TutorMe) String() string { return format(a.Kind(), a.la) }

// AssessMyLocation is the learner asking for an assessment of their
// current position.
type AssessMyLocation struct{ ref }

func NewAssessMyLocation(la *LearnerActionRef) AssessMyLocation {
	return AssessMyLocation{ref{la.clone()}}
}

func (AssessMyLocation) Kind() Kind { return KindAssessMyLocation }
func (a AssessMyLocation) String() string { return format(a.Kind(), a.la) }

// ApplyStrategy is the learner (or an observer acting for them) applying an
// authored strategy.
type ApplyStrategy struct{ ref }

func NewApplyStrategy(la *LearnerActionRef) ApplyStrategy {
	return ApplyStrategy{ref{la.clone()}}
}

func (ApplyStrategy) Kind() Kind { return KindApplyStrategy }
func (a ApplyStrategy) String() string { return format(a.Kind(), a.la) }
