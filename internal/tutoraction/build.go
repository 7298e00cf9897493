package tutoraction

import (
	"errors"
	"fmt"

	"github.com/abhisek/tutorlink/internal/enum"
)

// ErrNoLearnerAction is returned by FromLearnerAction when the descriptor is nil.
var ErrNoLearnerAction = errors.New("learner action descriptor is required")

// FromLearnerAction returns the concrete action for an authored descriptor,
// chosen by its type.
func FromLearnerAction(la *LearnerActionRef) (Action, error) {
	if la == nil {
		return nil, ErrNoLearnerAction
	}

	switch la.Type {
	case TypeRadio:
		return NewRadioUsed(la), nil
	case TypeStartPaceCount:
		return NewPaceCountStarted(la), nil
	case TypeEndPaceCount:
		return NewPaceCountEnded(la), nil
	case TypeNineLineReport:
		return NewNineLineReport(la), nil
	case TypeSpotReport:
		return NewSpotReport(la), nil
	case TypeExplosiveHazardSpotReport:
		return NewExplosiveHazardSpotReport(la), nil
	case TypeTutorMe:
		return NewTutorMe(la), nil
	case TypeAssessMyLocation:
		return NewAssessMyLocation(la), nil
	case TypeApplyStrategy:
		return NewApplyStrategy(la), nil
	default:
		return nil, enum.NewError(fmt.Sprintf("unsupported learner action type %q", la.Type), nil)
	}
}

// New returns the action of the given kind. FinishScenario ignores la.
func New(kind Kind, la *LearnerActionRef) (Action, error) {
	switch kind {
	case KindFinishScenario:
		return NewFinishScenario(), nil
	case KindPaceCountStarted:
		return NewPaceCountStarted(la), nil
	case KindPaceCountEnded:
		return NewPaceCountEnded(la), nil
	case KindRadioUsed:
		return NewRadioUsed(la), nil
	case KindTutorMe:
		return NewTutorMe(la), nil
	case KindAssessMyLocation:
		return NewAssessMyLocation(la), nil
	case KindApplyStrategy:
		return NewApplyStrategy(la), nil
	case KindNineLineReport:
		return NewNineLineReport(la), nil
	case KindSpotReport:
		return NewSpotReport(la), nil
	case KindExplosiveHazardSpotReport:
		return NewExplosiveHazardSpotReport(la), nil
	default:
		return nil, enum.NewError(fmt.Sprintf("unsupported tutor action kind %q", kind), nil)
	}
}
