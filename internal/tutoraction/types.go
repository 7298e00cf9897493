// Package tutoraction models the actions a learner takes through the tutor
// interface during a session, including the reports they submit.
package tutoraction

import (
	"fmt"

	"github.com/abhisek/tutorlink/internal/enum"
)

// LearnerActionType is the authored type of a learner action button.
type LearnerActionType string

const (
	TypeRadio                     LearnerActionType = "RADIO"
	TypeStartPaceCount            LearnerActionType = "START_PACE_COUNT"
	TypeEndPaceCount              LearnerActionType = "END_PACE_COUNT"
	TypeNineLineReport            LearnerActionType = "NINE_LINE_REPORT"
	TypeSpotReport                LearnerActionType = "SPOT_REPORT"
	TypeExplosiveHazardSpotReport LearnerActionType = "EXPLOSIVE_HAZARD_SPOT_REPORT"
	TypeTutorMe                   LearnerActionType = "TUTOR_ME"
	TypeAssessMyLocation          LearnerActionType = "ASSESS_MY_LOCATION"
	TypeApplyStrategy             LearnerActionType = "APPLY_STRATEGY"
)

// LearnerActionTypes returns every learner action type.
func LearnerActionTypes() []LearnerActionType {
	return []LearnerActionType{
		TypeRadio,
		TypeStartPaceCount,
		TypeEndPaceCount,
		TypeNineLineReport,
		TypeSpotReport,
		TypeExplosiveHazardSpotReport,
		TypeTutorMe,
		TypeAssessMyLocation,
		TypeApplyStrategy,
	}
}

// ParseLearnerActionType decodes an authored type string.
func ParseLearnerActionType(s string) (LearnerActionType, error) {
	return enum.Lookup("learner action type", s, LearnerActionTypes(),
		func(t LearnerActionType) string { return string(t) })
}

// LearnerActionRef is the authored description of a learner action, as
// supplied by the authoring system.
type LearnerActionRef struct {
	DisplayName string            `json:"display_name"`
	Type        LearnerActionType `json:"type"`
	Description string            `json:"description,omitempty"`
}

func (r *LearnerActionRef) String() string {
	if r == nil {
		return "<none>"
	}
	return fmt.Sprintf("[LearnerAction: displayName = %s, type = %s, description = %s]",
		r.DisplayName, r.Type, r.Description)
}

// clone returns a copy of r, or nil when r is nil.
func (r *LearnerActionRef) clone() *LearnerActionRef {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
