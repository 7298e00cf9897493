package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/tutorlink/internal/feedback"
	"github.com/abhisek/tutorlink/internal/pedagogy"
	"github.com/abhisek/tutorlink/internal/tutoraction"
	"github.com/abhisek/tutorlink/internal/tutorui"
	"github.com/abhisek/tutorlink/internal/usersession"
)

// Kinds of the families that have a single kind.
const (
	KindRequestSet           = "PedagogicalRequest"
	KindSurveyResponse       = "SurveyResponse"
	KindLTIRuntimeParameters = "LtiRuntimeParameters"
)

type tutorActionPayload struct {
	LearnerAction *tutoraction.LearnerActionRef `json:"learner_action"`
}

type requestPayload struct {
	Kind         pedagogy.Kind `json:"kind,omitempty"`
	StrategyName string        `json:"strategy_name"`
	Macro        bool          `json:"macro"`
	DelayMs      int64         `json:"delay_ms"`
	Reason       string        `json:"reason,omitempty"`
	TaskConcepts []int         `json:"task_concepts,omitempty"`
}

type requestGroupPayload struct {
	Reason   string           `json:"reason"`
	Requests []requestPayload `json:"requests"`
}

type requestSetPayload struct {
	Groups []requestGroupPayload `json:"groups"`
}

type displayTextPayload struct {
	Text string `json:"text"`
}

type playAudioPayload struct {
	MP3File string `json:"mp3_file"`
	OGGFile string `json:"ogg_file,omitempty"`
}

type displayHTMLPayload struct {
	URL string `json:"url"`
}

type ltiPayload struct {
	ConsumerKey       string `json:"consumer_key"`
	OutcomeServiceURL string `json:"outcome_service_url"`
	SourcedID         string `json:"sourced_id"`
}

// classify returns the family and kind of a message value.
func classify(v any) (Family, string, error) {
	switch v := v.(type) {
	case tutoraction.Action:
		return FamilyTutorAction, string(v.Kind()), nil
	case pedagogy.Request:
		return FamilyPedagogicalRequest, string(v.Kind()), nil
	case *pedagogy.RequestSet:
		return FamilyPedagogicalRequestSet, KindRequestSet, nil
	case feedback.Action:
		return FamilyFeedback, string(v.Kind()), nil
	case tutorui.SurveyResponse:
		return FamilySurveyResponse, KindSurveyResponse, nil
	case usersession.LTIRuntimeParameters:
		return FamilyRuntimeParameters, KindLTIRuntimeParameters, nil
	default:
		return "", "", &UnsupportedValueError{Value: v}
	}
}

func toRequestPayload(r pedagogy.Request, withKind bool) requestPayload {
	p := requestPayload{
		StrategyName: r.StrategyName(),
		Macro:        r.Macro(),
		DelayMs:      r.DelayAfter().Milliseconds(),
		Reason:       r.Reason(),
		TaskConcepts: r.TaskConcepts(),
	}
	if withKind {
		p.Kind = r.Kind()
	}
	return p
}

func (p requestPayload) toRequest(kind pedagogy.Kind) (pedagogy.Request, error) {
	return pedagogy.NewRequest(kind, p.StrategyName,
		pedagogy.WithMacro(p.Macro),
		pedagogy.WithDelayAfter(time.Duration(p.DelayMs)*time.Millisecond),
		pedagogy.WithReason(p.Reason),
		pedagogy.WithTaskConcepts(p.TaskConcepts...),
	)
}

// encodePayload returns the payload object for a message value.
func encodePayload(v any) (any, error) {
	switch v := v.(type) {
	case tutoraction.Action:
		return tutorActionPayload{LearnerAction: v.LearnerAction()}, nil
	case pedagogy.Request:
		return toRequestPayload(v, false), nil
	case *pedagogy.RequestSet:
		p := requestSetPayload{Groups: []requestGroupPayload{}}
		for _, g := range v.Groups() {
			gp := requestGroupPayload{Reason: g.Reason, Requests: []requestPayload{}}
			for _, r := range g.Requests {
				gp.Requests = append(gp.Requests, toRequestPayload(r, true))
			}
			p.Groups = append(p.Groups, gp)
		}
		return p, nil
	case feedback.ClearTextAction:
		return struct{}{}, nil
	case feedback.DisplayTextAction:
		return displayTextPayload{Text: v.Text()}, nil
	case feedback.PlayAudioAction:
		return playAudioPayload{MP3File: v.MP3File(), OGGFile: v.OGGFile()}, nil
	case feedback.DisplayHTMLAction:
		return displayHTMLPayload{URL: v.URL()}, nil
	case tutorui.SurveyResponse:
		if v.Answers == nil {
			v.Answers = []tutorui.SurveyAnswer{}
		}
		return v, nil
	case usersession.LTIRuntimeParameters:
		return ltiPayload{
			ConsumerKey:       v.ConsumerKey(),
			OutcomeServiceURL: v.OutcomeServiceURL(),
			SourcedID:         v.SourcedID(),
		}, nil
	default:
		return nil, &UnsupportedValueError{Value: v}
	}
}

// decodePayload builds the message value for a family, kind and payload that
// has already passed schema validation.
func decodePayload(family Family, kind string, raw json.RawMessage) (any, error) {
	switch family {
	case FamilyTutorAction:
		k, err := tutoraction.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		var p tutorActionPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return tutoraction.New(k, p.LearnerAction)

	case FamilyPedagogicalRequest:
		k, err := pedagogy.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		var p requestPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return p.toRequest(k)

	case FamilyPedagogicalRequestSet:
		if kind != KindRequestSet {
			return nil, fmt.Errorf("unexpected kind %q for %s", kind, family)
		}
		var p requestSetPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		set := pedagogy.NewRequestSet()
		for _, g := range p.Groups {
			for _, rp := range g.Requests {
				r, err := rp.toRequest(rp.Kind)
				if err != nil {
					return nil, err
				}
				set.Add(g.Reason, r)
			}
		}
		return set, nil

	case FamilyFeedback:
		k, err := feedback.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		return decodeFeedback(k, raw)

	case FamilySurveyResponse:
		if kind != KindSurveyResponse {
			return nil, fmt.Errorf("unexpected kind %q for %s", kind, family)
		}
		var resp tutorui.SurveyResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, err
		}
		return resp, nil

	case FamilyRuntimeParameters:
		if kind != KindLTIRuntimeParameters {
			return nil, fmt.Errorf("unexpected kind %q for %s", kind, family)
		}
		var p ltiPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return usersession.NewLTIRuntimeParameters(p.ConsumerKey, p.OutcomeServiceURL, p.SourcedID)

	default:
		return nil, fmt.Errorf("unknown family %q", family)
	}
}

func decodeFeedback(kind feedback.Kind, raw json.RawMessage) (feedback.Action, error) {
	switch kind {
	case feedback.KindClearText:
		return feedback.ClearTextAction{}, nil
	case feedback.KindDisplayText:
		var p displayTextPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return feedback.NewDisplayTextAction(p.Text), nil
	case feedback.KindPlayAudio:
		var p playAudioPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return feedback.NewPlayAudioAction(p.MP3File, p.OGGFile), nil
	case feedback.KindDisplayHTML:
		var p displayHTMLPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return feedback.NewDisplayHTMLAction(p.URL), nil
	default:
		return nil, fmt.Errorf("unsupported feedback kind %q", kind)
	}
}
