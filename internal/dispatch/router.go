// Package dispatch routes decoded messages to the handlers registered for
// their family.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/tutorlink/internal/codec"
	"github.com/abhisek/tutorlink/internal/feedback"
	"github.com/abhisek/tutorlink/internal/logging"
	"github.com/abhisek/tutorlink/internal/pedagogy"
	"github.com/abhisek/tutorlink/internal/tutoraction"
	"github.com/abhisek/tutorlink/internal/tutorui"
	"github.com/abhisek/tutorlink/internal/usersession"
)

// ErrUnhandled is returned when no handler is registered for a message.
var ErrUnhandled = errors.New("no handler registered")

// Dispatcher delivers a message to whatever consumes it.
type Dispatcher interface {
	Dispatch(ctx context.Context, m *codec.Message) error
}

type (
	TutorActionHandler       func(ctx context.Context, a tutoraction.Action) error
	AssessmentHandler        func(ctx context.Context, c tutorui.DomainAssessmentContent) error
	RequestHandler           func(ctx context.Context, r pedagogy.Request) error
	RequestSetHandler        func(ctx context.Context, s *pedagogy.RequestSet) error
	FeedbackHandler          func(ctx context.Context, a feedback.Action) error
	RuntimeParametersHandler func(ctx context.Context, p usersession.RuntimeParameters) error
)

// Router is a Dispatcher that selects a handler by the message value's
// family. Register handlers before the first Dispatch; Router is not safe
// for concurrent registration.
type Router struct {
	tutorAction TutorActionHandler
	assessment  AssessmentHandler
	request     RequestHandler
	requestSet  RequestSetHandler
	feedback    FeedbackHandler
	survey      tutorui.SurveyResultListener
	runtime     RuntimeParametersHandler
}

// NewRouter returns a Router with no handlers.
func NewRouter() *Router {
	return &Router{}
}

func (r *Router) OnTutorAction(h TutorActionHandler) *Router {
	r.tutorAction = h
	return r
}

// OnAssessment registers a handler for tutor actions that carry assessment
// content. It runs after the tutor action handler, if any.
func (r *Router) OnAssessment(h AssessmentHandler) *Router {
	r.assessment = h
	return r
}

func (r *Router) OnPedagogicalRequest(h RequestHandler) *Router {
	r.request = h
	return r
}

// OnRequestSet registers a handler for whole request sets. Without one, each
// request in a set goes to the pedagogical request handler in group order.
func (r *Router) OnRequestSet(h RequestSetHandler) *Router {
	r.requestSet = h
	return r
}

func (r *Router) OnFeedback(h FeedbackHandler) *Router {
	r.feedback = h
	return r
}

func (r *Router) OnSurveyCompleted(l tutorui.SurveyResultListener) *Router {
	r.survey = l
	return r
}

func (r *Router) OnRuntimeParameters(h RuntimeParametersHandler) *Router {
	r.runtime = h
	return r
}

// Dispatch calls the handler for m's value. It returns an error wrapping
// ErrUnhandled when nothing is registered for it.
func (r *Router) Dispatch(ctx context.Context, m *codec.Message) error {
	family, kind, err := m.Classify()
	if err != nil {
		return err
	}
	if m.SessionID != "" && logging.SessionFrom(ctx) == "" {
		ctx = logging.WithSession(ctx, m.SessionID)
	}
	logging.FromContext(ctx).Debug("dispatch", "family", family, "kind", kind, "message_id", m.ID)

	switch v := m.Value.(type) {
	case tutoraction.Action:
		return r.dispatchTutorAction(ctx, v)

	case pedagogy.Request:
		if r.request == nil {
			return unhandled(family, kind)
		}
		return r.request(ctx, v)

	case *pedagogy.RequestSet:
		if r.requestSet != nil {
			return r.requestSet(ctx, v)
		}
		if r.request == nil {
			return unhandled(family, kind)
		}
		for _, g := range v.Groups() {
			for _, req := range g.Requests {
				if err := r.request(ctx, req); err != nil {
					return fmt.Errorf("%s for %q: %w", req.Kind(), g.Reason, err)
				}
			}
		}
		return nil

	case feedback.Action:
		if r.feedback == nil {
			return unhandled(family, kind)
		}
		return r.feedback(ctx, v)

	case tutorui.SurveyResponse:
		if r.survey == nil {
			return unhandled(family, kind)
		}
		r.survey.SurveyCompleted(v)
		return nil

	case usersession.RuntimeParameters:
		if r.runtime == nil {
			return unhandled(family, kind)
		}
		return r.runtime(ctx, v)
	}
	return unhandled(family, kind)
}

func (r *Router) dispatchTutorAction(ctx context.Context, a tutoraction.Action) error {
	content, isReport := a.(tutorui.DomainAssessmentContent)
	if r.tutorAction == nil && (!isReport || r.assessment == nil) {
		return unhandled(codec.FamilyTutorAction, string(a.Kind()))
	}

	if r.tutorAction != nil {
		if err := r.tutorAction(ctx, a); err != nil {
			return err
		}
	}
	if isReport && r.assessment != nil {
		return r.assessment(ctx, content)
	}
	return nil
}

func unhandled(family codec.Family, kind string) error {
	return fmt.Errorf("%s/%s: %w", family, kind, ErrUnhandled)
}
