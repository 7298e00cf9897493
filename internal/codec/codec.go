// Package codec encodes tutorlink message values into a versioned JSON
// envelope and decodes them back, validating both the envelope and its
// payload against JSON schemas.
package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/tutorlink/internal/enum"
	"github.com/abhisek/tutorlink/internal/usersession"
	"github.com/google/uuid"
)

// Family groups message values that share a payload shape and a consumer.
type Family string

const (
	FamilyTutorAction           Family = "tutor_action"
	FamilyPedagogicalRequest    Family = "pedagogical_request"
	FamilyPedagogicalRequestSet Family = "pedagogical_request_set"
	FamilyFeedback              Family = "feedback"
	FamilySurveyResponse        Family = "survey_response"
	FamilyRuntimeParameters     Family = "runtime_parameters"
)

// Families returns every message family.
func Families() []Family {
	return []Family{
		FamilyTutorAction,
		FamilyPedagogicalRequest,
		FamilyPedagogicalRequestSet,
		FamilyFeedback,
		FamilySurveyResponse,
		FamilyRuntimeParameters,
	}
}

// Envelope is the wire form of a message.
type Envelope struct {
	Version     string           `json:"version"`
	ID          string           `json:"id"`
	SessionID   string           `json:"session_id,omitempty"`
	SessionType usersession.Type `json:"session_type,omitempty"`
	Family      Family           `json:"family"`
	Kind        string           `json:"kind"`
	Timestamp   time.Time        `json:"timestamp"`
	Payload     json.RawMessage  `json:"payload"`
}

// Message is a decoded message value with its routing metadata.
//
// Value is one of tutoraction.Action, pedagogy.Request,
// *pedagogy.RequestSet, feedback.Action, tutorui.SurveyResponse or
// usersession.RuntimeParameters.
type Message struct {
	ID          string
	SessionID   string
	SessionType usersession.Type // zero when unknown
	Timestamp   time.Time
	Value       any
}

// Wrap returns a Message carrying v with a fresh id and the current time.
func Wrap(sessionID string, sessionType usersession.Type, v any) *Message {
	return &Message{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		SessionType: sessionType,
		Timestamp:   time.Now().UTC(),
		Value:       v,
	}
}

// Classify returns the family and kind of the message's value.
func (m *Message) Classify() (Family, string, error) {
	return classify(m.Value)
}

// Encode returns the JSON envelope for m. The payload is checked against the
// same schema Decode uses, so a *ValidationError means the value could not
// be read back.
func Encode(m *Message) ([]byte, error) {
	family, kind, err := classify(m.Value)
	if err != nil {
		return nil, err
	}

	payload, err := encodePayload(m.Value)
	if err != nil {
		return nil, err
	}
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	if schema, ok := payloadSchema(family, kind); ok {
		if err := validate(schema, rawPayload); err != nil {
			return nil, err
		}
	}

	env := Envelope{
		Version:     ProtocolVersion,
		ID:          m.ID,
		SessionID:   m.SessionID,
		SessionType: m.SessionType,
		Family:      family,
		Kind:        kind,
		Timestamp:   m.Timestamp,
		Payload:     rawPayload,
	}
	b, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return b, nil
}

// Decode parses and validates a JSON envelope and returns the message it
// carries. Schema failures are *ValidationError, incompatible versions are
// *VersionError and unknown kinds are *enum.Error.
func Decode(raw []byte) (*Message, error) {
	if err := validate(EnvelopeSchema, raw); err != nil {
		return nil, err
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	if err := checkVersion(env.Version); err != nil {
		return nil, err
	}

	schema, ok := payloadSchema(env.Family, env.Kind)
	if !ok {
		return nil, enum.NewError(fmt.Sprintf("no %s kind named %q", env.Family, env.Kind), nil)
	}
	if err := validate(schema, env.Payload); err != nil {
		return nil, err
	}

	value, err := decodePayload(env.Family, env.Kind, env.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", env.Family, env.Kind, err)
	}

	return &Message{
		ID:          env.ID,
		SessionID:   env.SessionID,
		SessionType: env.SessionType,
		Timestamp:   env.Timestamp,
		Value:       value,
	}, nil
}
