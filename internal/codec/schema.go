package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/abhisek/tutorlink/internal/feedback"
	"github.com/abhisek/tutorlink/internal/pedagogy"
	"github.com/abhisek/tutorlink/internal/tutoraction"
	"github.com/abhisek/tutorlink/internal/usersession"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema definition.
type Schema struct {
	// Name identifies the schema, e.g. "envelope" or "feedback/PlayAudioAction".
	Name       string
	Definition map[string]any
}

// compiled schemas keyed by Schema.Name
var schemaCache sync.Map

func stringEnum[T ~string](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func sessionTypeNames() []any {
	var out []any
	for _, t := range usersession.Types() {
		out = append(out, t.String())
	}
	return out
}

func familyNames() []any {
	return stringEnum(Families())
}

// EnvelopeSchema describes the outer envelope shared by every message.
var EnvelopeSchema = &Schema{
	Name: "envelope",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version":      map[string]any{"type": "string", "minLength": 1},
			"id":           map[string]any{"type": "string", "minLength": 1},
			"session_id":   map[string]any{"type": "string"},
			"session_type": map[string]any{"type": "string", "enum": sessionTypeNames()},
			"family":       map[string]any{"type": "string", "enum": familyNames()},
			"kind":         map[string]any{"type": "string", "minLength": 1},
			"timestamp":    dateTime,
			"payload":      map[string]any{"type": "object"},
		},
		"required":             []any{"version", "id", "family", "kind", "timestamp", "payload"},
		"additionalProperties": false,
	},
}

var learnerActionDefinition = map[string]any{
	"type": []any{"object", "null"},
	"properties": map[string]any{
		"display_name": map[string]any{"type": "string"},
		"type":         map[string]any{"type": "string", "enum": stringEnum(tutoraction.LearnerActionTypes())},
		"description":  map[string]any{"type": "string"},
	},
	"required":             []any{"type"},
	"additionalProperties": false,
}

func requestDefinition(withKind bool) map[string]any {
	props := map[string]any{
		"strategy_name": map[string]any{"type": "string"},
		"macro":         map[string]any{"type": "boolean"},
		"delay_ms":      map[string]any{"type": "integer", "minimum": 0, "maximum": maxDelayMs},
		"reason":        map[string]any{"type": "string"},
		"task_concepts": map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
	}
	required := []any{"strategy_name"}
	if withKind {
		props["kind"] = map[string]any{"type": "string", "enum": stringEnum(pedagogy.Kinds())}
		required = append(required, "kind")
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func objectOf(props map[string]any, required ...any) map[string]any {
	def := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		def["required"] = required
	}
	return def
}

// maxDelayMs is the largest delay that fits in a time.Duration.
const maxDelayMs = math.MaxInt64 / int64(time.Millisecond)

var dateTime = map[string]any{"type": "string", "format": "date-time"}

var nonEmptyString = map[string]any{"type": "string", "minLength": 1}

// payloadSchemas holds the payload schema per family, or per family/kind
// when the kinds of a family carry different payloads.
var payloadSchemas = map[string]*Schema{
	string(FamilyTutorAction): {
		Definition: objectOf(map[string]any{"learner_action": learnerActionDefinition}),
	},
	string(FamilyPedagogicalRequest): {
		Definition: requestDefinition(false),
	},
	string(FamilyPedagogicalRequestSet): {
		Definition: objectOf(map[string]any{
			"groups": map[string]any{
				"type": "array",
				"items": objectOf(map[string]any{
					"reason":   map[string]any{"type": "string"},
					"requests": map[string]any{"type": "array", "items": requestDefinition(true)},
				}, "reason", "requests"),
			},
		}, "groups"),
	},
	string(FamilyFeedback) + "/" + string(feedback.KindClearText): {
		Definition: objectOf(map[string]any{}),
	},
	string(FamilyFeedback) + "/" + string(feedback.KindDisplayText): {
		Definition: objectOf(map[string]any{"text": map[string]any{"type": "string"}}, "text"),
	},
	string(FamilyFeedback) + "/" + string(feedback.KindPlayAudio): {
		Definition: objectOf(map[string]any{
			"mp3_file": nonEmptyString,
			"ogg_file": map[string]any{"type": "string"},
		}, "mp3_file"),
	},
	string(FamilyFeedback) + "/" + string(feedback.KindDisplayHTML): {
		Definition: objectOf(map[string]any{"url": nonEmptyString}, "url"),
	},
	string(FamilySurveyResponse): {
		Definition: objectOf(map[string]any{
			"survey_id":   map[string]any{"type": "integer"},
			"survey_name": map[string]any{"type": "string"},
			"answers": map[string]any{
				"type": "array",
				"items": objectOf(map[string]any{
					"question_id": map[string]any{"type": "integer"},
					"text":        map[string]any{"type": "string"},
				}, "question_id", "text"),
			},
			"completed_at": dateTime,
		}, "survey_id", "answers"),
	},
	string(FamilyRuntimeParameters) + "/" + KindLTIRuntimeParameters: {
		Definition: objectOf(map[string]any{
			"consumer_key":        nonEmptyString,
			"outcome_service_url": nonEmptyString,
			"sourced_id":          nonEmptyString,
		}, "consumer_key", "outcome_service_url", "sourced_id"),
	},
}

func init() {
	for name, s := range payloadSchemas {
		s.Name = "payload/" + name
	}
}

// payloadSchema returns the schema for a family and kind, preferring the
// kind-specific one.
func payloadSchema(family Family, kind string) (*Schema, bool) {
	if s, ok := payloadSchemas[string(family)+"/"+kind]; ok {
		return s, true
	}
	s, ok := payloadSchemas[string(family)]
	return s, ok
}

// validate returns a *ValidationError when raw does not satisfy schema.
func validate(schema *Schema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ValidationError{
			Schema:  schema.Name,
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return &ValidationError{
			Schema:  schema.Name,
			Content: raw,
			Err:     fmt.Errorf("compile schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ValidationError{
			Schema:  schema.Name,
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return nil
}

func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// Round-trip through JSON so Go ints become the float64 values the
	// compiler understands.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	schemaURL := fmt.Sprintf("schema://tutorlink/%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
