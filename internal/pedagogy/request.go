// Package pedagogy models the requests the pedagogical layer issues when it
// decides an instructional strategy should be carried out.
package pedagogy

import (
	"fmt"
	"slices"
	"time"

	"github.com/abhisek/tutorlink/internal/enum"
)

// Kind identifies a pedagogical request variant.
type Kind string

const (
	KindDoNothingTactic           Kind = "RequestDoNothingTactic"
	KindInstructionalIntervention Kind = "RequestInstructionalIntervention"
	KindMidLessonMedia            Kind = "RequestMidLessonMedia"
	KindPerformanceAssessment     Kind = "RequestPerformanceAssessment"
	KindScenarioAdaptation        Kind = "RequestScenarioAdaptation"
)

// Kinds returns every request kind.
func Kinds() []Kind {
	return []Kind{
		KindDoNothingTactic,
		KindInstructionalIntervention,
		KindMidLessonMedia,
		KindPerformanceAssessment,
		KindScenarioAdaptation,
	}
}

// ParseKind decodes an external kind name.
func ParseKind(s string) (Kind, error) {
	return enum.Lookup("pedagogical request kind", s, Kinds(), func(k Kind) string { return string(k) })
}

// Request asks the pedagogical layer to carry out the named strategy.
type Request interface {
	Kind() Kind

	// StrategyName is the unique name of the authored strategy.
	StrategyName() string

	// Macro reports whether the request came from a macro (course level)
	// decision rather than a micro (scenario level) one.
	Macro() bool

	// DelayAfter is how long to wait after the strategy is applied, in
	// whole milliseconds.
	DelayAfter() time.Duration

	// Reason explains why the request was made. May be empty.
	Reason() string

	// TaskConcepts returns the ids of the task and concept nodes the request
	// applies to, in ascending order.
	TaskConcepts() []int

	String() string

	isRequest()
}

// Option sets an optional attribute at construction.
type Option func(*base)

// WithMacro marks the request as a macro request.
func WithMacro(macro bool) Option {
	return func(b *base) { b.macro = macro }
}

// WithDelayAfter sets the wait time after the strategy, rounded to the
// nearest millisecond. Negative durations are treated as zero.
func WithDelayAfter(d time.Duration) Option {
	return func(b *base) { b.delayAfter = max(d, 0).Round(time.Millisecond) }
}

// WithReason sets the reason for the request.
func WithReason(reason string) Option {
	return func(b *base) { b.reason = reason }
}

// WithTaskConcepts sets the task and concept node ids. Duplicates are dropped.
func WithTaskConcepts(ids ...int) Option {
	return func(b *base) {
		c := slices.Clone(ids)
		slices.Sort(c)
		b.taskConcepts = slices.Compact(c)
	}
}

// base holds the attributes every request variant carries.
type base struct {
	strategyName string
	macro        bool
	delayAfter   time.Duration
	reason       string
	taskConcepts []int
}

func newBase(strategyName string, opts []Option) base {
	b := base{strategyName: strategyName}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b base) StrategyName() string { return b.strategyName }
func (b base) Macro() bool { return b.macro }
func (b base) DelayAfter() time.Duration { return b.delayAfter }
func (b base) Reason() string { return b.reason }
func (b base) TaskConcepts() []int { return slices.Clone(b.taskConcepts) }
func (base) isRequest() {}

func (b base) format(k Kind) string {
	return fmt.Sprintf("[%s: strategyName = %s, macro = %t, reason = %s, delayAfter = %s, taskConcepts = %v]",
		k, b.strategyName, b.macro, b.reason, b.delayAfter, b.taskConcepts)
}

// RequestDoNothingTactic requests that nothing be done.
type RequestDoNothingTactic struct{ base }

func NewDoNothingTactic(strategyName string, opts ...Option) RequestDoNothingTactic {
	return RequestDoNothingTactic{newBase(strategyName, opts)}
}

func (RequestDoNothingTactic) Kind() Kind { return KindDoNothingTactic }
func (r RequestDoNothingTactic) String() string { return r.format(r.Kind()) }

// RequestInstructionalIntervention requests feedback or another
// intervention be given to the learner.
type RequestInstructionalIntervention struct{ base }

func NewInstructionalIntervention(strategyName string, opts ...Option) RequestInstructionalIntervention {
	return RequestInstructionalIntervention{newBase(strategyName, opts)}
}

func (RequestInstructionalIntervention) Kind() Kind { return KindInstructionalIntervention }
func (r RequestInstructionalIntervention) String() string { return r.format(r.Kind()) }

// RequestMidLessonMedia requests media be shown in the middle of a lesson.
type RequestMidLessonMedia struct{ base }

func NewMidLessonMedia(strategyName string, opts ...Option) RequestMidLessonMedia {
	return RequestMidLessonMedia{newBase(strategyName, opts)}
}

func (RequestMidLessonMedia) Kind() Kind { return KindMidLessonMedia }
func (r RequestMidLessonMedia) String() string { return r.format(r.Kind()) }

// RequestPerformanceAssessment requests the learner's performance be assessed.
type RequestPerformanceAssessment struct{ base }

func NewPerformanceAssessment(strategyName string, opts ...Option) RequestPerformanceAssessment {
	return RequestPerformanceAssessment{newBase(strategyName, opts)}
}

func (RequestPerformanceAssessment) Kind() Kind { return KindPerformanceAssessment }
func (r RequestPerformanceAssessment) String() string { return r.format(r.Kind()) }

// RequestScenarioAdaptation requests the running scenario be adapted.
type RequestScenarioAdaptation struct{ base }

func NewScenarioAdaptation(strategyName string, opts ...Option) RequestScenarioAdaptation {
	return RequestScenarioAdaptation{newBase(strategyName, opts)}
}

func (RequestScenarioAdaptation) Kind() Kind { return KindScenarioAdaptation }
func (r RequestScenarioAdaptation) String() string { return r.format(r.Kind()) }

// NewRequest returns the request variant of the given kind.
func NewRequest(kind Kind, strategyName string, opts ...Option) (Request, error) {
	switch kind {
	case KindDoNothingTactic:
		return NewDoNothingTactic(strategyName, opts...), nil
	case KindInstructionalIntervention:
		return NewInstructionalIntervention(strategyName, opts...), nil
	case KindMidLessonMedia:
		return NewMidLessonMedia(strategyName, opts...), nil
	case KindPerformanceAssessment:
		return NewPerformanceAssessment(strategyName, opts...), nil
	case KindScenarioAdaptation:
		return NewScenarioAdaptation(strategyName, opts...), nil
	default:
		return nil, enum.NewError(fmt.Sprintf("unsupported pedagogical request kind %q", kind), nil)
	}
}
