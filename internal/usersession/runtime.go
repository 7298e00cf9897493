package usersession

import (
	"errors"
	"fmt"
)

// RuntimeParameters configures a session when it starts. New kinds of
// configuration are added as new implementations.
type RuntimeParameters interface {
	String() string

	isRuntimeParameters()
}

// ErrIncompleteLTIParameters is returned when any LTI launch value is missing.
var ErrIncompleteLTIParameters = errors.New("lti runtime parameters require consumer key, outcome service URL and sourced id")

// LTIRuntimeParameters carries what is needed to report an outcome back to an
// LTI tool consumer.
type LTIRuntimeParameters struct {
	consumerKey       string
	outcomeServiceURL string
	sourcedID         string
}

// NewLTIRuntimeParameters returns parameters for an LTI launch. All three
// values must be non-empty.
func NewLTIRuntimeParameters(consumerKey, outcomeServiceURL, sourcedID string) (LTIRuntimeParameters, error) {
	if consumerKey == "" || outcomeServiceURL == "" || sourcedID == "" {
		return LTIRuntimeParameters{}, ErrIncompleteLTIParameters
	}
	return LTIRuntimeParameters{
		consumerKey:       consumerKey,
		outcomeServiceURL: outcomeServiceURL,
		sourcedID:         sourcedID,
	}, nil
}

func (p LTIRuntimeParameters) ConsumerKey() string { return p.consumerKey }
func (p LTIRuntimeParameters) OutcomeServiceURL() string { return p.outcomeServiceURL }
func (p LTIRuntimeParameters) SourcedID() string { return p.sourcedID }
func (LTIRuntimeParameters) isRuntimeParameters() {}

func (p LTIRuntimeParameters) String() string {
	return fmt.Sprintf("[LtiRuntimeParameters: consumerKey = %s, outcomeServiceURL = %s, sourcedID = %s]",
		p.consumerKey, p.outcomeServiceURL, p.sourcedID)
}
