// Package usersession classifies user sessions and carries the runtime
// parameters used to configure a session when it starts.
package usersession

import (
	"fmt"

	"github.com/abhisek/tutorlink/internal/enum"
)

// Type classifies where a session's identity comes from. The zero value
// means unset; it is never returned by a lookup.
type Type uint8

const (
	// Normal is a user with a tutorlink account.
	Normal Type = iota + 1
	// Experiment is an anonymous experiment participant.
	Experiment
	// LTI is a user authenticated by an LTI tool consumer.
	LTI
)

var typeNames = map[Type]string{
	Normal:     "NORMAL_USER",
	Experiment: "EXPERIMENT_USER",
	LTI:        "LTI_USER",
}

// Types returns every session type in declaration order.
func Types() []Type {
	return []Type{Normal, Experiment, LTI}
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// IsValid reports whether t is one of the declared types.
func (t Type) IsValid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType decodes a session type name such as "LTI_USER".
func ParseType(s string) (Type, error) {
	return enum.Lookup("user session type", s, Types(), Type.String)
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, enum.NewError(fmt.Sprintf("cannot marshal user session type %d", uint8(t)), nil)
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
