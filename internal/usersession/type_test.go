package usersession

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/tutorlink/internal/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes_ExactlyThreeStable(t *testing.T) {
	first := Types()
	require.Len(t, first, 3)
	assert.Equal(t, []Type{Normal, Experiment, LTI}, first)

	// Mutating the returned slice does not leak into later calls.
	first[0] = LTI
	assert.Equal(t, []Type{Normal, Experiment, LTI}, Types())
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	for _, bad := range []string{"", "GUEST_USER", "lti_user", "Type(0)", "Type(4)"} {
		got, err := ParseType(bad)
		var enumErr *enum.Error
		require.True(t, errors.As(err, &enumErr), bad)
		assert.False(t, got.IsValid(), bad)
	}
}

func TestType_ZeroIsUnset(t *testing.T) {
	var zero Type
	assert.False(t, zero.IsValid())
	assert.Equal(t, "Type(0)", zero.String())

	_, err := zero.MarshalText()
	assert.Error(t, err)
}

func TestType_JSON(t *testing.T) {
	type payload struct {
		SessionType Type `json:"session_type"`
	}

	b, err := json.Marshal(payload{SessionType: LTI})
	require.NoError(t, err)
	assert.JSONEq(t, `{"session_type":"LTI_USER"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"session_type":"EXPERIMENT_USER"}`), &p))
	assert.Equal(t, Experiment, p.SessionType)

	err = json.Unmarshal([]byte(`{"session_type":"ADMIN"}`), &p)
	var enumErr *enum.Error
	assert.True(t, errors.As(err, &enumErr))
}

func TestLTIRuntimeParameters(t *testing.T) {
	p, err := NewLTIRuntimeParameters("key", "https://lms.example.com/outcomes", "src-1")
	require.NoError(t, err)
	assert.Equal(t, "key", p.ConsumerKey())
	assert.Equal(t, "https://lms.example.com/outcomes", p.OutcomeServiceURL())
	assert.Equal(t, "src-1", p.SourcedID())
	assert.Contains(t, p.String(), "[LtiRuntimeParameters: ")

	var _ RuntimeParameters = p

	tests := []struct{ key, url, src string }{
		{"", "u", "s"},
		{"k", "", "s"},
		{"k", "u", ""},
	}
	for _, tt := range tests {
		_, err := NewLTIRuntimeParameters(tt.key, tt.url, tt.src)
		assert.ErrorIs(t, err, ErrIncompleteLTIParameters)
	}
}
