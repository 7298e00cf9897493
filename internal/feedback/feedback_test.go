package feedback

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/tutorlink/internal/enum"
)

func TestClearTextAction(t *testing.T) {
	var a Action = ClearTextAction{}
	if a.HasAudio() {
		t.Error("ClearTextAction.HasAudio() = true, want false")
	}
	if a.Kind() != KindClearText {
		t.Errorf("Kind() = %q, want %q", a.Kind(), KindClearText)
	}
	if got := a.String(); got != "[ClearTextAction]" {
		t.Errorf("String() = %q", got)
	}
}

func TestHasAudio(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ClearTextAction{}, false},
		{NewDisplayTextAction("well done"), false},
		{NewPlayAudioAction("cue.mp3", "cue.ogg"), true},
		{NewPlayAudioAction("cue.mp3", ""), true},
		{NewDisplayHTMLAction("https://example.com/tip.html"), false},
	}
	for _, tt := range tests {
		if got := tt.action.HasAudio(); got != tt.want {
			t.Errorf("%s.HasAudio() = %v, want %v", tt.action.Kind(), got, tt.want)
		}
	}
}

func TestString_ContainsKindAndPayload(t *testing.T) {
	tests := []struct {
		action  Action
		payload string
	}{
		{NewDisplayTextAction("check your map"), "check your map"},
		{NewPlayAudioAction("a.mp3", "a.ogg"), "a.ogg"},
		{NewDisplayHTMLAction("https://example.com/x"), "https://example.com/x"},
	}
	for _, tt := range tests {
		s := tt.action.String()
		if !strings.Contains(s, "["+string(tt.action.Kind())+":") {
			t.Errorf("String() = %q, missing bracketed kind", s)
		}
		if !strings.Contains(s, tt.payload) {
			t.Errorf("String() = %q, missing %q", s, tt.payload)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k, err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %q", k, got)
		}
	}

	_, err := ParseKind("ShowFireworks")
	var enumErr *enum.Error
	if !errors.As(err, &enumErr) {
		t.Fatalf("expected *enum.Error, got %T", err)
	}
}
