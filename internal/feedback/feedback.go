// Package feedback models the feedback actions a tutor interface can present
// to a learner.
package feedback

import (
	"fmt"

	"github.com/abhisek/tutorlink/internal/enum"
)

// Kind identifies a feedback action variant.
type Kind string

const (
	KindClearText   Kind = "ClearTextAction"
	KindDisplayText Kind = "DisplayTextAction"
	KindPlayAudio   Kind = "PlayAudioAction"
	KindDisplayHTML Kind = "DisplayHTMLAction"
)

// Kinds returns every feedback kind.
func Kinds() []Kind {
	return []Kind{KindClearText, KindDisplayText, KindPlayAudio, KindDisplayHTML}
}

// ParseKind decodes an external kind name.
func ParseKind(s string) (Kind, error) {
	return enum.Lookup("feedback kind", s, Kinds(), func(k Kind) string { return string(k) })
}

// Action is anything offered as feedback to a learner.
type Action interface {
	Kind() Kind

	// HasAudio reports whether the feedback includes an audio cue.
	HasAudio() bool

	String() string

	isAction()
}

func (ClearTextAction) isAction() {}
func (DisplayTextAction) isAction() {}
func (PlayAudioAction) isAction() {}
func (DisplayHTMLAction) isAction() {}

// ClearTextAction erases all previously displayed feedback text before the
// next message is shown.
type ClearTextAction struct{}

func (ClearTextAction) Kind() Kind { return KindClearText }
func (ClearTextAction) HasAudio() bool { return false }
func (ClearTextAction) String() string { return "[ClearTextAction]" }

// DisplayTextAction shows a text message.
type DisplayTextAction struct {
	text string
}

func NewDisplayTextAction(text string) DisplayTextAction {
	return DisplayTextAction{text: text}
}

func (a DisplayTextAction) Text() string { return a.text }
func (DisplayTextAction) Kind() Kind { return KindDisplayText }
func (DisplayTextAction) HasAudio() bool { return false }

func (a DisplayTextAction) String() string {
	return fmt.Sprintf("[DisplayTextAction: text = %q]", a.text)
}

// PlayAudioAction plays an audio cue. The OGG file is an optional alternate
// encoding of the MP3.
type PlayAudioAction struct {
	mp3File string
	oggFile string
}

func NewPlayAudioAction(mp3File, oggFile string) PlayAudioAction {
	return PlayAudioAction{mp3File: mp3File, oggFile: oggFile}
}

func (a PlayAudioAction) MP3File() string { return a.mp3File }
func (a PlayAudioAction) OGGFile() string { return a.oggFile }
func (PlayAudioAction) Kind() Kind { return KindPlayAudio }
func (PlayAudioAction) HasAudio() bool { return true }

func (a PlayAudioAction) String() string {
	return fmt.Sprintf("[PlayAudioAction: mp3 = %s, ogg = %s]", a.mp3File, a.oggFile)
}

// DisplayHTMLAction shows the HTML page at a domain URL.
type DisplayHTMLAction struct {
	url string
}

func NewDisplayHTMLAction(url string) DisplayHTMLAction {
	return DisplayHTMLAction{url: url}
}

func (a DisplayHTMLAction) URL() string { return a.url }
func (DisplayHTMLAction) Kind() Kind { return KindDisplayHTML }
func (DisplayHTMLAction) HasAudio() bool { return false }

func (a DisplayHTMLAction) String() string {
	return fmt.Sprintf("[DisplayHTMLAction: url = %s]", a.url)
}
