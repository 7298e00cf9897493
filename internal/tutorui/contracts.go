// Package tutorui defines the narrow contracts between the tutor user
// interface and the rest of tutorlink.
package tutorui

import "time"

// DomainAssessmentContent is implemented by values that carry domain
// assessment content worth showing to the learner.
type DomainAssessmentContent interface {
	// AssessmentSummary returns a short, display-ready description.
	AssessmentSummary() string
}

// SaveCancelCallback receives the outcome of a save-or-cancel decision.
// Exactly one of the two methods is invoked, once.
type SaveCancelCallback interface {
	Save()
	Cancel()
}

// SaveCancelFuncs adapts two functions to SaveCancelCallback. Nil funcs are
// skipped.
type SaveCancelFuncs struct {
	OnSave   func()
	OnCancel func()
}

func (f SaveCancelFuncs) Save() {
	if f.OnSave != nil {
		f.OnSave()
	}
}

func (f SaveCancelFuncs) Cancel() {
	if f.OnCancel != nil {
		f.OnCancel()
	}
}

// SurveyAnswer is one answered question in a completed survey.
type SurveyAnswer struct {
	QuestionID int    `json:"question_id"`
	Text       string `json:"text"`
}

// SurveyResponse is the completed result of a survey.
type SurveyResponse struct {
	SurveyID    int            `json:"survey_id"`
	SurveyName  string         `json:"survey_name"`
	Answers     []SurveyAnswer `json:"answers"`
	CompletedAt time.Time      `json:"completed_at"`
}

// SurveyResultListener is notified once when a survey's results are available.
type SurveyResultListener interface {
	SurveyCompleted(resp SurveyResponse)
}

// SurveyResultFunc adapts a function to SurveyResultListener.
type SurveyResultFunc func(resp SurveyResponse)

func (f SurveyResultFunc) SurveyCompleted(resp SurveyResponse) { f(resp) }
