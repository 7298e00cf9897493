package tutoraction

import "fmt"

func (NineLineReport) isReport() {}
func (SpotReport) isReport() {}
func (ExplosiveHazardSpotReport) isReport() {}

// reportSummary renders the display text for a submitted report.
func reportSummary(title string, la *LearnerActionRef) string {
	if la == nil || la.DisplayName == "" {
		return title + " submitted"
	}
	return fmt.Sprintf("%s submitted (%s)", title, la.DisplayName)
}

// NineLineReport is a submitted nine-line report.
type NineLineReport struct{ ref }

func NewNineLineReport(la *LearnerActionRef) NineLineReport {
	return NineLineReport{ref{la.clone()}}
}

func (NineLineReport) Kind() Kind { return KindNineLineReport }
func (r NineLineReport) String() string { return format(r.Kind(), r.la) }
func (r NineLineReport) AssessmentSummary() string {
	return reportSummary("Nine-line report", r.la)
}

// SpotReport is a submitted spot report.
type SpotReport struct{ ref }

func NewSpotReport(la *LearnerActionRef) SpotReport {
	return SpotReport{ref{la.clone()}}
}

func (SpotReport) Kind() Kind { return KindSpotReport }
func (r SpotReport) String() string { return format(r.Kind(), r.la) }
func (r SpotReport) AssessmentSummary() string {
	return reportSummary("Spot report", r.la)
}

// ExplosiveHazardSpotReport is a submitted explosive hazard spot report.
type ExplosiveHazardSpotReport struct{ ref }

func NewExplosiveHazardSpotReport(la *LearnerActionRef) ExplosiveHazardSpotReport {
	return ExplosiveHazardSpotReport{ref{la.clone()}}
}

func (ExplosiveHazardSpotReport) Kind() Kind { return KindExplosiveHazardSpotReport }
func (r ExplosiveHazardSpotReport) String() string { return format(r.Kind(), r.la) }
func (r ExplosiveHazardSpotReport) AssessmentSummary() string {
	return reportSummary("Explosive hazard spot report", r.la)
}
