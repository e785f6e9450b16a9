// Package beach scores the exposure of sandy beaches from field observations
// and describes the slope/grain-size morphodynamic chart.
//
// Every function here is pure: results are rebuilt from the bound Profile on
// each call and nothing is retained between calls, so a Scorer is safe for
// concurrent use.
package beach

import (
	"fmt"
	"log/slog"
)

// Scorer evaluates inputs against a Profile.
type Scorer struct {
	profile *Profile
}

// NewScorer validates p and binds a private copy of it.
func NewScorer(p *Profile) (*Scorer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{profile: p.Clone()}, nil
}

// MustDefaultScorer returns a scorer for the canonical profile.
func MustDefaultScorer() *Scorer {
	s, err := NewScorer(DefaultProfile())
	if err != nil {
		panic(err)
	}
	return s
}

// Profile returns a copy of the bound profile.
func (s *Scorer) Profile() *Profile {
	return s.profile.Clone()
}

// ComputeScore sums the six contributions and clamps the total to
// [0, MaxScore]. Undefined grain/slope pairs contribute zero.
func (s *Scorer) ComputeScore(in Input) int {
	table, ok := s.profile.Table.Lookup(in.Grain, in.Slope)
	if !ok {
		slog.Debug("no table entry, using zero", "grain", in.Grain, "slope", in.Slope)
	}

	total := in.Wave + in.Breaker + in.Fine + table + in.Redox + in.Tubeworms.Points()
	if total > s.profile.MaxScore {
		total = s.profile.MaxScore
	}
	if total < 0 {
		total = 0
	}
	return total
}

// BuildCurves samples the three power laws over the profile grid, keeping
// only points inside the chart's x range. Points follow the ascending grid.
func (s *Scorer) BuildCurves() []Series {
	grid := s.profile.Grid.Points()
	curves := Curves()
	list := make([]Series, 0, len(curves))
	for _, c := range curves {
		list = append(list, sampleCurve(c, grid, s.profile.Window, s.profile.Locale))
	}
	return list
}

// SelectionPoint places the (slope, grain) observation on the chart. It
// returns nil when the slope is malformed or zero, the grain is unknown, or
// the point falls outside the chart window.
func (s *Scorer) SelectionPoint(grain GrainSize, slope string) *Point {
	sl, err := ParseSlope(slope)
	if err != nil {
		slog.Debug("selection point omitted", "slope", slope, "error", err)
		return nil
	}
	d, ok := s.profile.Diameters[grain]
	if !ok {
		slog.Debug("selection point omitted, unknown grain", "grain", grain)
		return nil
	}

	x := sl.Inverse()
	w := s.profile.Window
	if x <= 0 || !w.containsX(x) {
		return nil
	}
	if d <= 0 || !w.containsY(d) {
		return nil
	}
	return &Point{X: x, Y: d}
}

// Result is one complete evaluation.
type Result struct {
	Input   Input  `json:"input" yaml:"input"`
	Score   int    `json:"score" yaml:"score"`
	Class   Class  `json:"class" yaml:"class"`
	Label   string `json:"label" yaml:"label"`
	Summary string `json:"summary" yaml:"summary"`
	Chart   *Chart `json:"chart,omitempty" yaml:"chart,omitempty"`
	Loading bool   `json:"loading,omitempty" yaml:"loading,omitempty"`
}

// Summary formats the one-line score and beach type text.
func (s *Scorer) Summary(score int, c Class) string {
	return fmt.Sprintf(textFor(s.profile.Locale).summary, score, c.Label(s.profile.Locale))
}

// Evaluate scores and classifies in, and builds the chart description.
func (s *Scorer) Evaluate(in Input) *Result {
	score := s.ComputeScore(in)
	class := Classify(score)

	chart := newChart(s.profile)
	chart.Series = s.BuildCurves()
	chart.Selection = s.SelectionPoint(in.Grain, in.Slope)

	return &Result{
		Input:   in,
		Score:   score,
		Class:   class,
		Label:   class.Label(s.profile.Locale),
		Summary: s.Summary(score, class),
		Chart:   chart,
	}
}

// Loading is the placeholder shown while grain or slope is still unset.
func (s *Scorer) Loading() *Result {
	return &Result{
		Summary: textFor(s.profile.Locale).loading,
		Chart:   newChart(s.profile),
		Loading: true,
	}
}
