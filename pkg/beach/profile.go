package beach

import (
	"errors"
	"fmt"
)

const (
	DefaultProfileName = "canonical"
	DefaultMaxScore    = 20
	DefaultSamples     = 300
)

var ErrInvalidProfile = errors.New("invalid profile")

// Window is the displayed chart area: x is the slope (1:x), y the grain
// diameter in mm. Bounds are inclusive.
type Window struct {
	XMin float64 `json:"x_min" yaml:"x_min"`
	XMax float64 `json:"x_max" yaml:"x_max"`
	YMin float64 `json:"y_min" yaml:"y_min"`
	YMax float64 `json:"y_max" yaml:"y_max"`
}

func (w Window) containsX(x float64) bool {
	return x >= w.XMin && x <= w.XMax
}

func (w Window) containsY(y float64) bool {
	return y >= w.YMin && y <= w.YMax
}

// Grid is the ascending grain diameter sample grid the curves are evaluated on.
type Grid struct {
	DMin    float64 `json:"d_min" yaml:"d_min"`
	DMax    float64 `json:"d_max" yaml:"d_max"`
	Samples int     `json:"samples" yaml:"samples"`
}

// Points returns Samples evenly spaced diameters from DMin to DMax inclusive.
func (g Grid) Points() []float64 {
	if g.Samples < 2 {
		return []float64{g.DMin}
	}
	pts := make([]float64, g.Samples)
	step := (g.DMax - g.DMin) / float64(g.Samples-1)
	for i := range pts {
		pts[i] = g.DMin + float64(i)*step
	}
	pts[len(pts)-1] = g.DMax
	return pts
}

// Profile is the full set of scoring and charting constants. Treat it as
// immutable once handed to NewScorer.
type Profile struct {
	Name      string     `json:"name" yaml:"name"`
	Table     ScoreTable `json:"table" yaml:"table"`
	Diameters Diameters  `json:"diameters" yaml:"diameters"`
	MaxScore  int        `json:"max_score" yaml:"max_score"`
	Window    Window     `json:"window" yaml:"window"`
	Grid      Grid       `json:"grid" yaml:"grid"`
	Locale    Locale     `json:"locale" yaml:"locale"`
	LogAxes   bool       `json:"log_axes" yaml:"log_axes"`
}

// DefaultProfile returns the canonical profile.
func DefaultProfile() *Profile {
	return &Profile{
		Name:      DefaultProfileName,
		Table:     DefaultScoreTable(),
		Diameters: DefaultDiameters(),
		MaxScore:  DefaultMaxScore,
		Window:    Window{XMin: 0, XMax: 100, YMin: 0, YMax: 1.0},
		Grid:      Grid{DMin: 0.2, DMax: 1.0, Samples: DefaultSamples},
		Locale:    LocalePT,
		LogAxes:   true,
	}
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Table = p.Table.Clone()
	c.Diameters = p.Diameters.Clone()
	return &c
}

// Validate checks the profile is usable.
func (p *Profile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil profile", ErrInvalidProfile)
	}
	if p.MaxScore <= 0 {
		return fmt.Errorf("%w: max score must be positive, got %d", ErrInvalidProfile, p.MaxScore)
	}
	if p.Window.XMin >= p.Window.XMax || p.Window.YMin >= p.Window.YMax {
		return fmt.Errorf("%w: empty chart window %+v", ErrInvalidProfile, p.Window)
	}
	if p.Grid.DMin <= 0 || p.Grid.DMin >= p.Grid.DMax {
		return fmt.Errorf("%w: diameter grid must satisfy 0 < min < max, got [%g, %g]",
			ErrInvalidProfile, p.Grid.DMin, p.Grid.DMax)
	}
	if p.Grid.Samples < 2 {
		return fmt.Errorf("%w: at least 2 grid samples required, got %d", ErrInvalidProfile, p.Grid.Samples)
	}
	if _, ok := classLabels[p.Locale]; !ok {
		return fmt.Errorf("%w: unsupported locale %q", ErrInvalidProfile, p.Locale)
	}
	for g, row := range p.Table {
		if len(row) != len(SlopeCategories) {
			return fmt.Errorf("%w: grain %s has %d slope values, want %d",
				ErrInvalidProfile, g, len(row), len(SlopeCategories))
		}
		for _, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: grain %s has negative contribution %d", ErrInvalidProfile, g, v)
			}
		}
	}
	return nil
}
