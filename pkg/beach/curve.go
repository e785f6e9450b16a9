package beach

import "math"

// Curve is an empirical power law x = A·d^B relating beach slope (1:x) to
// median grain diameter d (mm).
type Curve struct {
	Name    string  `json:"name" yaml:"name"`
	Formula string  `json:"formula" yaml:"formula"`
	Color   string  `json:"color" yaml:"color"`
	A       float64 `json:"a" yaml:"a"`
	B       float64 `json:"b" yaml:"b"`

	labels map[Locale]string
}

// X evaluates the curve at diameter d.
func (c Curve) X(d float64) float64 {
	return c.A * math.Pow(d, c.B)
}

// Label returns the legend text in the given locale.
func (c Curve) Label(l Locale) string {
	if v, ok := c.labels[l]; ok {
		return v
	}
	return c.labels[LocalePT]
}

// Curves returns the reflective, intermediate and dissipative curves in
// that order.
func Curves() []Curve {
	return []Curve{
		{
			Name:    "protected",
			Formula: "x = 3,1·d⁻¹·¹",
			Color:   "blue",
			A:       3.1,
			B:       -1.1,
			labels: map[Locale]string{
				LocalePT: "Praias Protegidas (x = 3,1·d⁻¹·¹)",
				LocaleEN: "Sheltered beaches (x = 3.1·d⁻¹·¹)",
			},
		},
		{
			Name:    "moderate",
			Formula: "x = 2,1·d⁻¹·⁸",
			Color:   "green",
			A:       2.1,
			B:       -1.8,
			labels: map[Locale]string{
				LocalePT: "Moderadamente Protegidas (x = 2,1·d⁻¹·⁸)",
				LocaleEN: "Moderately sheltered (x = 2.1·d⁻¹·⁸)",
			},
		},
		{
			Name:    "exposed",
			Formula: "x = 3,9·d⁻¹·⁸⁵",
			Color:   "red",
			A:       3.9,
			B:       -1.85,
			labels: map[Locale]string{
				LocalePT: "Praias Expostas (x = 3,9·d⁻¹·⁸⁵)",
				LocaleEN: "Exposed beaches (x = 3.9·d⁻¹·⁸⁵)",
			},
		},
	}
}

// Point is a chart coordinate: X is the slope (1:x), Y the diameter (mm).
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Series is a curve sampled over the diameter grid.
type Series struct {
	Name    string  `json:"name" yaml:"name"`
	Label   string  `json:"label" yaml:"label"`
	Formula string  `json:"formula" yaml:"formula"`
	Color   string  `json:"color" yaml:"color"`
	Points  []Point `json:"points" yaml:"points"`
}

func sampleCurve(c Curve, grid []float64, w Window, l Locale) Series {
	s := Series{
		Name:    c.Name,
		Label:   c.Label(l),
		Formula: c.Formula,
		Color:   c.Color,
		Points:  make([]Point, 0, len(grid)),
	}
	for _, d := range grid {
		x := c.X(d)
		if math.IsNaN(x) || !w.containsX(x) {
			continue
		}
		s.Points = append(s.Points, Point{X: x, Y: d})
	}
	return s
}
