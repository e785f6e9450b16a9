package beach

// Axis describes one chart axis. Min and Max are in data units even when Log
// is set.
type Axis struct {
	Title string  `json:"title" yaml:"title"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Log   bool    `json:"log" yaml:"log"`
}

// Chart is a renderable description of the morphodynamic plot.
type Chart struct {
	Title          string   `json:"title" yaml:"title"`
	XAxis          Axis     `json:"x_axis" yaml:"x_axis"`
	YAxis          Axis     `json:"y_axis" yaml:"y_axis"`
	Series         []Series `json:"series" yaml:"series"`
	Selection      *Point   `json:"selection,omitempty" yaml:"selection,omitempty"`
	SelectionLabel string   `json:"selection_label" yaml:"selection_label"`
}

type chartText struct {
	title     string
	xTitle    string
	yTitle    string
	selection string
	summary   string
	loading   string
}

var chartTexts = map[Locale]chartText{
	LocalePT: {
		title:     "Classificação da Exposição de Praias Arenosas",
		xTitle:    "Inclinação da Praia (1:x)",
		yTitle:    "Diâmetro Médio do Grão (mm)",
		selection: "Sua Seleção",
		summary:   "Escore Total: %d → Tipo de Praia: %s",
		loading:   "Carregando...",
	},
	LocaleEN: {
		title:     "Sandy Beach Exposure Classification",
		xTitle:    "Beach Slope (1:x)",
		yTitle:    "Median Grain Diameter (mm)",
		selection: "Your Selection",
		summary:   "Total Score: %d → Beach Type: %s",
		loading:   "Loading...",
	},
}

func textFor(l Locale) chartText {
	if t, ok := chartTexts[l]; ok {
		return t
	}
	return chartTexts[LocalePT]
}

func newChart(p *Profile) *Chart {
	t := textFor(p.Locale)
	return &Chart{
		Title: t.title,
		XAxis: Axis{
			Title: t.xTitle,
			Min:   p.Window.XMin,
			Max:   p.Window.XMax,
			Log:   p.LogAxes,
		},
		YAxis: Axis{
			Title: t.yTitle,
			Min:   p.Window.YMin,
			Max:   p.Window.YMax,
			Log:   p.LogAxes,
		},
		Series:         []Series{},
		SelectionLabel: t.selection,
	}
}
