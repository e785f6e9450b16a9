package beach

// Mark is one labelled position of an ordinal slider.
type Mark struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Choice is one entry of a dropdown or radio group.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Options lists the labelled choices for every input control.
type Options struct {
	Wave      []Mark   `json:"wave" yaml:"wave"`
	Breaker   []Mark   `json:"breaker" yaml:"breaker"`
	Fine      []Mark   `json:"fine" yaml:"fine"`
	Grain     []Choice `json:"grain" yaml:"grain"`
	Slope     []Choice `json:"slope" yaml:"slope"`
	Redox     []Mark   `json:"redox" yaml:"redox"`
	Tubeworms []Choice `json:"tubeworms" yaml:"tubeworms"`
	Defaults  Input    `json:"defaults" yaml:"defaults"`
}

var markLabels = map[Locale]map[string][]string{
	LocalePT: {
		"wave": {
			"Praticamente ausente",
			"Leve a moderada (<1m)",
			"Contínua moderada (<1m)",
			"Contínua forte (>1m)",
			"Extremamente forte (>1.5m)",
		},
		"breaker":   {"Muito larga", "Moderada (50-150m)", "Estreita (face da praia)"},
		"fine":      {"5%", "1 a 5%", "<1%"},
		"redox":     {"0-10 cm", "10-25 cm", "25-50 cm", "50-80 cm", ">80 cm"},
		"tubeworms": {"Presentes", "Ausentes"},
	},
	LocaleEN: {
		"wave": {
			"Practically absent",
			"Light to moderate (<1m)",
			"Continuous moderate (<1m)",
			"Continuous strong (>1m)",
			"Extremely strong (>1.5m)",
		},
		"breaker":   {"Very wide", "Moderate (50-150m)", "Narrow (beach face)"},
		"fine":      {"5%", "1 to 5%", "<1%"},
		"redox":     {"0-10 cm", "10-25 cm", "25-50 cm", "50-80 cm", ">80 cm"},
		"tubeworms": {"Present", "Absent"},
	},
}

func marks(labels []string) []Mark {
	list := make([]Mark, 0, len(labels))
	for i, l := range labels {
		list = append(list, Mark{Value: i, Label: l})
	}
	return list
}

// InputOptions returns the control catalogue in the given locale.
func InputOptions(l Locale) *Options {
	labels, ok := markLabels[l]
	if !ok {
		labels = markLabels[LocalePT]
	}

	o := &Options{
		Wave:    marks(labels["wave"]),
		Breaker: marks(labels["breaker"]),
		Fine:    marks(labels["fine"]),
		Redox:   marks(labels["redox"]),
		Tubeworms: []Choice{
			{Value: TubewormsPresent.String(), Label: labels["tubeworms"][0]},
			{Value: TubewormsAbsent.String(), Label: labels["tubeworms"][1]},
		},
		Grain:    make([]Choice, 0, len(GrainSizes)),
		Slope:    make([]Choice, 0, len(SlopeCategories)),
		Defaults: DefaultInput(),
	}
	for _, g := range GrainSizes {
		o.Grain = append(o.Grain, Choice{Value: string(g), Label: string(g) + " µm"})
	}
	for _, s := range SlopeCategories {
		o.Slope = append(o.Slope, Choice{Value: s, Label: s})
	}
	return o
}
