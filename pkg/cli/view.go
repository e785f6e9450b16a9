package cli

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mchmarny/shoreline/pkg/beach"
)

var controlTitles = map[beach.Locale]map[string]string{
	beach.LocalePT: {
		"heading":   "Simulador Interativo: Classificação de Praias Arenosas",
		"wave":      "1. Ação de Ondas",
		"breaker":   "2. Zona de Arrebentação",
		"fine":      "3. % de Areia Fina",
		"grain":     "4. Tamanho do Grão (µm)",
		"slope":     "4b. Inclinação da Praia",
		"redox":     "5. Profundidade da Camada Redox",
		"tubeworms": "6. Organismos Tubícolas",
	},
	beach.LocaleEN: {
		"heading":   "Interactive Simulator: Sandy Beach Classification",
		"wave":      "1. Wave Action",
		"breaker":   "2. Breaker Zone",
		"fine":      "3. Fine Sand %",
		"grain":     "4. Grain Size (µm)",
		"slope":     "4b. Beach Slope",
		"redox":     "5. Redox Layer Depth",
		"tubeworms": "6. Tube-dwelling Organisms",
	},
}

func faviconHandler(w http.ResponseWriter, r *http.Request) {
	file, err := embedFS.ReadFile("assets/img/favicon.svg")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err = w.Write(file); err != nil {
		slog.Error("failed to write favicon", "error", err)
	}
}

func homeViewHandler(tmpl *template.Template, s *beach.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := s.Profile()
		d := map[string]any{
			"version":    version,
			"commit":     commit,
			"build_date": date,
			"locale":     string(p.Locale),
			"profile":    p.Name,
			"labels":     controlTitles[p.Locale],
			"options":    beach.InputOptions(p.Locale),
			"defaults":   beach.DefaultInput(),
			"title":      s.Loading().Chart.Title,
			"max": map[string]int{
				"wave":    beach.MaxWave,
				"breaker": beach.MaxBreaker,
				"fine":    beach.MaxFine,
				"redox":   beach.MaxRedox,
			},
		}
		if err := tmpl.ExecuteTemplate(w, "home", d); err != nil {
			slog.Error("template render failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
