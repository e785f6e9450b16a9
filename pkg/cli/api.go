package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mchmarny/shoreline/pkg/beach"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryParamInt(q url.Values, key string, def int) (int, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", beach.ErrInvalidInput, key, v)
	}
	return i, nil
}

// parseInput reads the survey from query parameters. Omitted ordinal values
// take the dashboard defaults; loading is true while grain or slope is unset.
func parseInput(q url.Values) (in beach.Input, loading bool, err error) {
	in = beach.DefaultInput()

	grain := strings.TrimSpace(q.Get("grain"))
	slope := strings.TrimSpace(q.Get("slope"))
	if grain == "" || slope == "" {
		return in, true, nil
	}
	in.Grain, _ = beach.ParseGrainSize(grain)
	in.Slope = slope

	ints := []struct {
		key string
		dst *int
	}{
		{"wave", &in.Wave},
		{"breaker", &in.Breaker},
		{"fine", &in.Fine},
		{"redox", &in.Redox},
	}
	for _, p := range ints {
		if *p.dst, err = queryParamInt(q, p.key, *p.dst); err != nil {
			return in, false, err
		}
	}

	if v := q.Get("tubeworms"); v != "" {
		if in.Tubeworms, err = beach.ParseTubeworms(v); err != nil {
			return in, false, err
		}
	}

	if err := in.Validate(); err != nil {
		return in, false, err
	}
	return in, false, nil
}

func evaluateAPIHandler(s *beach.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, loading, err := parseInput(r.URL.Query())
		if err != nil {
			slog.Debug("invalid survey", "query", r.URL.RawQuery, "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if loading {
			writeJSON(w, http.StatusOK, s.Loading())
			return
		}
		writeJSON(w, http.StatusOK, s.Evaluate(in))
	}
}

func optionsAPIHandler(s *beach.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, beach.InputOptions(s.Profile().Locale))
	}
}

func curvesAPIHandler(s *beach.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.BuildCurves())
	}
}

func tableAPIHandler(s *beach.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newTableView(s))
	}
}
