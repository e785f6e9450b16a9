package cli

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mchmarny/shoreline/pkg/beach"
	urfave "github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const (
	stdinFileName = "-"

	flagFile     = "file"
	flagParallel = "parallel"
)

var requiredColumns = []string{"wave", "breaker", "fine", "grain", "slope", "redox", "tubeworms"}

func newBatchCmd() *urfave.Command {
	return &urfave.Command{
		Name:    "batch",
		Aliases: []string{"b"},
		Usage:   "Score every survey in a CSV file",
		Action:  cmdBatch,
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:     flagFile,
				Aliases:  []string{"f"},
				Usage:    "CSV file with one survey per row (use - for stdin)",
				Required: true,
			},
			&urfave.IntFlag{
				Name:  flagParallel,
				Usage: "Max number of surveys scored concurrently",
				Value: runtime.NumCPU(),
			},
		},
	}
}

type survey struct {
	Line  int
	Site  string
	Input beach.Input
	Err   error
}

// BatchResult is the evaluation of one CSV row. Error is set instead of
// Result when the row could not be scored.
type BatchResult struct {
	Line   int           `json:"line" yaml:"line"`
	Site   string        `json:"site,omitempty" yaml:"site,omitempty"`
	Result *beach.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
}

func cmdBatch(ctx context.Context, cmd *urfave.Command) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}

	path := cmd.String(flagFile)
	var r io.Reader = os.Stdin
	if path != stdinFileName {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open survey file: %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	surveys, err := readSurveys(r)
	if err != nil {
		return fmt.Errorf("failed to read surveys: %s: %w", path, err)
	}
	slog.Debug("surveys loaded", "path", path, "count", len(surveys))

	results, err := scoreSurveys(ctx, cfg.Scorer, surveys, cmd.Int(flagParallel))
	if err != nil {
		return err
	}

	w := output(cmd)
	if cfg.Format == formatText {
		return printBatch(w, results)
	}
	if err := encode(w, cfg.Format, results); err != nil {
		return fmt.Errorf("error encoding results: %w", err)
	}
	return nil
}

func readSurveys(r io.Reader) ([]*survey, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	// ragged rows are reported per survey
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file, header row required")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("missing column: %s", c)
		}
	}

	list := make([]*survey, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		list = append(list, parseSurvey(line, rec, cols))
	}
	return list, nil
}

func parseSurvey(line int, rec []string, cols map[string]int) *survey {
	s := &survey{Line: line}
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	num := func(name string) int {
		if s.Err != nil {
			return 0
		}
		v, err := strconv.Atoi(field(name))
		if err != nil {
			s.Err = fmt.Errorf("%w: %s: %q is not a number", beach.ErrInvalidInput, name, field(name))
		}
		return v
	}

	s.Site = field("site")
	s.Input.Wave = num("wave")
	s.Input.Breaker = num("breaker")
	s.Input.Fine = num("fine")
	s.Input.Redox = num("redox")
	s.Input.Grain, _ = beach.ParseGrainSize(field("grain"))
	s.Input.Slope = field("slope")

	tw, err := beach.ParseTubeworms(field("tubeworms"))
	if err != nil && s.Err == nil {
		s.Err = err
	}
	s.Input.Tubeworms = tw

	if s.Err == nil {
		s.Err = s.Input.Validate()
	}
	return s
}

// scoreSurveys evaluates the surveys concurrently. Results keep input order.
func scoreSurveys(ctx context.Context, scorer *beach.Scorer, surveys []*survey, parallel int) ([]*BatchResult, error) {
	if parallel < 1 {
		parallel = 1
	}

	results := make([]*BatchResult, len(surveys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, s := range surveys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := &BatchResult{Line: s.Line, Site: s.Site}
			if s.Err != nil {
				slog.Warn("skipping survey", "line", s.Line, "error", s.Err)
				r.Error = s.Err.Error()
			} else {
				r.Result = scorer.Evaluate(s.Input)
				r.Result.Chart = nil
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring surveys: %w", err)
	}
	return results, nil
}

func printBatch(w io.Writer, results []*BatchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "LINE\tSITE\tSCORE\tTYPE"); err != nil {
		return err
	}
	for _, r := range results {
		var err error
		if r.Error != "" {
			_, err = fmt.Fprintf(tw, "%d\t%s\t-\terror: %s\n", r.Line, r.Site, r.Error)
		} else {
			_, err = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", r.Line, r.Site, r.Result.Score, r.Result.Label)
		}
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
