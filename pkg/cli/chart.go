package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mchmarny/shoreline/pkg/beach"
	urfave "github.com/urfave/cli/v3"
)

func newCurvesCmd() *urfave.Command {
	return &urfave.Command{
		Name:    "curves",
		Aliases: []string{"c"},
		Usage:   "Print the slope/grain-size power-law curves of the active profile",
		Action:  cmdCurves,
	}
}

func newTableCmd() *urfave.Command {
	return &urfave.Command{
		Name:    "table",
		Aliases: []string{"t"},
		Usage:   "Print the grain/slope score table and grain diameters",
		Action:  cmdTable,
	}
}

// TableView is the printable form of the profile lookups.
type TableView struct {
	Profile   string            `json:"profile" yaml:"profile"`
	Slopes    []string          `json:"slopes" yaml:"slopes"`
	Grains    []beach.GrainSize `json:"grains" yaml:"grains"`
	Table     beach.ScoreTable  `json:"table" yaml:"table"`
	Diameters beach.Diameters   `json:"diameters" yaml:"diameters"`
	MaxScore  int               `json:"max_score" yaml:"max_score"`
}

func newTableView(s *beach.Scorer) *TableView {
	p := s.Profile()
	return &TableView{
		Profile:   p.Name,
		Slopes:    beach.SlopeCategories,
		Grains:    beach.GrainSizes,
		Table:     p.Table,
		Diameters: p.Diameters,
		MaxScore:  p.MaxScore,
	}
}

func cmdCurves(ctx context.Context, cmd *urfave.Command) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}

	list := cfg.Scorer.BuildCurves()
	w := output(cmd)
	if cfg.Format == formatText {
		return printCurves(w, list)
	}
	if err := encode(w, cfg.Format, list); err != nil {
		return fmt.Errorf("error encoding curves: %w", err)
	}
	return nil
}

func printCurves(w io.Writer, list []beach.Series) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "CURVE\tFORMULA\tPOINTS\tFIRST (1:x, mm)\tLAST (1:x, mm)"); err != nil {
		return err
	}
	for _, s := range list {
		first, last := "-", "-"
		if n := len(s.Points); n > 0 {
			first = fmt.Sprintf("%.2f, %.3f", s.Points[0].X, s.Points[0].Y)
			last = fmt.Sprintf("%.2f, %.3f", s.Points[n-1].X, s.Points[n-1].Y)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", s.Name, s.Formula, len(s.Points), first, last); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func cmdTable(ctx context.Context, cmd *urfave.Command) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}

	v := newTableView(cfg.Scorer)
	w := output(cmd)
	if cfg.Format == formatText {
		return printTable(w, v)
	}
	if err := encode(w, cfg.Format, v); err != nil {
		return fmt.Errorf("error encoding table: %w", err)
	}
	return nil
}

func printTable(w io.Writer, v *TableView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "GRAIN (µm)\t%s\tD (mm)\t\n", strings.Join(v.Slopes, "\t")); err != nil {
		return err
	}
	for _, g := range v.Grains {
		row, ok := v.Table[g]
		if !ok {
			continue
		}
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = fmt.Sprint(c)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%g\t\n", g, strings.Join(cells, "\t"), v.Diameters[g]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
