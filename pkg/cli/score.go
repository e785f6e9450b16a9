package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mchmarny/shoreline/pkg/beach"
	urfave "github.com/urfave/cli/v3"
)

const (
	flagWave      = "wave"
	flagBreaker   = "breaker"
	flagFine      = "fine"
	flagGrain     = "grain"
	flagSlope     = "slope"
	flagRedox     = "redox"
	flagTubeworms = "tubeworms"
	flagChart     = "chart"
)

func newScoreCmd() *urfave.Command {
	def := beach.DefaultInput()
	return &urfave.Command{
		Name:    "score",
		Aliases: []string{"s"},
		Usage:   "Score a single beach survey",
		Action:  cmdScore,
		Flags: []urfave.Flag{
			&urfave.IntFlag{
				Name:  flagWave,
				Usage: fmt.Sprintf("Wave action [0-%d]", beach.MaxWave),
				Value: def.Wave,
			},
			&urfave.IntFlag{
				Name:  flagBreaker,
				Usage: fmt.Sprintf("Breaker zone width [0-%d]", beach.MaxBreaker),
				Value: def.Breaker,
			},
			&urfave.IntFlag{
				Name:  flagFine,
				Usage: fmt.Sprintf("Fine sand percentage class [0-%d]", beach.MaxFine),
				Value: def.Fine,
			},
			&urfave.StringFlag{
				Name:  flagGrain,
				Usage: "Median grain size bucket in µm (>710, 500-710, 350-500, 250-350, 180-250, <180)",
				Value: string(def.Grain),
			},
			&urfave.StringFlag{
				Name:  flagSlope,
				Usage: "Beach slope ratio (1/5, 1/10, 1/20, 1/30, 1/50, 1/100)",
				Value: def.Slope,
			},
			&urfave.IntFlag{
				Name:  flagRedox,
				Usage: fmt.Sprintf("Redox layer depth class [0-%d]", beach.MaxRedox),
				Value: def.Redox,
			},
			&urfave.StringFlag{
				Name:  flagTubeworms,
				Usage: "Tube-dwelling organisms [present, absent]",
				Value: def.Tubeworms.String(),
			},
			&urfave.BoolFlag{
				Name:  flagChart,
				Usage: "Include the chart description in json/yaml output",
			},
		},
	}
}

func inputFromFlags(cmd *urfave.Command) (beach.Input, error) {
	tw, err := beach.ParseTubeworms(cmd.String(flagTubeworms))
	if err != nil {
		return beach.Input{}, err
	}

	grain, known := beach.ParseGrainSize(cmd.String(flagGrain))
	if !known {
		slog.Warn("unknown grain size, table contributes zero", "grain", grain)
	}

	in := beach.Input{
		Wave:      cmd.Int(flagWave),
		Breaker:   cmd.Int(flagBreaker),
		Fine:      cmd.Int(flagFine),
		Grain:     grain,
		Slope:     cmd.String(flagSlope),
		Redox:     cmd.Int(flagRedox),
		Tubeworms: tw,
	}
	if err := in.Validate(); err != nil {
		return beach.Input{}, err
	}
	return in, nil
}

func cmdScore(ctx context.Context, cmd *urfave.Command) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}

	in, err := inputFromFlags(cmd)
	if err != nil {
		return fmt.Errorf("invalid survey: %w", err)
	}

	res := cfg.Scorer.Evaluate(in)
	slog.Debug("scored", "score", res.Score, "class", res.Class)

	w := output(cmd)
	if cfg.Format == formatText {
		return printResult(w, res)
	}

	if !cmd.Bool(flagChart) {
		res.Chart = nil
	}
	if err := encode(w, cfg.Format, res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func printResult(w io.Writer, res *beach.Result) error {
	if _, err := fmt.Fprintln(w, res.Summary); err != nil {
		return err
	}
	if res.Chart == nil {
		return nil
	}
	if p := res.Chart.Selection; p != nil {
		_, err := fmt.Fprintf(w, "%s: 1:%g, %g mm\n", res.Chart.SelectionLabel, p.X, p.Y)
		return err
	}
	return nil
}
