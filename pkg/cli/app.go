package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mchmarny/shoreline/pkg/beach"
	"github.com/mchmarny/shoreline/pkg/config"
	"github.com/mchmarny/shoreline/pkg/logging"
	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	errNotInitialized = errors.New("app config not initialized")
)

const (
	flagDebug     = "debug"
	flagLogLevel  = "log-level"
	flagConfigDir = "config"
	flagFormat    = "format"
	flagLocale    = "locale"
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	Dir    string
	Config *config.Config
	Scorer *beach.Scorer
	Format string
}

type appConfigKey struct{}

func getConfig(ctx context.Context) (*appConfig, error) {
	cfg, ok := ctx.Value(appConfigKey{}).(*appConfig)
	if !ok || cfg == nil {
		return nil, errNotInitialized
	}
	return cfg, nil
}

func newApp(w io.Writer) *urfave.Command {
	commands := []*urfave.Command{
		newScoreCmd(),
		newBatchCmd(),
		newCurvesCmd(),
		newTableCmd(),
		newServerCmd(),
	}
	// config is only loaded (and created) when a subcommand runs
	for _, c := range commands {
		c.Before = initApp
	}

	return &urfave.Command{
		Name:                  config.AppName,
		Version:               fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Usage:                 "Sandy beach exposure scoring and morphodynamic chart",
		Writer:                w,
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:  flagDebug,
				Usage: "Prints verbose logs (optional, default: false)",
			},
			&urfave.StringFlag{
				Name:  flagLogLevel,
				Usage: "Log level [debug, info, warn, error] (overrides config)",
			},
			&urfave.StringFlag{
				Name:    flagConfigDir,
				Usage:   "Path to the config directory (default: $HOME/.shoreline)",
				Sources: urfave.EnvVars("SHORELINE_CONFIG"),
			},
			&urfave.StringFlag{
				Name:  flagFormat,
				Usage: "Output format [text, json, yaml]",
				Value: formatText,
			},
			&urfave.StringFlag{
				Name:  flagLocale,
				Usage: "Label language [pt, en] (overrides config)",
			},
		},
		Commands: commands,
	}
}

func initApp(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
	// root flags are read from the root command, initApp runs on subcommands
	root := cmd.Root()
	dir := root.String(flagConfigDir)
	if dir == "" {
		d, _, err := config.GetOrCreateHomeDir(config.AppName)
		if err != nil {
			return ctx, fmt.Errorf("resolving config dir: %w", err)
		}
		dir = d
	}

	cfg, err := config.ReadOrCreate(dir)
	if err != nil {
		return ctx, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.LogLevel
	if root.IsSet(flagLogLevel) {
		level = root.String(flagLogLevel)
	}
	if root.Bool(flagDebug) {
		level = "debug"
	}
	logging.SetDefaultCLILogger(level)

	if root.IsSet(flagLocale) {
		cfg.Scoring.Locale = root.String(flagLocale)
	}

	profile, err := cfg.Profile()
	if err != nil {
		return ctx, err
	}

	scorer, err := beach.NewScorer(profile)
	if err != nil {
		return ctx, fmt.Errorf("creating scorer: %w", err)
	}

	format, err := parseFormat(root.String(flagFormat))
	if err != nil {
		return ctx, err
	}

	slog.Debug("config loaded", "dir", dir, "profile", profile.Name, "locale", profile.Locale, "format", format)

	return context.WithValue(ctx, appConfigKey{}, &appConfig{
		Dir:    dir,
		Config: cfg,
		Scorer: scorer,
		Format: format,
	}), nil
}

func parseFormat(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", formatText, "txt":
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %q", v)
	}
}

func output(cmd *urfave.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// encode writes v as JSON or YAML. Text output is handled per command.
func encode(w io.Writer, format string, v any) error {
	if format == formatYAML {
		e := yaml.NewEncoder(w)
		defer e.Close()
		return e.Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
