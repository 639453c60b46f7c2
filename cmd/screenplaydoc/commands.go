package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"screenplaydoc/config"
	"screenplaydoc/report"
	"screenplaydoc/screenplay"
	"screenplaydoc/state"
)

func parseOptions(cfg *config.Config) []screenplay.Option {
	return []screenplay.Option{
		screenplay.WithProfile(cfg.ResolveProfile()),
		screenplay.WithVocabulary(cfg.ResolveVocabulary()),
	}
}

func destinationPath(destDir, name, newExt string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(destDir, config.CleanFileName(base)+newExt)
}

func writeOutput(env *state.LocalEnv, path string, data []byte) error {
	if !env.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("destination '%s' already exists (use --overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create destination directory for '%s': %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}

// runParse implements the "parse" subcommand: each discovered fixture is
// parsed into a screenplay.Document and written as indented JSON.
func runParse(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	source := cmd.Args().Get(0)
	if len(source) == 0 {
		return fmt.Errorf("SOURCE is required")
	}
	destDir := cmd.Args().Get(1)
	if len(destDir) == 0 {
		destDir = "."
	}

	sources, err := discoverFixtures(source)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		env.Log.Warn("no fixtures found", zap.String("source", source))
		return nil
	}

	opts := parseOptions(env.Cfg)

	var errs error
	for _, fx := range sources {
		if err := parseOne(env, fx, destDir, opts); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", fx.Name, err))
			env.Log.Error("unable to parse fixture", zap.String("fixture", fx.Name), zap.Error(err))
			continue
		}
		env.Log.Info("parsed fixture", zap.String("fixture", fx.Name))
	}
	return errs
}

func parseOne(env *state.LocalEnv, fx fixtureSource, destDir string, opts []screenplay.Option) error {
	pdf, err := fx.Open()
	if err != nil {
		return fmt.Errorf("unable to load fixture: %w", err)
	}
	doc, err := screenplay.Parse(pdf, opts...)
	if err != nil {
		return fmt.Errorf("unable to parse fixture: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal document: %w", err)
	}
	return writeOutput(env, destinationPath(destDir, fx.Name, ".screenplay.json"), data)
}

// runReport implements the "report" subcommand: each discovered fixture is
// parsed and rendered to a human-readable scene breakdown.
func runReport(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	source := cmd.Args().Get(0)
	if len(source) == 0 {
		return fmt.Errorf("SOURCE is required")
	}
	destDir := cmd.Args().Get(1)
	if len(destDir) == 0 {
		destDir = "."
	}

	sources, err := discoverFixtures(source)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		env.Log.Warn("no fixtures found", zap.String("source", source))
		return nil
	}

	opts := parseOptions(env.Cfg)

	var errs error
	for _, fx := range sources {
		if err := reportOne(env, fx, destDir, opts); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", fx.Name, err))
			env.Log.Error("unable to render report", zap.String("fixture", fx.Name), zap.Error(err))
			continue
		}
		env.Log.Info("rendered report", zap.String("fixture", fx.Name))
	}
	return errs
}

func reportOne(env *state.LocalEnv, fx fixtureSource, destDir string, opts []screenplay.Option) error {
	pdf, err := fx.Open()
	if err != nil {
		return fmt.Errorf("unable to load fixture: %w", err)
	}
	doc, err := screenplay.Parse(pdf, opts...)
	if err != nil {
		return fmt.Errorf("unable to parse fixture: %w", err)
	}

	var buf strings.Builder
	if err := report.Render(&buf, doc); err != nil {
		return fmt.Errorf("unable to render breakdown: %w", err)
	}
	return writeOutput(env, destinationPath(destDir, fx.Name, ".breakdown.txt"), []byte(buf.String()))
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err       error
		data      []byte
		stateName string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		stateName = "default"
		data, err = config.Prepare()
	} else {
		stateName = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("outputting configuration", zap.String("state", stateName), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
