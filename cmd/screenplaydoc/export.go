package main

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	fixzip "github.com/hidez8891/zip"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"screenplaydoc/config"
	"screenplaydoc/report"
	"screenplaydoc/screenplay"
	"screenplaydoc/state"
)

// runExport implements the "export" subcommand: every discovered fixture is
// parsed and bundled, parsed-JSON plus rendered breakdown, into a single zip
// archive at DESTINATION.
func runExport(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	source := cmd.Args().Get(0)
	if len(source) == 0 {
		return fmt.Errorf("SOURCE is required")
	}
	dest := cmd.Args().Get(1)
	if len(dest) == 0 {
		return fmt.Errorf("DESTINATION (zip file) is required")
	}
	if !env.Overwrite {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("destination '%s' already exists (use --overwrite)", dest)
		}
	}

	sources, err := discoverFixtures(source)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		env.Log.Warn("no fixtures found", zap.String("source", source))
		return nil
	}

	tmpName := dest + ".tmp"
	f, err := os.Create(tmpName)
	if err != nil {
		return fmt.Errorf("unable to create temporary bundle '%s': %w", tmpName, err)
	}

	zw := zip.NewWriter(f)
	opts := parseOptions(env.Cfg)

	var errs error
	for _, fx := range sources {
		if err := exportOne(zw, fx, opts); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", fx.Name, err))
			env.Log.Error("unable to export fixture", zap.String("fixture", fx.Name), zap.Error(err))
			continue
		}
		env.Log.Info("exported fixture", zap.String("fixture", fx.Name))
	}

	if err := zw.Close(); err != nil {
		f.Close()
		os.Remove(tmpName)
		return multierr.Append(errs, fmt.Errorf("unable to finalize bundle: %w", err))
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpName)
		return multierr.Append(errs, fmt.Errorf("unable to close bundle: %w", err))
	}

	// Re-write the bundle through hidez8891/zip, stripping streamed data
	// descriptors: downstream tooling that reads the bundle with a plain
	// sequential scanner (not a full central-directory reader) expects
	// fixed-size local headers.
	if err := stripDataDescriptors(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return multierr.Append(errs, err)
	}
	os.Remove(tmpName)

	return errs
}

func exportOne(zw *zip.Writer, fx fixtureSource, opts []screenplay.Option) error {
	pdf, err := fx.Open()
	if err != nil {
		return fmt.Errorf("unable to load fixture: %w", err)
	}
	doc, err := screenplay.Parse(pdf, opts...)
	if err != nil {
		return fmt.Errorf("unable to parse fixture: %w", err)
	}

	rawBase := filepath.Base(fx.Name)
	base := config.CleanFileName(strings.TrimSuffix(rawBase, filepath.Ext(rawBase)))

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal document: %w", err)
	}
	if err := writeZipEntry(zw, base+".screenplay.json", data); err != nil {
		return err
	}

	var buf strings.Builder
	if err := report.Render(&buf, doc); err != nil {
		return fmt.Errorf("unable to render breakdown: %w", err)
	}
	return writeZipEntry(zw, base+".breakdown.txt", []byte(buf.String()))
}

func writeZipEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("unable to add bundle entry '%s': %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("unable to write bundle entry '%s': %w", name, err)
	}
	return nil
}

func stripDataDescriptors(from, to string) error {
	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create bundle '%s': %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to reopen bundle for finalization: %w", err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		file.Flags &= ^fixzip.FlagDataDescriptor
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to finalize bundle entry '%s': %w", file.Name, err)
		}
	}
	return nil
}
