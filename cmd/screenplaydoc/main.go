// Command screenplaydoc reconstructs scenes, locations, characters and
// dialogue from positioned-text screenplay PDF extraction fixtures.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"screenplaydoc/appinfo"
	"screenplaydoc/config"
	"screenplaydoc/state"
)

// initializeAppContext prepares application context before command
// execution but after the command line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if env.Log, err = env.Cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()
	env.Overwrite = cmd.Bool("overwrite")

	env.Log.Debug("program started", zap.Strings("args", os.Args), zap.String("ver", appinfo.Version()), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Info("using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Debug("program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()
	return nil
}

// errWasHandled tracks whether exitErrHandler already reported the error to
// the log, so main's deferred fallback doesn't print it a second time.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Error("program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("unknown command, nothing to do", zap.String("command", name))
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	overwriteFlag := &cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exists, overwrite files"}

	app := &cli.Command{
		Name:            appinfo.Name(),
		Usage:           "reconstructs scenes, locations, characters and dialogue from positioned-text screenplay PDF extraction",
		Version:         appinfo.Version() + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
		},
		Commands: []*cli.Command{
			{
				Name:         "parse",
				Usage:        "Parses positioned-text fixture(s) into screenplay documents (JSON)",
				OnUsageError: usageErrorHandler,
				Action:       runParse,
				Flags:        []cli.Flag{overwriteFlag},
				ArgsUsage:    "SOURCE [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to positioned-text fixture(s), following forms are supported:
        path to a file: a single positioned-text JSON fixture
        path to a directory: recursively process all "*.json" fixtures under it
        path to a zip archive: recursively process all "*.json" fixtures inside it

DESTINATION:
    directory to write "<name>.screenplay.json" files to, current directory if absent
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "report",
				Usage:        "Parses fixture(s) and renders a human-readable scene breakdown",
				OnUsageError: usageErrorHandler,
				Action:       runReport,
				Flags:        []cli.Flag{overwriteFlag},
				ArgsUsage:    "SOURCE [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    same forms accepted as "parse"

DESTINATION:
    directory to write "<name>.breakdown.txt" files to, current directory if absent
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "export",
				Usage:        "Parses fixture(s) and bundles documents plus breakdowns into a zip archive",
				OnUsageError: usageErrorHandler,
				Action:       runExport,
				Flags:        []cli.Flag{overwriteFlag},
				ArgsUsage:    "SOURCE DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    same forms accepted as "parse"

DESTINATION:
    zip file to write the bundle to
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces the "active" configuration: a composition of default values and
values specified in a configuration file. To see the default configuration
embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
