package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/avelev99/cpuinfo-app/pkg/collector/cpu"
	"github.com/avelev99/cpuinfo-app/pkg/collector/system"
	apperrors "github.com/avelev99/cpuinfo-app/pkg/errors"
	"github.com/avelev99/cpuinfo-app/pkg/humanize"
	"github.com/avelev99/cpuinfo-app/pkg/i18n"
	"github.com/avelev99/cpuinfo-app/pkg/logging"
	"github.com/avelev99/cpuinfo-app/pkg/render"
	"github.com/avelev99/cpuinfo-app/pkg/report"
	"github.com/avelev99/cpuinfo-app/pkg/serializer"
	"github.com/avelev99/cpuinfo-app/pkg/snapshot"
)

const (
	name           = "cpuinfo"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd builds the cpuinfo command. The root action produces one
// report; there are no subcommands.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Report CPU and host system information",
		Description: fmt.Sprintf(`cpuinfo - CPU and host system reporter

Version: %s
Commit:  %s
Built:   %s

Collects processor details (brand, architecture, core counts, frequency,
cache sizes, feature flags, usage) and host details (OS identity,
hostname, uptime, memory) and renders them as a localized table, JSON,
or YAML. Every probe degrades independently: fields that cannot be
determined are reported as %q instead of failing the run.`, version, commit, date, report.Sentinel),
		Flags: []cli.Flag{
			jsonFlag,
			formatFlag,
			outputFlag,
			fullFlag,
			noColorFlag,
			waitExitFlag,
			noWaitExitFlag,
			sampleFlag,
			langFlag,
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Info("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", cmd.String("log-level"))
			return ctx, nil
		},
		Action: runReport,
	}
}

// runReport collects one snapshot and writes it in the requested
// format. Flag validation happens before any probe runs so bad input
// fails fast.
func runReport(ctx context.Context, cmd *cli.Command) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	wait, err := resolveWait(cmd)
	if err != nil {
		return err
	}

	printer := i18n.NewPrinter(resolveLanguage(cmd))

	snapshotter := &snapshot.Snapshotter{
		CPU:    &cpu.Collector{SampleWindow: cmd.Duration("sample")},
		System: &system.Collector{Formatter: humanize.New(printer)},
	}
	snap := snapshotter.Collect(ctx)

	var out serializer.Serializer
	if format == serializer.FormatTable {
		output, closer := serializer.NewOutput(cmd.String("output"))
		if closer != nil {
			defer closer.Close()
		}
		out = &render.TableWriter{
			Output:  output,
			Verbose: cmd.Bool("full"),
			Color:   useColor(cmd, format),
			Printer: printer,
		}
	} else {
		writer := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
		defer writer.Close()
		out = writer
	}

	if err := out.Serialize(ctx, snap); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write report", err)
	}

	if wait {
		waitForEnter(printer)
	}
	return nil
}

// Execute runs the CLI. This is called by main.main(). It owns process
// exit codes: 0 on success, 1 on any error.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM; collection degrades to sentinels once the
	// context is canceled
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
