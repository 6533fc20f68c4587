package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/avelev99/cpuinfo-app/pkg/defaults"
	"github.com/avelev99/cpuinfo-app/pkg/serializer"
)

// Shared flag definitions, referenced from the root command.
var (
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Force JSON output (overrides --format)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   fmt.Sprintf("Output format, one of: %s", strings.Join(serializer.SupportedFormats(), "|")),
		Sources: cli.EnvVars("CPUINFO_FORMAT"),
		Value:   string(serializer.FormatTable),
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (defaults to stdout)",
		Sources: cli.EnvVars("CPUINFO_OUTPUT"),
	}

	fullFlag = &cli.BoolFlag{
		Name:    "full",
		Aliases: []string{"verbose"},
		Usage:   "Include detail rows in the table output",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable ANSI styling of the table output",
	}

	waitExitFlag = &cli.BoolFlag{
		Name:  "wait-exit",
		Usage: "Prompt for Enter before exiting",
	}

	noWaitExitFlag = &cli.BoolFlag{
		Name:  "no-wait-exit",
		Usage: "Exit immediately after the report is written",
	}

	sampleFlag = &cli.DurationFlag{
		Name:    "sample",
		Usage:   "CPU usage sampling window",
		Sources: cli.EnvVars("CPUINFO_SAMPLE"),
		Value:   defaults.SampleWindow,
	}

	langFlag = &cli.StringFlag{
		Name:    "lang",
		Usage:   "Output language (en, bg); defaults to the process locale",
		Sources: cli.EnvVars("CPUINFO_LANG"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   defaults.LogLevel,
	}
)
