// Package cli implements the command-line interface for the cpuinfo tool.
//
// # Overview
//
// The cpuinfo CLI produces a single point-in-time report of the local
// processor and host. There are no subcommands: running the binary
// collects one snapshot and writes it to stdout or a file.
//
//	cpuinfo [--format table|json|yaml] [--output FILE] [--full] [--lang LANG]
//
// # Flags
//
//	--json           Force JSON output (overrides --format)
//	--format, -f     Output format: table, json, yaml (default: table)
//	--output, -o     Output file path (default: stdout)
//	--full, --verbose  Include detail rows in the table output
//	--no-color       Disable ANSI styling of the table output
//	--wait-exit      Prompt for Enter before exiting
//	--no-wait-exit   Exit immediately (rejects --wait-exit)
//	--sample         CPU usage sampling window (default: 100ms)
//	--lang           Output language: en, bg (default: process locale)
//	--log-level      Log verbosity: debug, info, warn, error (default: warn)
//	--help, -h       Show command help
//	--version, -v    Show version information
//
// # Output Formats
//
// Table (default):
//   - Localized, bordered sections for terminal viewing
//   - Section titles styled bold cyan on terminals
//
// JSON:
//   - Machine-parseable, indented
//   - Suitable for piping into other tools
//
// YAML:
//   - Human-readable, preserves structure
//
// # Usage Examples
//
// Verbose table in Bulgarian:
//
//	cpuinfo --full --lang bg
//
// JSON snapshot to a file:
//
//	cpuinfo --json --output snapshot.json
//
// Longer usage sampling window:
//
//	cpuinfo --sample 500ms
//
// # Environment Variables
//
//	CPUINFO_FORMAT   Default output format
//	CPUINFO_OUTPUT   Default output file path
//	CPUINFO_SAMPLE   Default usage sampling window
//	CPUINFO_LANG     Output language override
//	LOG_LEVEL        Set logging verbosity (debug, info, warn, error)
//	LC_ALL, LC_MESSAGES, LANG  Locale fallbacks when --lang is unset
//	NO_COLOR         Disable ANSI styling when set
//
// # Exit Codes
//
//	0  Success (a report is produced even when every probe fails)
//	1  Invalid flags or output failure
//
// # Architecture
//
// The CLI delegates to specialized packages:
//   - pkg/snapshot - snapshot assembly over the collectors
//   - pkg/render - localized table output
//   - pkg/serializer - JSON and YAML output
//   - pkg/i18n - language matching and the translation catalog
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/avelev99/cpuinfo-app/pkg/cli.version=1.0.0'"
package cli
