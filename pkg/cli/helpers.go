package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/avelev99/cpuinfo-app/pkg/errors"
	"github.com/avelev99/cpuinfo-app/pkg/i18n"
	"github.com/avelev99/cpuinfo-app/pkg/serializer"
)

// parseOutputFormat resolves the effective output format from the
// --json and --format flags. --json wins over --format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	if cmd.Bool("json") {
		return serializer.FormatJSON, nil
	}

	format, err := serializer.ParseFormat(cmd.String("format"))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInvalidInput, "invalid output format", err)
	}
	return format, nil
}

// resolveWait validates the wait flags and reports whether the process
// should block on Enter before exiting.
func resolveWait(cmd *cli.Command) (bool, error) {
	wait := cmd.Bool("wait-exit")
	if wait && cmd.Bool("no-wait-exit") {
		return false, apperrors.New(apperrors.ErrCodeInvalidInput, "--wait-exit and --no-wait-exit are mutually exclusive")
	}
	return wait, nil
}

// resolveLanguage picks the output language from the --lang flag,
// falling back to the POSIX locale environment.
func resolveLanguage(cmd *cli.Command) language.Tag {
	if lang := strings.TrimSpace(cmd.String("lang")); lang != "" {
		return i18n.Match(lang)
	}
	return i18n.Match(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

// useColor reports whether section titles should carry ANSI styling.
// Color is only used for table output going to a terminal, and both
// --no-color and the NO_COLOR convention turn it off.
func useColor(cmd *cli.Command, format serializer.Format) bool {
	if format != serializer.FormatTable {
		return false
	}
	if cmd.Bool("no-color") {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if strings.TrimSpace(cmd.String("output")) != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// waitForEnter prompts on stderr and blocks until one stdin line or
// EOF. Stdout is left untouched so the report stays pipeable.
func waitForEnter(printer *message.Printer) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprint(os.Stderr, printer.Sprintf("Press Enter to exit..."))

	reader := bufio.NewReader(os.Stdin)
	if _, err := reader.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		slog.Debug("stdin read failed", slog.String("error", err.Error()))
	}
}
