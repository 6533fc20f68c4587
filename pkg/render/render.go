// Package render produces the human-readable table form of a snapshot.
//
// The output is two bordered sections (CPU, then system), localized
// through the i18n catalog. TableWriter implements the
// serializer.Serializer interface so the CLI can treat the table as
// just another output format.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avelev99/cpuinfo-app/pkg/i18n"
	"github.com/avelev99/cpuinfo-app/pkg/report"
	"github.com/avelev99/cpuinfo-app/pkg/serializer"
)

var _ serializer.Serializer = (*TableWriter)(nil)

const (
	// maxValueWidth caps the value column; longer values are wrapped.
	maxValueWidth = 70
	// featureLimit is how many feature flags the compact list form shows
	// before eliding the rest.
	featureLimit = 10
)

// TableWriter renders a snapshot as localized, bordered text tables.
type TableWriter struct {
	// Output receives the rendered text. If nil, os.Stdout is used.
	Output io.Writer

	// Verbose adds the detail rows: frequency bounds, feature flags,
	// cache sizes, and the raw uptime and memory counters.
	Verbose bool

	// Color styles section titles with ANSI escapes.
	Color bool

	// Printer localizes labels and composite formats. If nil, an
	// English printer is used.
	Printer *message.Printer
}

type row struct {
	label string
	value string
}

// Serialize renders snapshot and writes it to the configured output.
// Only *report.Snapshot values are accepted.
func (w *TableWriter) Serialize(ctx context.Context, snapshot any) error {
	snap, ok := snapshot.(*report.Snapshot)
	if !ok {
		return fmt.Errorf("unsupported snapshot type: %T", snapshot)
	}

	sections := []string{
		w.section(w.printer().Sprintf("CPU"), w.cpuRows(&snap.CPU)),
		w.section(w.printer().Sprintf("SYSTEM"), w.systemRows(&snap.System)),
	}

	_, err := fmt.Fprintln(w.output(), strings.Join(sections, "\n\n"))
	return err
}

func (w *TableWriter) section(title string, rows []row) string {
	if w.Color {
		title = w.titleStyle().Render(title)
	}
	return title + "\n" + w.table(rows)
}

// titleStyle returns the bold cyan style used for section titles. The
// renderer is pinned to the ANSI profile; lipgloss otherwise re-detects
// the environment and strips color when output is not a terminal.
func (w *TableWriter) titleStyle() lipgloss.Style {
	renderer := lipgloss.NewRenderer(w.output(), termenv.WithProfile(termenv.ANSI))
	renderer.SetColorProfile(termenv.ANSI)
	return renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
}

func (w *TableWriter) cpuRows(cpu *report.CPU) []row {
	p := w.printer()
	rows := []row{
		{p.Sprintf("Model/Brand"), w.formatLeaf(cpu.Brand)},
		{p.Sprintf("Architecture"), w.formatLeaf(cpu.Architecture)},
		{p.Sprintf("Physical cores"), w.formatLeaf(cpu.PhysicalCores)},
		{p.Sprintf("Logical processors"), w.formatLeaf(cpu.LogicalProcessors)},
		{p.Sprintf("Frequency (MHz)"), w.frequencySummary(&cpu.Frequency)},
		{p.Sprintf("Usage"), w.formatPercent(cpu.UsagePercent)},
	}

	if w.Verbose {
		rows = append(rows,
			row{p.Sprintf("Frequency min (MHz)"), w.formatLeaf(cpu.Frequency.Min)},
			row{p.Sprintf("Frequency max (MHz)"), w.formatLeaf(cpu.Frequency.Max)},
			row{p.Sprintf("Features/Flags"), w.formatFeatures(cpu.Features, true)},
			row{p.Sprintf("CPU Cache"), w.formatCache(&cpu.Cache)},
		)
	}
	return rows
}

func (w *TableWriter) systemRows(sys *report.System) []row {
	p := w.printer()
	rows := []row{
		{p.Sprintf("OS"), fmt.Sprintf("%s %s", sys.OS.Name.String(), sys.OS.Release.String())},
		{p.Sprintf("OS version"), w.formatLeaf(sys.OS.Version)},
		{p.Sprintf("Hostname"), w.formatLeaf(sys.Hostname)},
		{p.Sprintf("Uptime"), w.formatLeaf(sys.UptimeHuman)},
		{p.Sprintf("RAM total"), w.formatLeaf(sys.Memory.TotalHuman)},
		{p.Sprintf("RAM available"), w.formatLeaf(sys.Memory.AvailableHuman)},
	}

	if w.Verbose {
		rows = append(rows,
			row{p.Sprintf("Uptime (sec)"), w.formatLeaf(sys.UptimeSeconds)},
			row{p.Sprintf("RAM total (bytes)"), w.formatLeaf(sys.Memory.TotalBytes)},
			row{p.Sprintf("RAM available (bytes)"), w.formatLeaf(sys.Memory.AvailableBytes)},
		)
	}
	return rows
}

// table lays rows out between +--+--+ borders. The label column is as
// wide as the longest label; the value column is as wide as the longest
// value up to maxValueWidth, with overflow wrapped onto continuation
// rows that carry an empty label. Widths are measured in runes so
// Cyrillic labels align.
func (w *TableWriter) table(rows []row) string {
	p := w.printer()
	labelHeader := p.Sprintf("Parameter")
	valueHeader := p.Sprintf("Value")

	maxLabel := utf8.RuneCountInString(labelHeader)
	for _, r := range rows {
		if n := utf8.RuneCountInString(r.label); n > maxLabel {
			maxLabel = n
		}
	}

	maxValue := utf8.RuneCountInString(valueHeader)
	for _, r := range rows {
		if n := utf8.RuneCountInString(r.value); n > maxValue {
			maxValue = n
		}
	}
	if maxValue > maxValueWidth {
		maxValue = maxValueWidth
	}

	border := "+" + strings.Repeat("-", maxLabel+2) + "+" + strings.Repeat("-", maxValue+2) + "+"

	var b strings.Builder
	b.WriteString(border + "\n")
	b.WriteString("| " + pad(labelHeader, maxLabel) + " | " + pad(valueHeader, maxValue) + " |\n")
	b.WriteString(border + "\n")
	for _, r := range rows {
		for i, chunk := range wrap(r.value, maxValue) {
			label := r.label
			if i > 0 {
				label = ""
			}
			b.WriteString("| " + pad(label, maxLabel) + " | " + pad(chunk, maxValue) + " |\n")
		}
	}
	b.WriteString(border)
	return b.String()
}

// formatLeaf is the generic value rule: stringify, substitute the
// sentinel for missing data, and map booleans to localized yes/no.
func (w *TableWriter) formatLeaf(v any) string {
	switch t := v.(type) {
	case nil:
		return report.Sentinel
	case bool:
		if t {
			return w.printer().Sprintf("Yes")
		}
		return w.printer().Sprintf("No")
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// frequencySummary renders the current clock with its bounds, or the
// bare current reading when neither bound is known.
func (w *TableWriter) frequencySummary(freq *report.Frequency) string {
	current := freq.Current.String()
	if !freq.Min.IsKnown() && !freq.Max.IsKnown() {
		return current
	}
	return w.printer().Sprintf("%s (min: %s, max: %s)", current, freq.Min.String(), freq.Max.String())
}

func (w *TableWriter) formatPercent(usage report.Value[float64]) string {
	v, ok := usage.Get()
	if !ok {
		return report.Sentinel
	}
	return fmt.Sprintf("%.1f%%", v)
}

// formatFeatures joins the flag list. The full form emits every flag;
// the compact form elides everything past featureLimit with a count.
func (w *TableWriter) formatFeatures(features report.Value[[]string], full bool) string {
	list, ok := features.Get()
	if !ok {
		return report.Sentinel
	}

	if full {
		if len(list) == 0 {
			return report.Sentinel
		}
		return strings.Join(list, ", ")
	}

	if len(list) <= featureLimit {
		return strings.Join(list, ", ")
	}
	return fmt.Sprintf("%s ... (+%d)", strings.Join(list[:featureLimit], ", "), len(list)-featureLimit)
}

func (w *TableWriter) formatCache(cache *report.Cache) string {
	parts := []string{
		"L1: " + cache.L1.String(),
		"L2: " + cache.L2.String(),
		"L3: " + cache.L3.String(),
	}
	return strings.Join(parts, ", ")
}

func (w *TableWriter) output() io.Writer {
	if w.Output != nil {
		return w.Output
	}
	return os.Stdout
}

func (w *TableWriter) printer() *message.Printer {
	if w.Printer != nil {
		return w.Printer
	}
	return i18n.NewPrinter(language.English)
}

func pad(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// wrap splits value on whitespace and greedily packs the words into
// lines no wider than width runes. Words wider than the column are
// hard-broken. An empty value yields a single empty line so the row
// still renders.
func wrap(value string, width int) []string {
	words := strings.Fields(value)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)

		for wordLen > width {
			flush()
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
			wordLen = utf8.RuneCountInString(word)
		}
		if wordLen == 0 {
			continue
		}

		switch {
		case currentLen == 0:
			current.WriteString(word)
			currentLen = wordLen
		case currentLen+1+wordLen <= width:
			current.WriteString(" ")
			current.WriteString(word)
			currentLen += 1 + wordLen
		default:
			flush()
			current.WriteString(word)
			currentLen = wordLen
		}
	}
	flush()
	return lines
}
