// Package i18n bundles the translation catalog for user-facing output
// and resolves language preferences against the supported set.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// supported lists the languages the catalog carries. The first entry
// is the fallback for unknown preferences.
var supported = []language.Tag{
	language.English,
	language.Bulgarian,
}

var matcher = language.NewMatcher(supported)

// Match resolves user language preferences to the closest supported
// language. Preferences may use BCP 47 or POSIX locale form, so "bg",
// "bg-BG" and "bg_BG.UTF-8" all resolve to Bulgarian. Unknown or empty
// preferences resolve to English.
func Match(prefs ...string) language.Tag {
	cleaned := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if i := strings.IndexByte(p, '.'); i >= 0 {
			p = p[:i]
		}
		p = strings.ReplaceAll(p, "_", "-")
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	_, idx := language.MatchStrings(matcher, cleaned...)
	return supported[idx]
}

// Languages lists the supported language tags, fallback first.
func Languages() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// NewPrinter returns a printer bound to the bundled catalog.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}
