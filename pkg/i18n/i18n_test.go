package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		prefs []string
		want  language.Tag
	}{
		{"empty", nil, language.English},
		{"blank string", []string{""}, language.English},
		{"english", []string{"en"}, language.English},
		{"english region", []string{"en-US"}, language.English},
		{"bulgarian", []string{"bg"}, language.Bulgarian},
		{"bulgarian region", []string{"bg-BG"}, language.Bulgarian},
		{"posix locale form", []string{"bg_BG.UTF-8"}, language.Bulgarian},
		{"unsupported falls back", []string{"de"}, language.English},
		{"garbage falls back", []string{"???"}, language.English},
		{"first preference wins", []string{"bg", "en"}, language.Bulgarian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.prefs...); got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.prefs, got, tt.want)
			}
		})
	}
}

func TestNewPrinterLabels(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		key  string
		want string
	}{
		{"english passthrough", language.English, "Parameter", "Parameter"},
		{"bulgarian label", language.Bulgarian, "Parameter", "Параметър"},
		{"bulgarian section title", language.Bulgarian, "SYSTEM", "СИСТЕМА"},
		{"label kept in latin", language.Bulgarian, "Hostname", "Hostname"},
		{"localized yes", language.Bulgarian, "Yes", "Да"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPrinter(tt.tag).Sprintf(tt.key); got != tt.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestNewPrinterFormats(t *testing.T) {
	en := NewPrinter(language.English)
	bg := NewPrinter(language.Bulgarian)

	if got := en.Sprintf("%s (min: %s, max: %s)", "2400.00", "800.00", "4200.00"); got != "2400.00 (min: 800.00, max: 4200.00)" {
		t.Errorf("english frequency summary = %q", got)
	}
	if got := bg.Sprintf("%s (min: %s, max: %s)", "2400.00", "800.00", "4200.00"); got != "2400.00 (мин: 800.00, макс: 4200.00)" {
		t.Errorf("bulgarian frequency summary = %q", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 {
		t.Fatalf("Languages() returned %d tags, want 2", len(langs))
	}
	if langs[0] != language.English {
		t.Errorf("fallback language = %v, want English", langs[0])
	}

	// Mutating the returned slice must not affect the supported set.
	langs[0] = language.German
	if Languages()[0] != language.English {
		t.Error("Languages() exposed internal state")
	}
}
