package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

var cat = catalog.NewBuilder(catalog.Fallback(language.English))

type entry struct {
	key string
	en  string
	bg  string
}

// entries keys every user-facing string by its English form. Labels the
// original report kept in Latin script stay identical across languages.
var entries = []entry{
	{"Parameter", "Parameter", "Параметър"},
	{"Value", "Value", "Стойност"},
	{"CPU", "CPU", "CPU"},
	{"SYSTEM", "SYSTEM", "СИСТЕМА"},
	{"Model/Brand", "Model/Brand", "Модел/Бранд"},
	{"Architecture", "Architecture", "Архитектура"},
	{"Physical cores", "Physical cores", "Физически ядра"},
	{"Logical processors", "Logical processors", "Логически нишки"},
	{"Frequency (MHz)", "Frequency (MHz)", "Честота (MHz)"},
	{"Frequency min (MHz)", "Frequency min (MHz)", "Честота мин (MHz)"},
	{"Frequency max (MHz)", "Frequency max (MHz)", "Честота макс (MHz)"},
	{"Usage", "Usage", "Натоварване"},
	{"Features/Flags", "Features/Flags", "Функции/Флагове"},
	{"CPU Cache", "CPU Cache", "CPU Cache"},
	{"OS", "OS", "ОС"},
	{"OS version", "OS version", "OS версия"},
	{"Hostname", "Hostname", "Hostname"},
	{"Uptime", "Uptime", "Uptime"},
	{"Uptime (sec)", "Uptime (sec)", "Uptime (сек)"},
	{"RAM total", "RAM total", "RAM общо"},
	{"RAM available", "RAM available", "RAM свободно"},
	{"RAM total (bytes)", "RAM total (bytes)", "RAM общо (байтове)"},
	{"RAM available (bytes)", "RAM available (bytes)", "RAM свободно (байтове)"},
	{"Yes", "Yes", "Да"},
	{"No", "No", "Не"},
	{"Press Enter to exit...", "Press Enter to exit...", "Натиснете Enter за изход..."},
	{"%s (min: %s, max: %s)", "%s (min: %s, max: %s)", "%s (мин: %s, макс: %s)"},
	{"%sd %02d:%02d:%02d", "%sd %02d:%02d:%02d", "%sд %02d:%02d:%02d"},
}

func init() {
	for _, e := range entries {
		if err := cat.SetString(language.English, e.key, e.en); err != nil {
			panic(err)
		}
		if err := cat.SetString(language.Bulgarian, e.key, e.bg); err != nil {
			panic(err)
		}
	}
}
