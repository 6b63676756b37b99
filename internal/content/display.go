package content

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// WordsPerMinute is the reading rate behind ReadTime.
const WordsPerMinute = 200

// ReadTime estimates reading time in whole minutes, rounding up.
// Empty or whitespace-only text reads in 0 minutes.
func ReadTime(text string) int {
	words := len(strings.Fields(text))
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// DefaultLocale is used when a requested locale matches none of the
// supported date conventions.
const DefaultLocale = "en-US"

type dateStyle struct {
	months [12]string
	render func(day int, month string, year int) string
}

var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var dateStyles = []dateStyle{
	{
		months: englishMonths,
		render: func(d int, m string, y int) string { return fmt.Sprintf("%s %d, %d", m, d, y) },
	},
	{
		months: englishMonths,
		render: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
	{
		months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		render: func(d int, m string, y int) string { return fmt.Sprintf("%d. %s %d", d, m, y) },
	},
	{
		months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		render: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
	{
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		render: func(d int, m string, y int) string { return fmt.Sprintf("%d de %s de %d", d, m, y) },
	},
}

// dateMatcher's tag order must line up with dateStyles.
var dateMatcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
})

// FormatDate renders t as a long-form calendar date in the convention of
// locale, e.g. "March 15, 2024" for en-US or "15. März 2024" for de.
func FormatDate(t time.Time, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		tags = []language.Tag{language.AmericanEnglish}
	}
	_, idx, conf := dateMatcher.Match(tags...)
	if conf == language.No {
		idx = 0
	}
	style := dateStyles[idx]
	return style.render(t.Day(), style.months[t.Month()-1], t.Year())
}
