package inventory

import (
	"strings"
	"time"
)

// Formatos aceptados para fechas enviadas por el caller.
var occurredOnLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

const occurredOnDateLayout = "2006-01-02"

// ResolveOccurredOn interpreta la fecha opcional de una operación. Política
// indulgente: vacío o ilegible cae a "ahora"; una fecha sin hora se combina
// con la hora actual del día en vez de rechazarse.
func ResolveOccurredOn(raw string, now time.Time) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return now
	}
	for _, layout := range occurredOnLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t
		}
	}
	if d, err := time.ParseInLocation(occurredOnDateLayout, s, now.Location()); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(),
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	}
	return now
}
