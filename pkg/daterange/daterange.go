// Package daterange traduce los presets de rango de fecha de los listados
// (today, yesterday, this_week, ...) a ventanas [from, to) concretas.
package daterange

import "time"

// Presets admitidos por los listados.
const (
	Today     = "today"
	Yesterday = "yesterday"
	ThisWeek  = "this_week"
	LastWeek  = "last_week"
	ThisMonth = "this_month"
	LastMonth = "last_month"
	ThisYear  = "this_year"
)

// Window devuelve la ventana [from, to) para el preset dado respecto a now.
// Un preset desconocido o vacío devuelve (nil, nil): sin filtro.
// Las semanas empiezan en lunes.
func Window(preset string, now time.Time) (from, to *time.Time) {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	switch preset {
	case Today:
		f := day(now)
		return &f, nil
	case Yesterday:
		f := day(now.AddDate(0, 0, -1))
		t := day(now)
		return &f, &t
	case ThisWeek:
		f := day(now.AddDate(0, 0, -mondayOffset(now)))
		return &f, nil
	case LastWeek:
		t := day(now.AddDate(0, 0, -mondayOffset(now)))
		f := t.AddDate(0, 0, -7)
		return &f, &t
	case ThisMonth:
		f := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return &f, nil
	case LastMonth:
		t := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		f := t.AddDate(0, -1, 0)
		return &f, &t
	case ThisYear:
		f := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return &f, nil
	}
	return nil, nil
}

// mondayOffset días transcurridos desde el lunes de la semana de t.
func mondayOffset(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // domingo
		return 6
	}
	return wd - 1
}
