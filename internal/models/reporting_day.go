package models

import "time"

// ReportingDay is the factory's production date in YYYY-MM-DD form.
type ReportingDay string

// ReportingDayLayout is the wire/calendar layout of a ReportingDay.
const ReportingDayLayout = "2006-01-02"

func (d ReportingDay) String() string { return string(d) }

// Environment carries the ambient values a resolver reads: the host the
// browser used to reach the dashboard and the wall clock at request time.
// An empty Host means there is no browsing context.
type Environment struct {
	Host string
	Now  time.Time
}
