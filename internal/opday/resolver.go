// Package opday maps wall-clock instants to the factory's reporting day.
//
// The production day rolls over at 08:00 local time: everything counted
// between midnight and 07:59:59 still belongs to the previous day.
package opday

import (
	"time"

	"rfid_tracking/internal/models"
)

// RolloverHour is the local hour at which a new reporting day starts.
const RolloverHour = 8

// IsAfterRollover reports whether t (in its own location) is at or past 08:00.
func IsAfterRollover(t time.Time) bool {
	return t.Hour() >= RolloverHour
}

// ReportingDay returns the production day t belongs to.
func ReportingDay(t time.Time) models.ReportingDay {
	if IsAfterRollover(t) {
		return models.ReportingDay(t.Format(models.ReportingDayLayout))
	}
	// Build the previous date from calendar fields so a DST shift never
	// lands us on the same or a skipped day.
	y, m, d := t.Date()
	prev := time.Date(y, m, d-1, 12, 0, 0, 0, t.Location())
	return models.ReportingDay(prev.Format(models.ReportingDayLayout))
}

// Resolver reads the clock on every call. Nothing is cached, so a rollover
// is picked up by the very next call.
type Resolver struct {
	clock func() time.Time
	loc   *time.Location
}

// NewResolver builds a resolver. A nil clock means time.Now, a nil location
// means time.Local.
func NewResolver(clock func() time.Time, loc *time.Location) *Resolver {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{clock: clock, loc: loc}
}

// Now returns the current instant in the factory location.
func (r *Resolver) Now() time.Time {
	return r.clock().In(r.loc)
}

// IsAfterRolloverHour reports whether the current local hour is >= 8.
func (r *Resolver) IsAfterRolloverHour() bool {
	return IsAfterRollover(r.Now())
}

// CurrentReportingDay returns today's date after 08:00 and yesterday's before.
func (r *Resolver) CurrentReportingDay() models.ReportingDay {
	return ReportingDay(r.Now())
}

// At resolves an explicit instant, converted to the factory location first.
func (r *Resolver) At(t time.Time) models.ReportingDay {
	return ReportingDay(t.In(r.loc))
}

// Location is the factory location used for local hours.
func (r *Resolver) Location() *time.Location {
	return r.loc
}
