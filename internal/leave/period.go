// Package leave implements anniversary-period entitlement accounting.
// An employee's entitlement cycle is anchored to the month and day of
// their start date, not the calendar year.
package leave

import "time"

type Period struct {
	Start time.Time
	End   time.Time
}

// CurrentPeriod returns the entitlement period containing today: from the
// most recent anniversary on or before today through the day before the
// next anniversary.
func CurrentPeriod(startDate, today time.Time) Period {
	startDate = dateOnly(startDate)
	today = dateOnly(today)

	anniversary := time.Date(today.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	if anniversary.After(today) {
		anniversary = anniversary.AddDate(-1, 0, 0)
	}

	return Period{
		Start: anniversary,
		End:   anniversary.AddDate(1, 0, 0).AddDate(0, 0, -1),
	}
}

// Contains checks startDate-only membership: a multi-day event is attributed
// entirely to the period containing its start date, even if it extends past
// the boundary. Intentional simplification, not range overlap.
func (p Period) Contains(date time.Time) bool {
	date = dateOnly(date)
	return !date.Before(p.Start) && !date.After(p.End)
}

// InclusiveDays counts calendar days covered by [start, end], both ends
// included. A nil end means a single day.
func InclusiveDays(start time.Time, end *time.Time) int {
	if end == nil {
		return 1
	}
	s := dateOnly(start)
	e := dateOnly(*end)
	if e.Before(s) {
		return 1
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// IsAnniversary reports whether today is the employee's work anniversary
// (month and day match; the start year itself does not count).
func IsAnniversary(startDate, today time.Time) bool {
	startDate = dateOnly(startDate)
	today = dateOnly(today)
	return startDate.Month() == today.Month() &&
		startDate.Day() == today.Day() &&
		today.Year() > startDate.Year()
}

// YearsOfService is the whole years since startDate, counting this year's
// anniversary only once it has occurred.
func YearsOfService(startDate, today time.Time) int {
	startDate = dateOnly(startDate)
	today = dateOnly(today)

	years := today.Year() - startDate.Year()
	anniversary := time.Date(today.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	if anniversary.After(today) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
