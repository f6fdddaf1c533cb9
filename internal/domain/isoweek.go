package domain

import (
	"fmt"
	"time"
)

// SchoolDays is the number of days (Monday through Friday) in a week menu.
const SchoolDays = 5

// WeeksInYear returns 52 or 53: the ISO week number of December 28th.
func WeeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// ValidateISOWeek checks year and week bounds.
func ValidateISOWeek(year, week int) error {
	var errs []FieldError
	if year < 2000 || year > 2100 {
		errs = append(errs, FieldError{Field: "year", Message: "must be between 2000 and 2100"})
	} else if limit := WeeksInYear(year); week < 1 || week > limit {
		errs = append(errs, FieldError{Field: "isoWeek", Message: fmt.Sprintf("must be between 1 and %d", limit)})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ISOWeekMonday returns the Monday of the given ISO week at UTC midnight.
// Week 1 is the week containing January 4th.
func ISOWeekMonday(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7 // days since Monday
	return jan4.AddDate(0, 0, -offset+(week-1)*7)
}

// SchoolDates returns Monday through Friday of the given ISO week.
func SchoolDates(year, week int) []time.Time {
	monday := ISOWeekMonday(year, week)
	out := make([]time.Time, SchoolDays)
	for i := range out {
		out[i] = monday.AddDate(0, 0, i)
	}
	return out
}

// SameDate compares calendar dates, each read in its own location.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
