// Package dates resolves the relative Spanish date phrases users type
// ("ayer", "20/3", "5 de enero") to absolute calendar dates.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// DefaultTimezone is the civil timezone every date in the system is
// anchored to, regardless of where the process runs.
const DefaultTimezone = "America/Lima"

// dayMonthPattern matches "D/M" and "D-M" with 1-2 digit components.
var dayMonthPattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})`)

var months = []struct {
	name  string
	month time.Month
}{
	{"enero", time.January},
	{"febrero", time.February},
	{"marzo", time.March},
	{"abril", time.April},
	{"mayo", time.May},
	{"junio", time.June},
	{"julio", time.July},
	{"agosto", time.August},
	{"septiembre", time.September},
	{"octubre", time.October},
	{"noviembre", time.November},
	{"diciembre", time.December},
}

var monthPatterns = buildMonthPatterns()

func buildMonthPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(months))
	for i, m := range months {
		out[i] = regexp.MustCompile(`(?i)(\d{1,2})\s+de\s+` + m.name)
	}
	return out
}

// Location loads the fixed civil timezone.
func Location() (*time.Location, error) {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("dates: load location %q: %w", DefaultTimezone, err)
	}
	return loc, nil
}

// TodayIn returns the civil date of the given instant in loc.
func TodayIn(now time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(now.In(loc))
}

// Resolve maps free text to an ISO calendar date string relative to
// today. Rules are tried in order and the first match wins:
//
//  1. "antes de ayer"  → today - 2
//  2. "ayer"           → today - 1
//  3. "hoy"            → today
//  4. "D/M" or "D-M"   → that day/month in today's year
//  5. "D de <mes>"     → that day/month in today's year
//
// Invalid day/month combinations and unmatched text both fall back to
// today. The two-day phrase must be tested before "ayer": its text
// contains "ayer" and would otherwise be shadowed.
func Resolve(text string, today civil.Date) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "antes de ayer"):
		return today.AddDays(-2).String()
	case strings.Contains(lower, "ayer"):
		return today.AddDays(-1).String()
	case strings.Contains(lower, "hoy"):
		return today.String()
	}

	if m := dayMonthPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return dateInYear(today, time.Month(month), day)
	}

	for i, re := range monthPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[1])
		return dateInYear(today, months[i].month, day)
	}

	return today.String()
}

// dateInYear builds a date in today's year, falling back to today when
// the day/month pair does not form a valid date.
func dateInYear(today civil.Date, month time.Month, day int) string {
	d := civil.Date{Year: today.Year, Month: month, Day: day}
	if !d.IsValid() {
		return today.String()
	}
	return d.String()
}
