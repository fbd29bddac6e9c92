// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// gregorianOffset is the difference between a Gregorian year and the
// Jalali year that starts in its March.
const gregorianOffset = 621

// Tehran is the time zone, UTC+3:30, whose noon decides which day
// starts the Jalali year.
var Tehran = time.FixedZone("IRST", 3*60*60+30*60)

// VernalEquinox returns the moment of the March equinox of the given
// Gregorian year. The result is computed in dynamical time which differs
// from UTC by about a minute for current dates.
func VernalEquinox(gregorianYear int) time.Time {
	y, m, d := julian.JDToCalendar(solstice.March(gregorianYear))
	day := int(d)
	frac := time.Duration((d - float64(day)) * float64(24*time.Hour))
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC).Add(frac)
}

// Nowruz returns the astronomically determined first day of the given
// Jalali year: the day of the vernal equinox if it occurs before noon in
// Tehran, otherwise the day after. It is independent of the arithmetic
// used by ToGregorian and so can be used to cross check it.
func Nowruz(year int) (GregorianDate, error) {
	if err := checkYear(year); err != nil {
		return GregorianDate{}, err
	}
	eq := VernalEquinox(year + gregorianOffset).In(Tehran)
	day := time.Date(eq.Year(), eq.Month(), eq.Day(), 0, 0, 0, 0, time.UTC)
	if eq.Hour() >= 12 {
		day = day.AddDate(0, 0, 1)
	}
	return NewGregorianDate(day), nil
}
