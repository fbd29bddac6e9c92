// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date represents a Jalali date. It is a value type; a valid Date never
// has a Day that exceeds DaysInMonth(Year, Month).
type Date struct {
	Year  int
	Month Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, int(d.Month), d.Day)
}

// Tomorrow returns the date of the next day, wrapping at the end of
// each month and year. d must be a valid date.
func (d Date) Tomorrow() Date {
	n, _ := DaysInMonth(d.Year, d.Month)
	if d.Day < n {
		d.Day++
		return d
	}
	d.Year, d.Month = NextMonth(d.Year, d.Month)
	d.Day = 1
	return d
}

// Yesterday returns the date of the previous day, wrapping at the start
// of each month and year. d must be a valid date.
func (d Date) Yesterday() Date {
	if d.Day > 1 {
		d.Day--
		return d
	}
	d.Year, d.Month = PrevMonth(d.Year, d.Month)
	d.Day, _ = DaysInMonth(d.Year, d.Month)
	return d
}

// GregorianDate represents a date in the proleptic Gregorian calendar.
type GregorianDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewGregorianDate returns the GregorianDate for the date of t in t's location.
func NewGregorianDate(t time.Time) GregorianDate {
	y, m, d := t.Date()
	return GregorianDate{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC on g.
func (g GregorianDate) Time() time.Time {
	return time.Date(g.Year, g.Month, g.Day, 0, 0, 0, 0, time.UTC)
}

// Validate returns an error if g does not exist in the Gregorian calendar,
// eg. Feb 30.
func (g GregorianDate) Validate() error {
	if g.Month < time.January || g.Month > time.December {
		return fmt.Errorf("%w: %v: month must be in the range 1..12", ErrInvalidDate, g)
	}
	if NewGregorianDate(g.Time()) != g {
		return fmt.Errorf("%w: %v does not exist", ErrInvalidDate, g)
	}
	return nil
}

func (g GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, int(g.Month), g.Day)
}

func splitDate(val string) (y, m, d int, err error) {
	parts := strings.FieldsFunc(val, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q, expected format yyyy/mm/dd or yyyy-mm-dd", val)
	}
	n := [3]int{}
	for i, p := range parts {
		if n[i], err = strconv.Atoi(p); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid date %q: %q is not a number", val, p)
		}
	}
	return n[0], n[1], n[2], nil
}

// ParseDate parses a Jalali date in the format yyyy/mm/dd or yyyy-mm-dd,
// eg. 1403/01/15, and checks that it is valid.
func ParseDate(val string) (Date, error) {
	y, m, d, err := splitDate(val)
	if err != nil {
		return Date{}, err
	}
	date := Date{Year: y, Month: Month(m), Day: d}
	if err := date.Validate(); err != nil {
		return Date{}, err
	}
	return date, nil
}

// Parse is like ParseDate.
func (d *Date) Parse(val string) error {
	date, err := ParseDate(val)
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// ParseGregorianDate parses a Gregorian date in the format yyyy-mm-dd or
// yyyy/mm/dd, eg. 2024-03-20, and checks that it is valid.
func ParseGregorianDate(val string) (GregorianDate, error) {
	y, m, d, err := splitDate(val)
	if err != nil {
		return GregorianDate{}, err
	}
	g := GregorianDate{Year: y, Month: time.Month(m), Day: d}
	if err := g.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return g, nil
}

// Parse is like ParseGregorianDate.
func (g *GregorianDate) Parse(val string) error {
	date, err := ParseGregorianDate(val)
	if err != nil {
		return err
	}
	*g = date
	return nil
}
