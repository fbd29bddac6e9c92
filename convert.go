// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jalali provides conversion between the Jalali (Persian solar Hijri)
// and Gregorian calendars, month lengths and the ranges of years, months and
// days needed to offer valid date choices.
//
// All calendar arithmetic is delegated to github.com/yaa110/go-persian-calendar.
// In particular the number of days in a month is obtained by subtracting the
// first day of the month from the first day of the following month, so that
// leap years follow whatever rule the underlying calendar implements.
package jalali

import (
	"fmt"
	"time"

	"cloudeng.io/errors"
	ptime "github.com/yaa110/go-persian-calendar"
)

const (
	// MinYear is the first supported Jalali year, the first full year
	// after the Gregorian calendar reform of 1582.
	MinYear = 962
	// MaxYear is the last supported Jalali year.
	MaxYear = 3000
)

var (
	// ErrInvalidMonth is returned for months outside of the range 1-12.
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidDate is returned for days that exceed the number of days
	// in a month, for non-existent Gregorian dates and for dates outside
	// of the supported range of years.
	ErrInvalidDate = errors.New("invalid date")
)

var (
	epoch time.Time // first day of MinYear.
	limit time.Time // first day after MaxYear.
)

func init() {
	epoch = firstOfMonth(MinYear, Farvardin)
	limit = firstOfMonth(MaxYear+1, Farvardin)
}

func firstOfMonth(year int, month Month) time.Time {
	return ptime.Date(year, ptime.Month(month), 1, 0, 0, 0, 0, time.UTC).Time()
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year %d is outside of %d..%d", ErrInvalidDate, year, MinYear, MaxYear)
	}
	return nil
}

// NextMonth returns the year and month that follow the specified ones.
// Esfand wraps to Farvardin of the following year.
func NextMonth(year int, month Month) (int, Month) {
	if month >= Esfand {
		return year + 1, Farvardin
	}
	return year, month + 1
}

// PrevMonth returns the year and month that precede the specified ones.
// Farvardin wraps to Esfand of the previous year.
func PrevMonth(year int, month Month) (int, Month) {
	if month <= Farvardin {
		return year - 1, Esfand
	}
	return year, month - 1
}

// DaysInMonth returns the number of days in the given month of the given
// year: 31 for the first six months, 30 for the next five and 29 or 30 for
// Esfand depending on whether year is a leap year.
func DaysInMonth(year int, month Month) (int, error) {
	if !month.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}
	if err := checkYear(year); err != nil {
		return 0, err
	}
	ny, nm := NextMonth(year, month)
	d := firstOfMonth(ny, nm).Sub(firstOfMonth(year, month))
	return int(d / (24 * time.Hour)), nil
}

// IsLeap returns true if year is a Jalali leap year, that is, if Esfand
// has 30 days.
func IsLeap(year int) bool {
	n, err := DaysInMonth(year, Esfand)
	return err == nil && n == 30
}

// Validate returns an error if d is not a valid Jalali date.
func (d Date) Validate() error {
	n, err := DaysInMonth(d.Year, d.Month)
	if err != nil {
		return err
	}
	if d.Day < 1 || d.Day > n {
		return fmt.Errorf("%w: %v: day must be in the range 1..%d", ErrInvalidDate, d, n)
	}
	return nil
}

// ToGregorian returns the Gregorian date for the specified Jalali date.
func ToGregorian(d Date) (GregorianDate, error) {
	if err := d.Validate(); err != nil {
		return GregorianDate{}, err
	}
	t := ptime.Date(d.Year, ptime.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Time()
	return NewGregorianDate(t), nil
}

// FromGregorian returns the Jalali date for the specified Gregorian date.
func FromGregorian(g GregorianDate) (Date, error) {
	if err := g.Validate(); err != nil {
		return Date{}, err
	}
	t := g.Time()
	if t.Before(epoch) || !t.Before(limit) {
		return Date{}, fmt.Errorf("%w: %v is outside of the supported range %v..%v",
			ErrInvalidDate, g, NewGregorianDate(epoch), NewGregorianDate(limit.AddDate(0, 0, -1)))
	}
	return newDate(ptime.New(t)), nil
}

func newDate(pt ptime.Time) Date {
	return Date{Year: pt.Year(), Month: Month(pt.Month()), Day: pt.Day()}
}
