// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/jalali"
	"cloudeng.io/logging/ctxlog"
)

type conversion struct {
	Jalali    string `json:"jalali" yaml:"jalali"`
	Gregorian string `json:"gregorian" yaml:"gregorian"`
}

type conversions struct {
	Dates []conversion `json:"dates" yaml:"dates"`
}

func (c conversions) writeText(w io.Writer) {
	for _, d := range c.Dates {
		fmt.Fprintf(w, "%s\t%s\n", d.Jalali, d.Gregorian)
	}
}

func toGregorian(ctx context.Context, values any, args []string) error {
	cf := values.(*CommonFlags)
	if err := checkFormat(cf.Format); err != nil {
		return err
	}
	ctx, _, done, err := setup(ctx, cf)
	if err != nil {
		return err
	}
	defer done()
	var out conversions
	errs := &errors.M{}
	for _, arg := range args {
		d, err := jalali.ParseDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		g, err := jalali.ToGregorian(d)
		if err != nil {
			errs.Append(err)
			continue
		}
		ctxlog.Logger(ctx).Debug("to-gregorian", "jalali", d.String(), "gregorian", g.String())
		out.Dates = append(out.Dates, conversion{Jalali: d.String(), Gregorian: g.String()})
	}
	errs.Append(write(cf.Format, out))
	return errs.Err()
}

func fromGregorian(ctx context.Context, values any, args []string) error {
	cf := values.(*CommonFlags)
	if err := checkFormat(cf.Format); err != nil {
		return err
	}
	ctx, _, done, err := setup(ctx, cf)
	if err != nil {
		return err
	}
	defer done()
	var out conversions
	errs := &errors.M{}
	for _, arg := range args {
		g, err := jalali.ParseGregorianDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		d, err := jalali.FromGregorian(g)
		if err != nil {
			errs.Append(err)
			continue
		}
		ctxlog.Logger(ctx).Debug("from-gregorian", "gregorian", g.String(), "jalali", d.String())
		out.Dates = append(out.Dates, conversion{Jalali: d.String(), Gregorian: g.String()})
	}
	errs.Append(write(cf.Format, out))
	return errs.Err()
}

type monthDays struct {
	Year      int    `json:"year" yaml:"year"`
	Month     int    `json:"month" yaml:"month"`
	MonthName string `json:"month_name" yaml:"month_name"`
	Leap      bool   `json:"leap" yaml:"leap"`
	Days      []int  `json:"days" yaml:"days,flow"`
}

func (m monthDays) writeText(w io.Writer) {
	fmt.Fprintf(w, "%04d/%02d (%s): %d days", m.Year, m.Month, m.MonthName, len(m.Days))
	if m.Leap {
		fmt.Fprintf(w, ", leap year")
	}
	fmt.Fprintln(w)
}

func days(ctx context.Context, values any, args []string) error {
	cf := values.(*CommonFlags)
	if err := checkFormat(cf.Format); err != nil {
		return err
	}
	_, _, done, err := setup(ctx, cf)
	if err != nil {
		return err
	}
	defer done()
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year: %q", args[0])
	}
	var month jalali.Month
	if err := month.Parse(args[1]); err != nil {
		return err
	}
	n, err := jalali.DaysInMonth(year, month)
	if err != nil {
		return err
	}
	return write(cf.Format, monthDays{
		Year:      year,
		Month:     int(month),
		MonthName: month.String(),
		Leap:      jalali.IsLeap(year),
		Days:      jalali.DayRange(n),
	})
}

type yearRange struct {
	Today   string `json:"today" yaml:"today"`
	Current int    `json:"current" yaml:"current"`
	Years   []int  `json:"years" yaml:"years,flow"`
}

func (y yearRange) writeText(w io.Writer) {
	fmt.Fprintf(w, "today: %s\n", y.Today)
	fmt.Fprintf(w, "years: %d..%d\n", y.Years[0], y.Years[len(y.Years)-1])
}

func years(ctx context.Context, values any, _ []string) error {
	cf := values.(*CommonFlags)
	if err := checkFormat(cf.Format); err != nil {
		return err
	}
	_, cfg, done, err := setup(ctx, cf)
	if err != nil {
		return err
	}
	defer done()
	clock, err := cfg.Clock()
	if err != nil {
		return err
	}
	return write(cf.Format, yearRange{
		Today:   jalali.Today(clock).String(),
		Current: jalali.CurrentYear(clock),
		Years:   jalali.YearsRange(clock),
	})
}

type newYear struct {
	Year     int    `json:"year" yaml:"year"`
	Calendar string `json:"calendar" yaml:"calendar"`
	Equinox  string `json:"equinox" yaml:"equinox"`
	Nowruz   string `json:"nowruz" yaml:"nowruz"`
}

type newYears struct {
	Years []newYear `json:"years" yaml:"years"`
}

func (n newYears) writeText(w io.Writer) {
	for _, y := range n.Years {
		mark := ""
		if y.Calendar != y.Nowruz {
			mark = " (differs)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s%s\n", y.Year, y.Calendar, y.Nowruz, y.Equinox, mark)
	}
}

func nowruz(ctx context.Context, values any, args []string) error {
	cf := values.(*CommonFlags)
	if err := checkFormat(cf.Format); err != nil {
		return err
	}
	ctx, _, done, err := setup(ctx, cf)
	if err != nil {
		return err
	}
	defer done()
	var out newYears
	errs := &errors.M{}
	for _, arg := range args {
		year, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(fmt.Errorf("invalid year: %q", arg))
			continue
		}
		first, err := jalali.ToGregorian(jalali.Date{Year: year, Month: jalali.Farvardin, Day: 1})
		if err != nil {
			errs.Append(err)
			continue
		}
		predicted, err := jalali.Nowruz(year)
		if err != nil {
			errs.Append(err)
			continue
		}
		eq := jalali.VernalEquinox(first.Year).In(jalali.Tehran)
		if first != predicted {
			ctxlog.Logger(ctx).Warn("calendar and equinox disagree", "year", year, "calendar", first.String(), "equinox", predicted.String())
		}
		out.Years = append(out.Years, newYear{
			Year:     year,
			Calendar: first.String(),
			Equinox:  eq.Format(time.DateTime + " MST"),
			Nowruz:   predicted.String(),
		})
	}
	errs.Append(write(cf.Format, out))
	return errs.Err()
}
