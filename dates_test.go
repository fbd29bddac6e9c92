// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali_test

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"cloudeng.io/jalali"
)

func TestMonthParse(t *testing.T) {
	for _, tc := range []struct {
		val   string
		month jalali.Month
	}{
		{"1", jalali.Farvardin},
		{"01", jalali.Farvardin},
		{"12", jalali.Esfand},
		{"farv", jalali.Farvardin},
		{"Ordibehesht", jalali.Ordibehesht},
		{"KHORDAD", jalali.Khordad},
		{"mehr", jalali.Mehr},
		{"me", jalali.Mehr},
		{"mo", jalali.Mordad},
		{"ab", jalali.Aban},
		{"az", jalali.Azar},
		{"Es", jalali.Esfand},
	} {
		var m jalali.Month
		if err := m.Parse(tc.val); err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	for _, val := range []string{"", "0", "13", "january", "xx"} {
		var m jalali.Month
		if err := m.Parse(val); err == nil {
			t.Errorf("%q: failed to return an error", val)
		}
	}
	for _, val := range []string{"m", "a", "A"} {
		_, err := jalali.ParseMonth(val)
		if !errors.Is(err, jalali.ErrInvalidMonth) || !strings.Contains(err.Error(), "ambiguous") {
			t.Errorf("%q: unexpected or missing error: %v", val, err)
		}
	}
	if _, err := jalali.ParseNumericMonth("13"); !errors.Is(err, jalali.ErrInvalidMonth) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := jalali.Esfand.String(), "Esfand"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := jalali.Month(13).String(), "Month(13)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateParse(t *testing.T) {
	for _, tc := range []struct {
		val  string
		date jalali.Date
	}{
		{"1403/01/15", jd(1403, 1, 15)},
		{"1403-1-15", jd(1403, 1, 15)},
		{"1403/12/30", jd(1403, 12, 30)},
	} {
		var d jalali.Date
		if err := d.Parse(tc.val); err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := d, tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
		if got, want := d.String(), tc.date.String(); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := jd(1403, 1, 5).String(), "1403/01/05"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, val := range []string{"", "1403", "1403/01", "1402/12/30", "1403/13/01", "1403/aa/01", "1403/01/01/01"} {
		if _, err := jalali.ParseDate(val); err == nil {
			t.Errorf("%q: failed to return an error", val)
		}
	}
}

func TestGregorianDateParse(t *testing.T) {
	for _, tc := range []struct {
		val  string
		date jalali.GregorianDate
	}{
		{"2024-03-20", gd(2024, 3, 20)},
		{"2024/3/20", gd(2024, 3, 20)},
		{"2024-02-29", gd(2024, 2, 29)},
	} {
		var g jalali.GregorianDate
		if err := g.Parse(tc.val); err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := g, tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	if got, want := gd(2024, 3, 5).String(), "2024-03-05"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, val := range []string{"2023-02-29", "2024-13-01", "2024-04-31", "yesterday"} {
		if _, err := jalali.ParseGregorianDate(val); err == nil {
			t.Errorf("%q: failed to return an error", val)
		}
	}
	now := time.Date(2024, 3, 20, 23, 59, 0, 0, time.UTC)
	if got, want := jalali.NewGregorianDate(now), gd(2024, 3, 20); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRanges(t *testing.T) {
	clock := jalali.FixedClock(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	if got, want := jalali.Today(clock), jd(1405, 7, 27); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := jalali.CurrentYear(clock), 1405; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	years := jalali.YearsRange(clock)
	if got, want := len(years), 20; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := years[10], jalali.CurrentYear(clock); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := years[0], 1395; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := years[19], 1414; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			t.Errorf("not strictly ascending: %v", years)
			break
		}
	}

	// Nowruz moves the current year forward.
	nowruz := jalali.FixedClock(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
	if got, want := jalali.YearsRange(nowruz)[10], 1403; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := jalali.DayRange(3), []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := jalali.DayRange(0); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
	if got := jalali.YearRange(10, 10); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
	months := jalali.Months()
	if got, want := len(months), 12; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if months[0] != jalali.Farvardin || months[11] != jalali.Esfand {
		t.Errorf("got %v", months)
	}
}
