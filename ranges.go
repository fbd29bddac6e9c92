// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

// YearsRange returns the 20 years from 10 years before the current year
// to 9 years after it, in ascending order.
func YearsRange(c Clock) []int {
	y := CurrentYear(c)
	return YearRange(y-10, y+10)
}

// YearRange returns the years from, inclusive, to to, exclusive.
func YearRange(from, to int) []int {
	if to <= from {
		return nil
	}
	years := make([]int, 0, to-from)
	for y := from; y < to; y++ {
		years = append(years, y)
	}
	return years
}

// Months returns Farvardin through Esfand.
func Months() []Month {
	months := make([]Month, 0, 12)
	for m := Farvardin; m <= Esfand; m++ {
		months = append(months, m)
	}
	return months
}

// DayRange returns the days 1..n.
func DayRange(n int) []int {
	if n <= 0 {
		return nil
	}
	days := make([]int, n)
	for i := range days {
		days[i] = i + 1
	}
	return days
}
