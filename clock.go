// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Clock is the source of the current time used to determine today's
// Jalali date.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock that returns time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock that always returns the same time.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Today returns the Jalali date for the current time, in its location,
// as reported by c.
func Today(c Clock) Date {
	return newDate(ptime.New(c.Now()))
}

// CurrentYear returns the Jalali year for the current time as reported by c.
func CurrentYear(c Clock) int {
	return Today(c).Year
}
