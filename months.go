// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"fmt"
	"strconv"
	"strings"
)

// Month is a Jalali month in the range 1 (Farvardin) to 12 (Esfand).
type Month int

const (
	Farvardin Month = 1 + iota
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

var monthNames = []string{
	"farvardin", "ordibehesht", "khordad", "tir", "mordad", "shahrivar",
	"mehr", "aban", "azar", "dey", "bahman", "esfand",
}

// Valid returns true if m is in the range 1-12.
func (m Month) Valid() bool {
	return m >= Farvardin && m <= Esfand
}

// String returns the transliterated name of the month, eg. "Farvardin".
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	n := monthNames[m-1]
	return strings.ToUpper(n[:1]) + n[1:]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if m := Month(n); !m.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, n)
	}
	return Month(n), nil
}

// ParseMonth parses a transliterated month name or any unambiguous
// prefix of one, eg. "farv" or "Esfand", in either lower or upper case.
// Prefixes shared by more than one month, such as "m" or "a", are
// rejected.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) == 0 {
		return 0, fmt.Errorf("%w: empty month name", ErrInvalidMonth)
	}
	var matches []string
	var month Month
	for i := range monthNames {
		if strings.HasPrefix(monthNames[i], lc) {
			matches = append(matches, monthNames[i])
			month = Month(i + 1)
		}
	}
	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("%w: %s", ErrInvalidMonth, val)
	case 1:
		return month, nil
	}
	return 0, fmt.Errorf("%w: %s is ambiguous: %s", ErrInvalidMonth, val, strings.Join(matches, ", "))
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}
