// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package picker provides a toolkit independent, cascading Jalali date
// selection state machine. A year must be selected before a month and a
// month before a day; each selection determines the choices that are valid
// for the next one. Rendering is left to a collaborator that subscribes to
// the events generated by a Picker and enables or disables its controls
// accordingly.
//
// A Picker is not safe for concurrent use.
package picker

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"cloudeng.io/errors"
	"cloudeng.io/jalali"
)

var (
	// ErrPrecondition is returned when a selection is attempted out of
	// order, eg. a month before a year.
	ErrPrecondition = errors.New("selection out of order")
	// ErrOutOfRange is returned when a value is not one of the currently
	// valid choices.
	ErrOutOfRange = errors.New("out of range")
	// ErrIncompleteSelection is returned when a date is requested before
	// a year, month and day have all been selected.
	ErrIncompleteSelection = errors.New("incomplete selection")
)

// State represents the stage reached by a Picker.
type State int

const (
	Empty State = iota
	YearSet
	MonthSet
	DaySet
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case YearSet:
		return "year-set"
	case MonthSet:
		return "month-set"
	case DaySet:
		return "day-set"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Selection is a snapshot of the values selected so far. Only the fields
// implied by State are meaningful, the remainder are zero.
type Selection struct {
	State State
	Year  int
	Month jalali.Month
	Day   int
}

func (s Selection) String() string {
	switch s.State {
	case YearSet:
		return fmt.Sprintf("%04d", s.Year)
	case MonthSet:
		return fmt.Sprintf("%04d/%02d", s.Year, int(s.Month))
	case DaySet:
		return fmt.Sprintf("%04d/%02d/%02d", s.Year, int(s.Month), s.Day)
	}
	return s.State.String()
}

// Option represents an option to New.
type Option func(o *options)

type options struct {
	clock       jalali.Clock
	logger      *slog.Logger
	strictYears bool
}

// WithClock specifies the clock used to determine the current year and
// hence the range of years offered. The default is jalali.SystemClock.
func WithClock(c jalali.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithLogger specifies a logger for rejected selections, which are logged
// at debug level. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStrictYears requires that selected years be one of those returned
// by Years. By default any year is accepted.
func WithStrictYears(v bool) Option {
	return func(o *options) {
		o.strictYears = v
	}
}

// Picker implements the year -> month -> day selection state machine.
type Picker struct {
	opts           options
	sel            Selection
	days           []int
	monthPermitted bool
	dayPermitted   bool
	listeners      []listener
	nextID         int
	dispatching    bool
	pending        []Event
}

// New returns a Picker in the Empty state.
func New(opts ...Option) *Picker {
	p := &Picker{}
	p.opts.clock = jalali.SystemClock{}
	p.opts.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	for _, fn := range opts {
		fn(&p.opts)
	}
	return p
}

func (p *Picker) rejected(op string, err error, args ...any) error {
	args = append(args, "state", p.sel.State.String(), "error", err.Error())
	p.opts.logger.Debug("picker: "+op+" rejected", args...)
	return err
}

// State returns the current stage of the selection.
func (p *Picker) State() State {
	return p.sel.State
}

// Selection returns a snapshot of the current selection.
func (p *Picker) Selection() Selection {
	return p.sel
}

// MonthPermitted returns true if a year has been selected and hence a
// month may be.
func (p *Picker) MonthPermitted() bool {
	return p.monthPermitted
}

// DayPermitted returns true if a valid month has been selected and hence
// a day may be.
func (p *Picker) DayPermitted() bool {
	return p.dayPermitted
}

// Years returns the years offered for selection, see jalali.YearsRange.
func (p *Picker) Years() []int {
	return jalali.YearsRange(p.opts.clock)
}

// Months returns the months offered for selection.
func (p *Picker) Months() []jalali.Month {
	return jalali.Months()
}

// Days returns the valid days for the currently selected month, or nil
// if no month has been selected.
func (p *Picker) Days() []int {
	return slices.Clone(p.days)
}

func (p *Picker) checkYear(year int) error {
	if !p.opts.strictYears {
		return nil
	}
	if years := p.Years(); !slices.Contains(years, year) {
		return fmt.Errorf("year %d: %w: %d..%d", year, ErrOutOfRange, years[0], years[len(years)-1])
	}
	return nil
}

// SelectYear selects year and clears any previously selected month and
// day. Month selection is permitted and day selection is not.
func (p *Picker) SelectYear(year int) error {
	if err := p.checkYear(year); err != nil {
		return p.rejected("year", err, "year", year)
	}
	p.apply(snapshot{
		sel:            Selection{State: YearSet, Year: year},
		monthPermitted: true,
	}, true)
	return nil
}

// SelectMonth selects month for the currently selected year, clears any
// previously selected day and makes the days of that month the valid day
// choices. If the number of days in the month cannot be determined the
// month is cleared, the Picker reverts to YearSet with day selection not
// permitted and the error is returned.
func (p *Picker) SelectMonth(month jalali.Month) error {
	if p.sel.State < YearSet {
		err := fmt.Errorf("month %d: %w: year not yet selected", int(month), ErrPrecondition)
		return p.rejected("month", err, "month", int(month))
	}
	year := p.sel.Year
	n, err := jalali.DaysInMonth(year, month)
	if err != nil {
		p.apply(snapshot{
			sel:            Selection{State: YearSet, Year: year},
			monthPermitted: true,
		}, false)
		return p.rejected("month", fmt.Errorf("month %d of year %d: %w", int(month), year, err), "year", year, "month", int(month))
	}
	p.apply(snapshot{
		sel:            Selection{State: MonthSet, Year: year, Month: month},
		days:           jalali.DayRange(n),
		monthPermitted: true,
		dayPermitted:   true,
	}, true)
	return nil
}

// SelectDay selects day, which must be one of the current day choices.
func (p *Picker) SelectDay(day int) error {
	if p.sel.State < MonthSet {
		err := fmt.Errorf("day %d: %w: month not yet selected", day, ErrPrecondition)
		return p.rejected("day", err, "day", day)
	}
	if !slices.Contains(p.days, day) {
		err := fmt.Errorf("day %d: %w: %v has %d days", day, ErrOutOfRange, p.sel.Month, len(p.days))
		return p.rejected("day", err, "day", day)
	}
	next := p.current()
	next.sel.State = DaySet
	next.sel.Day = day
	p.apply(next, true)
	return nil
}

// SetDate replaces the entire selection with the Jalali equivalent of g.
// Subscribers observe only the final state. On error the selection is
// unchanged.
func (p *Picker) SetDate(g jalali.GregorianDate) error {
	d, err := jalali.FromGregorian(g)
	if err != nil {
		return p.rejected("set-date", err, "date", g.String())
	}
	return p.SetJalaliDate(d)
}

// SetJalaliDate is like SetDate for a Jalali date.
func (p *Picker) SetJalaliDate(d jalali.Date) error {
	if err := p.checkYear(d.Year); err != nil {
		return p.rejected("set-date", err, "date", d.String())
	}
	if err := d.Validate(); err != nil {
		return p.rejected("set-date", err, "date", d.String())
	}
	n, err := jalali.DaysInMonth(d.Year, d.Month)
	if err != nil {
		return p.rejected("set-date", err, "date", d.String())
	}
	p.apply(snapshot{
		sel:            Selection{State: DaySet, Year: d.Year, Month: d.Month, Day: d.Day},
		days:           jalali.DayRange(n),
		monthPermitted: true,
		dayPermitted:   true,
	}, true)
	return nil
}

// Reset returns the Picker to the Empty state with neither month nor day
// selection permitted.
func (p *Picker) Reset() {
	p.apply(snapshot{}, true)
}

// JalaliDate returns the selected date.
func (p *Picker) JalaliDate() (jalali.Date, error) {
	if p.sel.State != DaySet {
		return jalali.Date{}, fmt.Errorf("%w: %v", ErrIncompleteSelection, p.sel.State)
	}
	return jalali.Date{Year: p.sel.Year, Month: p.sel.Month, Day: p.sel.Day}, nil
}

// GregorianDate returns the Gregorian equivalent of the selected date.
func (p *Picker) GregorianDate() (jalali.GregorianDate, error) {
	d, err := p.JalaliDate()
	if err != nil {
		return jalali.GregorianDate{}, err
	}
	return jalali.ToGregorian(d)
}
