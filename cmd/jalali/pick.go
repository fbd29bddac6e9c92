// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/errors"
	"cloudeng.io/jalali"
	"cloudeng.io/jalali/picker"
	"cloudeng.io/logging/ctxlog"
)

// choices is the collaborator's rendering of one of the year, month or
// day controls.
type choices struct {
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Selected    int    `json:"selected,omitempty" yaml:"selected,omitempty"`
	Choices     []int  `json:"choices" yaml:"choices,flow"`
}

func (c choices) writeText(w io.Writer, name string) {
	state := "disabled"
	if c.Enabled {
		state = "enabled"
	}
	selected := c.Placeholder
	if c.Selected != 0 {
		selected = strconv.Itoa(c.Selected)
	}
	span := "-"
	if len(c.Choices) > 0 {
		span = fmt.Sprintf("%d..%d", c.Choices[0], c.Choices[len(c.Choices)-1])
	}
	fmt.Fprintf(w, "%-6s %-9s %-6s %s\n", name, state, selected, span)
}

type pickerView struct {
	State     string   `json:"state" yaml:"state"`
	Year      choices  `json:"year" yaml:"year"`
	Month     choices  `json:"month" yaml:"month"`
	Day       choices  `json:"day" yaml:"day"`
	Jalali    string   `json:"jalali,omitempty" yaml:"jalali,omitempty"`
	Gregorian string   `json:"gregorian,omitempty" yaml:"gregorian,omitempty"`
	Events    []string `json:"events" yaml:"events"`
}

func (v pickerView) writeText(w io.Writer) {
	for _, ev := range v.Events {
		fmt.Fprintf(w, "event: %s\n", ev)
	}
	fmt.Fprintf(w, "state: %s\n", v.State)
	v.Year.writeText(w, "year")
	v.Month.writeText(w, "month")
	v.Day.writeText(w, "day")
	if len(v.Jalali) > 0 {
		fmt.Fprintf(w, "jalali: %s\n", v.Jalali)
		fmt.Fprintf(w, "gregorian: %s\n", v.Gregorian)
	}
}

func newView(p *picker.Picker, ph Placeholders, events []string) pickerView {
	sel := p.Selection()
	months := make([]int, 0, 12)
	for _, m := range p.Months() {
		months = append(months, int(m))
	}
	v := pickerView{
		State: sel.State.String(),
		Year: choices{
			Placeholder: ph.Year,
			Enabled:     true,
			Selected:    sel.Year,
			Choices:     p.Years(),
		},
		Month: choices{
			Placeholder: ph.Month,
			Enabled:     p.MonthPermitted(),
			Selected:    int(sel.Month),
			Choices:     months,
		},
		Day: choices{
			Placeholder: ph.Day,
			Enabled:     p.DayPermitted(),
			Selected:    sel.Day,
			Choices:     p.Days(),
		},
		Events: events,
	}
	if d, err := p.JalaliDate(); err == nil {
		v.Jalali = d.String()
		if g, err := p.GregorianDate(); err == nil {
			v.Gregorian = g.String()
		}
	}
	return v
}

// newPicker creates a picker configured by pf whose events are logged
// and recorded.
func newPicker(ctx context.Context, pf *PickFlags, cfg Config) (*picker.Picker, *[]string, error) {
	clock, err := cfg.Clock()
	if err != nil {
		return nil, nil, err
	}
	logger := ctxlog.Logger(ctx)
	p := picker.New(
		picker.WithClock(clock),
		picker.WithLogger(logger),
		picker.WithStrictYears(pf.Strict || cfg.StrictYears),
	)
	events := &[]string{}
	p.Subscribe(func(ev picker.Event) {
		logger.Info("picker event", "event", ev.Kind.String(), "selection", ev.Selection.String())
		*events = append(*events, ev.String())
	})
	return p, events, nil
}

func pick(ctx context.Context, values any, args []string) error {
	pf := values.(*PickFlags)
	if err := checkFormat(pf.Format); err != nil {
		return err
	}
	if len(args) > 3 {
		return fmt.Errorf("too many arguments: expected <year> [<month> [<day>]]")
	}
	ctx, cfg, done, err := setup(ctx, &pf.CommonFlags)
	if err != nil {
		return err
	}
	defer done()

	p, events, err := newPicker(ctx, pf, cfg)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	errs.Append(selectAll(p, args))
	errs.Append(write(pf.Format, newView(p, cfg.Placeholders, *events)))
	return errs.Err()
}

// selectAll applies the year, month and day selections in args, stopping
// at the first failure.
func selectAll(p *picker.Picker, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year: %q", args[0])
	}
	if err := p.SelectYear(year); err != nil {
		return err
	}
	if len(args) < 2 {
		return nil
	}
	month, err := parseMonth(args[1])
	if err != nil {
		return err
	}
	if err := p.SelectMonth(month); err != nil {
		return err
	}
	if len(args) < 3 {
		return nil
	}
	day, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid day: %q", args[2])
	}
	return p.SelectDay(day)
}

// parseMonth accepts month names and any integer, leaving the range
// check to the picker.
func parseMonth(val string) (jalali.Month, error) {
	if n, err := strconv.Atoi(val); err == nil {
		return jalali.Month(n), nil
	}
	return jalali.ParseMonth(val)
}

func setDate(ctx context.Context, values any, args []string) error {
	pf := values.(*PickFlags)
	if err := checkFormat(pf.Format); err != nil {
		return err
	}
	ctx, cfg, done, err := setup(ctx, &pf.CommonFlags)
	if err != nil {
		return err
	}
	defer done()

	g, err := jalali.ParseGregorianDate(args[0])
	if err != nil {
		return err
	}
	p, events, err := newPicker(ctx, pf, cfg)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	errs.Append(p.SetDate(g))
	errs.Append(write(pf.Format, newView(p, cfg.Placeholders, *events)))
	return errs.Err()
}
