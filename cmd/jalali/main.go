// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command jalali converts dates between the Jalali and Gregorian calendars
// and drives the cascading year, month and day picker from the command line.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: jalali
summary: convert and select Jalali calendar dates
commands:
  - name: to-gregorian
    summary: convert Jalali dates, in yyyy/mm/dd format, to Gregorian dates
    arguments:
      - <jalali-date>
      - ...
  - name: from-gregorian
    summary: convert Gregorian dates, in yyyy-mm-dd format, to Jalali dates
    arguments:
      - <gregorian-date>
      - ...
  - name: days
    summary: display the valid days for a Jalali year and month
    arguments:
      - <year>
      - <month>
  - name: years
    summary: display the years offered for selection
  - name: nowruz
    summary: display the first day of Jalali years as computed by the calendar and as predicted by the vernal equinox
    arguments:
      - <year>
      - ...
  - name: pick
    summary: select a year, and optionally a month and day, and display the resulting picker state
    arguments:
      - <year>
      - ...
  - name: set-date
    summary: set the picker to the Jalali equivalent of a Gregorian date and display its state
    arguments:
      - <gregorian-date>
`

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	cmdSet.Set("to-gregorian").MustRunnerAndFlags(
		toGregorian, subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("from-gregorian").MustRunnerAndFlags(
		fromGregorian, subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("days").MustRunnerAndFlags(
		days, subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("years").MustRunnerAndFlags(
		years, subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("nowruz").MustRunnerAndFlags(
		nowruz, subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil))
	cmdSet.Set("pick").MustRunnerAndFlags(
		pick, subcmd.MustRegisterFlagStruct(&PickFlags{}, nil, nil))
	cmdSet.Set("set-date").MustRunnerAndFlags(
		setDate, subcmd.MustRegisterFlagStruct(&PickFlags{}, nil, nil))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}
