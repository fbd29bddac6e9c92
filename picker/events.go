// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"fmt"
	"slices"
)

// EventKind identifies the type of an Event.
type EventKind int

const (
	// SelectionChanged is delivered after every successful transition and
	// after a failed month selection that cleared the month and day.
	SelectionChanged EventKind = iota
	// MonthPermittedChanged is delivered when month selection becomes
	// permitted or not permitted.
	MonthPermittedChanged
	// DayPermittedChanged is delivered when day selection becomes
	// permitted or not permitted.
	DayPermittedChanged
	// DayChoicesChanged is delivered when the set of valid days changes.
	DayChoicesChanged
)

func (k EventKind) String() string {
	switch k {
	case SelectionChanged:
		return "selection-changed"
	case MonthPermittedChanged:
		return "month-permitted-changed"
	case DayPermittedChanged:
		return "day-permitted-changed"
	case DayChoicesChanged:
		return "day-choices-changed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is delivered to subscribers of a Picker. Selection is always the
// state of the Picker after the transition that caused the event.
type Event struct {
	Kind      EventKind
	Permitted bool  // for MonthPermittedChanged and DayPermittedChanged.
	Days      []int // for DayChoicesChanged.
	Selection Selection
}

func (e Event) String() string {
	switch e.Kind {
	case MonthPermittedChanged, DayPermittedChanged:
		return fmt.Sprintf("%v: %v", e.Kind, e.Permitted)
	case DayChoicesChanged:
		if len(e.Days) == 0 {
			return fmt.Sprintf("%v: none", e.Kind)
		}
		return fmt.Sprintf("%v: %d..%d", e.Kind, e.Days[0], e.Days[len(e.Days)-1])
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Selection)
}

type listener struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to be called, synchronously and in the order of
// subscription, for every event generated by p. The returned function
// cancels the subscription.
func (p *Picker) Subscribe(fn func(Event)) (unsubscribe func()) {
	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, listener{id: id, fn: fn})
	return func() {
		p.listeners = slices.DeleteFunc(p.listeners, func(l listener) bool {
			return l.id == id
		})
	}
}

// snapshot is the complete observable state of a Picker.
type snapshot struct {
	sel            Selection
	days           []int
	monthPermitted bool
	dayPermitted   bool
}

func (p *Picker) current() snapshot {
	return snapshot{
		sel:            p.sel,
		days:           p.days,
		monthPermitted: p.monthPermitted,
		dayPermitted:   p.dayPermitted,
	}
}

// apply replaces the state of p with next and only then notifies
// subscribers of the differences, so that no intermediate state is
// ever observable. Transitions made by a subscriber while events are
// being delivered queue their events behind the ones already pending,
// so every subscriber sees all events in the order the transitions
// occurred and the last event seen reflects the final state.
func (p *Picker) apply(next snapshot, transition bool) {
	prev := p.current()
	p.sel = next.sel
	p.days = next.days
	p.monthPermitted = next.monthPermitted
	p.dayPermitted = next.dayPermitted

	if prev.monthPermitted != next.monthPermitted {
		p.enqueue(Event{Kind: MonthPermittedChanged, Permitted: next.monthPermitted}, next.sel)
	}
	if prev.dayPermitted != next.dayPermitted {
		p.enqueue(Event{Kind: DayPermittedChanged, Permitted: next.dayPermitted}, next.sel)
	}
	if !slices.Equal(prev.days, next.days) {
		p.enqueue(Event{Kind: DayChoicesChanged, Days: slices.Clone(next.days)}, next.sel)
	}
	if transition || prev.sel != next.sel {
		p.enqueue(Event{Kind: SelectionChanged}, next.sel)
	}
	p.dispatch()
}

func (p *Picker) enqueue(ev Event, sel Selection) {
	ev.Selection = sel
	p.pending = append(p.pending, ev)
}

// dispatch delivers pending events unless a delivery is already in
// progress further up the stack, in which case that call drains them.
func (p *Picker) dispatch() {
	if p.dispatching {
		return
	}
	p.dispatching = true
	defer func() {
		p.dispatching = false
		p.pending = nil
	}()
	for len(p.pending) > 0 {
		ev := p.pending[0]
		p.pending = p.pending[1:]
		for _, l := range slices.Clone(p.listeners) {
			l.fn(ev)
		}
	}
}
