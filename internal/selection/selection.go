// Package selection holds the two-slot date-range state machine behind
// the booking calendar: a click sequence produces at most one stay
// interval, and past days never take part.
package selection

import "github.com/penbot/penbot-web/internal/calendar"

// Range is the current selection. End is only ever set together with
// Start, and is strictly after it. A set Start with a nil End is a
// one-night stay; the extra night is added at submission time.
type Range struct {
	Start *calendar.Date
	End   *calendar.Date
}

func (r Range) Empty() bool {
	return r.Start == nil
}

func (r Range) Complete() bool {
	return r.Start != nil && r.End != nil
}

// Interval resolves the selection into the inclusive check-in /
// check-out pair sent to the backend. A lone start checks out the next
// day. ok is false when nothing is selected.
func (r Range) Interval() (start, end calendar.Date, ok bool) {
	if r.Start == nil {
		return calendar.Date{}, calendar.Date{}, false
	}
	start = *r.Start
	if r.End != nil {
		end = *r.End
	} else {
		end = start.AddDays(1)
	}
	return start, end, true
}

// Display renders the selection for the booking panel, or a prompt
// when nothing is picked yet.
func (r Range) Display() string {
	if r.Start == nil {
		return "날짜를 선택해주세요"
	}
	return calendar.FormatStay(*r.Start, r.End)
}

// Selector drives Range transitions from date-cell clicks. The zero
// value is an empty selection.
type Selector struct {
	current Range
}

func (s *Selector) Range() Range {
	return s.current
}

// Click applies one date-cell click against the given today. Clicks on
// days before today are ignored outright. A click while a complete
// range exists discards it and starts over; a click on or before the
// current start re-anchors the start instead of completing the range.
func (s *Selector) Click(d, today calendar.Date) {
	if d.Before(today) {
		return
	}

	if s.current.Start == nil || s.current.End != nil {
		s.current = Range{Start: &d}
		return
	}

	if d.After(*s.current.Start) {
		s.current.End = &d
		return
	}
	s.current = Range{Start: &d}
}

// Reset clears the selection.
func (s *Selector) Reset() {
	s.current = Range{}
}

// Rendering predicates for the calendar grid.

func (s *Selector) IsStart(d calendar.Date) bool {
	return s.current.Start != nil && *s.current.Start == d
}

func (s *Selector) IsEnd(d calendar.Date) bool {
	return s.current.End != nil && *s.current.End == d
}

// InRange marks cells strictly between the endpoints; the endpoints
// themselves render with their own styles.
func (s *Selector) InRange(d calendar.Date) bool {
	if !s.current.Complete() {
		return false
	}
	return d.After(*s.current.Start) && d.Before(*s.current.End)
}
