package domain

import "iter"

// EventLedger holds the ordered set of currently-active events for one
// session. It enforces the net-zero rule on every mutation: a change that
// returns an employee to baseline is never stored, and removes whatever
// active event it cancels. Without this the ledger would grow without bound
// under oscillating edits and ModifiedInSession would stay true for
// employees who are back where they started.
type EventLedger struct {
	events []ReviewEvent
}

// NewEventLedger builds a ledger from a previously persisted event list.
// Events keep their stored order.
func NewEventLedger(events []ReviewEvent) EventLedger {
	return EventLedger{events: append([]ReviewEvent(nil), events...)}
}

// isNetZero is the single exhaustive net-zero predicate table, evaluated
// against the employee's original snapshot. Every event kind must appear
// here explicitly; there is no generic default, and adding a kind without a
// row is a bug.
func isNetZero(evt ReviewEvent, original Employee) bool {
	switch evt.Kind {
	case EventGridMove:
		return evt.Performance == original.Performance && evt.Potential == original.Potential
	case EventDonutMove:
		return evt.DonutPosition == DonutCenter
	case EventFlagAdd:
		return original.HasFlag(evt.FlagKey)
	case EventFlagRemove:
		return !original.HasFlag(evt.FlagKey)
	}
	// Unknown kinds never collapse silently; validation rejects them before
	// a ledger ever sees them.
	return false
}

// sameSlot reports whether an active event occupies the slot evt writes to.
// Positional kinds match on (kind, employee): a second move replaces the
// first. Flag kinds match on (employee, flag key) across both flag kinds,
// because FlagAdd and FlagRemove for one key are inverses: a net-zero
// FlagRemove must cancel the active FlagAdd it undoes, and vice versa.
func sameSlot(evt, active ReviewEvent) bool {
	if evt.EmployeeID != active.EmployeeID {
		return false
	}
	switch evt.Kind {
	case EventGridMove, EventDonutMove:
		return active.Kind == evt.Kind
	case EventFlagAdd, EventFlagRemove:
		return (active.Kind == EventFlagAdd || active.Kind == EventFlagRemove) &&
			active.FlagKey == evt.FlagKey
	}
	return false
}

// Track applies the net-zero rule for evt against the employee's original
// snapshot. A net-zero event removes whatever active event occupied its slot
// (a no-op if none did) and is not stored. Anything else replaces the active
// event in its slot in place, or is appended. Events in other slots for the
// same employee are left untouched. Returns the resulting active event for
// the slot, or nil if none remains.
func (l *EventLedger) Track(evt ReviewEvent, original Employee) *ReviewEvent {
	if isNetZero(evt, original) {
		for i, active := range l.events {
			if sameSlot(evt, active) {
				l.events = append(l.events[:i], l.events[i+1:]...)
				break
			}
		}
		return nil
	}
	for i, active := range l.events {
		if sameSlot(evt, active) {
			l.events[i] = evt
			return &l.events[i]
		}
	}
	l.events = append(l.events, evt)
	return &l.events[len(l.events)-1]
}

// EventsFor yields the active events referencing an employee, in insertion
// order. The sequence is finite and restartable.
func (l *EventLedger) EventsFor(employeeID int64) iter.Seq[ReviewEvent] {
	return func(yield func(ReviewEvent) bool) {
		for _, evt := range l.events {
			if evt.EmployeeID != employeeID {
				continue
			}
			if !yield(evt) {
				return
			}
		}
	}
}

// HasEventsFor reports whether any active event references the employee.
// This is the definition of ModifiedInSession.
func (l *EventLedger) HasEventsFor(employeeID int64) bool {
	for range l.EventsFor(employeeID) {
		return true
	}
	return false
}

// Active returns a copy of all active events in insertion order.
func (l *EventLedger) Active() []ReviewEvent {
	return append([]ReviewEvent(nil), l.events...)
}

// Len returns the number of active events.
func (l *EventLedger) Len() int {
	return len(l.events)
}

// Clone returns an independent copy of the ledger.
func (l *EventLedger) Clone() EventLedger {
	return NewEventLedger(l.events)
}
