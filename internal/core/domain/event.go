package domain

import "time"

// EventKind tags the variant of a ReviewEvent. The set is closed: every kind
// must have an explicit net-zero rule in the ledger's predicate table.
type EventKind string

const (
	EventGridMove   EventKind = "GRID_MOVE"
	EventDonutMove  EventKind = "DONUT_MOVE"
	EventFlagAdd    EventKind = "FLAG_ADD"
	EventFlagRemove EventKind = "FLAG_REMOVE"
)

// ReviewEvent is one recorded in-session change for one employee. Events are
// value objects: immutable once constructed, replaced wholesale by the ledger
// rather than mutated in place. Only the fields relevant to the kind are set.
type ReviewEvent struct {
	Kind          EventKind `json:"kind"`
	EmployeeID    int64     `json:"employeeID"`
	Performance   Level     `json:"performance,omitempty"`
	Potential     Level     `json:"potential,omitempty"`
	DonutPosition int       `json:"donutPosition,omitempty"`
	FlagKey       string    `json:"flagKey,omitempty"`
	RecordedAt    time.Time `json:"recordedAt"`
}

// NewGridMoveEvent records a move to a new (performance, potential) pair.
func NewGridMoveEvent(employeeID int64, performance, potential Level) ReviewEvent {
	return ReviewEvent{
		Kind:        EventGridMove,
		EmployeeID:  employeeID,
		Performance: performance,
		Potential:   potential,
		RecordedAt:  time.Now().UTC(),
	}
}

// NewDonutMoveEvent records a move to a donut sub-position (1-9, 5 = center).
func NewDonutMoveEvent(employeeID int64, donutPosition int) ReviewEvent {
	return ReviewEvent{
		Kind:          EventDonutMove,
		EmployeeID:    employeeID,
		DonutPosition: donutPosition,
		RecordedAt:    time.Now().UTC(),
	}
}

// NewFlagAddEvent records a flag being added to an employee.
func NewFlagAddEvent(employeeID int64, flagKey string) ReviewEvent {
	return ReviewEvent{
		Kind:       EventFlagAdd,
		EmployeeID: employeeID,
		FlagKey:    flagKey,
		RecordedAt: time.Now().UTC(),
	}
}

// NewFlagRemoveEvent records a flag being removed from an employee.
func NewFlagRemoveEvent(employeeID int64, flagKey string) ReviewEvent {
	return ReviewEvent{
		Kind:       EventFlagRemove,
		EmployeeID: employeeID,
		FlagKey:    flagKey,
		RecordedAt: time.Now().UTC(),
	}
}
