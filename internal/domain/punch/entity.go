package punch

import (
	"slices"
	"time"
)

// Type is the punch event vocabulary shared by the guard and the aggregators.
type Type string

const (
	TypeClockIn    Type = "CLOCK_IN"
	TypeBreakStart Type = "BREAK_START"
	TypeBreakEnd   Type = "BREAK_END"
	TypeClockOut   Type = "CLOCK_OUT"
)

// AllTypes lists the punch types in their on-screen order.
var AllTypes = []Type{TypeClockIn, TypeBreakStart, TypeBreakEnd, TypeClockOut}

var labels = map[Type]string{
	TypeClockIn:    "clock in",
	TypeBreakStart: "break start",
	TypeBreakEnd:   "break end",
	TypeClockOut:   "clock out",
}

// Label returns the human-readable name used in guard messages.
func (t Type) Label() string {
	if l, ok := labels[t]; ok {
		return l
	}
	return string(t)
}

// Valid reports whether t is one of the four known punch types.
func (t Type) Valid() bool {
	_, ok := labels[t]
	return ok
}

// Event is one immutable punch fact. Events are only ever appended; the
// "current state" of an employee is the type of their most recent event.
type Event struct {
	ID           int64
	EmployeeCode string
	Type         Type
	Timestamp    time.Time

	// Joined fields
	EmployeeName *string
}

// transitions enforces the punch cycle:
//
//	no prior event    -> CLOCK_IN
//	CLOCK_IN          -> BREAK_START, CLOCK_OUT
//	BREAK_START       -> BREAK_END
//	BREAK_END         -> BREAK_START, CLOCK_OUT
//	CLOCK_OUT         -> CLOCK_IN
var transitions = map[Type][]Type{
	TypeClockIn:    {TypeBreakStart, TypeClockOut},
	TypeBreakStart: {TypeBreakEnd},
	TypeBreakEnd:   {TypeBreakStart, TypeClockOut},
	TypeClockOut:   {TypeClockIn},
}

// AllowedNext returns the punch types legal after the given last state.
// A nil last means the employee has never punched. Unknown states fall back
// to {CLOCK_IN} so a corrupted history can always restart the cycle instead
// of deadlocking.
func AllowedNext(last *Type) []Type {
	if last == nil {
		return []Type{TypeClockIn}
	}
	next, ok := transitions[*last]
	if !ok {
		return []Type{TypeClockIn}
	}
	return slices.Clone(next)
}

// Allows reports whether t is in the allowed set.
func Allows(allowed []Type, t Type) bool {
	return slices.Contains(allowed, t)
}
