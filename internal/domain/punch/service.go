package punch

import "context"

// PunchService guards the punch state machine. The current state of an
// employee is never stored: it is derived from the most recent event in the
// log on every call.
type PunchService interface {
	// LastState returns the punch type of the employee's most recent event,
	// or nil if they have never punched.
	LastState(ctx context.Context, employeeCode string) (*Type, error)

	// AllowedNext is the pure transition table lookup.
	AllowedNext(last *Type) []Type

	// CanPunch checks whether the requested punch is legal right now,
	// without side effects.
	CanPunch(ctx context.Context, employeeCode string, punchType Type) (PunchResult, error)

	// Punch records the requested punch if it is legal. On rejection the log
	// is untouched and the result carries the still-current allowed set.
	Punch(ctx context.Context, req PunchRequest) (PunchResult, error)

	// State returns the derived state plus the allowed set for one employee.
	State(ctx context.Context, employeeCode string) (StateResponse, error)

	// ListEvents serves the attendance list screen.
	ListEvents(ctx context.Context, filter ListEventsFilter) (ListEventsResponse, error)
}
