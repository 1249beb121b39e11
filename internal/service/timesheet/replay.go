package timesheet

import (
	"log/slog"
	"time"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
)

// closedShift is handed to the fold callback once per completed work
// interval, at the moment its CLOCK_OUT is seen.
type closedShift struct {
	EmployeeCode string
	ClockIn      time.Time
	ClockOut     time.Time
	WorkMinutes  int
	BreakMinutes int
}

// replayState tracks one employee's open intervals while scanning.
type replayState struct {
	openClockIn    *time.Time
	openBreakStart *time.Time
	breakMinutes   int
}

// replay folds an event stream, ordered by (timestamp, id), into closed
// shifts. Minutes are always emitted at CLOCK_OUT, never incrementally, so a
// shift that does not close inside the scanned range contributes nothing.
//
// Events that do not fit the open state (a CLOCK_OUT with no open clock in,
// a duplicate BREAK_START) are skipped rather than failing the whole
// aggregation; one corrupt row must not block everyone's payroll. Skipped
// rows are counted and logged.
func replay(events []punch.Event, onShiftClosed func(closedShift)) {
	states := make(map[string]*replayState)
	skipped := 0

	for _, event := range events {
		st, ok := states[event.EmployeeCode]
		if !ok {
			st = &replayState{}
			states[event.EmployeeCode] = st
		}

		switch event.Type {
		case punch.TypeClockIn:
			ts := event.Timestamp
			st.openClockIn = &ts
			st.openBreakStart = nil
			st.breakMinutes = 0

		case punch.TypeBreakStart:
			if st.openClockIn == nil || st.openBreakStart != nil {
				skipped++
				continue
			}
			ts := event.Timestamp
			st.openBreakStart = &ts

		case punch.TypeBreakEnd:
			if st.openClockIn == nil || st.openBreakStart == nil {
				skipped++
				continue
			}
			st.breakMinutes += wholeMinutes(*st.openBreakStart, event.Timestamp)
			st.openBreakStart = nil

		case punch.TypeClockOut:
			if st.openClockIn == nil {
				skipped++
				continue
			}
			total := wholeMinutes(*st.openClockIn, event.Timestamp)
			worked := total - st.breakMinutes
			if worked < 0 {
				worked = 0
			}
			onShiftClosed(closedShift{
				EmployeeCode: event.EmployeeCode,
				ClockIn:      *st.openClockIn,
				ClockOut:     event.Timestamp,
				WorkMinutes:  worked,
				BreakMinutes: st.breakMinutes,
			})
			st.openClockIn = nil
			st.openBreakStart = nil
			st.breakMinutes = 0

		default:
			skipped++
		}
	}

	if skipped > 0 {
		slog.Warn("Skipped malformed punch events during aggregation", "skipped", skipped, "total", len(events))
	}
}

// wholeMinutes floors the duration between from and to to whole minutes,
// never below zero.
func wholeMinutes(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
