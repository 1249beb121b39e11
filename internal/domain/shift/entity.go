package shift

import "time"

// Shift is one submitted shift wish: a work date plus a start/end wall-clock
// pair. Times are stored as "HH:MM" strings, matching how they are entered.
type Shift struct {
	ID           int64
	EmployeeCode string
	WorkDate     string // YYYY-MM-DD
	StartTime    string // HH:MM
	EndTime      string // HH:MM
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
}
