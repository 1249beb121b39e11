package punch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/employee"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/sse"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepository struct {
	mu     sync.Mutex
	nextID int64
	events []punch.Event
}

var _ punch.EventRepository = (*fakeEventRepository)(nil)

func (f *fakeEventRepository) Append(ctx context.Context, employeeCode string, punchType punch.Type, ts time.Time) (punch.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	event := punch.Event{
		ID:           f.nextID,
		EmployeeCode: employeeCode,
		Type:         punchType,
		Timestamp:    ts,
	}
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeEventRepository) GetMostRecent(ctx context.Context, employeeCode string) (*punch.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].EmployeeCode == employeeCode {
			event := f.events[i]
			return &event, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepository) QueryRange(ctx context.Context, start, end time.Time, employeeCode string) ([]punch.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []punch.Event
	for _, e := range f.events {
		if e.Timestamp.Before(start) || e.Timestamp.After(end) {
			continue
		}
		if employeeCode != "" && e.EmployeeCode != employeeCode {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepository) List(ctx context.Context, filter punch.ListEventsFilter) ([]punch.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []punch.Event
	for i := len(f.events) - 1; i >= 0; i-- {
		e := f.events[i]
		if filter.EmployeeCode != nil && *filter.EmployeeCode != "" && e.EmployeeCode != *filter.EmployeeCode {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeEmployeeRepository struct {
	employees map[string]employee.Employee
}

var _ employee.EmployeeRepository = (*fakeEmployeeRepository)(nil)

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if f.employees == nil {
		f.employees = make(map[string]employee.Employee)
	}
	f.employees[emp.Code] = *emp
	return nil
}

func (f *fakeEmployeeRepository) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	emp, ok := f.employees[code]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return &emp, nil
}

func (f *fakeEmployeeRepository) ListAll(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if activeOnly && !emp.Active {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	if _, ok := f.employees[emp.Code]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.Code] = *emp
	return nil
}

func (f *fakeEmployeeRepository) SetActive(ctx context.Context, code string, active bool) error {
	emp, ok := f.employees[code]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Active = active
	f.employees[code] = emp
	return nil
}

func (f *fakeEmployeeRepository) UpdateWage(ctx context.Context, code string, wage decimal.Decimal) error {
	emp, ok := f.employees[code]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.HourlyWage = &wage
	f.employees[code] = emp
	return nil
}

func newTestService() (punch.PunchService, *fakeEventRepository) {
	events := &fakeEventRepository{}
	return NewPunchService(events, &fakeEmployeeRepository{}, sse.NewHub()), events
}

func TestPunchFirstEventMustBeClockIn(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	for _, pt := range []punch.Type{punch.TypeBreakStart, punch.TypeBreakEnd, punch.TypeClockOut} {
		result, err := svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: pt})
		require.NoError(t, err)
		assert.False(t, result.OK, "expected %s to be rejected before any clock in", pt)
		assert.Equal(t, []punch.Type{punch.TypeClockIn}, result.Allowed)
	}
	assert.Empty(t, repo.events, "rejected punches must not touch the log")

	result, err := svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: punch.TypeClockIn})
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Len(t, repo.events, 1)
}

func TestPunchTransitionTable(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		history []punch.Type
		allowed []punch.Type
	}{
		{
			name:    "after clock in",
			history: []punch.Type{punch.TypeClockIn},
			allowed: []punch.Type{punch.TypeBreakStart, punch.TypeClockOut},
		},
		{
			name:    "on break",
			history: []punch.Type{punch.TypeClockIn, punch.TypeBreakStart},
			allowed: []punch.Type{punch.TypeBreakEnd},
		},
		{
			name:    "back from break",
			history: []punch.Type{punch.TypeClockIn, punch.TypeBreakStart, punch.TypeBreakEnd},
			allowed: []punch.Type{punch.TypeBreakStart, punch.TypeClockOut},
		},
		{
			name:    "after clock out",
			history: []punch.Type{punch.TypeClockIn, punch.TypeClockOut},
			allowed: []punch.Type{punch.TypeClockIn},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService()
			for _, pt := range tc.history {
				result, err := svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: pt})
				require.NoError(t, err)
				require.True(t, result.OK)
			}

			state, err := svc.State(ctx, "AAAA0001")
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, state.Allowed)

			for _, pt := range punch.AllTypes {
				result, err := svc.CanPunch(ctx, "AAAA0001", pt)
				require.NoError(t, err)
				assert.Equal(t, punch.Allows(tc.allowed, pt), result.OK, "punch type %s", pt)
			}
		})
	}
}

func TestPunchDoubleClockInRejected(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	result, err := svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: punch.TypeClockIn})
	require.NoError(t, err)
	require.True(t, result.OK)

	result, err = svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: punch.TypeClockIn})
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, "cannot clock in after clock in (next: break start or clock out)", result.Message)
	assert.Equal(t, []punch.Type{punch.TypeBreakStart, punch.TypeClockOut}, result.Allowed)
	assert.Len(t, repo.events, 1)
}

func TestPunchRejectionMessageNamesAlternatives(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	// No history: the only legal move is named.
	result, err := svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: punch.TypeClockOut})
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, "cannot clock out before the first clock in (next: clock in)", result.Message)

	for _, pt := range []punch.Type{punch.TypeClockIn, punch.TypeBreakStart} {
		result, err = svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: pt})
		require.NoError(t, err)
		require.True(t, result.OK)
	}

	result, err = svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: punch.TypeClockOut})
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, "cannot clock out after break start (next: break end)", result.Message)
}

func TestPunchEmployeesAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	result, err := svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: punch.TypeClockIn})
	require.NoError(t, err)
	require.True(t, result.OK)

	// A different employee still has to start with a clock in.
	result, err = svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "BBBB0002", Type: punch.TypeClockOut})
	require.NoError(t, err)
	assert.False(t, result.OK)

	state, err := svc.State(ctx, "BBBB0002")
	require.NoError(t, err)
	assert.Nil(t, state.LastType)
	assert.Equal(t, []punch.Type{punch.TypeClockIn}, state.Allowed)
}

func TestPunchInvalidRequest(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	_, err := svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "", Type: punch.TypeClockIn})
	assert.Error(t, err)

	_, err = svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: punch.Type("LUNCH")})
	assert.Error(t, err)

	assert.Empty(t, repo.events)
}

func TestPunchConcurrentSameEmployee(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	var wg sync.WaitGroup
	okCount := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: punch.TypeClockIn})
			require.NoError(t, err)
			okCount <- result.OK
		}()
	}
	wg.Wait()
	close(okCount)

	accepted := 0
	for ok := range okCount {
		if ok {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted, "exactly one concurrent clock in may win")
	assert.Len(t, repo.events, 1)
}

func TestListEvents(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	for _, pt := range []punch.Type{punch.TypeClockIn, punch.TypeClockOut} {
		result, err := svc.Punch(ctx, punch.PunchRequest{EmployeeCode: "AAAA0001", Type: pt})
		require.NoError(t, err)
		require.True(t, result.OK)
	}

	resp, err := svc.ListEvents(ctx, punch.ListEventsFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	// Newest first.
	assert.Equal(t, punch.TypeClockOut, resp.Events[0].Type)
	assert.Equal(t, "clock out", resp.Events[0].TypeLabel)
}
