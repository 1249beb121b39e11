package punch

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/employee"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/domain/punch"
	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/sse"
)

type PunchServiceImpl struct {
	punch.EventRepository
	employee.EmployeeRepository
	sseHub *sse.Hub
	clock  func() time.Time

	// Per-employee locks serialize the read-decide-append sequence so two
	// concurrent punches for the same employee cannot both pass the guard.
	// Entries are never released; the map is bounded by the number of
	// employee codes ever punched.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (p *PunchServiceImpl) lockFor(employeeCode string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.locks[employeeCode]
	if !ok {
		l = &sync.Mutex{}
		p.locks[employeeCode] = l
	}
	return l
}

// LastState implements punch.PunchService.
func (p *PunchServiceImpl) LastState(ctx context.Context, employeeCode string) (*punch.Type, error) {
	last, err := p.EventRepository.GetMostRecent(ctx, employeeCode)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, nil
	}
	return &last.Type, nil
}

// AllowedNext implements punch.PunchService.
func (p *PunchServiceImpl) AllowedNext(last *punch.Type) []punch.Type {
	return punch.AllowedNext(last)
}

// CanPunch implements punch.PunchService.
func (p *PunchServiceImpl) CanPunch(ctx context.Context, employeeCode string, punchType punch.Type) (punch.PunchResult, error) {
	last, err := p.LastState(ctx, employeeCode)
	if err != nil {
		return punch.PunchResult{}, err
	}

	allowed := punch.AllowedNext(last)
	if !punch.Allows(allowed, punchType) {
		return punch.PunchResult{
			OK:      false,
			Message: rejectionMessage(last, punchType, allowed),
			Allowed: allowed,
		}, nil
	}

	return punch.PunchResult{OK: true, Allowed: allowed}, nil
}

// Punch implements punch.PunchService.
func (p *PunchServiceImpl) Punch(ctx context.Context, req punch.PunchRequest) (punch.PunchResult, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResult{}, err
	}

	l := p.lockFor(req.EmployeeCode)
	l.Lock()
	defer l.Unlock()

	result, err := p.CanPunch(ctx, req.EmployeeCode, req.Type)
	if err != nil {
		return punch.PunchResult{}, err
	}
	if !result.OK {
		return result, nil
	}

	event, err := p.EventRepository.Append(ctx, req.EmployeeCode, req.Type, p.clock())
	if err != nil {
		return punch.PunchResult{}, err
	}

	p.publishPunch(ctx, event)

	return punch.PunchResult{
		OK:      true,
		Message: fmt.Sprintf("recorded %s", req.Type.Label()),
		Allowed: punch.AllowedNext(&req.Type),
	}, nil
}

// State implements punch.PunchService.
func (p *PunchServiceImpl) State(ctx context.Context, employeeCode string) (punch.StateResponse, error) {
	last, err := p.LastState(ctx, employeeCode)
	if err != nil {
		return punch.StateResponse{}, err
	}

	return punch.StateResponse{
		EmployeeCode: employeeCode,
		LastType:     last,
		Allowed:      punch.AllowedNext(last),
	}, nil
}

// ListEvents implements punch.PunchService.
func (p *PunchServiceImpl) ListEvents(ctx context.Context, filter punch.ListEventsFilter) (punch.ListEventsResponse, error) {
	if err := filter.Validate(); err != nil {
		return punch.ListEventsResponse{}, err
	}

	events, err := p.EventRepository.List(ctx, filter)
	if err != nil {
		return punch.ListEventsResponse{}, err
	}

	resp := punch.ListEventsResponse{
		TotalCount: len(events),
		Events:     make([]punch.EventResponse, 0, len(events)),
	}
	for _, e := range events {
		item := punch.EventResponse{
			ID:           e.ID,
			EmployeeCode: e.EmployeeCode,
			Type:         e.Type,
			TypeLabel:    e.Type.Label(),
			Timestamp:    e.Timestamp.Format("2006-01-02 15:04:05"),
		}
		if e.EmployeeName != nil {
			item.EmployeeName = *e.EmployeeName
		}
		resp.Events = append(resp.Events, item)
	}

	return resp, nil
}

func (p *PunchServiceImpl) publishPunch(ctx context.Context, event punch.Event) {
	if p.sseHub == nil {
		return
	}

	name := ""
	if emp, err := p.EmployeeRepository.GetByCode(ctx, event.EmployeeCode); err == nil {
		name = emp.Name
	}

	p.sseHub.Publish(event.EmployeeCode, sse.Event{
		Event: "punch",
		Data: map[string]interface{}{
			"employee_code": event.EmployeeCode,
			"employee_name": name,
			"punch_type":    string(event.Type),
			"label":         event.Type.Label(),
			"timestamp":     event.Timestamp.Format(time.RFC3339),
		},
	})
}

func rejectionMessage(last *punch.Type, requested punch.Type, allowed []punch.Type) string {
	labels := make([]string, 0, len(allowed))
	for _, t := range allowed {
		labels = append(labels, t.Label())
	}
	next := strings.Join(labels, " or ")

	if last == nil {
		return fmt.Sprintf("cannot %s before the first clock in (next: %s)", requested.Label(), next)
	}
	return fmt.Sprintf("cannot %s after %s (next: %s)", requested.Label(), last.Label(), next)
}

func NewPunchService(
	eventRepository punch.EventRepository,
	employeeRepository employee.EmployeeRepository,
	sseHub *sse.Hub,
) punch.PunchService {
	return &PunchServiceImpl{
		EventRepository:    eventRepository,
		EmployeeRepository: employeeRepository,
		sseHub:             sseHub,
		clock:              time.Now,
		locks:              make(map[string]*sync.Mutex),
	}
}
