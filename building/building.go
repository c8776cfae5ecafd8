package building

import (
	"fmt"

	"elevatorsim/assigner"
	"elevatorsim/controller"
	"elevatorsim/report"
	"elevatorsim/request"
	"elevatorsim/types"
)

const (
	MinFloors   = 3
	MaxFloors   = 30
	MinCapacity = 4
	MaxCapacity = 20
)

type Option func(*options)

type options struct {
	elevatorOpts []controller.Option
}

// WithDwellTicks sets how long elevator doors stay open at a stop.
func WithDwellTicks(ticks int) Option {
	return func(o *options) {
		o.elevatorOpts = append(o.elevatorOpts, controller.WithDwellTicks(ticks))
	}
}

// WithIdleWaitTicks sets how long an idle elevator waits before it
// repositions to the other end of the building. Zero disables it.
func WithIdleWaitTicks(ticks int) Option {
	return func(o *options) {
		o.elevatorOpts = append(o.elevatorOpts, controller.WithIdleWaitTicks(ticks))
	}
}

// Building owns its elevators and request queues. It is not safe for
// concurrent use.
type Building struct {
	numberOfFloors    int
	numberOfElevators int
	elevatorCapacity  int
	systemStatus      types.SystemStatus
	elevators         []*controller.Elevator
	upRequests        []request.Request
	downRequests      []request.Request
}

// New validates the building parameters and returns a building that is
// out of service.
func New(numberOfFloors, numberOfElevators, elevatorCapacity int, opts ...Option) (*Building, error) {
	if err := ValidateParameters(numberOfFloors, numberOfElevators, elevatorCapacity); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Building{
		numberOfFloors:    numberOfFloors,
		numberOfElevators: numberOfElevators,
		elevatorCapacity:  elevatorCapacity,
		systemStatus:      types.SS_OutOfService,
		elevators:         make([]*controller.Elevator, 0, numberOfElevators),
		upRequests:        make([]request.Request, 0, elevatorCapacity),
		downRequests:      make([]request.Request, 0, elevatorCapacity),
	}
	for i := range numberOfElevators {
		b.elevators = append(b.elevators, controller.NewElevator(i, numberOfFloors, elevatorCapacity, o.elevatorOpts...))
	}

	return b, nil
}

// ValidateParameters checks floors in [3, 30], at least one elevator and
// a capacity in [4, 20].
func ValidateParameters(numberOfFloors, numberOfElevators, elevatorCapacity int) error {
	if numberOfFloors < MinFloors || numberOfFloors > MaxFloors {
		return fmt.Errorf("%w: number of floors must be between %d and %d, got %d",
			ErrOutOfRange, MinFloors, MaxFloors, numberOfFloors)
	}
	if numberOfElevators <= 0 {
		return fmt.Errorf("%w: number of elevators must be greater than 0, got %d",
			ErrOutOfRange, numberOfElevators)
	}
	if elevatorCapacity < MinCapacity || elevatorCapacity > MaxCapacity {
		return fmt.Errorf("%w: elevator capacity must be between %d and %d, got %d",
			ErrOutOfRange, MinCapacity, MaxCapacity, elevatorCapacity)
	}
	return nil
}

func (b *Building) NumberOfFloors() int {
	return b.numberOfFloors
}

func (b *Building) NumberOfElevators() int {
	return b.numberOfElevators
}

func (b *Building) ElevatorCapacity() int {
	return b.elevatorCapacity
}

func (b *Building) SystemStatus() types.SystemStatus {
	return b.systemStatus
}

func (b *Building) UpRequests() []request.Request {
	return copyRequests(b.upRequests)
}

func (b *Building) DownRequests() []request.Request {
	return copyRequests(b.downRequests)
}

// AddRequest parses raw input ("s1 e1 s2 e2 ...") and queues every request
// by direction. The whole input is checked before any queue changes, so a
// rejected call queues nothing.
func (b *Building) AddRequest(raw string) (bool, error) {
	if b.systemStatus != types.SS_Running {
		return false, fmt.Errorf("%w: cannot accept requests while %s", ErrInvalidState, b.systemStatus)
	}

	requests, err := request.Parse(raw)
	if err != nil {
		return false, err
	}
	for _, r := range requests {
		if err := request.Validate(r, b.numberOfFloors); err != nil {
			return false, fmt.Errorf("%w: %w", ErrOutOfRange, err)
		}
	}

	up, down := request.Split(requests)
	if len(b.upRequests)+len(up) > b.elevatorCapacity {
		return false, fmt.Errorf("%w: %d up requests, capacity %d",
			ErrCapacityExceeded, len(b.upRequests)+len(up), b.elevatorCapacity)
	}
	if len(b.downRequests)+len(down) > b.elevatorCapacity {
		return false, fmt.Errorf("%w: %d down requests, capacity %d",
			ErrCapacityExceeded, len(b.downRequests)+len(down), b.elevatorCapacity)
	}

	b.upRequests = append(b.upRequests, up...)
	b.downRequests = append(b.downRequests, down...)
	return true, nil
}

// AllocateRequest hands each non-empty queue to the first elevator heading
// the queue's way that is taking requests. Queues with no such elevator
// stay queued.
func (b *Building) AllocateRequest() error {
	if len(b.upRequests) == 0 && len(b.downRequests) == 0 {
		return nil
	}
	if b.systemStatus != types.SS_Running {
		return fmt.Errorf("%w: cannot allocate requests while %s", ErrInvalidState, b.systemStatus)
	}

	for _, a := range assigner.Plan(b.elevatorStates(), b.upRequests, b.downRequests) {
		if err := b.elevators[a.ElevatorIndex].AssignRequests(a.Batch); err != nil {
			return fmt.Errorf("assign %v batch to elevator %d: %w", a.Direction, a.ElevatorIndex, err)
		}
		if a.Direction == types.DIR_Up {
			b.upRequests = b.upRequests[:0]
		} else {
			b.downRequests = b.downRequests[:0]
		}
	}
	return nil
}

// StartElevatorSystem returns false if the system is already running.
func (b *Building) StartElevatorSystem() (bool, error) {
	switch b.systemStatus {
	case types.SS_Running:
		return false, nil
	case types.SS_Stopping:
		return false, fmt.Errorf("%w: cannot start while stopping", ErrInvalidState)
	}

	b.systemStatus = types.SS_Running
	for _, e := range b.elevators {
		e.Start()
	}
	return true, nil
}

// Step allocates queued requests, then steps every elevator once in index
// order.
func (b *Building) Step() error {
	if b.systemStatus != types.SS_Running {
		return fmt.Errorf("%w: cannot step while %s", ErrInvalidState, b.systemStatus)
	}

	if err := b.AllocateRequest(); err != nil {
		return err
	}
	for _, e := range b.elevators {
		e.Step()
	}
	return nil
}

// StopElevatorSystem drops all queued requests and drives every elevator
// down to floor 0, where it parks with its door open. It returns once all
// elevators are parked.
func (b *Building) StopElevatorSystem() {
	if b.systemStatus != types.SS_Running {
		return
	}
	b.systemStatus = types.SS_Stopping

	b.upRequests = b.upRequests[:0]
	b.downRequests = b.downRequests[:0]

	for _, e := range b.elevators {
		e.TakeOutOfService()
	}
	// each elevator needs at most one step per floor plus one to open
	for _, e := range b.elevators {
		for !e.IsParked() {
			e.Step()
		}
	}

	b.systemStatus = types.SS_OutOfService
}

// GetElevatorSystemStatus takes a snapshot of the whole building.
func (b *Building) GetElevatorSystemStatus() report.BuildingReport {
	elevatorReports := make([]report.ElevatorReport, 0, len(b.elevators))
	for _, e := range b.elevators {
		elevatorReports = append(elevatorReports, e.Report())
	}

	r, err := report.NewBuildingReport(b.numberOfFloors, b.numberOfElevators, b.elevatorCapacity,
		elevatorReports, b.upRequests, b.downRequests, b.systemStatus)
	if err != nil {
		// plain slices of plain structs always copy
		panic(err)
	}
	return r
}

func (b *Building) elevatorStates() []types.ElevatorState {
	states := make([]types.ElevatorState, len(b.elevators))
	for i, e := range b.elevators {
		states[i] = e
	}
	return states
}

func copyRequests(requests []request.Request) []request.Request {
	requestsCopy := make([]request.Request, len(requests))
	copy(requestsCopy, requests)
	return requestsCopy
}
