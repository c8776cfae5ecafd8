package controller

import (
	"errors"
	"fmt"
	"sort"

	"elevatorsim/request"
	"elevatorsim/types"
)

var (
	ErrNotTakingRequests = errors.New("elevator is not taking requests")
	ErrBatch             = errors.New("invalid request batch")
)

type Option func(*Elevator)

// WithDwellTicks sets how many ticks the door stays open at a stop.
func WithDwellTicks(ticks int) Option {
	return func(e *Elevator) {
		if ticks > 0 {
			e.dwellTicks = ticks
		}
	}
}

// WithIdleWaitTicks sets how long an idle car waits before repositioning.
// Zero disables repositioning.
func WithIdleWaitTicks(ticks int) Option {
	return func(e *Elevator) {
		if ticks >= 0 {
			e.idleWaitTicks = ticks
		}
	}
}

// NewElevator returns a car parked out of service at floor 0.
func NewElevator(id int, numFloors int, capacity int, opts ...Option) *Elevator {
	e := &Elevator{
		id:            id,
		numFloors:     numFloors,
		capacity:      capacity,
		dwellTicks:    DefaultDwellTicks,
		idleWaitTicks: DefaultIdleWaitTicks,
		state:         ST_OutOfService,
		floor:         0,
		heading:       types.DIR_Stopped,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start puts an out-of-service car back into service with its door closed.
// Returns false if the car was already in service.
func (e *Elevator) Start() bool {
	if !e.IsOutOfService() {
		return false
	}
	e.stops = nil
	e.enterIdle()
	return true
}

// TakeOutOfService drops all stops and timers. The car then descends to
// floor 0 on subsequent steps and parks there with its door open.
func (e *Elevator) TakeOutOfService() {
	e.stops = nil
	e.countdown = 0
	e.heading = types.DIR_Stopped
	if e.state == ST_OutOfService {
		return
	}
	e.state = ST_Descending
}

// AssignRequests hands a whole batch to an idle car. Stops are the distinct
// batch endpoints in the order the batch direction serves them.
func (e *Elevator) AssignRequests(batch []request.Request) error {
	if !e.IsTakingRequests() {
		return fmt.Errorf("elevator %d in state %v: %w", e.id, e.state, ErrNotTakingRequests)
	}
	if len(batch) == 0 {
		return fmt.Errorf("%w: empty batch", ErrBatch)
	}
	if len(batch) > e.capacity {
		return fmt.Errorf("%w: %d requests exceed capacity %d", ErrBatch, len(batch), e.capacity)
	}

	heading := batch[0].Direction()
	for _, r := range batch {
		if r.Direction() != heading {
			return fmt.Errorf("%w: %v does not go %v", ErrBatch, r, heading)
		}
		if !e.hasFloor(r.Start) || !e.hasFloor(r.End) {
			return fmt.Errorf("%w: %v outside [0, %d]", ErrBatch, r, e.numFloors-1)
		}
	}

	e.heading = heading
	e.stops = orderStops(batch, heading)
	e.countdown = 0
	e.state = ST_Moving
	return nil
}

// Step advances the car by one tick.
func (e *Elevator) Step() {
	switch e.state {
	case ST_OutOfService:
		return

	case ST_Descending:
		if e.floor > 0 {
			e.floor--
		}
		if e.floor == 0 {
			e.state = ST_OutOfService
		}

	case ST_Idle:
		if e.idleWaitTicks <= 0 {
			return
		}
		e.countdown--
		if e.countdown <= 0 {
			e.startRepositioning()
		}

	case ST_Repositioning:
		e.moveToward(e.target)
		if e.floor == e.target {
			e.enterIdle()
		}

	case ST_Moving:
		if len(e.stops) == 0 {
			e.enterIdle()
			return
		}
		e.moveToward(e.stops[0])
		if e.floor == e.stops[0] {
			e.stops = e.stops[1:]
			e.state = ST_DoorOpen
			e.countdown = e.dwellTicks
		}

	case ST_DoorOpen:
		e.countdown--
		if e.countdown > 0 {
			return
		}
		e.countdown = 0
		if len(e.stops) > 0 {
			e.state = ST_Moving
		} else {
			e.enterIdle()
		}
	}
}

func (e *Elevator) enterIdle() {
	e.state = ST_Idle
	e.heading = types.DIR_Stopped
	e.countdown = e.idleWaitTicks
}

// Floor 0 sends the car to the top floor, anywhere else sends it home.
func (e *Elevator) startRepositioning() {
	e.target = 0
	if e.floor == 0 {
		e.target = e.numFloors - 1
	}
	e.countdown = 0
	e.state = ST_Repositioning
}

func (e *Elevator) moveToward(floor int) {
	switch directionTo(e.floor, floor) {
	case types.DIR_Up:
		e.floor++
	case types.DIR_Down:
		e.floor--
	}
}

func (e *Elevator) hasFloor(floor int) bool {
	return floor >= 0 && floor < e.numFloors
}

func directionTo(from, to int) types.Direction {
	if to > from {
		return types.DIR_Up
	} else if to < from {
		return types.DIR_Down
	}
	return types.DIR_Stopped
}

func orderStops(batch []request.Request, heading types.Direction) []int {
	seen := make(map[int]bool, 2*len(batch))
	stops := make([]int, 0, 2*len(batch))
	for _, r := range batch {
		for _, floor := range [...]int{r.Start, r.End} {
			if !seen[floor] {
				seen[floor] = true
				stops = append(stops, floor)
			}
		}
	}

	if heading == types.DIR_Up {
		sort.Ints(stops)
	} else {
		sort.Sort(sort.Reverse(sort.IntSlice(stops)))
	}
	return stops
}
