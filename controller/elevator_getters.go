package controller

import (
	"elevatorsim/report"
	"elevatorsim/types"
)

func (e *Elevator) GetID() int {
	return e.id
}

func (e *Elevator) GetFloor() int {
	return e.floor
}

func (e *Elevator) GetState() stateFSM {
	return e.state
}

// GetDirection reports the direction the car is travelling or, when idle,
// the direction of batches it will accept.
func (e *Elevator) GetDirection() types.Direction {
	switch e.state {
	case ST_Idle:
		if e.floor == 0 {
			return types.DIR_Up
		}
		return types.DIR_Down
	case ST_Moving:
		if len(e.stops) == 0 || e.stops[0] == e.floor {
			return e.heading
		}
		return directionTo(e.floor, e.stops[0])
	case ST_Repositioning:
		return directionTo(e.floor, e.target)
	case ST_Descending:
		if e.floor > 0 {
			return types.DIR_Down
		}
	}
	return types.DIR_Stopped
}

func (e *Elevator) IsTakingRequests() bool {
	return e.state == ST_Idle
}

func (e *Elevator) IsDoorClosed() bool {
	return e.state != ST_DoorOpen && e.state != ST_OutOfService
}

func (e *Elevator) IsOutOfService() bool {
	return e.state == ST_OutOfService || e.state == ST_Descending
}

// IsParked is true once an out-of-service car rests at floor 0 with its
// door open.
func (e *Elevator) IsParked() bool {
	return e.state == ST_OutOfService
}

// GetStops returns the remaining stops in service order.
func (e *Elevator) GetStops() []int {
	stopsCopy := make([]int, len(e.stops))
	copy(stopsCopy, e.stops)
	return stopsCopy
}

// Report takes a snapshot of the elevator.
func (e *Elevator) Report() report.ElevatorReport {
	stops := make([]bool, e.numFloors)
	for _, floor := range e.stops {
		stops[floor] = true
	}

	r := report.ElevatorReport{
		ID:             e.id,
		Floor:          e.floor,
		Direction:      e.GetDirection(),
		DoorClosed:     e.IsDoorClosed(),
		Stops:          stops,
		OutOfService:   e.IsOutOfService(),
		TakingRequests: e.IsTakingRequests(),
	}

	switch e.state {
	case ST_DoorOpen:
		r.DwellTimer = e.countdown
	case ST_Idle:
		r.WaitTimer = e.countdown
	}
	return r
}
