package controller

import "elevatorsim/types"

type stateFSM int

const (
	ST_OutOfService  stateFSM = 0
	ST_Descending    stateFSM = 1
	ST_Idle          stateFSM = 2
	ST_Moving        stateFSM = 3
	ST_DoorOpen      stateFSM = 4
	ST_Repositioning stateFSM = 5
)

func (s stateFSM) String() string {
	switch s {
	case ST_OutOfService:
		return "OutOfService"
	case ST_Descending:
		return "Descending"
	case ST_Idle:
		return "Idle"
	case ST_Moving:
		return "Moving"
	case ST_DoorOpen:
		return "DoorOpen"
	case ST_Repositioning:
		return "Repositioning"
	}
	return "Unknown"
}

const (
	DefaultDwellTicks    = 3
	DefaultIdleWaitTicks = 5
)

// Elevator is a single car. The door is open exactly in ST_DoorOpen and
// ST_OutOfService, and the car only moves in ST_Moving, ST_Repositioning
// and ST_Descending.
type Elevator struct {
	id            int
	numFloors     int
	capacity      int
	dwellTicks    int
	idleWaitTicks int

	state   stateFSM
	floor   int
	heading types.Direction
	// remaining stops of the current batch, in the order they are served
	stops []int
	// repositioning target
	target    int
	countdown int
}
