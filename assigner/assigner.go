package assigner

import (
	"elevatorsim/request"
	"elevatorsim/types"
)

// Assignment pairs a queue's batch with the index of the elevator that gets it.
type Assignment struct {
	ElevatorIndex int
	Direction     types.Direction
	Batch         []request.Request
}

// FirstEligible returns the index of the first elevator that is heading in
// dir and taking requests, or -1 if there is none. Lower indices win ties.
func FirstEligible(elevators []types.ElevatorState, dir types.Direction) int {
	for i, e := range elevators {
		if e.GetDirection() == dir && e.IsTakingRequests() {
			return i
		}
	}
	return -1
}

// Plan decides which elevator, if any, takes the up queue and which takes
// the down queue. Each non-empty queue goes whole to one elevator. The
// queues are not modified.
func Plan(elevators []types.ElevatorState, up []request.Request, down []request.Request) []Assignment {
	assignments := make([]Assignment, 0, 2)

	queues := [...]struct {
		dir   types.Direction
		batch []request.Request
	}{
		{types.DIR_Up, up},
		{types.DIR_Down, down},
	}

	for _, q := range queues {
		if len(q.batch) == 0 {
			continue
		}
		idx := FirstEligible(elevators, q.dir)
		if idx < 0 {
			continue
		}
		batch := make([]request.Request, len(q.batch))
		copy(batch, q.batch)
		assignments = append(assignments, Assignment{
			ElevatorIndex: idx,
			Direction:     q.dir,
			Batch:         batch,
		})
	}

	return assignments
}
