package report

import (
	"fmt"
	"strings"

	"elevatorsim/types"
)

type ElevatorReport struct {
	ID             int
	Floor          int
	Direction      types.Direction
	DoorClosed     bool
	Stops          []bool
	DwellTimer     int
	WaitTimer      int
	OutOfService   bool
	TakingRequests bool
}

/**
 * @brief Gets the ID of the elevator.
 *
 * @return The ID of the elevator.
 */
func (r *ElevatorReport) GetID() int {
	return r.ID
}

/**
 * @brief Gets the floor the elevator was on when the report was taken.
 *
 * @return The floor of the elevator.
 */
func (r *ElevatorReport) GetFloor() int {
	return r.Floor
}

/**
 * @brief Gets the direction of the elevator.
 *
 * @return The direction of the elevator.
 */
func (r *ElevatorReport) GetDirection() types.Direction {
	return r.Direction
}

func (r *ElevatorReport) IsTakingRequests() bool {
	return r.TakingRequests
}

/**
 * @brief Renders the elevator on one line.
 *
 * @return `Out of Service[...]`, `Waiting[...]` or `[floor|dir|door]< stops >`.
 */
func (r ElevatorReport) String() string {
	if r.OutOfService {
		return fmt.Sprintf("Out of Service[Floor %d]", r.Floor)
	}

	if r.TakingRequests {
		if r.WaitTimer > 0 {
			return fmt.Sprintf("Waiting[Floor %d, Time %d]", r.Floor, r.WaitTimer)
		}
		return fmt.Sprintf("Waiting[Floor %d]", r.Floor)
	}

	door := "C"
	if !r.DoorClosed {
		door = fmt.Sprintf("O %d", r.DwellTimer)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d|%s|%s]< ", r.Floor, r.Direction.Arrow(), door)
	for floor, stop := range r.Stops {
		if stop {
			fmt.Fprintf(&sb, "%d ", floor)
		} else {
			sb.WriteString("-- ")
		}
	}
	sb.WriteString(">")
	return sb.String()
}
