package report

import (
	"fmt"
	"strings"

	"github.com/tiendc/go-deepcopy"

	"elevatorsim/request"
	"elevatorsim/types"
)

// BuildingReport is a snapshot of a building. It shares no memory with the
// building it was taken from.
type BuildingReport struct {
	NumFloors        int
	NumElevators     int
	ElevatorCapacity int
	Elevators        []ElevatorReport
	UpRequests       []request.Request
	DownRequests     []request.Request
	SystemStatus     types.SystemStatus
}

// NewBuildingReport deep copies every slice it is given.
func NewBuildingReport(
	numFloors, numElevators, elevatorCapacity int,
	elevators []ElevatorReport,
	upRequests, downRequests []request.Request,
	status types.SystemStatus,
) (BuildingReport, error) {
	r := BuildingReport{
		NumFloors:        numFloors,
		NumElevators:     numElevators,
		ElevatorCapacity: elevatorCapacity,
		SystemStatus:     status,
		Elevators:        []ElevatorReport{},
		UpRequests:       []request.Request{},
		DownRequests:     []request.Request{},
	}

	if err := deepcopy.Copy(&r.Elevators, elevators); err != nil {
		return BuildingReport{}, fmt.Errorf("copy elevator reports: %w", err)
	}
	if err := deepcopy.Copy(&r.UpRequests, upRequests); err != nil {
		return BuildingReport{}, fmt.Errorf("copy up requests: %w", err)
	}
	if err := deepcopy.Copy(&r.DownRequests, downRequests); err != nil {
		return BuildingReport{}, fmt.Errorf("copy down requests: %w", err)
	}

	return r, nil
}

// Clone returns an independent copy of the report.
func (r BuildingReport) Clone() (BuildingReport, error) {
	return NewBuildingReport(r.NumFloors, r.NumElevators, r.ElevatorCapacity,
		r.Elevators, r.UpRequests, r.DownRequests, r.SystemStatus)
}

func (r BuildingReport) String() string {
	var sb strings.Builder
	sb.WriteString("Building Report:\n")
	fmt.Fprintf(&sb, "Number of Floors: %d\n", r.NumFloors)
	fmt.Fprintf(&sb, "Number of Elevators: %d\n", r.NumElevators)
	fmt.Fprintf(&sb, "Elevator Capacity: %d\n", r.ElevatorCapacity)
	fmt.Fprintf(&sb, "Elevator System Status: %s\n", r.SystemStatus)
	fmt.Fprintf(&sb, "Up Requests: %s\n", formatRequests(r.UpRequests))
	fmt.Fprintf(&sb, "Down Requests: %s\n", formatRequests(r.DownRequests))
	sb.WriteString("Elevator Reports: \n")

	for i, e := range r.Elevators {
		fmt.Fprintf(&sb, "Elevator %d: %s\n", i, e)
	}
	return sb.String()
}

func formatRequests(requests []request.Request) string {
	parts := make([]string, 0, len(requests))
	for _, r := range requests {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
