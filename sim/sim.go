package sim

import (
	"fmt"

	"github.com/golang/glog"

	"elevatorsim/building"
	"elevatorsim/report"
	"elevatorsim/scenario"
	"elevatorsim/trace"
)

// Result summarises a finished run.
type Result struct {
	Ticks     int
	Submitted int
	Rejected  int
	Final     report.BuildingReport
}

// Runner drives a building through a scenario. OnTick, if set, gets the
// report after every tick.
type Runner struct {
	Building *building.Building
	Tracer   *trace.Tracer
	OnTick   func(tick int, r report.BuildingReport)
}

// Run starts the building, submits each tick's requests before stepping,
// and stops the building after the last tick. Rejected request input is
// logged and skipped.
func (r *Runner) Run(s scenario.Scenario) (Result, error) {
	res := Result{}
	if err := s.Validate(); err != nil {
		return res, err
	}

	started, err := r.Building.StartElevatorSystem()
	if err != nil {
		return res, fmt.Errorf("start elevator system: %w", err)
	}
	if !started {
		glog.Warning("Elevator system was already running")
	}
	glog.Infof("Elevator system %s: %d floors, %d elevators, capacity %d",
		r.Building.SystemStatus(), r.Building.NumberOfFloors(),
		r.Building.NumberOfElevators(), r.Building.ElevatorCapacity())
	r.Tracer.Status(0, r.Building.SystemStatus().String())

	byTick := s.ByTick()
	for tick := range s.Steps {
		for _, input := range byTick[tick] {
			if _, err := r.Building.AddRequest(input); err != nil {
				glog.Warningf("Tick %d: request %q rejected: %v", tick, input, err)
				r.Tracer.Rejected(tick, input, err)
				res.Rejected++
				continue
			}
			glog.V(1).Infof("Tick %d: request %q queued", tick, input)
			res.Submitted++
		}

		if err := r.Building.Step(); err != nil {
			return res, fmt.Errorf("step %d: %w", tick, err)
		}
		res.Ticks++

		rep := r.Building.GetElevatorSystemStatus()
		if glog.V(2) {
			for i, e := range rep.Elevators {
				glog.Infof("Tick %d: elevator %d %s", tick, i, e)
			}
		}
		r.Tracer.Tick(tick, rep)
		if r.OnTick != nil {
			r.OnTick(tick, rep)
		}
	}

	r.Building.StopElevatorSystem()
	glog.Infof("Elevator system %s after %d ticks", r.Building.SystemStatus(), res.Ticks)
	r.Tracer.Status(res.Ticks, r.Building.SystemStatus().String())

	res.Final = r.Building.GetElevatorSystemStatus()
	return res, nil
}
