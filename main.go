package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"elevatorsim/config"
	"elevatorsim/report"
	"elevatorsim/scenario"
	"elevatorsim/sim"
	"elevatorsim/trace"
)

func main() {
	configPath := flag.String("config", "", "YAML file with building parameters")
	envPath := flag.String("env", ".env", "Env file with ELEVATOR_* overrides")
	scenarioPath := flag.String("scenario", "", "YAML scenario file. Defaults to a built-in demo")
	tracePath := flag.String("trace", "", "Write a JSON line per tick to this file")
	quiet := flag.Bool("quiet", false, "Only print the final report")
	floors := flag.Int("floors", 0, "Number of floors (3-30)")
	elevators := flag.Int("elevators", 0, "Number of elevators (>0)")
	capacity := flag.Int("capacity", 0, "Elevator capacity (4-20)")
	dwell := flag.Int("dwell", 0, "Ticks a door stays open at a stop")
	idleWait := flag.Int("idlewait", 0, "Ticks an idle elevator waits before repositioning, 0 disables")
	flag.Parse()
	defer glog.Flush()

	cfg := config.Default()
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			glog.Exitf("Loading config: %v", err)
		}
	}
	if err := cfg.LoadEnv(*envPath); err != nil {
		glog.Exitf("Loading environment: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "floors":
			cfg.Floors = *floors
		case "elevators":
			cfg.Elevators = *elevators
		case "capacity":
			cfg.Capacity = *capacity
		case "dwell":
			cfg.DwellTicks = *dwell
		case "idlewait":
			cfg.IdleWaitTicks = *idleWait
		}
	})

	b, err := cfg.NewBuilding()
	if err != nil {
		glog.Exitf("Creating building: %v", err)
	}

	s := scenario.Demo()
	if *scenarioPath != "" {
		s, err = scenario.Load(*scenarioPath)
		if err != nil {
			glog.Exitf("Loading scenario: %v", err)
		}
	}

	var tracer *trace.Tracer
	if *tracePath != "" {
		file, err := os.Create(*tracePath)
		if err != nil {
			glog.Exitf("Creating trace file: %v", err)
		}
		defer file.Close()
		tracer = trace.New(file)
		glog.Infof("Tracing run %s to %s", tracer.RunID(), *tracePath)
	}

	var out io.Writer = os.Stdout
	runner := &sim.Runner{Building: b, Tracer: tracer}
	if !*quiet {
		runner.OnTick = func(tick int, r report.BuildingReport) {
			fmt.Fprintf(out, "Tick %d\n%s\n", tick, r)
		}
	}

	res, err := runner.Run(s)
	if err != nil {
		glog.Errorf("Simulation failed: %v", err)
		glog.Flush()
		os.Exit(1)
	}

	fmt.Fprintf(out, "%d ticks, %d requests queued, %d rejected\n%s", res.Ticks, res.Submitted, res.Rejected, res.Final)
}
