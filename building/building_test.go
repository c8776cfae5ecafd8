package building

import (
	"errors"
	"reflect"
	"testing"

	"elevatorsim/request"
	"elevatorsim/types"
)

func newRunningBuilding(t *testing.T, opts ...Option) *Building {
	t.Helper()
	b, err := New(10, 2, 4, opts...)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ok, err := b.StartElevatorSystem(); !ok || err != nil {
		t.Fatalf("Start failed: %v %v", ok, err)
	}
	return b
}

func TestNew_InvalidParameters(t *testing.T) {
	params := [][3]int{
		{2, 2, 4},
		{31, 2, 4},
		{10, 0, 4},
		{10, -1, 4},
		{10, 2, 3},
		{10, 2, 21},
	}

	for _, p := range params {
		b, err := New(p[0], p[1], p[2])
		if !errors.Is(err, ErrOutOfRange) || b != nil {
			t.Errorf("Parameters %v: expected ErrOutOfRange, was %v", p, err)
		}
	}
}

func TestNew_ValidParameters(t *testing.T) {
	params := [][3]int{
		{3, 1, 4},
		{30, 5, 20},
		{10, 2, 4},
	}

	for _, p := range params {
		b, err := New(p[0], p[1], p[2])
		if err != nil {
			t.Fatalf("Parameters %v: unexpected error %v", p, err)
		}
		if b.SystemStatus() != types.SS_OutOfService {
			t.Errorf("Expected initial status %v, was %v", types.SS_OutOfService, b.SystemStatus())
		}
		if b.NumberOfFloors() != p[0] || b.NumberOfElevators() != p[1] || b.ElevatorCapacity() != p[2] {
			t.Errorf("Parameters %v not stored", p)
		}
		if len(b.GetElevatorSystemStatus().Elevators) != p[1] {
			t.Errorf("Expected %d elevators", p[1])
		}
	}
}

func TestAddRequest_BeforeStart(t *testing.T) {
	b, _ := New(10, 2, 4)

	ok, err := b.AddRequest("1 2")
	if ok || !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, was %v %v", ok, err)
	}
}

func TestAddRequest_QueuesByDirectionInOrder(t *testing.T) {
	b := newRunningBuilding(t)

	if ok, err := b.AddRequest("1 2"); !ok || err != nil {
		t.Fatalf("Unexpected result: %v %v", ok, err)
	}
	if ok, err := b.AddRequest("7 3 9 0"); !ok || err != nil {
		t.Fatalf("Unexpected result: %v %v", ok, err)
	}

	expectedUp := []request.Request{request.New(1, 2)}
	expectedDown := []request.Request{request.New(7, 3), request.New(9, 0)}

	if !reflect.DeepEqual(b.UpRequests(), expectedUp) {
		t.Errorf("Up requests not as expected.\nExpected: %+v\nWas: %+v", expectedUp, b.UpRequests())
	}
	if !reflect.DeepEqual(b.DownRequests(), expectedDown) {
		t.Errorf("Down requests not as expected.\nExpected: %+v\nWas: %+v", expectedDown, b.DownRequests())
	}
}

func TestAddRequest_CapacityExceeded(t *testing.T) {
	b := newRunningBuilding(t)

	ok, err := b.AddRequest("1 2 3 4 5 6 7 8 9 10 11 12")
	if ok || !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Floors 10-12 do not exist in a 10 floor building, expected ErrOutOfRange, was %v", err)
	}

	ok, err = b.AddRequest("0 1 1 2 2 3 3 4 4 5 5 6")
	if ok || !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Expected ErrCapacityExceeded, was %v %v", ok, err)
	}
	if len(b.UpRequests()) != 0 {
		t.Errorf("Rejected call should queue nothing, up queue was %+v", b.UpRequests())
	}
}

func TestAddRequest_CapacityAcrossCalls(t *testing.T) {
	b := newRunningBuilding(t)

	if _, err := b.AddRequest("9 8 8 7 7 6"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := b.AddRequest("6 5 1 2"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	_, err := b.AddRequest("2 3 5 4")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Fifth down request: expected ErrCapacityExceeded, was %v", err)
	}
	if len(b.DownRequests()) != 4 || len(b.UpRequests()) != 1 {
		t.Errorf("Queues changed by a rejected call: up %+v down %+v", b.UpRequests(), b.DownRequests())
	}
}

func TestAddRequest_InvalidInput(t *testing.T) {
	b := newRunningBuilding(t)

	if _, err := b.AddRequest("1 2 3"); !errors.Is(err, request.ErrFormat) {
		t.Errorf("Odd token count: expected format error, was %v", err)
	}
	if _, err := b.AddRequest("1 x"); !errors.Is(err, request.ErrFormat) {
		t.Errorf("Non-numeric token: expected format error, was %v", err)
	}
	if _, err := b.AddRequest("4 4"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Same start and end: expected ErrOutOfRange, was %v", err)
	}
	if _, err := b.AddRequest("1 2 -1 3"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Negative floor: expected ErrOutOfRange, was %v", err)
	}
	if len(b.UpRequests()) != 0 {
		t.Errorf("Invalid input should queue nothing, was %+v", b.UpRequests())
	}
}

func TestStartElevatorSystem(t *testing.T) {
	b, _ := New(10, 2, 4)

	ok, err := b.StartElevatorSystem()
	if !ok || err != nil {
		t.Fatalf("Unexpected result: %v %v", ok, err)
	}
	if b.SystemStatus() != types.SS_Running {
		t.Errorf("Expected %v, was %v", types.SS_Running, b.SystemStatus())
	}
	for _, e := range b.GetElevatorSystemStatus().Elevators {
		if !e.TakingRequests || !e.DoorClosed || e.Direction != types.DIR_Up {
			t.Errorf("Elevator %d not ready after start: %+v", e.ID, e)
		}
	}
}

func TestStartElevatorSystem_Twice(t *testing.T) {
	b := newRunningBuilding(t)

	ok, err := b.StartElevatorSystem()
	if ok || err != nil {
		t.Errorf("Second start: expected false without error, was %v %v", ok, err)
	}
	if b.SystemStatus() != types.SS_Running {
		t.Errorf("Expected %v, was %v", types.SS_Running, b.SystemStatus())
	}
}

func TestStartElevatorSystem_WhileStopping(t *testing.T) {
	b, _ := New(10, 2, 4)
	b.systemStatus = types.SS_Stopping

	ok, err := b.StartElevatorSystem()
	if ok || !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, was %v %v", ok, err)
	}
}

func TestStopElevatorSystem(t *testing.T) {
	b := newRunningBuilding(t, WithIdleWaitTicks(0))
	if _, err := b.AddRequest("1 6 0 8"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for range 4 {
		if err := b.Step(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if _, err := b.AddRequest("5 2"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	b.StopElevatorSystem()

	if b.SystemStatus() != types.SS_OutOfService {
		t.Errorf("Expected %v, was %v", types.SS_OutOfService, b.SystemStatus())
	}
	if len(b.UpRequests()) != 0 || len(b.DownRequests()) != 0 {
		t.Errorf("Queues should be cleared: up %+v down %+v", b.UpRequests(), b.DownRequests())
	}
	for _, e := range b.GetElevatorSystemStatus().Elevators {
		if e.TakingRequests || e.DoorClosed || e.Direction != types.DIR_Stopped || e.Floor != 0 || !e.OutOfService {
			t.Errorf("Elevator %d not parked after stop: %+v", e.ID, e)
		}
	}
}

func TestStopElevatorSystem_NotRunning(t *testing.T) {
	b, _ := New(10, 2, 4)
	b.StopElevatorSystem()

	if b.SystemStatus() != types.SS_OutOfService {
		t.Errorf("Expected %v, was %v", types.SS_OutOfService, b.SystemStatus())
	}
}

func TestRestartAfterStop(t *testing.T) {
	b := newRunningBuilding(t)
	b.StopElevatorSystem()

	ok, err := b.StartElevatorSystem()
	if !ok || err != nil {
		t.Fatalf("Restart failed: %v %v", ok, err)
	}
	if _, err := b.AddRequest("1 2"); err != nil {
		t.Errorf("Unexpected error after restart: %v", err)
	}
}

func TestStep_NotRunning(t *testing.T) {
	b, _ := New(10, 2, 4)

	if err := b.Step(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, was %v", err)
	}
}

func TestAllocateRequest_Empty(t *testing.T) {
	b, _ := New(10, 2, 4)

	if err := b.AllocateRequest(); err != nil {
		t.Errorf("Allocating nothing should be a no-op, was %v", err)
	}
}

func TestAllocateRequest_LowestIndexWins(t *testing.T) {
	b := newRunningBuilding(t)
	if _, err := b.AddRequest("1 2 2 5"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := b.AllocateRequest(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	r := b.GetElevatorSystemStatus()
	if r.Elevators[0].TakingRequests || !r.Elevators[1].TakingRequests {
		t.Errorf("Expected the batch on elevator 0 only: %+v", r.Elevators)
	}
	expectedStops := []bool{false, true, true, false, false, true, false, false, false, false}
	if !reflect.DeepEqual(r.Elevators[0].Stops, expectedStops) {
		t.Errorf("Stops not as expected.\nExpected: %+v\nWas: %+v", expectedStops, r.Elevators[0].Stops)
	}
	if len(r.UpRequests) != 0 {
		t.Errorf("Up queue should be cleared, was %+v", r.UpRequests)
	}
}

func TestAllocateRequest_NoEligibleElevator(t *testing.T) {
	b := newRunningBuilding(t, WithIdleWaitTicks(0))
	if _, err := b.AddRequest("7 3"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// every elevator idles at floor 0 heading UP, so the down queue waits
	if err := b.Step(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := []request.Request{request.New(7, 3)}
	if !reflect.DeepEqual(b.DownRequests(), expected) {
		t.Errorf("Down queue should be kept.\nExpected: %+v\nWas: %+v", expected, b.DownRequests())
	}
}

func TestStep_DownQueueServedAfterUpBatch(t *testing.T) {
	b, err := New(10, 1, 4, WithDwellTicks(1), WithIdleWaitTicks(0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b.StartElevatorSystem()
	if _, err := b.AddRequest("1 3 7 2"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// up batch: move to 1, dwell, move to 3, dwell, then idle at 3 heading DOWN
	for range 5 {
		if err := b.Step(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	r := b.GetElevatorSystemStatus()
	if r.Elevators[0].Floor != 3 || !r.Elevators[0].TakingRequests || r.Elevators[0].Direction != types.DIR_Down {
		t.Fatalf("Expected idle at floor 3 heading DOWN: %+v", r.Elevators[0])
	}
	if len(r.DownRequests) != 1 {
		t.Fatalf("Down request should still be queued: %+v", r.DownRequests)
	}

	if err := b.Step(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	r = b.GetElevatorSystemStatus()
	if len(r.DownRequests) != 0 || r.Elevators[0].TakingRequests {
		t.Errorf("Down batch should be allocated: %+v", r)
	}
	if r.Elevators[0].Floor != 4 || r.Elevators[0].Direction != types.DIR_Up {
		t.Errorf("Expected to climb toward the pickup at 7: %+v", r.Elevators[0])
	}
}

func TestGetElevatorSystemStatus_IsSnapshot(t *testing.T) {
	b := newRunningBuilding(t)
	if _, err := b.AddRequest("1 2 7 3"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	r := b.GetElevatorSystemStatus()
	r.UpRequests[0] = request.New(0, 9)
	r.Elevators[0].Floor = 5

	if b.UpRequests()[0] != request.New(1, 2) {
		t.Errorf("Report change reached the up queue")
	}
	if b.GetElevatorSystemStatus().Elevators[0].Floor != 0 {
		t.Errorf("Report change reached elevator 0")
	}
	if r.SystemStatus != types.SS_Running || r.NumFloors != 10 || r.NumElevators != 2 || r.ElevatorCapacity != 4 {
		t.Errorf("Report header not as expected: %+v", r)
	}
}
