package types

type Direction int

const (
	DIR_Down    Direction = -1
	DIR_Stopped Direction = 0
	DIR_Up      Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DIR_Up:
		return "UP"
	case DIR_Down:
		return "DOWN"
	default:
		return "STOPPED"
	}
}

// Arrow is the one-character form used in elevator report lines.
func (d Direction) Arrow() string {
	switch d {
	case DIR_Up:
		return "^"
	case DIR_Down:
		return "v"
	default:
		return "-"
	}
}

type SystemStatus int

const (
	SS_OutOfService SystemStatus = 0
	SS_Running      SystemStatus = 1
	SS_Stopping     SystemStatus = 2
)

func (s SystemStatus) String() string {
	switch s {
	case SS_Running:
		return "Running"
	case SS_Stopping:
		return "Stopping"
	default:
		return "Out Of Service"
	}
}

type ElevatorState interface {
	GetID() int
	GetFloor() int
	GetDirection() Direction
	IsTakingRequests() bool
}
