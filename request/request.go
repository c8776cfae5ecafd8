package request

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"elevatorsim/types"
)

var (
	ErrFormat  = errors.New("malformed request input")
	ErrInvalid = errors.New("invalid request")
)

// Request is one trip from Start to End. Floors are 0-indexed.
type Request struct {
	Start int
	End   int
}

func New(start, end int) Request {
	return Request{Start: start, End: end}
}

// Direction is UP when the trip goes up, DOWN otherwise.
func (r Request) Direction() types.Direction {
	if r.Start < r.End {
		return types.DIR_Up
	}
	return types.DIR_Down
}

func (r Request) String() string {
	return fmt.Sprintf("%d->%d", r.Start, r.End)
}

// Parse splits raw input of the form "s1 e1 s2 e2 ..." into requests,
// keeping input order. Floors are not range checked here.
func Parse(raw string) ([]Request, error) {
	fields := strings.Fields(raw)
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("%w: expected pairs of <startFloor> <endFloor>, got %d values", ErrFormat, len(fields))
	}

	requests := make([]Request, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		start, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("%w: start floor %q is not a number", ErrFormat, fields[i])
		}
		end, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: end floor %q is not a number", ErrFormat, fields[i+1])
		}
		requests = append(requests, New(start, end))
	}

	return requests, nil
}

// Validate checks that both floors exist in a building with numFloors
// floors and that the trip actually goes somewhere.
func Validate(r Request, numFloors int) error {
	if r.Start < 0 || r.Start >= numFloors {
		return fmt.Errorf("%w: start floor %d outside [0, %d]", ErrInvalid, r.Start, numFloors-1)
	}
	if r.End < 0 || r.End >= numFloors {
		return fmt.Errorf("%w: end floor %d outside [0, %d]", ErrInvalid, r.End, numFloors-1)
	}
	if r.Start == r.End {
		return fmt.Errorf("%w: start and end floor are both %d", ErrInvalid, r.Start)
	}
	return nil
}

// Split partitions requests into up and down lists, each in input order.
func Split(requests []Request) (up []Request, down []Request) {
	for _, r := range requests {
		if r.Direction() == types.DIR_Up {
			up = append(up, r)
		} else {
			down = append(down, r)
		}
	}
	return up, down
}
