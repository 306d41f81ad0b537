// Package drone schedules item retrievals for a single fetching drone.
//
// Every request sends the drone on a round trip: t time units out to the item
// and t back. When a new request arrives before the current one is delivered,
// the current one is set aside on a stack of pending requests, remembering
// how far its item is from the player, and the drone turns to the new one.
// Whenever the drone delivers an item with time to spare before the next
// request, it works back through the pending requests, most recent first.
package drone

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/go-drones/container"
	"github.com/arloliu/go-drones/internal/intstream"
	"github.com/arloliu/go-drones/logger"
)

var (
	// ErrInvalidInput indicates that an Input is inconsistent.
	ErrInvalidInput = errors.New("invalid drone input")

	// ErrNoRequests indicates that an Input has no request times.
	ErrNoRequests = errors.New("no requests")
)

// RetrievalTime is the outcome of one request.
type RetrievalTime struct {
	// Index is the position of the request in the input, starting at 0.
	Index int
	// Filled is the time the item was delivered.
	Filled int64
}

// Input describes one scheduling problem.
type Input struct {
	// Declared is the request count announced by the input header. It is
	// informational; RequestTimes is authoritative.
	Declared int
	// Travel is the one-way travel time to an item (t).
	Travel int64
	// RequestTimes holds the request times in order.
	RequestTimes []int64
}

func (in Input) validate() error {
	if in.Travel < 0 {
		return fmt.Errorf("%w: negative travel time %d", ErrInvalidInput, in.Travel)
	}
	if len(in.RequestTimes) == 0 {
		return ErrNoRequests
	}

	return nil
}

type pendingRequest struct {
	index    int
	distance int64 // distance of the item from the player
}

// Scheduler computes retrieval times.
type Scheduler struct {
	log      logger.Logger
	contOpts []container.Option
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger that receives a debug record per delivery.
func WithLogger(l logger.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithContainerOptions sets options for the pending-request stack.
func WithContainerOptions(opts ...container.Option) Option {
	return func(s *Scheduler) {
		s.contOpts = append(s.contOpts, opts...)
	}
}

// NewScheduler creates a Scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RetrievalTimesFromFile parses the named file and schedules it.
func (s *Scheduler) RetrievalTimesFromFile(name string) ([]RetrievalTime, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.RetrievalTimes(f)
}

// RetrievalTimes parses r and schedules it.
func (s *Scheduler) RetrievalTimes(r io.Reader) ([]RetrievalTime, error) {
	in, err := ParseInput(r)
	if err != nil {
		return nil, err
	}
	if in.Declared != len(in.RequestTimes) {
		s.log.Warn("request count does not match header", "declared", in.Declared, "read", len(in.RequestTimes))
	}

	return s.Schedule(in)
}

// Schedule returns one RetrievalTime per request, in delivery order.
func (s *Scheduler) Schedule(in Input) ([]RetrievalTime, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	t := in.Travel
	pending := container.NewStack[*pendingRequest](s.contOpts...)
	times := make([]RetrievalTime, 0, len(in.RequestTimes))

	deliver := func(index int, at int64) {
		s.log.Debug("item delivered", "request", index, "filled", at)
		times = append(times, RetrievalTime{Index: index, Filled: at})
	}
	setAside := func(p *pendingRequest) error {
		if err := pending.Push(p); err != nil {
			return fmt.Errorf("set aside request %d: %w", p.index, err)
		}
		return nil
	}

	var (
		current  = in.RequestTimes[0]
		index    int
		distance int64 // drone's distance from the player
	)

	for _, next := range in.RequestTimes[1:] {
		left := next - current

		switch {
		case left <= t-distance:
			// Still on the way out; the item has not been picked up.
			if err := setAside(&pendingRequest{index: index, distance: t}); err != nil {
				return nil, err
			}
			index++
			current = next
			distance += left

		case left < 2*t-distance:
			// Picked up and heading back; the item is dropped where it is.
			distance = 2*t - left - distance
			if err := setAside(&pendingRequest{index: index, distance: distance}); err != nil {
				return nil, err
			}
			index++
			current = next

		default:
			left -= 2*t - distance
			current += 2*t - distance
			distance = 0
			deliver(index, current)
			index++

			for !pending.IsEmpty() && left > 0 {
				p, err := pending.Pop()
				if err != nil {
					return nil, err
				}

				switch {
				case left < p.distance:
					distance = left
					left = 0
					current = next
					if err := setAside(p); err != nil {
						return nil, err
					}

				case left < 2*p.distance:
					distance = 2*p.distance - left
					left = 0
					current = next
					p.distance = distance
					if err := setAside(p); err != nil {
						return nil, err
					}

				default:
					current += 2 * p.distance
					left -= 2 * p.distance
					deliver(p.index, current)
				}
			}

			if pending.IsEmpty() {
				current = next
			}
		}
	}

	current += 2*t - distance
	deliver(index, current)

	for !pending.IsEmpty() {
		p, err := pending.Pop()
		if err != nil {
			return nil, err
		}
		current += 2 * p.distance
		deliver(p.index, current)
	}

	return times, nil
}

// ParseInput reads an Input from r.
//
// The input starts with the header "count t" followed by the request times,
// all whitespace delimited. Request times are read to the end of the input.
func ParseInput(r io.Reader) (Input, error) {
	ints := intstream.NewReader(r)

	declared, err := ints.Require("request count")
	if err != nil {
		return Input{}, err
	}
	t, err := ints.Require("travel time")
	if err != nil {
		return Input{}, err
	}

	requests, err := ints.ReadAll()
	if err != nil {
		return Input{}, err
	}
	if len(requests) == 0 {
		return Input{}, fmt.Errorf("%w: missing first request time", intstream.ErrUnexpectedEOF)
	}

	return Input{Declared: int(declared), Travel: t, RequestTimes: requests}, nil
}
