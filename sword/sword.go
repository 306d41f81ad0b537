// Package sword schedules the cleaning of swords against player requests.
//
// A cleaning drone works through a pool of swords in order. The first n swords
// have their own cleaning durations, every later one takes the default time t.
// Each request is filled by the next sword to come out of cleaning: if the
// sword is not clean yet the player waits, otherwise the request is filled
// immediately and the drone keeps filling later requests on the same pass for
// as long as the next sword will be clean by the time the next request
// arrives.
package sword

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/go-drones/container"
	"github.com/arloliu/go-drones/internal/intstream"
	"github.com/arloliu/go-drones/logger"
)

// ErrInvalidInput indicates that an Input is inconsistent.
var ErrInvalidInput = errors.New("invalid sword input")

// CleaningTime is the outcome of one request.
type CleaningTime struct {
	// Filled is the time the request was filled.
	Filled int64
	// Wait is how long the player waited for a clean sword.
	Wait int64
}

// Input describes one scheduling problem.
type Input struct {
	// Swords is the number of swords with their own cleaning time (n).
	Swords int
	// DefaultTime is the cleaning time of every sword past the first Swords (t).
	DefaultTime int64
	// ServiceTimes holds the cleaning times of the first min(Swords, m) swords.
	ServiceTimes []int64
	// RequestTimes holds the m request times in order.
	RequestTimes []int64
}

func (in Input) validate() error {
	if in.Swords < 0 {
		return fmt.Errorf("%w: negative sword count %d", ErrInvalidInput, in.Swords)
	}
	if want := min(in.Swords, len(in.RequestTimes)); len(in.ServiceTimes) != want {
		return fmt.Errorf("%w: got %d cleaning times, want %d", ErrInvalidInput, len(in.ServiceTimes), want)
	}

	return nil
}

// Scheduler computes cleaning times.
type Scheduler struct {
	log      logger.Logger
	contOpts []container.Option
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger that receives a debug record per filled request.
func WithLogger(l logger.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithContainerOptions sets options for the queues the scheduler allocates.
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

// CleaningTimesFromFile parses the named file and schedules it.
func (s *Scheduler) CleaningTimesFromFile(name string) ([]CleaningTime, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.CleaningTimes(f)
}

// CleaningTimes parses r and schedules it.
func (s *Scheduler) CleaningTimes(r io.Reader) ([]CleaningTime, error) {
	in, err := ParseInput(r)
	if err != nil {
		return nil, err
	}

	return s.Schedule(in)
}

// Schedule returns one CleaningTime per request, in request order.
func (s *Scheduler) Schedule(in Input) ([]CleaningTime, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	m := len(in.RequestTimes)
	n := in.Swords

	cleaning := container.NewQueue[int64](s.contOpts...)
	requests := container.NewQueue[int64](s.contOpts...)
	for i := range m {
		d := in.DefaultTime
		if i < n {
			d = in.ServiceTimes[i]
		}
		if err := cleaning.Add(d); err != nil {
			return nil, fmt.Errorf("queue cleaning time %d: %w", i, err)
		}
	}
	for i, t := range in.RequestTimes {
		if err := requests.Add(t); err != nil {
			return nil, fmt.Errorf("queue request %d: %w", i, err)
		}
	}

	times := make([]CleaningTime, 0, m)
	fill := func(i int, filled, wait int64) {
		s.log.Debug("request filled", "request", i, "filled", filled, "wait", wait)
		times = append(times, CleaningTime{Filled: filled, Wait: wait})
	}

	// Both queues hold exactly m-i elements at the top of each iteration.
	var total int64
	for i := 0; i < m; i++ {
		requested, _ := requests.Remove()
		d, _ := cleaning.Remove()
		total += d

		if total > requested {
			fill(i, total, total-requested)
			continue
		}

		fill(i, requested, 0)

		swords := 1
		for i < m-1 && swords < n {
			nextRequest, _ := requests.Peek()
			nextCleaning, _ := cleaning.Peek()
			if nextRequest < total+nextCleaning {
				break
			}

			i++
			swords++
			d, _ = cleaning.Remove()
			total += d
			filled, _ := requests.Remove()
			fill(i, filled, 0)
		}

		// Every sword of this pass is used up, so the drone idles until
		// the next request.
		if swords >= n && i < m-1 {
			total, _ = requests.Peek()
		}
	}

	return times, nil
}

// ParseInput reads an Input from r.
//
// The input starts with the header "n m t", followed by min(n, m) cleaning
// times and then m request times, all whitespace delimited.
func ParseInput(r io.Reader) (Input, error) {
	ints := intstream.NewReader(r)

	n, err := ints.Require("sword count")
	if err != nil {
		return Input{}, err
	}
	m, err := ints.Require("request count")
	if err != nil {
		return Input{}, err
	}
	t, err := ints.Require("default cleaning time")
	if err != nil {
		return Input{}, err
	}
	if n < 0 || m < 0 {
		return Input{}, fmt.Errorf("%w: negative count in header %d %d %d", ErrInvalidInput, n, m, t)
	}

	in := Input{Swords: int(n), DefaultTime: t}
	if in.ServiceTimes, err = ints.ReadN(int(min(n, m)), "cleaning time"); err != nil {
		return Input{}, err
	}
	if in.RequestTimes, err = ints.ReadN(int(m), "request time"); err != nil {
		return Input{}, err
	}

	return in, nil
}
