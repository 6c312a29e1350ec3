package execution

import (
	"errors"
	"time"

	"ctest/internal/assert"
	"ctest/internal/domain"
	"ctest/internal/registry"
)

// ErrNoTests is returned when a run is started with an empty registry.
var ErrNoTests = errors.New("no tests are defined")

// State is a phase of a run
type State int

const (
	NotStarted State = iota
	Running
	Reporting
	Done
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Reporting:
		return "Reporting"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Reporter is told about every step of a run
type Reporter interface {
	assert.Reporter
	RunStarted(total int)
	TestFinished(result domain.Result)
	RunFinished(summary domain.RunSummary)
}

// Options configures a Sequence
type Options struct {
	// Now is the clock used for timing. Defaults to time.Now.
	Now func() time.Time
}

// Sequence runs the cases of a registry one after another, in registration
// order, without stopping on failures.
type Sequence struct {
	reporter Reporter
	runner   *Runner
	now      func() time.Time
	states   []State
}

var _ Executor = (*Sequence)(nil)

// NewSequence creates a new Sequence
func NewSequence(r Reporter, opts Options) *Sequence {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Sequence{
		reporter: r,
		runner:   NewRunner(r, now),
		now:      now,
		states:   []State{NotStarted},
	}
}

// State returns the current phase.
func (s *Sequence) State() State {
	return s.states[len(s.states)-1]
}

// States returns every phase visited so far, starting with NotStarted.
func (s *Sequence) States() []State {
	out := make([]State, len(s.states))
	copy(out, s.states)
	return out
}

func (s *Sequence) enter(state State) {
	s.states = append(s.states, state)
}

// Execute runs every case of reg exactly once. It returns ErrNoTests without
// running or reporting anything when reg is empty.
func (s *Sequence) Execute(reg *registry.Registry) (domain.RunSummary, error) {
	if s.State() != NotStarted {
		return domain.RunSummary{}, errors.New("sequence already executed")
	}
	if reg.Len() == 0 {
		s.enter(Done)
		return domain.RunSummary{}, ErrNoTests
	}

	s.enter(Running)
	cases := reg.Cases()
	s.reporter.RunStarted(len(cases))

	summary := domain.RunSummary{StartedAt: s.now()}
	for _, tc := range cases {
		result := s.runner.Run(tc)
		s.reporter.TestFinished(result)
		summary.Add(result)
	}

	s.enter(Reporting)
	summary.Duration = s.now().Sub(summary.StartedAt)
	s.reporter.RunFinished(summary)

	s.enter(Done)
	return summary, nil
}
