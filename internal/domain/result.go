package domain

import "time"

// Result is the outcome of invoking one test case
type Result struct {
	Name     string        // Registered test name
	Failures int           // Number of failed assertions, zero means passed
	Duration time.Duration // Time taken by the test body
}

// Passed reports whether the test recorded no failed assertions.
func (r Result) Passed() bool {
	return r.Failures == 0
}

// RunSummary aggregates every result of a single run
type RunSummary struct {
	Total     int
	Failed    int
	StartedAt time.Time
	Duration  time.Duration
	Results   []Result // In registration order
}

// Add accumulates a test result into the summary.
func (s *RunSummary) Add(r Result) {
	s.Total++
	if !r.Passed() {
		s.Failed++
	}
	s.Results = append(s.Results, r)
}

// Passed returns the number of tests that recorded no failures.
func (s RunSummary) Passed() int {
	return s.Total - s.Failed
}

// Success reports whether the run should exit with status 0.
func (s RunSummary) Success() bool {
	return s.Failed == 0
}

// Seconds returns the run duration rounded to whole seconds.
func (s RunSummary) Seconds() int64 {
	return int64(s.Duration.Round(time.Second) / time.Second)
}
