package main

import (
	"errors"
	"strings"
	"time"

	"ctest/internal/assert"
	"ctest/internal/domain"
	"ctest/internal/registry"
	"ctest/internal/ui"
)

// suite checks the harness with itself.
var suite = registry.NewBuilder().
	Func(testWildcardFilter).
	Func(testFilterKeepsOrder).
	Func(testDurationRounding).
	Func(testTimestampLayout).
	Func(testSummaryTallies).
	Func(testFailureCounting).
	Func(testDuplicateNames).
	MustBuild()

func testWildcardFilter(c *assert.C) {
	c.Assert(registry.Match("parse_config", "parse*"), `Match("parse_config", "parse*")`)
	c.Assert(registry.Match("load_config_file", "*config*file*"), `Match("load_config_file", "*config*file*")`)
	c.Assert(registry.Match("load_file", "file"), `Match("load_file", "file")`)
	c.Assert(!registry.Match("load_file", "*parse*"), `!Match("load_file", "*parse*")`)
	c.Assert(registry.Match("anything", ""), `Match("anything", "")`)
}

func testFilterKeepsOrder(c *assert.C) {
	got := registry.FilterByName([]string{"sub", "add", "subtract"}, "sub*")
	assert.Equalf(c, len(got), 2, "got %v", got)
	assert.StringEqual(c, strings.Join(got, ","), "sub,subtract")
}

func testDurationRounding(c *assert.C) {
	assert.StringEqual(c, ui.FormatDuration(0), "0s")
	assert.StringEqual(c, ui.FormatDuration(499*time.Millisecond), "0s")
	assert.StringEqual(c, ui.FormatDuration(2500*time.Millisecond), "3s")
}

func testTimestampLayout(c *assert.C) {
	ts := time.Date(2025, 3, 11, 7, 4, 9, 0, time.Local)
	assert.StringEqualf(c, ui.FormatTimestamp(ts), "07:04:09", "layout %s", ui.TimestampLayout)
}

func testSummaryTallies(c *assert.C) {
	var s domain.RunSummary
	s.Add(domain.Result{Name: "a"})
	s.Add(domain.Result{Name: "b", Failures: 1})
	s.Add(domain.Result{Name: "c", Failures: 2})
	assert.Equal(c, s.Total, 3)
	assert.Equal(c, s.Failed, 2)
	assert.Equal(c, s.Passed(), 1)
	c.Assert(!s.Success(), "!s.Success()")
}

// silent discards diagnostics of the nested cases below
type silent struct{}

func (silent) AssertionFailed(domain.Failure) {}

func testFailureCounting(c *assert.C) {
	three := registry.Case{Name: "three", Body: func(inner *assert.C) {
		inner.Assert(false, "false")
		inner.Assert(false, "false")
		inner.Assert(false, "false")
	}}
	none := registry.Case{Name: "none", Body: func(*assert.C) {}}
	assert.Equal(c, three.Run(silent{}), 3)
	assert.Equal(c, none.Run(silent{}), 0)
}

func testDuplicateNames(c *assert.C) {
	noop := func(*assert.C) {}
	_, err := registry.NewBuilder().Add("x", noop).Add("x", noop).Build()
	c.Assertf(errors.Is(err, registry.ErrDuplicateName), "errors.Is(err, registry.ErrDuplicateName)", "got %v", err)
}
