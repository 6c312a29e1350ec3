// Package assert evaluates test conditions and reports the ones that fail.
package assert

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"ctest/internal/domain"
)

// Reporter receives a diagnostic for every failed assertion
type Reporter interface {
	AssertionFailed(f domain.Failure)
}

// Check is the base evaluator. It reports f when ok is false and returns ok.
// It keeps no state of its own.
func Check(r Reporter, ok bool, f domain.Failure) bool {
	if ok {
		return true
	}
	if r != nil {
		r.AssertionFailed(f)
	}
	return false
}

// C is the assertion context handed to a single test body. It counts that
// test's failed assertions and nothing else.
type C struct {
	name     string
	reporter Reporter
	failures int
}

// New creates a context for the named test.
func New(name string, r Reporter) *C {
	return &C{name: name, reporter: r}
}

// Name returns the enclosing test name.
func (c *C) Name() string {
	return c.name
}

// Failures returns the number of assertions that failed so far.
func (c *C) Failures() int {
	return c.failures
}

// Assert records a failure when ok is false. expr is the text of the
// condition as written by the caller.
func (c *C) Assert(ok bool, expr string) bool {
	return c.check(ok, expr, "")
}

// Assertf is Assert with a formatted message.
func (c *C) Assertf(ok bool, expr, msg string, args ...any) bool {
	return c.check(ok, expr, format(msg, args))
}

// Record counts a failure at an explicit location. It is used for failures
// that have no call site inside the body, such as a recovered panic.
func (c *C) Record(file string, line int, expr, msg string) {
	Check(c.reporter, false, domain.Failure{
		TestName:   c.name,
		File:       file,
		Line:       line,
		Expression: expr,
		Message:    msg,
	})
	c.failures++
}

// check must be called directly by the exported assertion helpers so the
// caller frame lands on the test body.
func (c *C) check(ok bool, expr, msg string) bool {
	f := domain.Failure{TestName: c.name, Expression: expr, Message: msg}
	if !ok {
		f.File, f.Line = caller(3)
	}
	if !Check(c.reporter, ok, f) {
		c.failures++
		return false
	}
	return true
}

// Equal asserts a == b.
func Equal[T comparable](c *C, a, b T) bool {
	return c.check(a == b, fmt.Sprintf("%#v == %#v", a, b), "")
}

// Equalf asserts a == b with a formatted message.
func Equalf[T comparable](c *C, a, b T, msg string, args ...any) bool {
	return c.check(a == b, fmt.Sprintf("%#v == %#v", a, b), format(msg, args))
}

// StringEqual asserts that two strings compare equal.
func StringEqual(c *C, a, b string) bool {
	return c.check(strings.Compare(a, b) == 0, fmt.Sprintf("strings.Compare(%q, %q) == 0", a, b), "")
}

// StringEqualf is StringEqual with a formatted message.
func StringEqualf(c *C, a, b string, msg string, args ...any) bool {
	return c.check(strings.Compare(a, b) == 0, fmt.Sprintf("strings.Compare(%q, %q) == 0", a, b), format(msg, args))
}

func format(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0
	}
	return filepath.Base(file), line
}
