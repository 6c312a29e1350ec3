package assert

import (
	"runtime"
	"testing"

	"ctest/internal/domain"

	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	failures []domain.Failure
}

func (r *recorder) AssertionFailed(f domain.Failure) {
	r.failures = append(r.failures, f)
}

func currentLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func TestCheck(t *testing.T) {
	t.Run("true condition has no side effect", func(t *testing.T) {
		r := &recorder{}
		if !Check(r, true, domain.Failure{Expression: "1 == 1"}) {
			t.Error("expected true")
		}
		if len(r.failures) != 0 {
			t.Errorf("expected no diagnostics, got %d", len(r.failures))
		}
	})

	t.Run("false condition reports", func(t *testing.T) {
		r := &recorder{}
		f := domain.Failure{TestName: "math", File: "a.go", Line: 3, Expression: "1 == 2", Message: "nope"}
		if Check(r, false, f) {
			t.Error("expected false")
		}
		if diff := cmp.Diff([]domain.Failure{f}, r.failures); diff != "" {
			t.Errorf("unexpected diagnostics (-want +got):\n%s", diff)
		}
	})

	t.Run("nil reporter", func(t *testing.T) {
		if Check(nil, false, domain.Failure{}) {
			t.Error("expected false")
		}
	})
}

func TestC_CountsEveryFailure(t *testing.T) {
	r := &recorder{}
	c := New("three", r)

	c.Assert(1 == 2, "1 == 2")
	c.Assert(true, "true")
	c.Assertf(false, "false", "second %d", 2)
	Equal(c, 1, 3)

	if c.Failures() != 3 {
		t.Errorf("expected 3 failures, got %d", c.Failures())
	}
	if len(r.failures) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(r.failures))
	}
	if r.failures[1].Message != "second 2" {
		t.Errorf("expected formatted message, got %q", r.failures[1].Message)
	}
	for _, f := range r.failures {
		if f.TestName != "three" {
			t.Errorf("expected test name three, got %q", f.TestName)
		}
	}
}

func TestC_NoAssertions(t *testing.T) {
	c := New("empty", &recorder{})
	if c.Failures() != 0 {
		t.Errorf("expected 0 failures, got %d", c.Failures())
	}
	if c.Name() != "empty" {
		t.Errorf("unexpected name %q", c.Name())
	}
}

func TestC_Location(t *testing.T) {
	r := &recorder{}
	c := New("loc", r)

	line := currentLine() + 1
	c.Assert(false, "false")
	wantEq := currentLine() + 1
	Equal(c, "a", "b")
	wantStr := currentLine() + 1
	StringEqualf(c, "a", "b", "msg")

	want := []domain.Failure{
		{TestName: "loc", File: "assert_test.go", Line: line, Expression: "false"},
		{TestName: "loc", File: "assert_test.go", Line: wantEq, Expression: `"a" == "b"`},
		{TestName: "loc", File: "assert_test.go", Line: wantStr, Expression: `strings.Compare("a", "b") == 0`, Message: "msg"},
	}
	if diff := cmp.Diff(want, r.failures); diff != "" {
		t.Errorf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

func TestWrappersMatchBaseAssertion(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{name: "equal", a: "x", b: "x"},
		{name: "different", a: "x", b: "y"},
		{name: "empty", a: "", b: ""},
		{name: "prefix", a: "ab", b: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.name, &recorder{})
			base := c.Assert(tt.a == tt.b, "a == b")
			if got := Equal(c, tt.a, tt.b); got != base {
				t.Errorf("Equal returned %v, base returned %v", got, base)
			}
			if got := Equalf(c, tt.a, tt.b, "m %s", "x"); got != base {
				t.Errorf("Equalf returned %v, base returned %v", got, base)
			}
			if got := StringEqual(c, tt.a, tt.b); got != base {
				t.Errorf("StringEqual returned %v, base returned %v", got, base)
			}
			if got := StringEqualf(c, tt.a, tt.b, "m"); got != base {
				t.Errorf("StringEqualf returned %v, base returned %v", got, base)
			}
			want := 0
			if !base {
				want = 5
			}
			if c.Failures() != want {
				t.Errorf("expected %d failures, got %d", want, c.Failures())
			}
		})
	}
}

func TestC_MessageWithoutArgs(t *testing.T) {
	r := &recorder{}
	c := New("pct", r)
	c.Assertf(false, "false", "100% literal")
	if r.failures[0].Message != "100% literal" {
		t.Errorf("message without args must be kept verbatim, got %q", r.failures[0].Message)
	}
}

func TestC_Record(t *testing.T) {
	r := &recorder{}
	c := New("boom", r)
	c.Record("suite.go", 10, "panic", "kaboom")
	if c.Failures() != 1 {
		t.Errorf("expected 1 failure, got %d", c.Failures())
	}
	want := domain.Failure{TestName: "boom", File: "suite.go", Line: 10, Expression: "panic", Message: "kaboom"}
	if diff := cmp.Diff(want, r.failures[0]); diff != "" {
		t.Errorf("unexpected diagnostic (-want +got):\n%s", diff)
	}
}
