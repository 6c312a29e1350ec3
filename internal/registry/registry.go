// Package registry holds the ordered, immutable list of test cases a run
// executes.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"ctest/internal/assert"
)

var (
	ErrEmptyName     = errors.New("test name is empty")
	ErrDuplicateName = errors.New("duplicate test name")
	ErrNilBody       = errors.New("test body is nil")
	ErrAnonymous     = errors.New("cannot derive a test name from an anonymous function")
	ErrNoMatch       = errors.New("no tests match filter")
)

// Body is the code of a test case. Every assertion goes through c.
type Body func(c *assert.C)

// Case is a named test procedure
type Case struct {
	Name string
	Body Body
}

// Run invokes the body with a fresh assertion context and returns the number
// of assertions that failed. A panic in the body is counted as one failure.
func (tc Case) Run(r assert.Reporter) (failures int) {
	c := assert.New(tc.Name, r)
	defer func() {
		if v := recover(); v != nil {
			file, line := definedAt(tc.Body)
			c.Record(file, line, "panic", fmt.Sprint(v))
		}
		failures = c.Failures()
	}()
	tc.Body(c)
	return c.Failures()
}

// Registry is an ordered list of test cases. It cannot be changed once built.
type Registry struct {
	cases []Case
}

// Len returns the number of registered cases.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.cases)
}

// Cases returns a copy of the registered cases in declaration order.
func (r *Registry) Cases() []Case {
	if r == nil {
		return nil
	}
	out := make([]Case, len(r.cases))
	copy(out, r.cases)
	return out
}

// Names returns the registered names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.Len())
	for _, c := range r.Cases() {
		names = append(names, c.Name)
	}
	return names
}

// Select returns a registry holding only the cases whose names match
// pattern, in their original order. See Match for the pattern syntax.
func (r *Registry) Select(pattern string) (*Registry, error) {
	if pattern == "" || r.Len() == 0 {
		return r, nil
	}
	selected := &Registry{}
	for _, c := range r.cases {
		if Match(c.Name, pattern) {
			selected.cases = append(selected.cases, c)
		}
	}
	if len(selected.cases) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoMatch, pattern)
	}
	return selected, nil
}

// Builder assembles a Registry. Errors are collected and returned by Build.
type Builder struct {
	cases []Case
	seen  map[string]bool
	errs  []error
}

// NewBuilder creates an empty Builder
func NewBuilder() *Builder {
	return &Builder{seen: make(map[string]bool)}
}

// Add registers body under name.
func (b *Builder) Add(name string, body Body) *Builder {
	switch {
	case name == "":
		b.errs = append(b.errs, ErrEmptyName)
	case body == nil:
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrNilBody, name))
	case b.seen[name]:
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrDuplicateName, name))
	default:
		b.seen[name] = true
		b.cases = append(b.cases, Case{Name: name, Body: body})
	}
	return b
}

// Func registers body under a name derived from its identifier, so
// testParseConfig is registered as "parseConfig".
func (b *Builder) Func(body Body) *Builder {
	if body == nil {
		b.errs = append(b.errs, ErrNilBody)
		return b
	}
	name, err := FuncName(body)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	return b.Add(name, body)
}

// Build returns the registry, or every configuration error found.
func (b *Builder) Build() (*Registry, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("invalid test registry: %w", errors.Join(b.errs...))
	}
	cases := make([]Case, len(b.cases))
	copy(cases, b.cases)
	return &Registry{cases: cases}, nil
}

// MustBuild is like Build but panics on error. It is meant for registries
// declared at package level.
func (b *Builder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

// FuncName derives a test name from a function identifier. A leading
// "test" or "Test" and a following underscore are dropped, and the first
// letter is lowered.
func FuncName(body Body) (string, error) {
	fn := runtime.FuncForPC(reflect.ValueOf(body).Pointer())
	if fn == nil {
		return "", ErrAnonymous
	}
	return nameFromSymbol(fn.Name())
}

func nameFromSymbol(symbol string) (string, error) {
	name := strings.TrimSuffix(symbol, "-fm")
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || isClosure(name) {
		return "", fmt.Errorf("%w: %s", ErrAnonymous, symbol)
	}
	for _, prefix := range []string{"test", "Test"} {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok || rest == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(rest)
		if r == '_' || unicode.IsUpper(r) {
			name = strings.TrimLeft(rest, "_")
		}
		break
	}
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyName, symbol)
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:], nil
}

// isClosure matches the compiler's names for function literals, such as
// func1 or the trailing 2 of func1.2.
func isClosure(name string) bool {
	digits := strings.TrimPrefix(name, "func")
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func definedAt(body Body) (string, int) {
	fn := runtime.FuncForPC(reflect.ValueOf(body).Pointer())
	if fn == nil {
		return "", 0
	}
	file, line := fn.FileLine(fn.Entry())
	if i := strings.LastIndexAny(file, `/\`); i >= 0 {
		file = file[i+1:]
	}
	return file, line
}
