package domain

import "fmt"

// Failure describes a single assertion that evaluated to false
type Failure struct {
	TestName   string // Enclosing test case
	File       string // Base name of the file holding the assertion
	Line       int    // Line of the assertion call
	Expression string // Literal text of the asserted condition
	Message    string // Optional formatted message, may be empty
}

// Location returns "file:line" for the failing assertion.
func (f Failure) Location() string {
	if f.File == "" {
		return "?"
	}
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}
