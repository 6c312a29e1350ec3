package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"ctest/internal/domain"
)

// TimestampLayout is the layout of the start time in the run summary
const TimestampLayout = "15:04:05"

// ConsoleOptions configures a Console
type ConsoleOptions struct {
	NoColor  bool // Never emit colour codes
	Progress bool // Show a progress bar on the error stream when it is a terminal
}

// palette holds the colours of one output stream
type palette struct {
	text *color.Color
	name *color.Color
	fail *color.Color
	pass *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		text: color.New(color.FgWhite),
		name: color.New(color.FgWhite, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		pass: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.text, p.name, p.fail, p.pass} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Console prints run progress and the final summary. Summary lines go to
// out, per-test and per-assertion diagnostics go to errOut.
type Console struct {
	out      io.Writer
	errOut   io.Writer
	outColor palette
	errColor palette
	progress bool
	bar      *ProgressBar
	passed   int
	failed   int
}

// NewConsole creates a Console. Colours are used only for streams that are
// terminals.
func NewConsole(out, errOut io.Writer, opts ConsoleOptions) *Console {
	return &Console{
		out:      out,
		errOut:   errOut,
		outColor: newPalette(!opts.NoColor && IsTerminal(out)),
		errColor: newPalette(!opts.NoColor && IsTerminal(errOut)),
		progress: opts.Progress && IsTerminal(errOut),
	}
}

// RunStarted prints the number of tests about to run.
func (c *Console) RunStarted(total int) {
	fmt.Fprintf(c.out, "%s\n\n", c.outColor.text.Sprintf("INFO: Running a total of %d tests.", total))
	if c.progress {
		c.bar = NewProgressBar(total, c.errOut)
	}
}

// AssertionFailed prints the location, condition and message of a failed
// assertion.
func (c *Console) AssertionFailed(f domain.Failure) {
	c.clearBar()
	p := c.errColor
	fmt.Fprintf(c.errOut, "%s %s -> %s\n", p.fail.Sprint("[X]"), f.Location(), p.name.Sprint(f.TestName))
	fmt.Fprintf(c.errOut, "%s Assertion of '%s' failed\n", p.fail.Sprint("[>]"), f.Expression)
	if f.Message != "" {
		fmt.Fprintf(c.errOut, "%s %s\n", p.text.Sprint("[i]"), f.Message)
	}
}

// TestFinished prints whether a test passed or how many assertions it failed.
func (c *Console) TestFinished(r domain.Result) {
	c.clearBar()
	p := c.errColor
	if r.Passed() {
		c.passed++
		fmt.Fprintf(c.errOut, "%s Test %s%s\n", p.pass.Sprint("[+]"), p.name.Sprint(r.Name), p.text.Sprint(" passed."))
	} else {
		c.failed++
		fmt.Fprintf(c.errOut, "%s Test %s%s\n", p.fail.Sprint("[!]"), p.name.Sprint(r.Name),
			p.text.Sprintf(" failed %d assertions!", r.Failures))
	}
	if c.bar != nil {
		c.bar.Update(c.passed, c.failed)
	}
}

// RunFinished prints the failed/passed/total counts, start time and duration.
func (c *Console) RunFinished(s domain.RunSummary) {
	if c.bar != nil {
		c.bar.Finish()
		c.bar = nil
	}
	p := c.outColor
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "%s%s%s%s%s\n",
		p.text.Sprint("    Tests  "),
		p.fail.Sprintf("%d failed", s.Failed),
		p.text.Sprint(" | "),
		p.pass.Sprintf("%d passed", s.Passed()),
		p.text.Sprintf(" (%d)", s.Total),
	)
	fmt.Fprintf(c.out, "%s%s\n", p.text.Sprint(" Start at  "), FormatTimestamp(s.StartedAt))
	fmt.Fprintf(c.out, "%s%s\n", p.text.Sprint(" Duration  "), FormatDuration(s.Duration))
}

// NoTests prints the diagnostic for a run without registered tests.
func (c *Console) NoTests() {
	fmt.Fprintln(c.errOut, c.errColor.fail.Sprint("ERROR: No tests are defined!"))
}

// Error prints a fatal error the way the command line reports it.
func (c *Console) Error(err error) {
	fmt.Fprintf(c.errOut, "%s %v\n", c.errColor.fail.Sprint("Error:"), err)
}

func (c *Console) clearBar() {
	if c.bar != nil {
		c.bar.Clear()
	}
}

// FormatTimestamp renders t as HH:MM:SS in local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// FormatDuration renders d rounded to whole seconds, e.g. "3s".
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%ds", int64(d.Round(time.Second)/time.Second))
}
