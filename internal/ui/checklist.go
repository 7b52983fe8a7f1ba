package ui

import (
	"fmt"
	"io"
)

// Checklist reports sequential diagnostic checks and tallies the outcome.
type Checklist struct {
	out    io.Writer
	passed int
	failed int
}

// NewChecklist creates a checklist writing to out.
func NewChecklist(out io.Writer) *Checklist {
	return &Checklist{out: out}
}

// Pass records a successful check.
func (c *Checklist) Pass(format string, args ...any) {
	c.passed++
	_, _ = fmt.Fprintf(c.out, "ok    "+format+"\n", args...)
}

// Fail records a failed check.
func (c *Checklist) Fail(format string, args ...any) {
	c.failed++
	_, _ = fmt.Fprintf(c.out, "FAIL  "+format+"\n", args...)
}

// Info prints a message that is not a check outcome.
func (c *Checklist) Info(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, "      "+format+"\n", args...)
}

// OK reports whether no check failed.
func (c *Checklist) OK() bool {
	return c.failed == 0
}

// Summary prints the final tally.
func (c *Checklist) Summary() {
	if c.OK() {
		_, _ = fmt.Fprintf(c.out, "\n%d checks passed.\n", c.passed)
		return
	}
	_, _ = fmt.Fprintf(c.out, "\n%d passed, %d failed. See above for details.\n", c.passed, c.failed)
}
