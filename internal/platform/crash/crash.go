// Package crash turns panics inside scene code into readable reports.
// A report names the function that panicked, its source location, the
// reason and the full goroutine stack.
package crash

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/log"
)

// Report describes a recovered panic.
type Report struct {
	Function string
	File     string
	Line     int
	Reason   string
	Stack    []byte
}

// Format renders a report in the layout printed on crash.
func Format(function, file string, line int, reason string, stack []byte) string {
	return fmt.Sprintf(
		"Error occurs while invoke function:\n%s\nat %s:%d\nReason:\n%s\nStack trace:\n%s",
		function, file, line, reason, strings.TrimRight(string(stack), "\n"),
	)
}

// Error returns the reason, prefixed with the panicking function.
func (r *Report) Error() string {
	return fmt.Sprintf("panic in %s: %s", r.Function, r.Reason)
}

// String returns the full report.
func (r *Report) String() string {
	return Format(r.Function, r.File, r.Line, r.Reason, r.Stack)
}

// Print writes the full report to w.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, r.String())
}

// NewReport builds a report for a value returned by recover().
// It must be called from the deferred function that recovered.
func NewReport(v any) *Report {
	r := &Report{
		Function: "unknown",
		File:     "unknown",
		Reason:   reason(v),
		Stack:    debug.Stack(),
	}

	pcs := make([]uintptr, 32)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	// The frame right after runtime.gopanic is the one that panicked.
	panicking := false
	for {
		frame, more := frames.Next()
		if panicking && !strings.HasPrefix(frame.Function, "runtime.") {
			r.Function = frame.Function
			r.File = frame.File
			r.Line = frame.Line
			break
		}
		if frame.Function == "runtime.gopanic" {
			panicking = true
		}
		if !more {
			break
		}
	}

	return r
}

func reason(v any) string {
	switch e := v.(type) {
	case error:
		return e.Error()
	case string:
		return e
	default:
		return fmt.Sprint(v)
	}
}

// Guard runs fn and returns a *Report if it panics.
func Guard(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = NewReport(v)
		}
	}()

	fn()
	return nil
}

// AsReport extracts a *Report from err.
func AsReport(err error) (*Report, bool) {
	var r *Report
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// Handle is deferred at the top of main. It logs an unrecovered panic
// with the default logger, prints the report to stderr and exits with
// status 2.
func Handle() {
	v := recover()
	if v == nil {
		return
	}

	r := NewReport(v)
	log.Error("crashed", "function", r.Function, "at", fmt.Sprintf("%s:%d", r.File, r.Line), "reason", r.Reason)
	_ = os.Stdout.Sync()
	r.Print(os.Stderr)
	os.Exit(2)
}
