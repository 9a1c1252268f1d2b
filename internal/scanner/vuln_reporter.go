// Package scanner - Progress reporting abstraction
package scanner

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ConsoleReporter prints colored progress lines to the terminal
type ConsoleReporter struct {
	out     io.Writer
	verbose bool
}

// NewConsoleReporter creates a new console-based reporter.
// Verbose mode also traces every request URL.
func NewConsoleReporter(verbose bool) *ConsoleReporter {
	return &ConsoleReporter{
		out:     color.Output,
		verbose: verbose,
	}
}

// Phase announces a phase change in verbose mode
func (r *ConsoleReporter) Phase(phase Phase) {
	if r.verbose {
		color.New(color.FgHiBlack).Fprintf(r.out, "  -- %s\n", phase)
	}
}

// Info prints a neutral progress line
func (r *ConsoleReporter) Info(format string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(r.out, "    [*] "+format+"\n", args...)
}

// Success prints a candidate that survived the filter
func (r *ConsoleReporter) Success(format string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(r.out, "    [+] "+format+"\n", args...)
}

// Blocked prints a candidate the filter removed
func (r *ConsoleReporter) Blocked(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(r.out, "    [-] "+format+"\n", args...)
}

// Failure prints a phase that gave up
func (r *ConsoleReporter) Failure(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(r.out, "    [-] "+format+"\n", args...)
}

// Request traces the request URL in verbose mode
func (r *ConsoleReporter) Request(rawURL string) {
	if r.verbose {
		color.New(color.FgWhite).Fprintf(r.out, "      GET %s\n", truncateString(rawURL, 120))
	}
}

// TransportError prints a socket failure to stderr
func (r *ConsoleReporter) TransportError(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "    [!] Transport error: %v\n", err)
}

// Flag prints the flag marker found in a response
func (r *ConsoleReporter) Flag(flag string) {
	color.New(color.FgRed, color.Bold).Fprintf(r.out, "    [!] FLAG DISCOVERED IN BODY (XSS Executed): %s\n", flag)
}

// Payload prints the assembled payload
func (r *ConsoleReporter) Payload(payload string) {
	color.New(color.FgRed, color.Bold).Fprintln(r.out, "    [!] VULNERABILITY CONFIRMED: XSS")
	fmt.Fprintf(r.out, "    [!] Generated Payload: %s\n", color.CyanString(payload))
}

// SilentReporter only prints the flag and the final payload, uncolored
type SilentReporter struct {
	out io.Writer
}

// NewSilentReporter creates a reporter that suppresses progress output
func NewSilentReporter() *SilentReporter {
	return &SilentReporter{out: os.Stdout}
}

func discardReporter() *SilentReporter {
	return &SilentReporter{out: io.Discard}
}

// Phase is a no-op
func (r *SilentReporter) Phase(Phase) {}

// Info is a no-op
func (r *SilentReporter) Info(string, ...interface{}) {}

// Success is a no-op
func (r *SilentReporter) Success(string, ...interface{}) {}

// Blocked is a no-op
func (r *SilentReporter) Blocked(string, ...interface{}) {}

// Failure is a no-op
func (r *SilentReporter) Failure(string, ...interface{}) {}

// Request is a no-op
func (r *SilentReporter) Request(string) {}

// TransportError is a no-op
func (r *SilentReporter) TransportError(error) {}

// Flag prints the flag on its own line
func (r *SilentReporter) Flag(flag string) {
	fmt.Fprintln(r.out, flag)
}

// Payload prints the payload on its own line
func (r *SilentReporter) Payload(payload string) {
	fmt.Fprintln(r.out, payload)
}
