// Package scanner - Reflection oracle
package scanner

import (
	"context"
	"strings"
	"time"

	"github.com/Serdar715/flareload/internal/transport"
	"golang.org/x/time/rate"
)

// Oracle submits candidates to the target and answers whether a marker came back
// verbatim. Every response is also scanned for the flag marker.
type Oracle struct {
	client   HTTPClient
	state    *BypassState
	limiter  *rate.Limiter
	reporter ProgressReporter
	requests int
}

// OracleOption configures an Oracle
type OracleOption func(*Oracle)

// WithDelay spaces consecutive requests at least d apart
func WithDelay(d time.Duration) OracleOption {
	return func(o *Oracle) {
		if d > 0 {
			o.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithOracleReporter sets where request traces and flag discoveries go
func WithOracleReporter(r ProgressReporter) OracleOption {
	return func(o *Oracle) {
		o.reporter = r
	}
}

// NewOracle creates an oracle that records flag discoveries into state
func NewOracle(client HTTPClient, state *BypassState, opts ...OracleOption) *Oracle {
	o := &Oracle{
		client:   client,
		state:    state,
		reporter: discardReporter(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Fetch issues one GET and returns the parsed response. Errors are limited to
// malformed URLs and a canceled context; cancellation is checked before every request.
func (o *Oracle) Fetch(ctx context.Context, rawURL string) (*transport.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if o.limiter != nil {
		if err := o.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	o.reporter.Request(rawURL)
	resp, err := o.client.Get(rawURL)
	if err != nil {
		return nil, err
	}
	o.requests++

	o.scanFlag(resp.Body)
	return resp, nil
}

// Probe reports whether marker occurs verbatim in the response body
func (o *Oracle) Probe(ctx context.Context, rawURL, marker string) (bool, error) {
	resp, err := o.Fetch(ctx, rawURL)
	if err != nil {
		return false, err
	}
	return strings.Contains(resp.Body, marker), nil
}

// Requests returns the number of requests sent so far
func (o *Oracle) Requests() int {
	return o.requests
}

func (o *Oracle) scanFlag(body string) {
	if o.state.FlagFound() {
		return
	}
	flag, ok := ExtractFlag(body)
	if !ok {
		return
	}
	if o.state.recordFlag(flag) {
		o.reporter.Flag(flag)
	}
}

// ExtractFlag returns the first Flare{...} token in body, delimiters included.
// The token ends at the first '}' after the opening marker.
func ExtractFlag(body string) (string, bool) {
	start := strings.Index(body, FlagPrefix)
	if start == -1 {
		return "", false
	}
	end := strings.Index(body[start:], FlagSuffix)
	if end == -1 {
		return "", false
	}
	return body[start : start+end+len(FlagSuffix)], true
}
