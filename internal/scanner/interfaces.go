// Package scanner - Interface definitions for the bypass engine components
package scanner

import (
	"context"

	"github.com/Serdar715/flareload/internal/config"
	"github.com/Serdar715/flareload/internal/transport"
)

// HTTPClient defines the interface for HTTP operations.
// Transport failures are expected to come back as a zero-status Response, not an error.
type HTTPClient interface {
	Get(rawURL string) (*transport.Response, error)
}

// Engine is the common interface for vulnerability engines sharing the transport
type Engine interface {
	// Name returns the short engine identifier (e.g. "xss")
	Name() string

	// Run probes a single target URL. A *PhaseError means the run ended early but
	// the returned result is still valid.
	Run(ctx context.Context, targetURL string) (*config.ScanResult, error)
}

// ProgressReporter receives the human-readable progress of a run
type ProgressReporter interface {
	Phase(phase Phase)
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Blocked(format string, args ...interface{})
	Failure(format string, args ...interface{})

	// Request is called before every request with the full URL
	Request(rawURL string)
	TransportError(err error)

	Flag(flag string)
	Payload(payload string)
}
