package scanner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Serdar715/flareload/internal/config"
	"github.com/Serdar715/flareload/internal/payloads"
	"github.com/Serdar715/flareload/internal/transport"
	"github.com/Serdar715/flareload/internal/waf"
	"github.com/google/uuid"
)

// BypassEngine probes one target for reflected XSS and adapts a cookie-stealing
// payload around whatever the target filters
type BypassEngine struct {
	config      *config.BypassConfig
	client      HTTPClient
	reporter    ProgressReporter
	encoder     *payloads.Encoder
	generator   *payloads.Generator
	mutator     *payloads.Mutator
	wafDetector *waf.Detector
}

// EngineOption configures a BypassEngine
type EngineOption func(*BypassEngine)

// WithHTTPClient replaces the raw transport. The caller is then responsible for
// reporting transport failures.
func WithHTTPClient(c HTTPClient) EngineOption {
	return func(e *BypassEngine) {
		e.client = c
	}
}

// WithReporter sets the progress reporter
func WithReporter(r ProgressReporter) EngineOption {
	return func(e *BypassEngine) {
		e.reporter = r
	}
}

// NewBypassEngine creates a new engine instance
func NewBypassEngine(cfg *config.BypassConfig, opts ...EngineOption) *BypassEngine {
	e := &BypassEngine{
		config:      cfg,
		reporter:    discardReporter(),
		encoder:     payloads.NewEncoder(),
		generator:   payloads.NewGenerator(cfg.Tag),
		mutator:     payloads.NewMutator(cfg.ObjectGlobals),
		wafDetector: waf.NewDetector(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the engine identifier
func (e *BypassEngine) Name() string {
	return EngineNameXSS
}

// Run executes the phases in order against targetURL. Every run starts from fresh
// state, so consecutive runs never share a flag.
func (e *BypassEngine) Run(ctx context.Context, targetURL string) (*config.ScanResult, error) {
	r, err := e.newRun(targetURL)
	if err != nil {
		return nil, err
	}
	defer r.finish()

	steps := []struct {
		phase Phase
		fn    func(context.Context) error
	}{
		{PhaseContextProbe, r.probeContext},
		{PhaseEventHandler, r.resolveEventHandler},
		{PhaseObjectAccessor, r.resolveObjectAccessor},
		{PhasePropertyAccessor, r.resolvePropertyAccessor},
		{PhasePayloadAssembly, r.assemblePayload},
		{PhaseDelivery, r.deliver},
	}

	for _, step := range steps {
		r.state.advance(step.phase)
		e.reporter.Phase(step.phase)

		if err := step.fn(ctx); err != nil {
			var perr *PhaseError
			if errors.As(err, &perr) {
				r.result.AbortedPhase = perr.Phase.String()
				r.result.AbortReason = perr.Cause.Error()
			}
			return r.result, err
		}
	}

	r.state.advance(PhaseTerminal)
	return r.result, nil
}

// run holds everything that lives for exactly one Run call
type run struct {
	*BypassEngine
	target string
	base   string
	state  *BypassState
	oracle *Oracle
	errs   *ErrorAggregator
	result *config.ScanResult
}

func (e *BypassEngine) newRun(targetURL string) (*run, error) {
	base := withPath(targetURL)
	if _, err := transport.ParseURL(base); err != nil {
		return nil, err
	}

	r := &run{
		BypassEngine: e,
		target:       targetURL,
		base:         base,
		state:        newBypassState(e.config),
		errs:         NewErrorAggregator(),
		result: &config.ScanResult{
			RunID:         uuid.NewString(),
			Engine:        e.Name(),
			TargetURL:     targetURL,
			Parameter:     e.config.Parameter,
			ScanStartTime: time.Now(),
		},
	}

	client := e.client
	if client == nil {
		c := transport.NewClient()
		c.OnError = func(err *transport.Error) {
			r.errs.AddWithContext("transport", err)
			e.reporter.TransportError(err)
		}
		client = c
	}

	r.oracle = NewOracle(client, r.state,
		WithDelay(time.Duration(e.config.Delay)*time.Millisecond),
		WithOracleReporter(e.reporter),
	)
	return r, nil
}

func (r *run) finish() {
	r.result.ScanEndTime = time.Now()
	r.result.ScanDuration = r.result.ScanEndTime.Sub(r.result.ScanStartTime).String()
	r.result.Requests = r.oracle.Requests()

	r.result.EventHandler = r.state.EventHandlerExpr
	r.result.ObjectAccessor = r.state.ObjectAccessorExpr
	r.result.PropertyAccessor = r.state.PropertyAccessorExpr
	r.result.FlagFound = r.state.FlagFound()
	r.result.Flag = r.state.Flag()

	r.result.ErrorCount = r.errs.Count()
	r.result.Errors = r.errs.Strings()
}

// probeURL appends the encoded payload as the configured query parameter
func (r *run) probeURL(payload string) string {
	sep := "?"
	if strings.Contains(r.base, "?") {
		sep = "&"
	}
	return r.base + sep + r.config.Parameter + "=" + r.encoder.URLEncode(payload)
}

// withPath drops any #fragment and inserts "/" after the host when the URL has no
// path, so a query appended later stays out of the host:port segment
func withPath(target string) string {
	if idx := strings.Index(target, "#"); idx != -1 {
		target = target[:idx]
	}

	prefix, rest := "", target
	if idx := strings.Index(target, "://"); idx != -1 {
		prefix, rest = target[:idx+3], target[idx+3:]
	} else if strings.HasPrefix(target, "//") {
		prefix, rest = "//", target[2:]
	}

	slash := strings.Index(rest, "/")
	query := strings.Index(rest, "?")
	switch {
	case query != -1 && (slash == -1 || query < slash):
		return prefix + rest[:query] + "/" + rest[query:]
	case slash == -1:
		return prefix + rest + "/"
	}
	return target
}
