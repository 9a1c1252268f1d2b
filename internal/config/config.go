package config

import (
	"errors"
	"time"
)

// BypassConfig holds all configuration for a bypass run.
// The candidate lists are tried in order; earlier entries win.
type BypassConfig struct {
	TargetURL    string
	Parameter    string
	ContextProbe string
	Tag          string

	Events           []string
	Object           string
	Property         string
	MutationGlobals  []string
	ObjectGlobals    []string
	SemanticRewrites map[string][]string

	CallbackScheme string
	Callback       string

	Delay        int // milliseconds between requests
	OutputFormat string
	OutputFile   string
	Verbose      bool
	Silent       bool
}

// ScanResult contains the outcome of a single run against one target
type ScanResult struct {
	RunID         string    `json:"run_id"`
	Engine        string    `json:"engine"`
	TargetURL     string    `json:"target_url"`
	Parameter     string    `json:"parameter"`
	ScanStartTime time.Time `json:"scan_start_time"`
	ScanEndTime   time.Time `json:"scan_end_time"`
	ScanDuration  string    `json:"scan_duration"`
	Requests      int       `json:"requests"`

	Context     string `json:"context,omitempty"`
	WAFDetected string `json:"waf_detected,omitempty"`

	EventHandler     string `json:"event_handler,omitempty"`
	ObjectAccessor   string `json:"object_accessor,omitempty"`
	PropertyAccessor string `json:"property_accessor,omitempty"`

	Vulnerable bool   `json:"vulnerable"`
	Payload    string `json:"payload,omitempty"`
	PayloadURL string `json:"payload_url,omitempty"`

	FlagFound bool   `json:"flag_found"`
	Flag      string `json:"flag,omitempty"`

	AbortedPhase string `json:"aborted_phase,omitempty"`
	AbortReason  string `json:"abort_reason,omitempty"`

	ErrorCount int      `json:"error_count"`
	Errors     []string `json:"errors,omitempty"`
}

// DefaultConfig returns a default bypass configuration
func DefaultConfig() *BypassConfig {
	return &BypassConfig{
		Parameter:       "payload",
		ContextProbe:    "flare<>",
		Tag:             "flare",
		Events:          []string{"onmouseover", "onload", "onerror", "onclick", "onfocus"},
		Object:          "document",
		Property:        "cookie",
		MutationGlobals: []string{"self", "top", "this", "window", "parent"},
		ObjectGlobals:   []string{"self", "window", "top", "this"},
		SemanticRewrites: map[string][]string{
			"document": {"this['owner'+'Doc'+'ument']"},
		},
		CallbackScheme: "http",
		Callback:       "127.0.0.1:1337/?c=",
		OutputFormat:   "json",
	}
}

// Validate reports the first missing mandatory setting
func (c *BypassConfig) Validate() error {
	switch {
	case c.Parameter == "":
		return errors.New("query parameter name is empty")
	case c.ContextProbe == "":
		return errors.New("context probe is empty")
	case c.Tag == "":
		return errors.New("tag name is empty")
	case len(c.Events) == 0:
		return errors.New("event handler list is empty")
	case c.Object == "":
		return errors.New("object identifier is empty")
	case c.Property == "":
		return errors.New("property name is empty")
	case c.Delay < 0:
		return errors.New("delay must not be negative")
	}
	return nil
}
