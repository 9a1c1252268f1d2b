package scanner

import (
	"github.com/Serdar715/flareload/internal/config"
	"github.com/Serdar715/flareload/internal/payloads"
)

// BypassState accumulates the findings of one run. Each expression starts as the
// canonical form and is replaced when its phase commits a working mutation.
type BypassState struct {
	Phase Phase

	EventHandlerExpr     string
	ObjectAccessorExpr   string
	PropertyAccessorExpr string

	flagFound bool
	flag      string
}

func newBypassState(cfg *config.BypassConfig) *BypassState {
	state := &BypassState{
		Phase:                PhaseContextProbe,
		ObjectAccessorExpr:   cfg.Object,
		PropertyAccessorExpr: payloads.PropertyBracket(cfg.Property),
	}
	if len(cfg.Events) > 0 {
		state.EventHandlerExpr = cfg.Events[0]
	}
	return state
}

// FlagFound reports whether a flag marker has been seen during this run
func (s *BypassState) FlagFound() bool {
	return s.flagFound
}

// Flag returns the first flag marker seen, if any
func (s *BypassState) Flag() string {
	return s.flag
}

// recordFlag stores the flag the first time it is called; later calls are no-ops.
// Returns true only for the call that stored it.
func (s *BypassState) recordFlag(flag string) bool {
	if s.flagFound {
		return false
	}
	s.flagFound = true
	s.flag = flag
	return true
}

// advance moves to phase p. Going backwards is ignored.
func (s *BypassState) advance(p Phase) {
	if p > s.Phase {
		s.Phase = p
	}
}
