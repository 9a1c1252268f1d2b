package scanner

import (
	"errors"
	"strings"
	"testing"
)

func TestPhaseError(t *testing.T) {
	err := newPhaseError(PhaseEventHandler, "http://target/", ErrPhaseExhausted)

	if !errors.Is(err, ErrPhaseExhausted) {
		t.Error("errors.Is(err, ErrPhaseExhausted) = false, want true")
	}
	if errors.Is(err, ErrContextUnavailable) {
		t.Error("errors.Is(err, ErrContextUnavailable) = true, want false")
	}
	if !strings.Contains(err.Error(), "EventHandlerResolution") {
		t.Errorf("Error() = %v, want phase name", err.Error())
	}
}

func TestErrorAggregator(t *testing.T) {
	agg := NewErrorAggregator()
	agg.Add(nil)
	agg.AddWithContext("transport", nil)

	if agg.Count() != 0 || agg.Errors() != nil || agg.Strings() != nil {
		t.Fatal("nil errors must not be collected")
	}

	base := errors.New("connection refused")
	agg.AddWithContext("transport", base)
	agg.Add(errors.New("other"))

	if got := agg.Count(); got != 2 {
		t.Errorf("Count() = %v, want 2", got)
	}
	if !errors.Is(agg.Errors()[0], base) {
		t.Error("context wrapping lost the wrapped error")
	}
	want := []string{"transport: connection refused", "other"}
	got := agg.Strings()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strings()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseContextProbe, "ContextProbe"},
		{PhaseObjectAccessor, "ObjectAccessorResolution"},
		{PhaseTerminal, "Terminal"},
		{Phase(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %v, want %v", int(tt.phase), got, tt.want)
		}
	}
}

func TestBypassState_Advance(t *testing.T) {
	state := &BypassState{}
	state.advance(PhaseObjectAccessor)
	state.advance(PhaseEventHandler)

	if state.Phase != PhaseObjectAccessor {
		t.Errorf("Phase = %v, want %v", state.Phase, PhaseObjectAccessor)
	}
	if !state.recordFlag("Flare{a}") || state.recordFlag("Flare{b}") {
		t.Error("recordFlag() must succeed exactly once")
	}
	if state.Flag() != "Flare{a}" {
		t.Errorf("Flag() = %v, want Flare{a}", state.Flag())
	}
}
