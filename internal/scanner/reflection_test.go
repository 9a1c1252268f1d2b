package scanner

import (
	"context"
	"testing"
	"time"

	"github.com/Serdar715/flareload/internal/config"
	"github.com/Serdar715/flareload/internal/transport"
)

// fakeClient answers with canned bodies in order, repeating the last one
type fakeClient struct {
	bodies []string
	urls   []string
}

func (c *fakeClient) Get(rawURL string) (*transport.Response, error) {
	c.urls = append(c.urls, rawURL)
	body := ""
	if len(c.bodies) > 0 {
		idx := len(c.urls) - 1
		if idx >= len(c.bodies) {
			idx = len(c.bodies) - 1
		}
		body = c.bodies[idx]
	}
	return &transport.Response{StatusCode: 200, Headers: map[string]string{}, Body: body}, nil
}

func TestExtractFlag(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantFlag string
		wantOK   bool
	}{
		{name: "Flag in text", body: "hello Flare{abc_123} bye", wantFlag: "Flare{abc_123}", wantOK: true},
		{name: "First of two", body: "Flare{a}Flare{b}", wantFlag: "Flare{a}", wantOK: true},
		{name: "Brace before prefix", body: "} Flare{x}", wantFlag: "Flare{x}", wantOK: true},
		{name: "Empty flag", body: "Flare{}", wantFlag: "Flare{}", wantOK: true},
		{name: "Unterminated", body: "Flare{abc", wantFlag: "", wantOK: false},
		{name: "No flag", body: "<html></html>", wantFlag: "", wantOK: false},
		{name: "Case differs", body: "flare{abc}", wantFlag: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractFlag(tt.body)
			if got != tt.wantFlag || ok != tt.wantOK {
				t.Errorf("ExtractFlag() = (%v, %v), want (%v, %v)", got, ok, tt.wantFlag, tt.wantOK)
			}
		})
	}
}

func TestOracle_Probe(t *testing.T) {
	client := &fakeClient{bodies: []string{"<flare onload=1>", "<flare 1>"}}
	state := newBypassState(config.DefaultConfig())
	oracle := NewOracle(client, state)
	ctx := context.Background()

	ok, err := oracle.Probe(ctx, "http://t/?payload=a", "onload=")
	if err != nil || !ok {
		t.Fatalf("Probe() = (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = oracle.Probe(ctx, "http://t/?payload=b", "onload=")
	if err != nil || ok {
		t.Fatalf("Probe() = (%v, %v), want (false, nil)", ok, err)
	}

	if got := oracle.Requests(); got != 2 {
		t.Errorf("Requests() = %v, want 2", got)
	}
	if len(client.urls) != 2 || client.urls[1] != "http://t/?payload=b" {
		t.Errorf("client saw %v", client.urls)
	}
}

func TestOracle_FlagIsSticky(t *testing.T) {
	client := &fakeClient{bodies: []string{"nothing", "Flare{first}", "Flare{second}", "nothing"}}
	state := newBypassState(config.DefaultConfig())
	rec := &recordingReporter{}
	oracle := NewOracle(client, state, WithOracleReporter(rec))

	for i := 0; i < 4; i++ {
		if _, err := oracle.Probe(context.Background(), "http://t/", "x"); err != nil {
			t.Fatalf("Probe() error = %v", err)
		}
		if i == 0 && state.FlagFound() {
			t.Fatal("flag reported before any flag was served")
		}
	}

	if !state.FlagFound() {
		t.Fatal("FlagFound() = false, want true")
	}
	if got := state.Flag(); got != "Flare{first}" {
		t.Errorf("Flag() = %v, want Flare{first}", got)
	}
	if len(rec.flags) != 1 {
		t.Errorf("flag reported %d times, want 1", len(rec.flags))
	}
}

func TestOracle_CanceledContext(t *testing.T) {
	client := &fakeClient{bodies: []string{"x"}}
	oracle := NewOracle(client, newBypassState(config.DefaultConfig()), WithDelay(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := oracle.Probe(ctx, "http://t/", "x"); err == nil {
		t.Fatal("Probe() with canceled context returned nil error")
	}
	if len(client.urls) != 0 {
		t.Errorf("client called %d times, want 0", len(client.urls))
	}
}

func TestOracle_CanceledContextWithoutDelay(t *testing.T) {
	client := &fakeClient{bodies: []string{"x"}}
	oracle := NewOracle(client, newBypassState(config.DefaultConfig()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := oracle.Fetch(ctx, "http://t/"); err == nil {
		t.Fatal("Fetch() with canceled context returned nil error")
	}
	if len(client.urls) != 0 || oracle.Requests() != 0 {
		t.Errorf("client called %d times, want 0", len(client.urls))
	}
}
