package scanner

import "testing"

func TestDetectContext(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		canary string
		want   string
	}{
		{name: "Plain text", body: "<p>results for flare</p>", canary: "flare", want: ContextHTML},
		{name: "Attribute value", body: `<input value="flare">`, canary: "flare", want: ContextAttribute},
		{name: "Script block", body: `<script>var q = "flare";</script>`, canary: "flare", want: ContextScript},
		{name: "Text after script", body: `<script>var a;</script><b>flare</b>`, canary: "flare", want: ContextHTML},
		{name: "Comment", body: "<!-- flare -->", canary: "flare", want: ContextComment},
		{name: "Not reflected", body: "<p>nothing here</p>", canary: "flare", want: ContextUnknown},
		{name: "Empty canary", body: "<p>flare</p>", canary: "", want: ContextUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectContext(tt.body, tt.canary); got != tt.want {
				t.Errorf("DetectContext() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProbeCanary(t *testing.T) {
	if got := probeCanary("flare<>"); got != "flare" {
		t.Errorf("probeCanary() = %v, want flare", got)
	}
}
