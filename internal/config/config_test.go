package config

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if cfg.Events[0] != "onmouseover" {
		t.Errorf("Events[0] = %v, want %v", cfg.Events[0], "onmouseover")
	}
	if got := cfg.SemanticRewrites["document"]; len(got) != 1 || got[0] != "this['owner'+'Doc'+'ument']" {
		t.Errorf("SemanticRewrites[document] = %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BypassConfig)
	}{
		{name: "No parameter", modify: func(c *BypassConfig) { c.Parameter = "" }},
		{name: "No probe", modify: func(c *BypassConfig) { c.ContextProbe = "" }},
		{name: "No tag", modify: func(c *BypassConfig) { c.Tag = "" }},
		{name: "No events", modify: func(c *BypassConfig) { c.Events = nil }},
		{name: "No object", modify: func(c *BypassConfig) { c.Object = "" }},
		{name: "No property", modify: func(c *BypassConfig) { c.Property = "" }},
		{name: "Negative delay", modify: func(c *BypassConfig) { c.Delay = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}
