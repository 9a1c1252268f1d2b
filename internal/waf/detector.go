package waf

import (
	"strings"

	"github.com/Serdar715/flareload/internal/transport"
)

// signature matches a filtering product by header text or body text
type signature struct {
	name    string
	headers []string
	body    []string
}

var signatures = []signature{
	{name: "cloudflare", headers: []string{"cloudflare", "cf-ray"}, body: []string{"cloudflare"}},
	{name: "akamai", headers: []string{"akamai", "akamaighost"}, body: []string{"akamai"}},
	{name: "cloudfront", headers: []string{"cloudfront", "x-amz"}},
	{name: "imperva", headers: []string{"incapsula", "imperva"}, body: []string{"incapsula", "imperva"}},
	{name: "sucuri", headers: []string{"sucuri", "x-sucuri"}, body: []string{"sucuri"}},
	{name: "f5", headers: []string{"bigip", "f5"}},
	{name: "barracuda", headers: []string{"barracuda"}},
	{name: "wordfence", body: []string{"wordfence"}},
	{name: "modsecurity", body: []string{"modsecurity", "mod_security"}},
}

// Detector fingerprints a filter from a response the engine already received.
// It never sends requests of its own.
type Detector struct{}

// NewDetector creates a new WAF detector
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the product name, "unknown" for a blocking status without a known
// signature, or "" when nothing points at a filter
func (d *Detector) Detect(resp *transport.Response) string {
	if resp == nil {
		return ""
	}

	for _, sig := range signatures {
		for name, value := range resp.Headers {
			headerStr := strings.ToLower(name + ": " + value)
			for _, needle := range sig.headers {
				if strings.Contains(headerStr, needle) {
					return sig.name
				}
			}
		}
	}

	bodyLower := strings.ToLower(resp.Body)
	for _, sig := range signatures {
		for _, needle := range sig.body {
			if strings.Contains(bodyLower, needle) {
				return sig.name
			}
		}
	}

	if resp.StatusCode == 403 || resp.StatusCode == 406 || resp.StatusCode == 429 {
		return "unknown"
	}

	return ""
}
