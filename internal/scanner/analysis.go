package scanner

import (
	"strings"

	"golang.org/x/net/html"
)

// DetectContext tokenizes body and reports where canary is first reflected:
// inside an attribute, a comment, a script block, or plain HTML text.
func DetectContext(body, canary string) string {
	if canary == "" {
		return ContextUnknown
	}

	z := html.NewTokenizer(strings.NewReader(body))
	inScript := false

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return ContextUnknown

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			for _, attr := range tok.Attr {
				if strings.Contains(attr.Key, canary) || strings.Contains(attr.Val, canary) {
					return ContextAttribute
				}
			}
			if tok.Data == "script" && tt == html.StartTagToken {
				inScript = true
			}

		case html.EndTagToken:
			if z.Token().Data == "script" {
				inScript = false
			}

		case html.TextToken:
			if strings.Contains(z.Token().Data, canary) {
				if inScript {
					return ContextScript
				}
				return ContextHTML
			}

		case html.CommentToken:
			if strings.Contains(z.Token().Data, canary) {
				return ContextComment
			}
		}
	}
}

// probeCanary strips the angle brackets from the context probe, leaving the part that
// identifies the reflection
func probeCanary(probe string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(probe)
}
