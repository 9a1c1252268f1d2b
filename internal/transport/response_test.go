package transport

import (
	"strings"
	"testing"
)

func TestParseResponse(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: text/html\r\n" +
		"X-Test:\t  padded value \t\r\n" +
		"X-Dup: first\r\n" +
		"X-Dup: second\r\n" +
		"\r\n" +
		"<p>line one</p>\r\n" +
		"line two"

	resp := ParseResponse([]byte(raw))

	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %v, want %v", resp.StatusCode, 200)
	}

	headers := map[string]string{
		"Content-Type": "text/html",
		"X-Test":       "padded value",
		"X-Dup":        "second",
	}
	for k, want := range headers {
		if got := resp.Headers[k]; got != want {
			t.Errorf("Headers[%q] = %q, want %q", k, got, want)
		}
	}
	if len(resp.Headers) != len(headers) {
		t.Errorf("len(Headers) = %d, want %d", len(resp.Headers), len(headers))
	}

	wantBody := "<p>line one</p>\r\nline two\n"
	if resp.Body != wantBody {
		t.Errorf("Body = %q, want %q", resp.Body, wantBody)
	}
}

func TestParseResponseStatusLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{name: "Standard", line: "HTTP/1.1 404 Not Found\r\n", want: 404},
		{name: "HTTP/1.0", line: "HTTP/1.0 302 Found\r\n", want: 302},
		{name: "No reason phrase", line: "HTTP/1.1 200\r\n", want: 0},
		{name: "Not HTTP", line: "ICY 200 OK\r\n", want: 0},
		{name: "Non-numeric code", line: "HTTP/1.1 abc OK\r\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ParseResponse([]byte(tt.line + "\r\n"))
			if resp.StatusCode != tt.want {
				t.Errorf("StatusCode = %v, want %v", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestParseResponseEmpty(t *testing.T) {
	resp := ParseResponse(nil)
	if resp.StatusCode != 0 || resp.Body != "" || len(resp.Headers) != 0 {
		t.Errorf("ParseResponse(nil) = %+v, want empty sentinel", resp)
	}
	if resp.Headers == nil {
		t.Error("Headers should be a non-nil map")
	}
}

func TestParseResponseHeaderWithoutColonSkipped(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nGarbage line\r\nA: b\r\n\r\nbody"
	resp := ParseResponse([]byte(raw))

	if len(resp.Headers) != 1 || resp.Headers["A"] != "b" {
		t.Errorf("Headers = %v, want only A: b", resp.Headers)
	}
	if !strings.Contains(resp.Body, "body") {
		t.Errorf("Body = %q, want it to contain %q", resp.Body, "body")
	}
}
