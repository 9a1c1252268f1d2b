package transport

import (
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/fatih/color"
)

// DefaultUserAgent is sent with every request
const DefaultUserAgent = "FlareLoad/1.0"

// Error describes a failed socket operation. It is never returned by Get;
// it is handed to the client's OnError hook instead.
type Error struct {
	Op   string // resolve, connect, send, read
	Host string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Host, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client sends GET requests over a fresh TCP connection per call.
// There is no keep-alive, TLS, redirect handling or timeout: a peer that never
// closes the connection blocks Get forever.
type Client struct {
	UserAgent string

	// OnError receives transport failures. Nil falls back to a line on stderr.
	OnError func(err *Error)
}

// NewClient creates a client with the default user agent
func NewClient() *Client {
	return &Client{UserAgent: DefaultUserAgent}
}

// Get requests rawURL and returns the parsed response.
// Only a malformed URL produces an error; socket failures yield a Response with
// StatusCode 0 and empty headers and body.
func (c *Client) Get(rawURL string) (*Response, error) {
	parts, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return c.send(parts, c.buildRequest(parts)), nil
}

func (c *Client) buildRequest(parts URLParts) string {
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "GET %s HTTP/1.1\r\n", parts.Path)
	fmt.Fprintf(&sb, "Host: %s\r\n", parts.Host)
	fmt.Fprintf(&sb, "User-Agent: %s\r\n", ua)
	sb.WriteString("Connection: close\r\n")
	sb.WriteString("\r\n")
	return sb.String()
}

func (c *Client) send(parts URLParts, request string) *Response {
	addr, err := net.ResolveIPAddr("ip4", parts.Host)
	if err != nil {
		c.fail("resolve", parts.Host, err)
		return emptyResponse()
	}

	conn, err := net.DialTCP("tcp4", nil, &net.TCPAddr{IP: addr.IP, Port: parts.Port})
	if err != nil {
		c.fail("connect", parts.Address(), err)
		return emptyResponse()
	}
	defer conn.Close()

	if _, err := io.WriteString(conn, request); err != nil {
		c.fail("send", parts.Host, err)
		return emptyResponse()
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		// whatever arrived before the failure is still parsed
		c.fail("read", parts.Host, err)
	}

	return ParseResponse(raw)
}

func (c *Client) fail(op, host string, err error) {
	terr := &Error{Op: op, Host: host, Err: err}
	if c.OnError != nil {
		c.OnError(terr)
		return
	}
	color.New(color.FgRed).Fprintf(os.Stderr, "[!] Transport error: %v\n", terr)
}
