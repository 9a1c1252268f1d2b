// Package transport implements the minimal raw HTTP/1.1 client used to probe targets:
// one TCP connection per request, read until the peer closes, line-based response parsing.
package transport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPort is used when the host segment carries no explicit port
const DefaultPort = 80

// ErrInvalidPort indicates the port suffix of a host segment is not a usable number
var ErrInvalidPort = errors.New("invalid port")

// ParseError is returned when a URL cannot be split into host, port and path
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// URLParts is the request target derived from a full URL string
type URLParts struct {
	Host string
	Port int
	Path string
}

// Address returns host:port for dialing
func (p URLParts) Address() string {
	return fmt.Sprintf("%s:%d", p.Host, p.Port)
}

// ParseURL splits an absolute ("http://h:8080/p"), scheme-relative ("//h/p") or bare
// ("h/p") URL. Everything from the first '/' after the host is the path, query included.
// No host validation is done.
func ParseURL(raw string) (URLParts, error) {
	rest := raw
	if idx := strings.Index(rest, "://"); idx != -1 {
		rest = rest[idx+3:]
	} else {
		rest = strings.TrimPrefix(rest, "//")
	}

	parts := URLParts{Host: rest, Port: DefaultPort, Path: "/"}
	if idx := strings.Index(rest, "/"); idx != -1 {
		parts.Host = rest[:idx]
		parts.Path = rest[idx:]
	}

	if idx := strings.Index(parts.Host, ":"); idx != -1 {
		port, err := strconv.Atoi(parts.Host[idx+1:])
		if err != nil {
			return URLParts{}, &ParseError{URL: raw, Err: fmt.Errorf("%w: %v", ErrInvalidPort, err)}
		}
		if port < 1 || port > 65535 {
			return URLParts{}, &ParseError{URL: raw, Err: fmt.Errorf("%w: %d out of range", ErrInvalidPort, port)}
		}
		parts.Port = port
		parts.Host = parts.Host[:idx]
	}

	return parts, nil
}
