package transport

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Response is the decoded form of a raw HTTP response.
// StatusCode 0 means the request never produced a response.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

func emptyResponse() *Response {
	return &Response{Headers: make(map[string]string)}
}

// ParseResponse decodes a raw byte stream read from the socket.
//
// The status code is taken from a line starting with "HTTP/", between the first and the
// second space. Header lines follow until a line holding only "\r"; every remaining line is
// appended to the body with a trailing "\n". Chunked or length-framed bodies are not decoded.
func ParseResponse(raw []byte) *Response {
	resp := emptyResponse()
	r := bufio.NewReader(bytes.NewReader(raw))

	line, ok := readLine(r)
	if !ok {
		return resp
	}
	if strings.HasPrefix(line, "HTTP/") {
		resp.StatusCode = parseStatusCode(line)
	}

	for {
		line, ok = readLine(r)
		if !ok || line == "\r" {
			break
		}
		colon := strings.Index(line, ":")
		if colon == -1 {
			continue
		}
		key := line[:colon]
		value := strings.TrimLeft(line[colon+1:], " \t")
		value = strings.TrimRight(value, " \t\r")
		resp.Headers[key] = value
	}

	var body strings.Builder
	for {
		line, ok = readLine(r)
		if !ok {
			break
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	resp.Body = body.String()

	return resp
}

// readLine returns the next '\n'-terminated line without the terminator.
// A final unterminated fragment counts as a line; nothing left means ok == false.
func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, true
		}
		return "", false
	}
	return strings.TrimSuffix(line, "\n"), true
}

func parseStatusCode(line string) int {
	first := strings.Index(line, " ")
	if first == -1 {
		return 0
	}
	second := strings.Index(line[first+1:], " ")
	if second == -1 {
		return 0
	}
	code, err := strconv.Atoi(line[first+1 : first+1+second])
	if err != nil {
		return 0
	}
	return code
}
