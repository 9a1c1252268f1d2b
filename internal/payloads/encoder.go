package payloads

import "strings"

const upperHex = "0123456789ABCDEF"

// Encoder handles payload encoding for the query string
type Encoder struct{}

// NewEncoder creates a new payload encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// URLEncode percent-encodes every byte outside the RFC 3986 unreserved set.
// Each unsafe byte maps to exactly one %XX triplet, so distinct inputs never collide.
func (e *Encoder) URLEncode(payload string) string {
	var sb strings.Builder
	sb.Grow(len(payload) * 3)
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperHex[c>>4])
		sb.WriteByte(upperHex[c&0x0F])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
