package parser

import (
	"strconv"
	"strings"

	"github.com/nezdolik/reproto/internal/token"
)

// decodeString strips a QuotedString token's surrounding quotes and
// resolves its escapes. The lexer has already validated that every escape
// is one of \n \r \t \\ \" \uXXXX, so decoding here never fails.
func decodeString(tok token.Token) string {
	raw := tok.Text
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'u':
			if i+4 < len(raw) {
				if v, err := strconv.ParseUint(raw[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 4
					continue
				}
			}
			b.WriteString(raw[i-1 : i+1])
		default:
			b.WriteByte('\\')
			b.WriteByte(raw[i])
		}
	}

	return b.String()
}
