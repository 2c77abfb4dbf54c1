package codec

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
)

// Base64Encode encodes the UTF-8 bytes of s with the padded standard alphabet.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes padded standard base64 into UTF-8 text.
// Surrounding whitespace is ignored.
func Base64Decode(s string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", &toolerr.DecodeError{Encoding: "Base64", Err: err}
	}
	if !utf8.Valid(raw) {
		return "", &toolerr.DecodeError{Encoding: "Base64", Err: errors.New("decoded bytes are not valid UTF-8")}
	}
	return string(raw), nil
}

const upperhex = "0123456789ABCDEF"

// URLEncode percent-encodes every byte outside A-Z a-z 0-9 and "_.-~/".
// Spaces become %20.
func URLEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURLSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func isURLSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '-', '~', '/':
		return true
	}
	return false
}

// URLDecode reverses percent-encoding. "+" is kept literally.
func URLDecode(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", &toolerr.DecodeError{Encoding: "URL", Err: err}
	}
	return decoded, nil
}
