package executor

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const replacementChar = "\uFFFD"

// DecodeLossy decodes b as UTF-8, replacing each maximal invalid
// subsequence with U+FFFD. It never fails.
func DecodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), replacementChar)
	}
	return string(out)
}
