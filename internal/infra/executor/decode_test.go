package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLossy(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"empty", nil, ""},
		{"ascii", []byte("hello\n"), "hello\n"},
		{"multibyte", []byte("héllo 世界"), "héllo 世界"},
		{"two invalid bytes", []byte{0xff, 0xfe}, "\uFFFD\uFFFD"},
		{"invalid in the middle", []byte("a\xffb"), "a\uFFFDb"},
		{"truncated sequence at end", []byte("ok\xe4\xb8"), "ok\uFFFD"},
		{"lone continuation byte", []byte("\x80x"), "\uFFFDx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeLossy(tt.input))
		})
	}
}
