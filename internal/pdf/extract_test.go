package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_MalformedInput(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: nil},
		{name: "not a pdf", data: []byte("just some plain text")},
		{name: "binary garbage", data: bytes.Repeat([]byte{0x7f, 0x00, 0x13}, 256)},
		{name: "truncated header", data: []byte("%PDF-1.7\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := e.Extract(tt.data)

			assert.Nil(t, info)
			assert.ErrorIs(t, err, ErrMalformedDocument)
		})
	}
}
