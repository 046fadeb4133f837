// Package pdf extracts text and document metadata from uploaded PDF bytes.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// ErrMalformedDocument is returned when the uploaded bytes cannot be
// parsed as a PDF. Upload requests fail as a whole on this error; no
// partial contract record is created.
var ErrMalformedDocument = errors.New("malformed document")

// Info is the content extracted from one PDF document.
type Info struct {
	Text   string
	Pages  int
	Title  string
	Author string
}

// Extractor turns raw PDF bytes into extracted text and metadata.
type Extractor interface {
	Extract(data []byte) (*Info, error)
}

type extractor struct{}

// NewExtractor returns the default PDF extractor.
func NewExtractor() Extractor {
	return extractor{}
}

// Extract parses data as a PDF and returns its plain text, page count and
// the Title/Author entries of the document information dictionary. The
// underlying parser panics on some malformed inputs; those are recovered
// and reported as ErrMalformedDocument.
func (extractor) Extract(data []byte) (info *Info, err error) {
	defer func() {
		if r := recover(); r != nil {
			info = nil
			err = fmt.Errorf("%w: %v", ErrMalformedDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	out := &Info{
		Text:  buf.String(),
		Pages: r.NumPage(),
	}

	meta := r.Trailer().Key("Info")
	if !meta.IsNull() {
		out.Title = meta.Key("Title").Text()
		out.Author = meta.Key("Author").Text()
	}
	return out, nil
}
