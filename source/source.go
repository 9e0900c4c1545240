// Package source reads IPPcode18 program text line by line, dropping
// comments and blank lines while counting what it consumed.
package source

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CommentMarker starts a comment running to the end of the line.
const CommentMarker = '#'

// Counters are the running totals for one read of a program.
type Counters struct {
	// Lines counts every physical line consumed, blank or not.
	Lines int
	// Comments counts lines that carried a comment.
	Comments int
}

// Reader pulls non-empty, comment-free lines from a program.
type Reader struct {
	br       *bufio.Reader
	counters Counters
	eof      bool
}

// New wraps r. A leading UTF-16 byte-order mark switches the stream to
// UTF-16 decoding and a UTF-8 mark is dropped; anything else is read as is.
func New(r io.Reader) *Reader {
	br := bufio.NewReader(r)
	if b, _ := br.Peek(3); len(b) >= 2 {
		switch {
		case (b[0] == 0xFF && b[1] == 0xFE) || (b[0] == 0xFE && b[1] == 0xFF):
			tr := transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
			br = bufio.NewReader(tr)
		case len(b) == 3 && bytes.Equal(b, []byte{0xEF, 0xBB, 0xBF}):
			br.Discard(3)
		}
	}
	return &Reader{br: br}
}

// Next returns the next line holding something other than whitespace once
// its comment is cut off. ok is false at the end of input.
func (r *Reader) Next() (line string, ok bool, err error) {
	for !r.eof {
		raw, err := r.br.ReadString('\n')
		if err == io.EOF {
			r.eof = true
			if raw == "" {
				break
			}
		} else if err != nil {
			return "", false, err
		}

		r.counters.Lines++
		raw = r.stripComment(raw)
		if strings.TrimSpace(raw) == "" {
			continue
		}
		return raw, true, nil
	}
	return "", false, nil
}

// stripComment cuts the line at the comment marker, keeping a line terminator.
func (r *Reader) stripComment(s string) string {
	i := strings.IndexRune(s, CommentMarker)
	if i == -1 {
		return s
	}
	r.counters.Comments++
	return s[:i] + "\n"
}

// Line is the number of the most recently consumed physical line.
func (r *Reader) Line() int {
	return r.counters.Lines
}

// Counters returns a snapshot of the running totals.
func (r *Reader) Counters() Counters {
	return r.counters
}
