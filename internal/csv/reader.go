package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// ParseError is returned for malformed quoting.
type ParseError = csv.ParseError

// Reader streams records one at a time. Blank lines, which encoding/csv
// skips, are reported as records with no fields.
type Reader struct {
	r    *csv.Reader
	seen *recorder

	blanks int
	held   bool
	record []string
	err    error
}

func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(bom))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}
	if bytes.Equal(head, bom) {
		if _, err := br.Discard(len(bom)); err != nil {
			return nil, err
		}
	}
	seen := &recorder{r: br}
	reader := csv.NewReader(seen)
	// row length is checked by the caller
	reader.FieldsPerRecord = -1
	return &Reader{r: reader, seen: seen}, nil
}

// Next returns the next record or io.EOF. Once an error is returned every
// later call returns it too.
func (r *Reader) Next() ([]string, error) {
	if r.blanks == 0 && !r.held {
		if r.err != nil {
			return nil, r.err
		}
		r.record, r.err = r.r.Read()
		// seen starts right after the previous record, so everything csv
		// skipped to get here is a run of empty lines.
		r.blanks = blankLines(r.seen.buf)
		if r.err == nil {
			r.held = true
			r.seen.discard(r.r.InputOffset())
		}
	}
	if r.blanks > 0 {
		r.blanks--
		return []string{}, nil
	}
	if r.held {
		r.held = false
		return r.record, nil
	}
	return nil, r.err
}

func blankLines(b []byte) int {
	n := 0
	for {
		switch {
		case bytes.HasPrefix(b, []byte("\n")):
			b = b[1:]
		case bytes.HasPrefix(b, []byte("\r\n")):
			b = b[2:]
		default:
			return n
		}
		n++
	}
}

// recorder keeps the bytes handed to csv that lie past the last record.
type recorder struct {
	r    io.Reader
	buf  []byte
	base int64 // input offset of buf[0]
}

func (c *recorder) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.buf = append(c.buf, p[:n]...)
	return n, err
}

func (c *recorder) discard(offset int64) {
	n := int(offset - c.base)
	c.buf = append(c.buf[:0], c.buf[n:]...)
	c.base = offset
}
