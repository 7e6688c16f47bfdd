package csv

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func readAll(t *testing.T, r io.Reader) ([][]string, error) {
	t.Helper()
	reader, err := NewReader(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var records [][]string
	for {
		record, err := reader.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
}

func TestReader_bom(t *testing.T) {
	bom := []byte{0xef, 0xbb, 0xbf}
	csvData := []byte(`header1,header2
value1,value2
`)
	dataWithBom := append(bom, csvData...)

	records, err := readAll(t, bytes.NewReader(dataWithBom))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := [][]string{
		{"header1", "header2"},
		{"value1", "value2"},
	}

	if !reflect.DeepEqual(records, expected) {
		t.Errorf("expected %v, but got %v", expected, records)
	}
}

func TestReader_unevenRows(t *testing.T) {
	records, err := readAll(t, strings.NewReader("a,b,c\n1,2\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := [][]string{{"a", "b", "c"}, {"1", "2"}}
	if !reflect.DeepEqual(records, expected) {
		t.Errorf("expected %v, but got %v", expected, records)
	}
}

func TestReader_blankLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{"between rows", "h\na\n\nb\n", [][]string{{"h"}, {"a"}, {}, {"b"}}},
		{"leading", "\nh\na\n", [][]string{{}, {"h"}, {"a"}}},
		{"crlf", "h\r\n\r\n\r\na\r\n", [][]string{{"h"}, {}, {}, {"a"}}},
		{"trailing", "h\na\n\n", [][]string{{"h"}, {"a"}, {}}},
		{"after bom", "\xef\xbb\xbf\nh\n", [][]string{{}, {"h"}}},
		{"quoted newline is not blank", "h\n\"x\n\ny\",z\na\n", [][]string{{"h"}, {"x\n\ny", "z"}, {"a"}}},
		{"whitespace line is a record", "h\n  \na\n", [][]string{{"h"}, {"  "}, {"a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := readAll(t, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(records, tt.expected) {
				t.Errorf("expected %q, but got %q", tt.expected, records)
			}
		})
	}
}

func TestReader_Next(t *testing.T) {
	reader, err := NewReader(strings.NewReader("h\n\"x, y\",z\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := reader.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	record, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(record, []string{"x, y", "z"}) {
		t.Errorf("unexpected record %v", record)
	}
	for i := 0; i < 2; i++ {
		if _, err := reader.Next(); err != io.EOF {
			t.Errorf("expected io.EOF, but got %v", err)
		}
	}
}

func TestReader_empty(t *testing.T) {
	reader, err := NewReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, but got %v", err)
	}
}

func TestReader_parseError(t *testing.T) {
	records, err := readAll(t, strings.NewReader("h\n\na,\"b\n"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected parse error, but got %v", err)
	}
	if !reflect.DeepEqual(records, [][]string{{"h"}, {}}) {
		t.Errorf("expected records before the error, but got %q", records)
	}
}
