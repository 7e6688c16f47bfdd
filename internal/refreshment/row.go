package refreshment

import (
	"errors"
	"fmt"
	"strings"
)

const (
	coffeeColumn = 7
	lunchColumn  = 8
	teaColumn    = 9
)

// ErrShortRow is returned for a data row with fewer than 10 fields.
var ErrShortRow = errors.New("row has too few fields")

// Row holds the refreshment columns of one data record.
type Row struct {
	Coffee string
	Lunch  string
	Tea    string
}

// NewRow trims columns 7, 8 and 9 of record.
func NewRow(record []string) (Row, error) {
	if len(record) <= teaColumn {
		return Row{}, fmt.Errorf("%w: got %d, need at least %d", ErrShortRow, len(record), teaColumn+1)
	}
	return Row{
		Coffee: strings.TrimSpace(record[coffeeColumn]),
		Lunch:  strings.TrimSpace(record[lunchColumn]),
		Tea:    strings.TrimSpace(record[teaColumn]),
	}, nil
}

// Qualifies reports whether both coffee and tea are set. Lunch is optional.
func (r Row) Qualifies() bool {
	return r.Coffee != "" && r.Tea != ""
}

func (r Row) String() string {
	return r.Coffee + ", " + r.Lunch + ", " + r.Tea
}
