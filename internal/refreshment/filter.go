package refreshment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// RecordReader yields records until io.EOF.
type RecordReader interface {
	Next() ([]string, error)
}

type Sink interface {
	Write(Row) error
}

type Stats struct {
	Rows    int
	Emitted int
}

// Filter discards the first record and writes every qualifying row after it
// to sink, in input order. It stops at the first error.
func Filter(ctx context.Context, records RecordReader, sink Sink) (Stats, error) {
	var stats Stats
	skip := true
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		record, err := records.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read csv: %w", err)
		}
		if skip {
			skip = false
			continue
		}
		stats.Rows++
		row, err := NewRow(record)
		if err != nil {
			return stats, fmt.Errorf("data row %d: %w", stats.Rows, err)
		}
		if !row.Qualifies() {
			slog.Debug("skipping row", "row", stats.Rows)
			continue
		}
		if err := sink.Write(row); err != nil {
			return stats, fmt.Errorf("failed to write row %d: %w", stats.Rows, err)
		}
		stats.Emitted++
	}
}
