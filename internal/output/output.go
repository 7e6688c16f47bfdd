package output

import (
	"bufio"
	"io"

	"github.com/dev-shimada/csv-refreshment-filter/internal/refreshment"
	"github.com/olekukonko/tablewriter"
)

// Sink receives qualifying rows. Flush must be called once after the last Write.
type Sink interface {
	Write(refreshment.Row) error
	Flush() error
}

func New(w io.Writer, humanReadable bool) Sink {
	if humanReadable {
		return NewTable(w)
	}
	return NewPlain(w)
}

// Plain writes one "coffee, lunch, tea" line per row.
type Plain struct {
	w *bufio.Writer
}

func NewPlain(w io.Writer) *Plain {
	return &Plain{w: bufio.NewWriter(w)}
}

func (p *Plain) Write(r refreshment.Row) error {
	if _, err := p.w.WriteString(r.String()); err != nil {
		return err
	}
	return p.w.WriteByte('\n')
}

func (p *Plain) Flush() error {
	return p.w.Flush()
}

// Table renders all rows at Flush.
type Table struct {
	w    io.Writer
	rows [][]string
}

func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

func (t *Table) Write(r refreshment.Row) error {
	t.rows = append(t.rows, []string{r.Coffee, r.Lunch, r.Tea})
	return nil
}

func (t *Table) Flush() error {
	table := tablewriter.NewWriter(t.w)
	table.Header([]string{"Coffee", "Lunch", "Tea"})
	for _, row := range t.rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
