package gateway

import (
	"fmt"
	"io"
	"strings"
)

// Result is an ordered query result: the projection's column names and one
// text record per row.
type Result struct {
	Columns []string
	Records [][]string
}

// Len returns the number of records.
func (r *Result) Len() int { return len(r.Records) }

// WriteTab writes the result as tab-separated rows. The header row is emitted
// only when at least one record exists. Returns the number of data rows.
func (r *Result) WriteTab(w io.Writer) int {
	if len(r.Records) == 0 {
		return 0
	}
	fmt.Fprintln(w, strings.Join(r.Columns, "\t"))
	for _, record := range r.Records {
		fmt.Fprintln(w, strings.Join(record, "\t"))
	}
	return len(r.Records)
}
