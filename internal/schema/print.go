package schema

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Fprint writes rec to w as one "key: value" line per top-level entry,
// in the record's insertion order. Nested values are rendered via their
// default textual representation; there is no recursive pretty-printing
// and no truncation. Output for a given record is byte-identical across
// invocations.
func Fprint(w io.Writer, rec *Record) error {
	bw := bufio.NewWriter(w)
	for i, k := range rec.keys {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", k, formatValue(rec.values[i])); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Print writes rec to standard output.
func Print(rec *Record) error {
	return Fprint(os.Stdout, rec)
}
