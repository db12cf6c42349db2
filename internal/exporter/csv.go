package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// TabularOptions configures the tabular renderer.
type TabularOptions struct {
	// Delimiter separates fields. Zero means comma.
	Delimiter rune
}

// renderTabular emits the delimited-text document: the fixed header
// row followed by one data row per resolved transaction. Quoting
// follows RFC 4180 (fields containing the delimiter, a quote or a
// newline are wrapped in quotes, embedded quotes doubled), so the
// document survives a split-and-unescape round trip exactly. Output is
// byte-for-byte deterministic for the same input sequence.
func renderTabular(resolved []ResolvedTransaction, opts TabularOptions) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if opts.Delimiter != 0 {
		w.Comma = opts.Delimiter
	}

	if err := w.Write(exportColumns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, rec := range resolved {
		if err := w.Write(formatRow(rec)); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return buf.Bytes(), nil
}
