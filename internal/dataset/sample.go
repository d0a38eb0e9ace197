package dataset

import (
	"bytes"
	_ "embed"
)

//go:embed sample.csv
var sampleCSV []byte

// LoadSample parses the built-in sample table, a tiny Wordle summary.
func LoadSample() (*Table, error) {
	return Parse(bytes.NewReader(sampleCSV), "built-in sample")
}
