package slicer

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVHeader names the columns written by WriteCSV.
var CSVHeader = []string{"x", "y", "z", "nx", "ny", "nz"}

// WriteCSV writes one row per path point, preceded by CSVHeader.
func (p Path) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	row := make([]string, 6)
	for _, pt := range p {
		for i := 0; i < 3; i++ {
			row[i] = strconv.FormatFloat(float64(pt.Pos[i]), 'g', -1, 32)
			row[i+3] = strconv.FormatFloat(float64(pt.N[i]), 'g', -1, 32)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
