package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/collatz/internal/collatz"
)

var csvHeader = []string{"Step", "Value"}

// Rows returns the header followed by one (index, value) row per element.
// The cursor plays no part: the whole sequence is always exported.
func Rows(seq collatz.Sequence) [][]string {
	rows := make([][]string, 0, seq.Len()+1)
	rows = append(rows, csvHeader)
	for i := 0; i < seq.Len(); i++ {
		rows = append(rows, []string{strconv.Itoa(i), strconv.FormatInt(seq.At(i), 10)})
	}
	return rows
}

func WriteCSV(w io.Writer, seq collatz.Sequence) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Rows(seq)); err != nil {
		return err
	}
	return cw.Error()
}
