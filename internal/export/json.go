package export

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/san-kum/collatz/internal/collatz"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ExportData struct {
	Start      int64   `json:"start"`
	Steps      int     `json:"steps"`
	Max        int64   `json:"max"`
	MaxIndex   int     `json:"max_index"`
	OddCount   int     `json:"odd_count"`
	EvenCount  int     `json:"even_count"`
	ReachedOne bool    `json:"reached_one"`
	Values     []int64 `json:"values"`
}

func NewExportData(seq collatz.Sequence) ExportData {
	st := collatz.ComputeStats(seq)
	return ExportData{
		Start:      st.Start,
		Steps:      st.Steps,
		Max:        st.Max,
		MaxIndex:   st.MaxIndex,
		OddCount:   st.OddCount,
		EvenCount:  st.EvenCount,
		ReachedOne: st.ReachedOne,
		Values:     seq.Values(),
	}
}

func WriteJSON(w io.Writer, seq collatz.Sequence) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(seq))
}

// ReadJSON decodes a file written by WriteJSON back into a sequence.
func ReadJSON(r io.Reader) (collatz.Sequence, error) {
	var data ExportData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return collatz.Sequence{}, err
	}
	return collatz.NewSequence(data.Values), nil
}
