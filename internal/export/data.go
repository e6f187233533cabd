package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/eigenwell/eigenwell/internal/storage"
)

// RunData bundles a stored run for machine-readable export.
type RunData struct {
	Metadata      storage.RunMetadata `json:"metadata"`
	X             []float64           `json:"x"`
	Wavefunctions [][]float64         `json:"wavefunctions"`
}

// WriteJSON emits one stored run as indented JSON.
func WriteJSON(w io.Writer, meta *storage.RunMetadata, x []float64, psi [][]float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RunData{Metadata: *meta, X: x, Wavefunctions: psi})
}

// WriteCSV emits the sampled wavefunctions with an x column and one
// column per level.
func WriteCSV(w io.Writer, x []float64, psi [][]float64) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"x"}
	for i := range psi {
		header = append(header, "psi"+strconv.Itoa(i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range x {
		row := []string{strconv.FormatFloat(x[i], 'f', 6, 64)}
		for j := range psi {
			v := 0.0
			if i < len(psi[j]) {
				v = psi[j][i]
			}
			row = append(row, strconv.FormatFloat(v, 'g', 9, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
