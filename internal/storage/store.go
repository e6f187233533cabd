package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/eigenwell/eigenwell/internal/solver"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Potential  string    `json:"potential"`
	Method     string    `json:"method"`
	Timestamp  time.Time `json:"timestamp"`
	Points     int       `json:"points"`
	EMin       float64   `json:"e_min"`
	EMax       float64   `json:"e_max"`
	Tolerance  float64   `json:"tolerance"`
	Energies   []float64 `json:"energies"`
	Residuals  []float64 `json:"residuals"`
	Statuses   []string  `json:"statuses"`
	Deviations []float64 `json:"deviations,omitempty"`
	ElapsedMS  float64   `json:"elapsed_ms"`
}

// Save writes one run directory: metadata.json with the spectrum and
// wavefunctions.csv with the sampled states, one column per level.
func (s *Store) Save(res *solver.Result, opts solver.Options) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", res.Potential, res.Method, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Potential:  res.Potential,
		Method:     res.Method,
		Timestamp:  time.Now(),
		Points:     res.Grid.Len(),
		EMin:       opts.EMin,
		EMax:       opts.EMax,
		Tolerance:  opts.Tolerance,
		Deviations: res.Deviations,
		ElapsedMS:  float64(res.Elapsed.Microseconds()) / 1000,
	}
	for _, p := range res.Pairs {
		meta.Energies = append(meta.Energies, p.Energy)
		meta.Residuals = append(meta.Residuals, p.Residual)
		meta.Statuses = append(meta.Statuses, p.Status.String())
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "wavefunctions.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(res.Pairs) == 0 {
		return runID, nil
	}

	header := []string{"x"}
	for i := range res.Pairs {
		header = append(header, fmt.Sprintf("psi%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := 0; i < res.Grid.Len(); i++ {
		row := []string{strconv.FormatFloat(res.Grid.At(i), 'f', 6, 64)}
		for _, p := range res.Pairs {
			row = append(row, strconv.FormatFloat(p.Psi[i], 'g', 9, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadWavefunctions returns the grid points and one sampled wavefunction
// per stored level.
func (s *Store) LoadWavefunctions(runID string) (x []float64, psi [][]float64, err error) {
	csvPath := filepath.Join(s.baseDir, runID, "wavefunctions.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]float64{}, nil
	}

	levels := len(records[0]) - 1
	psi = make([][]float64, levels)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != levels+1 {
			continue
		}
		xv, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		x = append(x, xv)
		for j := 0; j < levels; j++ {
			val, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				val = 0
			}
			psi[j] = append(psi[j], val)
		}
	}

	return x, psi, nil
}
