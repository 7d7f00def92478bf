// Package storage persists finished runs under a base directory, one
// subdirectory per run holding metadata.json and states.csv. The CSV
// carries one row per recorded frame: time, then six columns per body
// (position and velocity).
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/mkol/gravsim/internal/config"
	"github.com/mkol/gravsim/internal/orbit"
	"github.com/mkol/gravsim/internal/sim"
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
	ID          string             `json:"id"`
	Scene       string             `json:"scene"`
	Timestamp   time.Time          `json:"timestamp"`
	Dt          float64            `json:"dt"`
	Duration    float64            `json:"duration"`
	Integrator  string             `json:"integrator"`
	G           float64            `json:"g"`
	Softening   float64            `json:"softening"`
	Bodies      []string           `json:"bodies"`
	Masses      []float64          `json:"masses"`
	StepsTaken  int                `json:"steps_taken"`
	EnergyDrift float64            `json:"energy_drift"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes one run directory named <scene>_<unix> and returns its ID.
func (s *Store) Save(cfg *config.Config, result *sim.Result) (string, error) {
	scene := cfg.Name
	if scene == "" {
		scene = "run"
	}
	runID := fmt.Sprintf("%s_%d", scene, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	names := cfg.BodyNames()
	masses := make([]float64, len(cfg.Bodies))
	for i, b := range cfg.Bodies {
		masses[i] = b.Mass
	}
	meta := RunMetadata{
		ID:          runID,
		Scene:       scene,
		Timestamp:   time.Now(),
		Dt:          cfg.Dt,
		Duration:    cfg.Duration,
		Integrator:  cfg.Integrator,
		G:           cfg.G,
		Softening:   cfg.Softening,
		Bodies:      names,
		Masses:      masses,
		StepsTaken:  result.StepsTaken,
		EnergyDrift: result.EnergyDrift,
		Metrics:     result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.Frames) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for _, n := range names {
		header = append(header,
			n+"_px", n+"_py", n+"_pz",
			n+"_vx", n+"_vy", n+"_vz")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.Frames {
		row := make([]string, 0, len(header))
		row = append(row, formatFloat(result.Times[i]))
		for _, st := range result.Frames[i] {
			row = append(row,
				formatFloat(st.Pos.X), formatFloat(st.Pos.Y), formatFloat(st.Pos.Z),
				formatFloat(st.Vel.X), formatFloat(st.Vel.Y), formatFloat(st.Vel.Z))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadStates reads back the recorded trajectory. Rows that fail to parse
// are skipped.
func (s *Store) LoadStates(runID string) ([]float64, [][]orbit.BodyState, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
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
		return []float64{}, [][]orbit.BodyState{}, nil
	}

	n := (len(records[0]) - 1) / 6
	times := make([]float64, 0, len(records)-1)
	frames := make([][]orbit.BodyState, 0, len(records)-1)

rows:
	for _, record := range records[1:] {
		if len(record) != 1+6*n {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		frame := make([]orbit.BodyState, n)
		for b := 0; b < n; b++ {
			var vals [6]float64
			for k := 0; k < 6; k++ {
				v, err := strconv.ParseFloat(record[1+b*6+k], 64)
				if err != nil {
					continue rows
				}
				vals[k] = v
			}
			frame[b] = orbit.BodyState{
				Pos: orbit.Vec3{X: vals[0], Y: vals[1], Z: vals[2]},
				Vel: orbit.Vec3{X: vals[3], Y: vals[4], Z: vals[5]},
			}
		}

		times = append(times, t)
		frames = append(frames, frame)
	}

	return times, frames, nil
}

// ExportCSV copies a run's states.csv to path.
func (s *Store) ExportCSV(runID, path string) error {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

type runExport struct {
	Metadata RunMetadata         `json:"metadata"`
	Times    []float64           `json:"times"`
	Frames   [][]orbit.BodyState `json:"frames"`
}

// ExportJSON writes a run's metadata and trajectory as one JSON document.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	times, frames, err := s.LoadStates(runID)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{Metadata: *meta, Times: times, Frames: frames})
}
