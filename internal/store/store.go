// Package store persists comparison runs on disk: one directory per
// run holding metadata.json plus a CSV trajectory per method.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/odelab/odelab/internal/ode"
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
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	StepSize  float64            `json:"step_size"`
	StartTime float64            `json:"start_time"`
	EndTime   float64            `json:"end_time"`
	Reference string             `json:"reference"`
	Methods   []string           `json:"methods"`
	MaxAbsErr map[string]float64 `json:"max_abs_err,omitempty"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// Save writes one run: metadata plus a trajectory CSV per method.
// Results must share one grid; the method name keys the CSV filename.
func (s *Store) Save(meta RunMetadata, results map[string]*ode.Result) (string, error) {
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("run_%d", time.Now().Unix())
	}
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.Methods = meta.Methods[:0]
	for name := range results {
		meta.Methods = append(meta.Methods, name)
	}
	sort.Strings(meta.Methods)

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	for name, res := range results {
		if err := writeTrajectory(filepath.Join(runDir, name+".csv"), res); err != nil {
			return "", err
		}
	}
	return meta.ID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}

// LoadTrajectory reads one method's trajectory back from its CSV.
func (s *Store) LoadTrajectory(runID, method string) (*ode.Result, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, method+".csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("empty trajectory file for %s", method)
	}

	res := &ode.Result{}
	for _, row := range rows[1:] {
		tm, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, err
		}
		state := make(ode.State, len(row)-1)
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, err
			}
			state[j] = v
		}
		res.Times = append(res.Times, tm)
		res.States = append(res.States, state)
	}
	return res, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTrajectory(path string, res *ode.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if len(res.States) == 0 {
		return nil
	}

	header := []string{"time"}
	for i := range res.States[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, state := range res.States {
		row[0] = strconv.FormatFloat(res.Times[i], 'g', -1, 64)
		for j, v := range state {
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
