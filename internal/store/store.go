// Package store persists sweep runs under a base directory, one
// subdirectory per run holding metadata.json and points.csv.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/nconv/internal/scan"
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
	Conversion string    `json:"conversion"`
	Species    string    `json:"species"`
	Timestamp  time.Time `json:"timestamp"`
	Points     int       `json:"points"`
	InputName  string    `json:"input_name"`
	InputUnit  string    `json:"input_unit"`
	OutputName string    `json:"output_name"`
	OutputUnit string    `json:"output_unit"`
}

// Point is one CSV row of a saved sweep.
type Point struct {
	Input  float64 `csv:"input"`
	Output float64 `csv:"output"`
}

func points(res *scan.Result) []*Point {
	pts := make([]*Point, len(res.Inputs))
	for i := range res.Inputs {
		pts[i] = &Point{Input: res.Inputs[i], Output: res.Outputs[i]}
	}
	return pts
}

// Save writes a run directory for res and returns the run ID.
func (s *Store) Save(res *scan.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", res.Conversion, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Conversion: res.Conversion,
		Species:    res.Species,
		Timestamp:  time.Now(),
		Points:     len(res.Inputs),
		InputName:  res.InputName,
		InputUnit:  res.InputUnit,
		OutputName: res.OutputName,
		OutputUnit: res.OutputUnit,
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

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := gocsv.MarshalFile(points(res), csvFile); err != nil {
		return "", err
	}
	return runID, nil
}

// Load reads the metadata of a saved run.
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

// LoadPoints reads the point rows of a saved run.
func (s *Store) LoadPoints(runID string) ([]*Point, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pts []*Point
	if err := gocsv.UnmarshalFile(f, &pts); err != nil {
		return nil, err
	}
	return pts, nil
}

// List returns metadata for every saved run, newest first.
func (s *Store) List() ([]*RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var metas []*RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip foreign or half-written directories
		}
		metas = append(metas, meta)
	}
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].Timestamp.After(metas[j].Timestamp)
	})
	return metas, nil
}
