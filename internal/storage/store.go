// Package storage persists computed abundance tracks as run directories:
// metadata.json with the generating configuration plus tracks.csv with the
// sampled curves.
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

	"github.com/san-kum/onezone/internal/config"
	"github.com/san-kum/onezone/internal/series"
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
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Timestamp time.Time      `json:"timestamp"`
	Points    int            `json:"points"`
	Config    *config.Config `json:"config"`
}

// Tracks holds one sampled run: times in Gyr and the three abundance curves.
type Tracks struct {
	Times series.Series
	OH    series.Series
	FeH   series.Series
	OFe   series.Series
}

func (s *Store) Save(name string, cfg *config.Config, tr *Tracks) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      name,
		Timestamp: time.Now(),
		Points:    len(tr.Times),
		Config:    cfg,
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

	csvFile, err := os.Create(filepath.Join(runDir, "tracks.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time_gyr", "o_h", "fe_h", "o_fe"}); err != nil {
		return "", err
	}
	for i := range tr.Times {
		row := []string{
			strconv.FormatFloat(tr.Times[i], 'g', -1, 64),
			strconv.FormatFloat(tr.OH[i], 'g', -1, 64),
			strconv.FormatFloat(tr.FeH[i], 'g', -1, 64),
			strconv.FormatFloat(tr.OFe[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
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

func (s *Store) LoadTracks(runID string) (*Tracks, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "tracks.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("tracks.csv for %s is empty", runID)
	}

	tr := &Tracks{}
	for _, row := range rows[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("tracks.csv for %s: expected 4 columns, got %d", runID, len(row))
		}
		vals := make([]float64, 4)
		for i, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("tracks.csv for %s: %w", runID, err)
			}
			vals[i] = v
		}
		tr.Times = append(tr.Times, vals[0])
		tr.OH = append(tr.OH, vals[1])
		tr.FeH = append(tr.FeH, vals[2])
		tr.OFe = append(tr.OFe, vals[3])
	}
	return tr, nil
}

// List returns metadata for all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
