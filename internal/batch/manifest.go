package batch

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/bytelens/internal/source"
)

const (
	manifestFile = "manifest.json"
	resultsFile  = "results.csv"
)

// Manifest records what a plan run produced.
type Manifest struct {
	Plan      string        `json:"plan"`
	Input     string        `json:"input"`
	Size      int           `json:"size"`
	Timestamp time.Time     `json:"timestamp"`
	Frames    int           `json:"frames"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

var resultsHeader = []string{"job", "output", "scheme", "zoom", "width", "offset", "stride", "entropy", "millis"}

// WriteManifest stores manifest.json and results.csv under dir.
func WriteManifest(dir string, plan *Plan, file *source.File, results []Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	m := Manifest{
		Plan:      plan.Name,
		Input:     file.Path,
		Size:      file.Len(),
		Timestamp: time.Now(),
		Frames:    len(results),
	}
	for _, r := range results {
		m.Elapsed += r.Duration
	}

	metaFile, err := os.Create(filepath.Join(dir, manifestFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(dir, resultsFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(resultsHeader); err != nil {
		return err
	}
	for _, r := range results {
		s := r.Settings
		row := []string{
			r.Job,
			r.Output,
			s.Scheme.String(),
			strconv.Itoa(s.Zoom),
			strconv.Itoa(s.RowWidth),
			strconv.Itoa(s.BaseOffset()),
			strconv.Itoa(s.Stride),
			strconv.FormatFloat(r.Entropy, 'f', 6, 64),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// LoadManifest reads the manifest.json written by WriteManifest.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadResults reads results.csv back as rows keyed by column name.
func LoadResults(dir string) ([]map[string]string, error) {
	f, err := os.Open(filepath.Join(dir, resultsFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []map[string]string{}, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
