package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	guuid "github.com/google/uuid"

	"github.com/garlicgarrison/knights-tour/notation"
	"github.com/garlicgarrison/knights-tour/tour"
)

type Record struct {
	ID       guuid.UUID `json:"id"`
	Rows     int        `json:"rows"`
	Cols     int        `json:"cols"`
	Start    string     `json:"start"`
	Path     []string   `json:"path"`
	Moves    int        `json:"moves"`
	Complete bool       `json:"complete"`
}

type Records struct {
	Tours []Record `json:"tours"`
}

// New describes a finished tour under a fresh id. The start and path
// squares are named with notation.Path.
func New(rows, cols int, res tour.Result) Record {
	path := notation.Path(res.Path, rows, cols)
	var start string
	if len(path) > 0 {
		start = path[0]
	}

	return Record{
		ID:       guuid.New(),
		Rows:     rows,
		Cols:     cols,
		Start:    start,
		Path:     path,
		Moves:    res.Moves,
		Complete: res.Complete,
	}
}

// Read loads the records in path. A missing file holds no records.
func Read(path string) (*Records, error) {
	rs := &Records{}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return rs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	if err := json.Unmarshal(b, rs); err != nil {
		return nil, fmt.Errorf("unmarshal records %s: %w", path, err)
	}
	return rs, nil
}

// Append adds rec to the records file at path, creating it when missing.
func Append(path string, rec Record) error {
	rs, err := Read(path)
	if err != nil {
		return err
	}
	rs.Tours = append(rs.Tours, rec)

	b, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}
