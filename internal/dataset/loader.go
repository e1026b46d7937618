package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("dataset not found")

// Format is the on-disk encoding of a dataset.
type Format string

const (
	FormatTOML Format = "toml"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "", "toml" or "csv"; the empty string means "detect".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatTOML, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want toml or csv)", s)
	}
}

// DetectFormat picks CSV for ".csv" files and TOML for everything else.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatTOML
}

// LoadDataset reads the dataset at path, choosing the format from the file
// extension.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := Read(f, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Read decodes a dataset from r and validates it.
func Read(r io.Reader, format Format) (*Dataset, error) {
	var (
		ds  *Dataset
		err error
	)
	switch format {
	case FormatCSV:
		ds, err = ReadCSV(r)
	default:
		ds = &Dataset{}
		_, err = toml.NewDecoder(r).Decode(ds)
	}
	if err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// ReadCSV parses rows of "label,value[,display]". Lines starting with '#' are
// comments. A first row whose value column is not a number is a header.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	ds := &Dataset{}
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: expected label,value[,display], got %d fields", row, len(rec))
		}
		v, err := decimal.NewFromString(strings.TrimSpace(rec[1]))
		if err != nil {
			if row == 1 {
				continue
			}
			return nil, fmt.Errorf("row %d: value %q: %w", row, rec[1], err)
		}
		p := Point{Label: strings.TrimSpace(rec[0]), Value: NewValue(v)}
		if len(rec) > 2 {
			p.Display = strings.TrimSpace(rec[2])
		}
		ds.Points = append(ds.Points, p)
	}
	return ds, nil
}

// SaveDataset writes ds to a TOML file at path.
func SaveDataset(ds *Dataset, path string) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(ds)
}

// ListDatasets returns the base names (without .toml extension) of all TOML
// files found in dir.
func ListDatasets(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".toml") {
			name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			names = append(names, name)
		}
	}
	return names, nil
}

// Resolve maps a command-line argument to a file: an existing path is used
// as is, otherwise the name is looked up in dir.
func Resolve(nameOrPath, dir string) (string, error) {
	if fi, err := os.Stat(nameOrPath); err == nil && !fi.IsDir() {
		return nameOrPath, nil
	}
	if dir != "" {
		path := filepath.Join(dir, nameOrPath+".toml")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, nameOrPath)
}
