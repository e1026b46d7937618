package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const testDatasetTOML = `
title = "Monthly visits"

[[points]]
label = "January"
value = 1562

[[points]]
label = "January"
value = "1239.50"
bar_color = "#0032c8"
value_color = "#ff9600"

[[points]]
label = "Feburary"
value = 2519.25
display = "2.5K"
bar_character = "▒"
`

func TestLoadDataset(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "visits.toml")
	os.WriteFile(path, []byte(testDatasetTOML), 0644)

	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset() error: %v", err)
	}
	if ds.Title != "Monthly visits" {
		t.Errorf("expected title 'Monthly visits', got %q", ds.Title)
	}
	if len(ds.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(ds.Points))
	}
	if got := ds.Points[1].Value.String(); got != "1239.5" {
		t.Errorf("expected value 1239.5, got %s", got)
	}
	if got := ds.Points[2].Value.String(); got != "2519.25" {
		t.Errorf("expected value 2519.25, got %s", got)
	}

	points, err := ds.DataPoints()
	if err != nil {
		t.Fatalf("DataPoints() error: %v", err)
	}
	if c, ok := points[1].BarColor(); !ok || c.Hex() != "#0032c8" {
		t.Errorf("expected bar color #0032c8, got %v (set=%v)", c, ok)
	}
	if r, ok := points[2].BarCharacter(); !ok || r != '▒' {
		t.Errorf("expected bar character '▒', got %q (set=%v)", r, ok)
	}
	if got := points[2].DisplayValue(); got != "2.5K" {
		t.Errorf("expected display '2.5K', got %q", got)
	}
	if _, ok := points[0].BarColor(); ok {
		t.Error("expected first point to use the default bar color")
	}
}

func TestSaveDataset(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "out.toml")

	ds := &Dataset{
		Title: "Saved",
		Points: []Point{
			{Label: "a", Value: NewValue(decimal.RequireFromString("0.1000000000000000000001"))},
			{Label: "b", Value: NewValue(decimal.NewFromInt(42)), BarColor: "#123456"},
		},
	}
	if err := SaveDataset(ds, path); err != nil {
		t.Fatalf("SaveDataset() error: %v", err)
	}

	loaded, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset() error: %v", err)
	}
	if loaded.Title != "Saved" {
		t.Errorf("expected title 'Saved', got %q", loaded.Title)
	}
	if len(loaded.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(loaded.Points))
	}
	if !loaded.Points[0].Value.Equal(ds.Points[0].Value.Decimal) {
		t.Errorf("value lost precision: %s", loaded.Points[0].Value)
	}
	if loaded.Points[1].BarColor != "#123456" {
		t.Errorf("expected bar color '#123456', got %q", loaded.Points[1].BarColor)
	}
}

func TestLoadDatasetMissingValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("[[points]]\nlabel = \"x\"\n"), 0644)

	if _, err := LoadDataset(path); !errors.Is(err, ErrMissingValue) {
		t.Errorf("expected ErrMissingValue, got %v", err)
	}
}

func TestLoadDatasetEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")
	os.WriteFile(path, []byte("title = \"nothing\"\n"), 0644)

	if _, err := LoadDataset(path); !errors.Is(err, ErrNoPoints) {
		t.Errorf("expected ErrNoPoints, got %v", err)
	}
}

func TestLoadDatasetBadValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("[[points]]\nlabel = \"x\"\nvalue = \"lots\"\n"), 0644)

	if _, err := LoadDataset(path); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestDataPointsInvalidStyle(t *testing.T) {
	tests := []Point{
		{Label: "c", Value: NewValue(decimal.NewFromInt(1)), BarColor: "blue"},
		{Label: "v", Value: NewValue(decimal.NewFromInt(1)), ValueColor: "#12"},
		{Label: "r", Value: NewValue(decimal.NewFromInt(1)), BarCharacter: "ab"},
	}
	for _, p := range tests {
		ds := &Dataset{Points: []Point{p}}
		if _, err := ds.DataPoints(); err == nil {
			t.Errorf("point %q: expected error", p.Label)
		}
	}
}

func TestReadCSV(t *testing.T) {
	in := `label,value,display
# comment
January,1562
January, 1239.5
Feburary,2519,"2,519 visits"
`
	ds, err := Read(strings.NewReader(in), FormatCSV)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(ds.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(ds.Points))
	}
	if ds.Points[1].Value.String() != "1239.5" {
		t.Errorf("expected 1239.5, got %s", ds.Points[1].Value)
	}
	if ds.Points[2].Display != "2,519 visits" {
		t.Errorf("expected display '2,519 visits', got %q", ds.Points[2].Display)
	}
}

func TestReadCSVNoHeader(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("a,1\nb,2\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if len(ds.Points) != 2 || ds.Points[0].Label != "a" {
		t.Errorf("unexpected points: %+v", ds.Points)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := map[string]string{
		"bad value":   "a,1\nb,two\n",
		"short row":   "a,1\nb\n",
		"only header": "label,value\n",
	}
	for name, in := range tests {
		if _, err := Read(strings.NewReader(in), FormatCSV); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": "", "CSV": FormatCSV, "toml": FormatTOML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("expected error for yaml")
	}
	if DetectFormat("data/Visits.CSV") != FormatCSV {
		t.Error("expected .CSV to be detected as csv")
	}
	if DetectFormat("visits") != FormatTOML {
		t.Error("expected extensionless files to be toml")
	}
}

func TestListDatasets(t *testing.T) {
	tmp := t.TempDir()
	os.WriteFile(filepath.Join(tmp, "visits.toml"), []byte(""), 0644)
	os.WriteFile(filepath.Join(tmp, "builds.toml"), []byte(""), 0644)
	os.WriteFile(filepath.Join(tmp, "notes.txt"), []byte(""), 0644)
	os.Mkdir(filepath.Join(tmp, "subdir.toml"), 0755)

	names, err := ListDatasets(tmp)
	if err != nil {
		t.Fatalf("ListDatasets() error: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 datasets, got %d: %v", len(names), names)
	}
}

func TestResolve(t *testing.T) {
	tmp := t.TempDir()
	named := filepath.Join(tmp, "visits.toml")
	os.WriteFile(named, []byte(""), 0644)

	got, err := Resolve("visits", tmp)
	if err != nil || got != named {
		t.Errorf("Resolve(name) = %q, %v; want %q", got, err, named)
	}

	got, err = Resolve(named, "")
	if err != nil || got != named {
		t.Errorf("Resolve(path) = %q, %v; want %q", got, err, named)
	}

	if _, err := Resolve("missing", tmp); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
