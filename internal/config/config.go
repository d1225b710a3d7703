// Package config loads and saves integration job configuration as JSON,
// the same file-per-job persistence style the project file format uses.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File describes one integration job: where the inputs live on disk and
// which corrections and output geometry to apply. Paths are stored
// relative to the config file itself; Load keeps them as written, and the
// Get*Path methods resolve them against the config file's directory.
type File struct {
	Version int `json:"version"`

	ImagePath string `json:"image"`
	MaskPath  string `json:"mask,omitempty"`
	DarkPath  string `json:"dark,omitempty"`
	FlatPath  string `json:"flat,omitempty"`

	Pos0Range *[2]float64 `json:"pos0_range,omitempty"`
	Pos1Range *[2]float64 `json:"pos1_range,omitempty"`
	Dummy     *float64    `json:"dummy,omitempty"`
	DeltaDummy *float64   `json:"delta_dummy,omitempty"`

	Bins  int `json:"bins"`
	Bins1 int `json:"bins1,omitempty"` // 0 selects 1D integration

	Workers int `json:"workers,omitempty"`

	OutputPath string `json:"output"`
}

// New returns a File with the defaults an integration job starts from.
func New(imagePath string, bins int) *File {
	return &File{
		Version:   1,
		ImagePath: imagePath,
		Bins:      bins,
	}
}

// Load reads a job config from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the job config to path as indented JSON.
func (f *File) Save(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// resolve returns p unchanged if absolute, or joined against configPath's
// directory otherwise. Every Get*Path method below uses it so job configs
// can be moved alongside their input files without editing paths.
func resolve(configPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}

func (f *File) GetImagePath(configPath string) string { return resolve(configPath, f.ImagePath) }
func (f *File) GetMaskPath(configPath string) string   { return resolve(configPath, f.MaskPath) }
func (f *File) GetDarkPath(configPath string) string   { return resolve(configPath, f.DarkPath) }
func (f *File) GetFlatPath(configPath string) string   { return resolve(configPath, f.FlatPath) }
func (f *File) GetOutputPath(configPath string) string { return resolve(configPath, f.OutputPath) }
