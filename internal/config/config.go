// Package config loads detector tuning from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ericlevine/findereye/finder"
)

// ErrInvalid is returned for tuning values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// File is the on-disk shape of a tuning file. Omitted keys keep their
// defaults.
//
//	workers: 8
//	tolerance:
//	  side: 1.5
//	  center: 2.0
//	clustering:
//	  x_gap: 3
//	  y_ratio: 0.428571
type File struct {
	Workers   *int `yaml:"workers"`
	Tolerance struct {
		Side   *float64 `yaml:"side"`
		Center *float64 `yaml:"center"`
	} `yaml:"tolerance"`
	Clustering struct {
		XGap   *float64 `yaml:"x_gap"`
		YRatio *float64 `yaml:"y_ratio"`
	} `yaml:"clustering"`
}

// Load reads the tuning file at path and applies it over finder.DefaultOptions.
func Load(path string) (*finder.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	opts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Parse reads a tuning document from r. Unknown keys are an error.
func Parse(r io.Reader) (*finder.Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var file File
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parse tuning: %w", err)
		}
	}
	return file.Apply(finder.DefaultOptions())
}

// Apply overwrites the fields of opts that are present in the file.
func (f *File) Apply(opts *finder.Options) (*finder.Options, error) {
	if f.Workers != nil {
		if *f.Workers < 0 {
			return nil, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, *f.Workers)
		}
		opts.Workers = *f.Workers
	}
	set := func(dst *float64, src *float64, name string) error {
		if src == nil {
			return nil
		}
		if *src <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalid, name, *src)
		}
		*dst = *src
		return nil
	}
	for _, err := range []error{
		set(&opts.Tolerance.Side, f.Tolerance.Side, "tolerance.side"),
		set(&opts.Tolerance.Center, f.Tolerance.Center, "tolerance.center"),
		set(&opts.Clustering.XGap, f.Clustering.XGap, "clustering.x_gap"),
		set(&opts.Clustering.YRatio, f.Clustering.YRatio, "clustering.y_ratio"),
	} {
		if err != nil {
			return nil, err
		}
	}
	return opts, nil
}
