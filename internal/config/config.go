// Package config loads default flag values for the merge command from a
// YAML file.
//
// Example file:
//
//	dir: scans
//	pattern: "scan-*.pdf"
//	sort: date
//	output: scans.pdf
//	yes: true
//
// Paths are used as written; "~" is not expanded.
// Values only fill in flags that were not given on the command line.
package config

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/pdfmerge/pdfmerge/pdferrors"
)

// File holds the values read from a config file. Nil fields were absent.
type File struct {
	Dir     *string `yaml:"dir"`
	Pattern *string `yaml:"pattern"`
	Sort    *string `yaml:"sort"`
	Output  *string `yaml:"output"`
	Yes     *bool   `yaml:"yes"`
	Strict  *bool   `yaml:"strict"`
	Verbose *bool   `yaml:"verbose"`
	NoColor *bool   `yaml:"no_color"`
}

// flagNames maps config keys to the flag names bound to the same value.
var flagNames = map[string][]string{
	"dir":      {"dir", "d"},
	"pattern":  {"pattern", "p"},
	"sort":     {"sort", "s"},
	"output":   {"output", "o"},
	"yes":      {"yes", "y"},
	"strict":   {"strict"},
	"verbose":  {"verbose", "v"},
	"no_color": {"no-color"},
}

// Keys returns the recognized config keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(flagNames))
	for k := range flagNames {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Load reads and parses the config file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pdferrors.UsageError{Option: "--config", Value: path, Message: "cannot read config file", Cause: err}
	}
	f, err := Parse(data)
	if err != nil {
		return nil, &pdferrors.UsageError{Option: "--config", Value: path, Cause: err}
	}
	return f, nil
}

// Parse decodes a config document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	for key := range raw {
		if _, ok := flagNames[key]; !ok {
			return nil, fmt.Errorf("unknown key %q (valid keys: %v)", key, Keys())
		}
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return &f, nil
}

// values returns the string form of every present field, keyed by config key.
func (f *File) values() map[string]string {
	out := make(map[string]string)
	str := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	boolean := func(key string, v *bool) {
		if v != nil {
			out[key] = strconv.FormatBool(*v)
		}
	}
	str("dir", f.Dir)
	str("pattern", f.Pattern)
	str("sort", f.Sort)
	str("output", f.Output)
	boolean("yes", f.Yes)
	boolean("strict", f.Strict)
	boolean("verbose", f.Verbose)
	boolean("no_color", f.NoColor)
	return out
}

// Apply sets every flag in fs that has a value in f and was not set on the
// command line. fs must already be parsed.
func Apply(fs *flag.FlagSet, f *File) error {
	if f == nil {
		return nil
	}
	explicit := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })

	for key, value := range f.values() {
		names := flagNames[key]
		if slices.ContainsFunc(names, func(n string) bool { return explicit[n] }) {
			continue
		}
		if fs.Lookup(names[0]) == nil {
			continue
		}
		if err := fs.Set(names[0], value); err != nil {
			return &pdferrors.UsageError{Option: "--config", Value: value, Message: "invalid value for " + key, Cause: err}
		}
	}
	return nil
}
