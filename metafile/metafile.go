// Package metafile implements reading and writing of catalog metadata
// records.
//
// Input records are single-document YAML files with two string fields:
//
//	name: Example Widget
//	description: A widget used for demos
//
// Output records are pretty-printed JSON carrying the original fields plus
// an "i18ns" map of per-language name/description pairs.
package metafile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// MetaExt is the extension of input metadata files.
	MetaExt = ".yaml"
	// OutExt is the extension of written output records.
	OutExt = ".json"
)

// Pair is a localizable name/description pair, the unit exchanged with
// the translation backend and stored per language. Empty strings are
// valid values.
type Pair struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Record is one catalog item. I18ns is empty after Load and is filled in
// by the batch runner before WriteJSON.
type Record struct {
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description" json:"description"`
	I18ns       map[string]Pair `yaml:"-" json:"i18ns"`
}

// Load reads and parses one metadata file.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	rec.I18ns = make(map[string]Pair)
	return &rec, nil
}

// Pair returns the record's source-language pair.
func (r *Record) Pair() Pair {
	return Pair{Name: r.Name, Description: r.Description}
}

// WriteJSON serializes the record with 2-space indentation and writes it
// to path. Map keys sort deterministically, so identical records produce
// identical bytes.
func (r *Record) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// OutputName derives the output file name from an input file name by
// swapping the extension.
func OutputName(name string) string {
	return strings.TrimSuffix(name, MetaExt) + OutExt
}
