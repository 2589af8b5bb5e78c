package registry

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// fileFormat is the on-disk layout of a registry file:
//
//	languages:
//	  - code: ENGB
//	    name: English (United Kingdom)
//	    aliases: [EN-GB]
type fileFormat struct {
	Languages []Entry `yaml:"languages"`
}

// Parse builds a registry from YAML data.
func Parse(data []byte, opts ...Option) (*Registry, error) {
	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}
	return New(ff.Languages, opts...)
}

// LoadFile reads a YAML registry file.
func LoadFile(path string, opts ...Option) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	r, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Marshal encodes the registry in the file format accepted by Parse.
func (r *Registry) Marshal() ([]byte, error) {
	ff := fileFormat{Languages: make([]Entry, 0, len(r.entries))}
	for _, code := range r.Codes() {
		ff.Languages = append(ff.Languages, r.entries[code])
	}
	return yaml.Marshal(ff)
}
