// Package registry holds the set of recognised language codes and the rule
// that turns a free-form header label into one of them.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidRegistry indicates a registry definition that cannot be used.
var ErrInvalidRegistry = errors.New("invalid language registry")

// Entry is one recognised language.
type Entry struct {
	// Code is the canonical code, e.g. "ENGB". It is normalized on load.
	Code string `yaml:"code" json:"code"`
	// Name is a human readable name, e.g. "English (United Kingdom)".
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// Aliases are further header labels that denote this language.
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Registry is an immutable set of language codes plus a normalization rule.
type Registry struct {
	normalize func(string) string
	entries   map[string]Entry
	// labels maps every normalized code and alias to its code.
	labels map[string]string
}

// Option configures a Registry.
type Option func(*Registry)

// WithNormalizer replaces the default label normalization rule.
func WithNormalizer(fn func(string) string) Option {
	return func(r *Registry) {
		if fn != nil {
			r.normalize = fn
		}
	}
}

// Normalize is the default normalization rule: compatibility-fold the label,
// uppercase it and drop everything that is not a letter or a digit.
func Normalize(label string) string {
	// A Caser keeps state, so each call gets its own.
	folded := cases.Upper(language.Und).String(norm.NFKC.String(label))
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, folded)
}

// New builds a registry from entries.
func New(entries []Entry, opts ...Option) (*Registry, error) {
	r := &Registry{
		normalize: Normalize,
		entries:   make(map[string]Entry, len(entries)),
		labels:    make(map[string]string, len(entries)),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, e := range entries {
		code := r.normalize(e.Code)
		if code == "" {
			return nil, fmt.Errorf("%w: empty code for entry %q", ErrInvalidRegistry, e.Name)
		}
		if _, dup := r.entries[code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %s", ErrInvalidRegistry, code)
		}
		e.Code = code
		r.entries[code] = e
	}

	// Codes take precedence over aliases so an alias can never shadow a code.
	for code := range r.entries {
		r.labels[code] = code
	}
	for code, e := range r.entries {
		for _, alias := range e.Aliases {
			key := r.normalize(alias)
			if key == "" {
				continue
			}
			if owner, taken := r.labels[key]; taken && owner != code {
				return nil, fmt.Errorf("%w: alias %q of %s already denotes %s", ErrInvalidRegistry, alias, code, owner)
			}
			r.labels[key] = code
		}
	}

	if len(r.entries) == 0 {
		return nil, fmt.Errorf("%w: no languages", ErrInvalidRegistry)
	}
	return r, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// registries built from literals.
func MustNew(entries []Entry, opts ...Option) *Registry {
	r, err := New(entries, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Normalize applies the registry's normalization rule to label.
func (r *Registry) Normalize(label string) string {
	return r.normalize(label)
}

// Lookup returns the code a header label denotes.
func (r *Registry) Lookup(label string) (string, bool) {
	key := r.normalize(label)
	if key == "" {
		return "", false
	}
	code, ok := r.labels[key]
	return code, ok
}

// Name returns the display name of code, falling back to the code itself.
func (r *Registry) Name(code string) string {
	if e, ok := r.entries[r.normalize(code)]; ok && e.Name != "" {
		return e.Name
	}
	return code
}

// Codes returns all codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.entries))
	for code := range r.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of languages.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Tag returns the BCP 47 language tag of code, taken from the first alias
// that parses as one. It falls back to the code itself.
func (r *Registry) Tag(code string) string {
	e, ok := r.entries[r.normalize(code)]
	if !ok {
		return code
	}
	for _, alias := range e.Aliases {
		if tag, err := language.Parse(alias); err == nil {
			return tag.String()
		}
	}
	return e.Code
}
