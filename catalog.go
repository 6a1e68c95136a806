package htmltree

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Catalog classifies words of the fragment stream. It is queried by membership only.
type Catalog interface {
	// IsElement reports whether name is a recognized element name.
	IsElement(name string) bool
	// IsSelfClosing reports whether elements named name never have children.
	IsSelfClosing(name string) bool
}

// TagSet is a Catalog backed by two sets of names.
type TagSet struct {
	all         map[string]struct{}
	selfClosing map[string]struct{}
}

var _ Catalog = (*TagSet)(nil)

// NewTagSet creates a TagSet. Self-closing names are recognized elements as well.
func NewTagSet(all, selfClosing []string) *TagSet {
	ts := &TagSet{
		all:         make(map[string]struct{}, len(all)+len(selfClosing)),
		selfClosing: make(map[string]struct{}, len(selfClosing)),
	}
	for _, name := range all {
		ts.all[name] = struct{}{}
	}
	for _, name := range selfClosing {
		ts.all[name] = struct{}{}
		ts.selfClosing[name] = struct{}{}
	}
	return ts
}

func (ts *TagSet) IsElement(name string) bool {
	_, ok := ts.all[name]
	return ok
}

func (ts *TagSet) IsSelfClosing(name string) bool {
	_, ok := ts.selfClosing[name]
	return ok
}

// catalogFile is the JSON layout of a catalog data file.
type catalogFile struct {
	All         []string `json:"all"`
	SelfClosing []string `json:"selfClosing"`
}

// LoadCatalog decodes a catalog from JSON of the form {"all": [...], "selfClosing": [...]}.
func LoadCatalog(r io.Reader) (*TagSet, error) {
	var f catalogFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewTagSet(f.All, f.SelfClosing), nil
}

//go:embed tags.json
var defaultTags []byte

var (
	defaultCatalog     *TagSet
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the catalog of HTML element names shipped with the package.
func DefaultCatalog() Catalog {
	defaultCatalogOnce.Do(func() {
		ts, err := LoadCatalog(bytes.NewReader(defaultTags))
		if err != nil {
			panic("htmltree: embedded tags.json: " + err.Error())
		}
		defaultCatalog = ts
	})
	return defaultCatalog
}
