package htmltree

import (
	"io"
	"log/slog"
	"regexp"
	"strings"
)

const (
	// endOfDocumentPrefix marks the end of the meaningful fragment stream.
	endOfDocumentPrefix = "html/"
	closingPrefix       = "/"
	selfClosingSuffix   = "/"
)

// attributeRegex matches key="value" pairs of an opening fragment. Values cannot contain quotes.
var attributeRegex = regexp.MustCompile(`([A-Za-z_:][-A-Za-z0-9_:.]*)="([^"]*)"`)

// Builder builds element trees from fragment streams.
type Builder struct {
	// Catalog classifies the first word of each fragment. If not set, DefaultCatalog is used.
	Catalog Catalog

	// Logger receives debug events about absorbed input. If not set, nothing is logged.
	Logger *slog.Logger
}

// Build builds a tree from fragments using the given catalog, or DefaultCatalog if catalog is
// nil. See Builder.Build.
func Build(fragments []string, catalog Catalog) *Element {
	b := &Builder{Catalog: catalog}
	return b.Build(fragments)
}

// Build consumes the fragments in order and returns the synthetic root of the resulting tree.
//
// Each fragment is an opening tag ("div id=\"a\""), a closing tag ("/div"), the end-of-document
// marker ("html/...") or text for the currently open element. Build never fails: a closing
// fragment at the root is ignored and a word that is not in the catalog is taken as text.
func (b *Builder) Build(fragments []string) *Element {
	catalog := b.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	root := NewElement("")
	cur := root

	for i, frag := range fragments {
		word := firstWord(frag)

		switch {
		case strings.HasPrefix(word, endOfDocumentPrefix):
			logger.Debug("End of document", "index", i, "ignored", len(fragments)-i-1)
			return root
		case strings.HasPrefix(word, closingPrefix):
			if cur.Parent == nil {
				logger.Debug("Unbalanced closing fragment", "index", i, "fragment", frag)
				continue
			}
			cur = cur.Parent
		case catalog.IsElement(word):
			n := newElementFromFragment(word, frag)
			cur.AppendChild(n)
			selfClosing := strings.HasSuffix(strings.TrimRight(frag, whitespace), selfClosingSuffix) ||
				catalog.IsSelfClosing(word)
			if !selfClosing {
				cur = n
			}
		default:
			cur.Text = frag
		}
	}

	return root
}

const whitespace = " \t\r\n\f"

// firstWord returns the leading whitespace-delimited word of s, or "" if s is blank.
func firstWord(s string) string {
	s = strings.TrimLeft(s, whitespace)
	if i := strings.IndexAny(s, whitespace); i != -1 {
		return s[:i]
	}
	return s
}

// newElementFromFragment creates the element for an opening fragment whose first word is name.
func newElementFromFragment(name, frag string) *Element {
	n := NewElement(name)

	rest := strings.TrimLeft(frag, whitespace)
	rest = strings.TrimPrefix(rest, name)

	var hasClass, hasID bool
	for _, m := range attributeRegex.FindAllStringSubmatch(rest, -1) {
		key, val := m[1], m[2]
		switch key {
		case "class":
			if !hasClass {
				hasClass = true
				for _, c := range strings.Split(val, " ") {
					if c != "" {
						n.Classes = append(n.Classes, c)
					}
				}
			}
		case "id":
			if !hasID {
				hasID = true
				n.ID = firstWord(val)
			}
		default:
			n.Attributes = append(n.Attributes, key+`="`+val+`"`)
		}
	}

	return n
}
