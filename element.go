// Package htmltree builds an element tree from a flat stream of markup fragments and queries it
// with chained descendant selectors.
package htmltree

import (
	"iter"
	"strings"
)

// Element is a node of the document tree built by Build. The tree is immutable once Build
// returns; nothing in this package mutates it afterwards.
type Element struct {
	// Name is the tag name. The synthetic root has an empty name.
	Name string

	// ID is the first token of the id attribute, empty if there was none.
	ID string

	// Attributes holds the raw key="value" strings of the opening fragment in document order.
	// The class and id attributes are promoted to Classes and ID and are not included.
	Attributes []string

	// Classes holds the class tokens as written. Duplicates and case are preserved.
	Classes []string

	// Text is the last text fragment seen while this element was open.
	Text string

	// Parent is nil for the root only. It does not own the element.
	Parent *Element

	// Children are the owned child elements in document order.
	Children []*Element
}

// NewElement returns a detached element with the given tag name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// IsRoot reports whether e has no parent.
func (e *Element) IsRoot() bool {
	return e.Parent == nil
}

// AppendChild adds a node c as the last child of e.
//
// It will panic if c already has a parent.
func (e *Element) AppendChild(c *Element) {
	if c.Parent != nil {
		panic("htmltree: AppendChild called for an attached child Element")
	}
	c.Parent = e
	e.Children = append(e.Children, c)
}

// Attr returns the value of the attribute key. The id and class attributes are answered from
// the promoted fields.
func (e *Element) Attr(key string) (string, bool) {
	switch key {
	case "id":
		return e.ID, e.ID != ""
	case "class":
		return strings.Join(e.Classes, " "), len(e.Classes) > 0
	}
	for _, a := range e.Attributes {
		if k, v, ok := splitAttribute(a); ok && k == key {
			return v, true
		}
	}
	return "", false
}

// HasClass reports whether e carries the class name, compared case-insensitively.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// Depth returns the number of ancestors of e. The root has depth 0.
func (e *Element) Depth() int {
	d := 0
	for range e.Ancestors() {
		d++
	}
	return d
}

// Descendants returns a breadth-first sequence over e and everything below it, starting with e
// itself. Every iteration starts over with its own queue.
func (e *Element) Descendants() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		queue := []*Element{e}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n) {
				return
			}
			queue = append(queue, n.Children...)
		}
	}
}

// Ancestors returns the sequence of parents of e, nearest first, ending at the root.
func (e *Element) Ancestors() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for p := e.Parent; p != nil; p = p.Parent {
			if !yield(p) {
				return
			}
		}
	}
}

// splitAttribute splits a raw key="value" string.
func splitAttribute(raw string) (key, val string, ok bool) {
	key, val, ok = strings.Cut(raw, "=")
	if !ok {
		return raw, "", false
	}
	return key, strings.Trim(val, `"`), true
}
