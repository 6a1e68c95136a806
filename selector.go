package htmltree

import "strings"

// Selector is one step of a chained query. Empty fields match anything.
type Selector struct {
	// TagName is the required element name, compared exactly.
	TagName string

	// ID is the required element id, compared exactly.
	ID string

	// Classes must all be present on the element, compared case-insensitively.
	Classes []string

	// Child is searched for anywhere in the subtree of an element matched by this step
	// (descendant combinator). If nil, matches of this step are results.
	Child *Selector
}

// Matches reports whether e satisfies this step alone. Child is not considered.
func (s *Selector) Matches(e *Element) bool {
	if s == nil || e == nil {
		return false
	}
	if s.TagName != "" && e.Name != s.TagName {
		return false
	}
	if s.ID != "" && e.ID != s.ID {
		return false
	}
	for _, c := range s.Classes {
		if !e.HasClass(c) {
			return false
		}
	}
	return true
}

// String renders the selector chain in query form, e.g. "div.card span".
func (s *Selector) String() string {
	var b strings.Builder
	for step := s; step != nil; step = step.Child {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(step.TagName)
		if step.ID != "" {
			b.WriteByte('#')
			b.WriteString(step.ID)
		}
		for _, c := range step.Classes {
			b.WriteByte('.')
			b.WriteString(c)
		}
		if step.TagName == "" && step.ID == "" && len(step.Classes) == 0 {
			b.WriteByte('*')
		}
	}
	return b.String()
}

// Find returns the elements at or below root matched by the whole selector chain, in the order
// they were first discovered. No element is returned twice. Find(root, nil) returns nil.
func Find(root *Element, sel *Selector) []*Element {
	if root == nil || sel == nil {
		return nil
	}
	var results []*Element
	seen := make(map[*Element]struct{})
	findRecursive(root, sel, seen, &results)
	return results
}

// Find is a shorthand for Find(e, sel).
func (e *Element) Find(sel *Selector) []*Element {
	return Find(e, sel)
}

// findRecursive walks the subtree of cur, including cur itself, in breadth-first order.
func findRecursive(cur *Element, sel *Selector, seen map[*Element]struct{}, results *[]*Element) {
	for d := range cur.Descendants() {
		if !sel.Matches(d) {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}

		if sel.Child == nil {
			*results = append(*results, d)
		} else {
			findRecursive(d, sel.Child, seen, results)
		}
	}
}
