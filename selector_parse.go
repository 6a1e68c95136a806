package htmltree

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidSelector is returned (wrapped) by ParseSelector for malformed queries.
var ErrInvalidSelector = errors.New("invalid selector")

// selectorNameRegex matches tag names, ids and class names accepted in a query.
var selectorNameRegex = regexp.MustCompile(`^[-A-Za-z0-9_:]+$`)

// ParseSelector parses a query such as "div#main.card span" into a selector chain.
// Space separated steps form a descendant chain; each step combines an optional tag name,
// at most one #id and any number of .class parts. "*" is an explicit wildcard tag.
func ParseSelector(query string) (*Selector, error) {
	steps := strings.Fields(query)
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidSelector)
	}

	var head, tail *Selector
	for _, step := range steps {
		s, err := parseStep(step)
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = s
		} else {
			tail.Child = s
		}
		tail = s
	}
	return head, nil
}

// MustParseSelector is like ParseSelector but panics if the query cannot be parsed.
func MustParseSelector(query string) *Selector {
	s, err := ParseSelector(query)
	if err != nil {
		panic(err)
	}
	return s
}

// parseStep parses one compound step like "tag#id.class1.class2".
func parseStep(step string) (*Selector, error) {
	s := &Selector{}

	// split into parts, each introduced by '#' or '.', the first one possibly bare
	start := 0
	for i := 0; i <= len(step); i++ {
		if i < len(step) && step[i] != '#' && step[i] != '.' {
			continue
		}
		if i == 0 {
			continue
		}
		if err := s.addPart(step[start:i], start == 0); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidSelector, step, err)
		}
		start = i
	}
	return s, nil
}

func (s *Selector) addPart(part string, first bool) error {
	var kind byte
	if part[0] == '#' || part[0] == '.' {
		kind, part = part[0], part[1:]
	}

	if kind == 0 && first && part == "*" {
		return nil
	}
	if part == "" {
		return errors.New("empty name")
	}
	if !selectorNameRegex.MatchString(part) {
		return fmt.Errorf("bad name %q", part)
	}

	switch kind {
	case '#':
		if s.ID != "" {
			return errors.New("more than one id")
		}
		s.ID = part
	case '.':
		s.Classes = append(s.Classes, part)
	default:
		s.TagName = part
	}
	return nil
}
