package htmltree

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// filterEnv is the environment a Where expression is evaluated against.
type filterEnv struct {
	Name       string
	ID         string
	Classes    []string
	Attributes []string
	Text       string
	Depth      int
	ChildCount int

	Attr func(key string) string `expr:"attr"`
}

func newFilterEnv(e *Element) filterEnv {
	return filterEnv{
		Name:       e.Name,
		ID:         e.ID,
		Classes:    e.Classes,
		Attributes: e.Attributes,
		Text:       e.Text,
		Depth:      e.Depth(),
		ChildCount: len(e.Children),
		Attr: func(key string) string {
			v, _ := e.Attr(key)
			return v
		},
	}
}

// Where returns the elements of elems for which the boolean expression is true, keeping their
// order. The expression sees the fields Name, ID, Classes, Attributes, Text, Depth and ChildCount
// of each element and the function attr(key), e.g. `Depth > 2 && attr("href") startsWith "/"`.
// An empty expression keeps every element.
func Where(elems []*Element, expression string) ([]*Element, error) {
	if expression == "" {
		return elems, nil
	}

	prog, err := expr.Compile(expression,
		expr.Env(filterEnv{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile filter: %w", err)
	}

	var out []*Element
	for _, e := range elems {
		env := newFilterEnv(e)
		v, err := expr.Run(prog, env)
		if err != nil {
			return nil, fmt.Errorf("run filter: %w", err)
		}
		if v.(bool) {
			out = append(out, e)
		}
	}
	return out, nil
}
