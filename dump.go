package htmltree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
)

// DumpOptions configures Dump.
type DumpOptions struct {
	// MaxDepth limits the rendered depth. Children of elements at MaxDepth are replaced by a
	// "..." marker. Zero means no limit.
	MaxDepth int

	// Indent is the number of spaces per level. If not set, 2 is used.
	Indent int
}

// Dump writes the tree under root as indented XML. It is a debugging aid and its output format
// is not stable. The synthetic root is not rendered, only its text and children.
func Dump(w io.Writer, root *Element, opts DumpOptions) error {
	doc := etree.NewDocument()
	if root.Text != "" {
		doc.AddChild(etree.NewText(root.Text))
	}
	addChildren(&doc.Element, root, 1, opts.MaxDepth)

	indent := opts.Indent
	if indent <= 0 {
		indent = 2
	}
	doc.Indent(indent)

	s, err := doc.WriteToString()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strings.TrimRight(s, "\n")+"\n")
	return err
}

// DumpElements writes each element of elems as its own XML fragment, one after another.
func DumpElements(w io.Writer, elems []*Element, opts DumpOptions) error {
	for _, e := range elems {
		// the wrapper only lists e, it does not become its parent
		wrapper := &Element{Children: []*Element{e}}
		if err := Dump(w, wrapper, opts); err != nil {
			return err
		}
	}
	return nil
}

func addChildren(dst *etree.Element, src *Element, depth, maxDepth int) {
	if maxDepth > 0 && depth > maxDepth {
		if len(src.Children) > 0 {
			dst.AddChild(etree.NewText("..."))
		}
		return
	}
	for _, c := range src.Children {
		dst.AddChild(toXML(c, depth, maxDepth))
	}
}

// toXML converts a single element and its subtree.
func toXML(e *Element, depth, maxDepth int) *etree.Element {
	el := etree.NewElement(e.Name)
	if e.ID != "" {
		el.CreateAttr("id", e.ID)
	}
	if v, ok := e.Attr("class"); ok {
		el.CreateAttr("class", v)
	}
	for _, a := range e.Attributes {
		k, v, _ := splitAttribute(a)
		el.CreateAttr(k, v)
	}
	if e.Text != "" {
		el.AddChild(etree.NewText(e.Text))
	}
	addChildren(el, e, depth+1, maxDepth)
	return el
}
