// Package fragment splits raw markup into the flat fragment stream consumed by htmltree.Build.
//
// Opening tags become `name attr="v" ...`, self-closing tags end in " /", closing tags become
// "/name" and text runs are passed through trimmed and undecoded. Comments and doctypes are
// dropped. The tokenizer of golang.org/x/net/html does the lexing, so the source attribute text
// is kept as written.
package fragment

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

const whitespace = " \t\r\n\f"

// Split reads r until EOF and returns its fragments in document order.
func Split(r io.Reader) ([]string, error) {
	z := html.NewTokenizer(r)
	var frags []string
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return frags, err
			}
			return frags, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			frags = append(frags, openingFragment(string(name), z.Raw(), tt == html.SelfClosingTagToken))
		case html.EndTagToken:
			name, _ := z.TagName()
			frags = append(frags, "/"+string(name))
		case html.TextToken:
			if text := strings.Trim(string(z.Raw()), whitespace); text != "" {
				frags = append(frags, text)
			}
		}
	}
}

// SplitString is Split over an in-memory document.
func SplitString(s string) []string {
	// a strings.Reader never fails, so neither does Split
	frags, _ := Split(strings.NewReader(s))
	return frags
}

// openingFragment turns the raw `<Name attrs...>` source into `name attrs...`.
// name is the lowercased tag name reported by the tokenizer.
func openingFragment(name string, raw []byte, selfClosing bool) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(string(raw), "<"), ">")
	if len(inner) >= len(name) {
		inner = inner[len(name):]
	} else {
		inner = ""
	}

	if selfClosing {
		inner = strings.TrimRight(inner, whitespace)
		inner = strings.TrimSuffix(inner, "/")
		inner = strings.TrimRight(inner, whitespace)
		return name + inner + " /"
	}
	return name + strings.TrimRight(inner, whitespace)
}
