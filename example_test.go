package htmltree_test

import (
	"fmt"
	"os"

	htmltree "github.com/dpotapov/go-htmltree"
	"github.com/dpotapov/go-htmltree/fragment"
)

// This example demonstrates building a tree from HTML and querying it.
func Example() {
	frags := fragment.SplitString(`
		<div class="card"><p>Intro <span class="title">First</span></p></div>
		<span class="title">Outside</span>
		<div class="card"><span class="Title">Second</span></div>`)

	root := htmltree.Build(frags, htmltree.DefaultCatalog())

	for _, e := range root.Find(htmltree.MustParseSelector("div.card span.title")) {
		fmt.Println(e.Text)
	}
	// Output:
	// First
	// Second
}

func ExampleBuild() {
	root := htmltree.Build([]string{
		`div id="a"`, `span class="x"`, "hello", "/span", "/div", "html/", "ignored",
	}, htmltree.DefaultCatalog())

	span := root.Children[0].Children[0]
	fmt.Println(span.Name, span.Classes, span.Text, span.Parent.ID)
	// Output: span [x] hello a
}

func ExampleDump() {
	root := htmltree.Build(fragment.SplitString(`<ul id="menu"><li>Home</li><li>About</li></ul>`), nil)

	_ = htmltree.Dump(os.Stdout, root, htmltree.DumpOptions{})
	// Output:
	// <ul id="menu">
	//   <li>Home</li>
	//   <li>About</li>
	// </ul>
}
