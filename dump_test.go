package htmltree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	tests := []struct {
		name  string
		frags []string
		opts  DumpOptions
		want  string
	}{
		{
			name:  "nested",
			frags: []string{`div id="a" data-x="1"`, `span class="x y"`, "hello", "/span", "/div"},
			want: `
			<div id="a" data-x="1">
			  <span class="x y">hello</span>
			</div>
			`,
		},
		{
			name:  "siblings",
			frags: []string{"ul", "li", "one", "/li", "li", "two", "/li", "/ul"},
			want: `
			<ul>
			  <li>one</li>
			  <li>two</li>
			</ul>
			`,
		},
		{
			name:  "max depth",
			frags: []string{"div", "section", "p", "deep", "/p", "/section", "/div"},
			opts:  DumpOptions{MaxDepth: 2},
			want: `
			<div>
			  <section>...</section>
			</div>
			`,
		},
		{
			name:  "indent",
			frags: []string{"div", "br", "/div"},
			opts:  DumpOptions{Indent: 4},
			want: `
			<div>
			    <br/>
			</div>
			`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Build(tt.frags, DefaultCatalog())

			var b strings.Builder
			require.NoError(t, Dump(&b, root, tt.opts))

			got := strings.TrimSpace(b.String())
			want := strings.TrimSpace(removeIndent(tt.want))
			if diff := cmp.Diff(got, want); diff != "" {
				t.Errorf("Dump() diff (-got +want):\n%s", diff)
			}
		})
	}
}

func TestDumpElements(t *testing.T) {
	root := Build([]string{
		"div", `p class="a"`, "first", "/p", "/div",
		"div", `p class="a"`, "second", "/p", "/div",
	}, DefaultCatalog())
	matches := Find(root, MustParseSelector("p.a"))

	var b strings.Builder
	require.NoError(t, DumpElements(&b, matches, DumpOptions{}))

	want := "<p class=\"a\">first</p>\n<p class=\"a\">second</p>"
	if diff := cmp.Diff(strings.TrimSpace(b.String()), want); diff != "" {
		t.Errorf("DumpElements() diff (-got +want):\n%s", diff)
	}

	// the matches keep their real parents
	require.Equal(t, "div", matches[0].Parent.Name)
}
