package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	htmltree "github.com/dpotapov/go-htmltree"
)

const testDoc = `<html><body>
<nav><a href="/" class="nav active">Home</a><a href="/docs" class="nav">Docs</a></nav>
<main id="content"><div class="card"><h2>Title</h2><p>Body <a href="https://example.com">link</a></p></div></main>
</body></html>`

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHtmlq(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "tag",
			args: []string{"a"},
			want: "a.nav.active \"Home\"\na.nav \"Docs\"\na \"link\"\n",
		},
		{
			name: "chain",
			args: []string{"main div.card a"},
			want: "a \"link\"\n",
		},
		{
			name: "id",
			args: []string{"#content"},
			want: "main#content\n",
		},
		{
			name: "where",
			args: []string{"a", "--where", `attr("href") startsWith "/"`},
			want: "a.nav.active \"Home\"\na.nav \"Docs\"\n",
		},
		{
			name: "dump",
			args: []string{"div.card", "--dump", "--max-depth", "2"},
			want: "<div class=\"card\">\n  <h2>Title</h2>\n  <p>Body...</p>\n</div>\n",
		},
		{
			name: "no matches",
			args: []string{"table"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCmd(t, testDoc, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestHtmlq_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(testDoc), 0o644))

	stdout, _, err := runCmd(t, "", "h2", path)
	require.NoError(t, err)
	assert.Equal(t, "h2 \"Title\"\n", stdout)

	_, _, err = runCmd(t, "", "h2", filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
}

func TestHtmlq_Verbose(t *testing.T) {
	_, stderr, err := runCmd(t, "</div><p>x</p>", "p", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Unbalanced closing fragment")
	assert.Contains(t, stderr, "Query done")
}

func TestHtmlq_Errors(t *testing.T) {
	_, _, err := runCmd(t, testDoc, "div..card")
	require.ErrorIs(t, err, htmltree.ErrInvalidSelector)

	_, _, err = runCmd(t, testDoc, "a", "--where", "Nope")
	require.Error(t, err)

	_, _, err = runCmd(t, testDoc)
	require.Error(t, err)
}
