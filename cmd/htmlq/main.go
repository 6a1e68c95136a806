// Command htmlq prints the elements of an HTML document matched by a selector.
//
//	htmlq [flags] SELECTOR [FILE]
//
// The document is read from FILE, or from stdin if FILE is omitted or "-".
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	htmltree "github.com/dpotapov/go-htmltree"
	"github.com/dpotapov/go-htmltree/fragment"
)

type options struct {
	where    string
	dump     bool
	maxDepth int
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "htmlq [flags] SELECTOR [FILE]",
		Short: "Query an HTML document with a selector",
		Long: "htmlq builds an element tree from an HTML document and prints the elements " +
			"matched by SELECTOR, e.g. 'div.card span' or '#main a'.",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.where, "where", "w", "", "filter matches with an expression, e.g. 'Depth > 2'")
	cmd.Flags().BoolVarP(&opts.dump, "dump", "d", false, "dump the matched subtrees as XML")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "limit the depth of --dump output (0 = unlimited)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug events to stderr")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	sel, err := htmltree.ParseSelector(args[0])
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 2 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	frags, err := fragment.Split(in)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	logger.Debug("Split document", "fragments", len(frags))

	b := &htmltree.Builder{Logger: logger}
	root := b.Build(frags)

	matches, err := htmltree.Where(root.Find(sel), opts.where)
	if err != nil {
		return err
	}
	logger.Debug("Query done", "selector", sel.String(), "matches", len(matches))

	out := cmd.OutOrStdout()
	if opts.dump {
		return htmltree.DumpElements(out, matches, htmltree.DumpOptions{MaxDepth: opts.maxDepth})
	}
	for _, e := range matches {
		if err := printElement(out, e); err != nil {
			return err
		}
	}
	return nil
}

// printElement writes one line per element: name#id.class1.class2 "text".
func printElement(w io.Writer, e *htmltree.Element) error {
	var b strings.Builder
	b.WriteString(e.Name)
	if e.ID != "" {
		b.WriteString("#" + e.ID)
	}
	for _, c := range e.Classes {
		b.WriteString("." + c)
	}
	if e.Text != "" {
		b.WriteString(" " + strconv.Quote(e.Text))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "htmlq:", err)
		os.Exit(1)
	}
}
