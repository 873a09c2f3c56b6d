package cliutil

import (
	"fmt"
	"io"
	"strings"
)

// HelpOption describes one flag entry in the column-aligned help listing
// PrintHelp renders.
type HelpOption struct {
	Short byte
	Long  string
	Help  string
}

// gutterWidth is the width reserved for the long flag name: the help text
// is padded by gutterWidth-len(long) spaces, so it starts at the same
// column for every long name of at most gutterWidth characters.
const gutterWidth = 9

// PrintHelp writes a usage summary, description, and column-aligned
// options list to w, reproducing print_help's fixed 9-column gutter
// before each option's help text.
func PrintHelp(w io.Writer, name, description string, opts []HelpOption) {
	fmt.Fprintf(w, "usage: %s", name)
	for _, o := range opts {
		fmt.Fprintf(w, " [-%c]", o.Short)
	}
	fmt.Fprintf(w, "\n\n%s\n\n", description)

	fmt.Fprintln(w, "options:")
	for _, o := range opts {
		prefix := fmt.Sprintf("  -%c, --%s", o.Short, o.Long)
		fmt.Fprintf(w, "%s%s%s\n", prefix, strings.Repeat(" ", max(gutterWidth-len(o.Long), 0)), o.Help)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
