// Package cliutil holds the small pieces of terminal-facing setup shared
// by the jjy and wwvb commands.
package cliutil

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// ConfigureLogging switches the default logger to plain logfmt output
// when stderr is not an interactive terminal (e.g. redirected to a file
// or piped to another process), so piped/redirected output stays
// machine-parseable instead of carrying ANSI styling.
func ConfigureLogging() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		log.SetFormatter(log.LogfmtFormatter)
	}
}
