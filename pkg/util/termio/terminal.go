package termio

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal checks whether standard output is connected to an actual
// terminal, rather than (say) a pipe or a file.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width (in characters) of the terminal connected
// to standard output.  When there is no terminal, the given default width is
// returned instead.
func TerminalWidth(dflt uint) uint {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return dflt
	}
	//
	return uint(w)
}
