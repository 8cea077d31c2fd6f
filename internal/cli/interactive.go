package cli

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// IsNonInteractive reports whether the full-screen page must not start:
// --non-interactive, DOCSPINE_NON_INTERACTIVE, or no terminal on both
// stdin and stdout.
func IsNonInteractive() bool {
	if nonInteractive || envEnabled("DOCSPINE_NON_INTERACTIVE") {
		return true
	}
	return !isTerminal(os.Stdin) || !isTerminal(os.Stdout)
}

// IsInteractive reports whether the session can run the page.
func IsInteractive() bool {
	return !IsNonInteractive()
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// envEnabled treats a set variable as true unless it parses as false, so
// both FOO=1 and a bare FOO= switch a behavior on.
func envEnabled(name string) bool {
	value, ok := lookupEnv(name)
	if !ok {
		return false
	}
	if value == "" {
		return true
	}
	enabled, err := strconv.ParseBool(value)
	return err != nil || enabled
}
