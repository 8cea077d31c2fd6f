package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

// withProgress runs fn between a "label..." prefix and its outcome, so a
// slow step never looks hung. Output is skipped for --json and when
// progress is disabled through flag or environment.
func withProgress(out io.Writer, label string, fn func() error) error {
	if !progressEnabled() {
		return fn()
	}

	fmt.Fprintf(out, "%s... ", label)
	started := time.Now()
	err := fn()
	if err != nil {
		fmt.Fprintln(out, "failed")
		return err
	}
	fmt.Fprintf(out, "ok (%s)\n", formatDuration(time.Since(started)))
	return nil
}

func progressEnabled() bool {
	if IsJSONOutput() || noProgress {
		return false
	}
	for _, name := range []string{"DOCSPINE_NO_PROGRESS", "NO_PROGRESS"} {
		if envEnabled(name) {
			return false
		}
	}
	return true
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.String()
	case d < time.Second:
		return d.Round(10 * time.Millisecond).String()
	default:
		return d.Round(100 * time.Millisecond).String()
	}
}

var lookupEnv = os.LookupEnv
