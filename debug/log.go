package debug

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var sprintf = func() func(format string, a ...any) string {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return color.New(color.FgHiBlack).Sprintf
	}
	return fmt.Sprintf
}()

// Logf writes one debug line to stderr, dimmed when stderr is a
// terminal.
func Logf(msg string, args ...any) {
	fmt.Fprint(os.Stderr, sprintf(msg, args...))
}
