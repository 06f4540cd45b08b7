package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// wordWrap is the width markdown is wrapped at in the terminal.
const wordWrap = 100

// printMarkdown prints md to stdout, styled when stdout is a terminal.
func printMarkdown(md string) {
	f, ok := stdout.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Warning: cannot style markdown: %v\n", err)
	fmt.Fprint(stdout, md)
}
