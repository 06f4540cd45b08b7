package renderer

import (
	"bytes"
	"io"
	"strings"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// Join concatenates rendered sections, skipping the empty ones.
func Join(sections ...string) string {
	var b strings.Builder
	for _, s := range sections {
		ConditionalBlock(&b, func(w io.Writer) bool {
			if strings.TrimSpace(s) == "" {
				return false
			}
			io.WriteString(w, strings.TrimRight(s, "\n"))
			io.WriteString(w, "\n\n")
			return true
		})
	}
	return b.String()
}
