package notify

import (
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

// minWrapWidth guards against absurdly narrow terminals; below this width
// wrapping does more harm than good.
const minWrapWidth = 40

// wrapForWriter wraps content at the writer's terminal width, accounting for
// the leading symbol. Non-terminal writers (buffers, pipes, files) are left
// untouched so captured output stays stable in tests and scripts.
func wrapForWriter(content string, writer io.Writer, symbol string) string {
	width := terminalWidth(writer)
	if width < minWrapWidth {
		return content
	}

	limit := width - len([]rune(symbol))

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if len([]rune(line)) > limit {
			lines[i] = wordwrap.WrapString(line, uint(limit)) //nolint:gosec // limit >= minWrapWidth.
		}
	}

	return strings.Join(lines, "\n")
}

// terminalWidth returns the column width of the writer's terminal, or 0 when
// the writer is not a terminal.
func terminalWidth(writer io.Writer) int {
	file, ok := writer.(*os.File)
	if !ok {
		return 0
	}

	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}
