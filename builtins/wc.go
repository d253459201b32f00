package builtins

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agentary/vshell/core/interp"
)

// Wc writes "lines words chars" for its file operand or stdin. A final line
// terminated by a newline is not double-counted.
func Wc(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Bool: []string{"l", "w", "c"}})

	content, _, err := inputOrStdin(p, operands)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "wc: %s: No such file or directory\n", operands[0])
		return 1
	}

	lineCount := len(lines(content))
	wordCount := len(strings.Fields(content))
	charCount := utf8.RuneCountInString(content)

	fmt.Fprintf(p.Stdout(), "%d %d %d\n", lineCount, wordCount, charCount)
	return 0
}

var _ interp.ProcessFunc = Wc

func init() {
	register("wc", Wc)
}
