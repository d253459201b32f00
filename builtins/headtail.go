package builtins

import (
	"fmt"
	"strconv"

	"github.com/agentary/vshell/core/interp"
)

const defaultLineCount = 10

// Head writes the first N lines (default 10, -n COUNT) of its file operand
// or stdin.
func Head(p *interp.Proc) int {
	return headTail(p, "head", func(in []string, n int) []string {
		if n < len(in) {
			return in[:n]
		}
		return in
	})
}

// Tail writes the last N lines (default 10, -n COUNT) of its file operand
// or stdin.
func Tail(p *interp.Proc) int {
	return headTail(p, "tail", func(in []string, n int) []string {
		if n < len(in) {
			return in[len(in)-n:]
		}
		return in
	})
}

func headTail(p *interp.Proc, name string, pick func([]string, int) []string) int {
	flags, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Value: []string{"n"}})

	count := defaultLineCount
	if raw, ok := flags["n"]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fmt.Fprintf(p.Stderr(), "%s: invalid number of lines: %q\n", name, raw)
			return 1
		}
		count = n
	}

	content, _, err := inputOrStdin(p, operands)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "%s: cannot open '%s' for reading: No such file or directory\n", name, operands[0])
		return 1
	}

	fmt.Fprint(p.Stdout(), joinLines(pick(lines(content), count)))
	return 0
}

var (
	_ interp.ProcessFunc = Head
	_ interp.ProcessFunc = Tail
)

func init() {
	register("head", Head)
	register("tail", Tail)
}
