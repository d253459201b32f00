package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

// Echo writes its arguments joined by single spaces, with a trailing newline.
func Echo(p *interp.Proc) int {
	fmt.Fprintln(p.Stdout(), strings.Join(p.Args()[1:], " "))
	return 0
}

var printfEscapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

// Printf implements a reduced printf: %s and %d positional substitution and
// the \n and \t escapes. The format is not repeated for extra operands and
// there is no trailing newline.
func Printf(p *interp.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		fmt.Fprintln(p.Stderr(), "printf: missing format string")
		return 1
	}

	format := printfEscapes.Replace(args[0])
	operands := args[1:]

	var out strings.Builder
	next := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			out.WriteByte(format[i])
			continue
		}
		switch format[i+1] {
		case 's':
			if next < len(operands) {
				out.WriteString(operands[next])
				next++
			}
			i++
		case 'd':
			if next < len(operands) {
				n, err := strconv.Atoi(operands[next])
				if err != nil {
					n = 0
				}
				out.WriteString(strconv.Itoa(n))
				next++
			} else {
				out.WriteString("0")
			}
			i++
		case '%':
			out.WriteByte('%')
			i++
		default:
			out.WriteByte(format[i])
		}
	}

	fmt.Fprint(p.Stdout(), out.String())
	return 0
}

var (
	_ interp.ProcessFunc = Echo
	_ interp.ProcessFunc = Printf
)

func init() {
	register("echo", Echo)
	register("printf", Printf)
}
