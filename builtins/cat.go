package builtins

import (
	"fmt"

	"github.com/agentary/vshell/core/interp"
)

// Cat concatenates the named files to stdout. "-" or no operands reads
// stdin. A missing file fails the whole invocation.
func Cat(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})

	if len(operands) == 0 {
		fmt.Fprint(p.Stdout(), readStdin(p))
		return 0
	}

	var stdin string
	stdinRead := false
	for _, name := range operands {
		if name == "-" {
			if !stdinRead {
				stdin = readStdin(p)
				stdinRead = true
			}
			fmt.Fprint(p.Stdout(), stdin)
			continue
		}
		content, err := p.ReadFile(name)
		if err != nil {
			fmt.Fprintf(p.Stderr(), "cat: %s: No such file or directory\n", name)
			return 1
		}
		fmt.Fprint(p.Stdout(), content)
	}
	return 0
}

var _ interp.ProcessFunc = Cat

func init() {
	register("cat", Cat)
}
