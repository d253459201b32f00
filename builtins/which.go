package builtins

import (
	"fmt"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

// Which reports a pseudo path for each known builtin; unknown names fail.
func Which(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})

	status := 0
	for _, name := range operands {
		if p.IsCommand(name) {
			fmt.Fprintf(p.Stdout(), "/usr/bin/%s\n", name)
		} else {
			fmt.Fprintf(p.Stderr(), "which: no %s in (%s)\n", name, p.Getenv(interp.EnvPath))
			status = 1
		}
	}
	return status
}

// Command supports the -v form: print the pseudo path of a builtin, or fail
// quietly for unknown names.
func Command(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Bool: []string{"v"}})

	status := 0
	for _, name := range operands {
		if p.IsCommand(name) {
			fmt.Fprintf(p.Stdout(), "/usr/bin/%s\n", name)
		} else {
			status = 1
		}
	}
	return status
}

// Xargs joins stdin lines as trailing arguments to the given command and
// runs it once. The constructed line gets single-command execution only: no
// pipes or control operators.
func Xargs(p *interp.Proc) int {
	args := p.Args()[1:]
	if len(args) == 0 {
		args = []string{"echo"}
	}

	var items []string
	for _, line := range lines(readStdin(p)) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	command := strings.Join(append(args, items...), " ")
	result := p.RunCommand(command, "")

	fmt.Fprint(p.Stdout(), result.Stdout)
	fmt.Fprint(p.Stderr(), result.Stderr)
	return result.ExitCode
}

var (
	_ interp.ProcessFunc = Which
	_ interp.ProcessFunc = Command
	_ interp.ProcessFunc = Xargs
)

func init() {
	register("which", Which)
	register("command", Command)
	register("xargs", Xargs)
}
