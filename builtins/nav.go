package builtins

import (
	"fmt"
	"path"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

// Pwd prints the working directory as a /workspace-rooted absolute path.
func Pwd(p *interp.Proc) int {
	fmt.Fprintln(p.Stdout(), p.Getwd())
	return 0
}

// Cd changes the working directory for the remainder of the pipeline. With
// no operand it returns to the workspace root.
func Cd(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})

	dir := "/"
	if len(operands) > 0 {
		dir = operands[0]
	}
	if err := p.Chdir(dir); err != nil {
		fmt.Fprintf(p.Stderr(), "cd: %v\n", err)
		return 1
	}
	return 0
}

// Basename prints the final path component, optionally stripping a suffix.
func Basename(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})
	if len(operands) == 0 {
		fmt.Fprintln(p.Stderr(), "basename: missing operand")
		return 1
	}
	base := path.Base(operands[0])
	if len(operands) > 1 {
		if suffix := operands[1]; suffix != base && strings.HasSuffix(base, suffix) {
			base = strings.TrimSuffix(base, suffix)
		}
	}
	fmt.Fprintln(p.Stdout(), base)
	return 0
}

// Dirname prints the path with its final component removed.
func Dirname(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})
	if len(operands) == 0 {
		fmt.Fprintln(p.Stderr(), "dirname: missing operand")
		return 1
	}
	fmt.Fprintln(p.Stdout(), path.Dir(operands[0]))
	return 0
}

var (
	_ interp.ProcessFunc = Pwd
	_ interp.ProcessFunc = Cd
	_ interp.ProcessFunc = Basename
	_ interp.ProcessFunc = Dirname
)

func init() {
	register("pwd", Pwd)
	register("cd", Cd)
	register("basename", Basename)
	register("dirname", Dirname)
}
