package builtins

import (
	"github.com/agentary/vshell/core/interp"
)

// True succeeds with no output.
func True(p *interp.Proc) int {
	return 0
}

// False fails with no output.
func False(p *interp.Proc) int {
	return 1
}

// Test evaluates a predicate expression; exit 0 means it held.
func Test(p *interp.Proc) int {
	return interp.EvalPredicate(p, p.Args()[1:])
}

// Bracket is "[": test with a trailing "]" stripped before evaluation.
func Bracket(p *interp.Proc) int {
	args := p.Args()[1:]
	if len(args) > 0 && args[len(args)-1] == "]" {
		args = args[:len(args)-1]
	}
	return interp.EvalPredicate(p, args)
}

var (
	_ interp.ProcessFunc = True
	_ interp.ProcessFunc = False
	_ interp.ProcessFunc = Test
	_ interp.ProcessFunc = Bracket
)

func init() {
	register("true", True)
	register("false", False)
	register("test", Test)
	register("[", Bracket)
}
