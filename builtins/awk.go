package builtins

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

var (
	awkProgram  = regexp.MustCompile(`^\{\s*print\s*(.*?)\s*\}$`)
	awkFieldRef = regexp.MustCompile(`^\$(\d+)$`)
)

// Awk supports only the "{print $N ...}" program. $0 is the whole line and
// fields are 1-based, split on whitespace. Multiple field references print
// separated by single spaces.
func Awk(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})
	if len(operands) == 0 {
		fmt.Fprintln(p.Stderr(), "awk: missing program")
		return 2
	}

	m := awkProgram.FindStringSubmatch(strings.TrimSpace(operands[0]))
	if m == nil {
		fmt.Fprintf(p.Stderr(), "awk: unsupported program %q (only '{print $N ...}' is supported)\n", operands[0])
		return 2
	}

	var fieldNums []int
	refs := strings.FieldsFunc(m[1], func(c rune) bool { return c == ',' || c == ' ' || c == '\t' })
	for _, ref := range refs {
		fm := awkFieldRef.FindStringSubmatch(ref)
		if fm == nil {
			fmt.Fprintf(p.Stderr(), "awk: unsupported expression %q (only field references like $1 are supported)\n", ref)
			return 2
		}
		n, _ := strconv.Atoi(fm[1])
		fieldNums = append(fieldNums, n)
	}
	if len(fieldNums) == 0 {
		fieldNums = []int{0} // bare "{print}" prints the whole line
	}

	content, _, err := inputOrStdin(p, operands[1:])
	if err != nil {
		fmt.Fprintf(p.Stderr(), "awk: can't open file %s\n", operands[1])
		return 2
	}

	var out []string
	for _, line := range lines(content) {
		fields := strings.Fields(line)
		var picked []string
		for _, n := range fieldNums {
			switch {
			case n == 0:
				picked = append(picked, line)
			case n <= len(fields):
				picked = append(picked, fields[n-1])
			default:
				picked = append(picked, "")
			}
		}
		out = append(out, strings.Join(picked, " "))
	}
	fmt.Fprint(p.Stdout(), joinLines(out))
	return 0
}

var _ interp.ProcessFunc = Awk

func init() {
	register("awk", Awk)
}
