package builtins

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/agentary/vshell/core/interp"
)

// Sort orders its input lines. -n compares numerically, -r reverses, -u
// drops duplicates; the default is lexicographic.
func Sort(p *interp.Proc) int {
	flags, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Bool: []string{"n", "r", "u"}})

	content, _, err := inputOrStdin(p, operands)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "sort: cannot read: %s: No such file or directory\n", operands[0])
		return 2
	}

	out := lines(content)
	if _, numeric := flags["n"]; numeric {
		sort.SliceStable(out, func(i, j int) bool {
			return sortKey(out[i]) < sortKey(out[j])
		})
	} else {
		sort.Strings(out)
	}

	if _, unique := flags["u"]; unique {
		out = dropAdjacentDuplicates(out)
	}
	if _, reverse := flags["r"]; reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	fmt.Fprint(p.Stdout(), joinLines(out))
	return 0
}

// sortKey is the numeric value of a line for sort -n; non-numeric lines
// compare as zero, like coreutils.
func sortKey(line string) float64 {
	n, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0
	}
	return n
}

// Uniq removes consecutive duplicate lines. Non-adjacent duplicates are
// kept, matching POSIX; pipe through sort first for a global dedup.
func Uniq(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})

	content, _, err := inputOrStdin(p, operands)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "uniq: %s: No such file or directory\n", operands[0])
		return 1
	}

	fmt.Fprint(p.Stdout(), joinLines(dropAdjacentDuplicates(lines(content))))
	return 0
}

func dropAdjacentDuplicates(in []string) []string {
	var out []string
	for i, line := range in {
		if i == 0 || line != in[i-1] {
			out = append(out, line)
		}
	}
	return out
}

var (
	_ interp.ProcessFunc = Sort
	_ interp.ProcessFunc = Uniq
)

func init() {
	register("sort", Sort)
	register("uniq", Uniq)
}
