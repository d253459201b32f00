package builtins

import (
	"fmt"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

// Ls lists a directory. -a includes dotfiles, -l or -1 prints one entry per
// line; the default is a single space-joined line. Directory entries carry a
// trailing "/".
func Ls(p *interp.Proc) int {
	flags, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Bool: []string{"a", "l", "1"}})

	dir := "."
	if len(operands) > 0 {
		dir = operands[0]
	}

	entries, err := p.ListDir(dir)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "ls: cannot access '%s': No such file or directory\n", dir)
		return 1
	}

	_, all := flags["a"]
	var names []string
	for _, entry := range entries {
		if !all && strings.HasPrefix(entry, ".") {
			continue
		}
		names = append(names, entry)
	}
	if len(names) == 0 {
		return 0
	}

	_, long := flags["l"]
	_, onePerLine := flags["1"]
	if long || onePerLine {
		fmt.Fprint(p.Stdout(), joinLines(names))
	} else {
		fmt.Fprintln(p.Stdout(), strings.Join(names, " "))
	}
	return 0
}

var _ interp.ProcessFunc = Ls

func init() {
	register("ls", Ls)
}
