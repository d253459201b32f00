package builtins

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/agentary/vshell/core/interp"
)

// Grep searches its input for lines matching a pattern.
//
// Flags: -e PATTERN, -i ignore case, -v invert, -c count only, -n line
// numbers, -m COUNT stop after COUNT matches. Like POSIX grep, no matching
// line yields exit code 1 with empty output; 2 signals a usage or file
// error.
func Grep(p *interp.Proc) int {
	flags, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{
		Value: []string{"e", "m"},
		Bool:  []string{"i", "v", "c", "n"},
	})

	pattern, hasPattern := flags["e"]
	if !hasPattern {
		if len(operands) == 0 {
			fmt.Fprintln(p.Stderr(), "grep: missing pattern")
			return 2
		}
		pattern, operands = operands[0], operands[1:]
	}
	if _, ignoreCase := flags["i"]; ignoreCase {
		pattern = "(?i)" + pattern
	}
	regex, err := regexp.Compile(pattern)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "grep: invalid pattern: %v\n", err)
		return 2
	}

	maxMatches := -1
	if raw, ok := flags["m"]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fmt.Fprintf(p.Stderr(), "grep: invalid max count: %q\n", raw)
			return 2
		}
		maxMatches = n
	}

	content, _, err := inputOrStdin(p, operands)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "grep: %s: No such file or directory\n", operands[0])
		return 2
	}

	_, invert := flags["v"]
	_, countOnly := flags["c"]
	_, numberLines := flags["n"]

	matches := 0
	var out []string
	for i, line := range lines(content) {
		if maxMatches >= 0 && matches >= maxMatches {
			break
		}
		if regex.MatchString(line) == invert {
			continue
		}
		matches++
		if numberLines {
			line = fmt.Sprintf("%d:%s", i+1, line)
		}
		out = append(out, line)
	}

	if countOnly {
		fmt.Fprintf(p.Stdout(), "%d\n", matches)
	} else {
		fmt.Fprint(p.Stdout(), joinLines(out))
	}

	if matches == 0 {
		return 1
	}
	return 0
}

var _ interp.ProcessFunc = Grep

func init() {
	register("grep", Grep)
}
