package builtins

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

// Sed supports the single expression form s/pattern/replacement/flags with
// the g (global) and i (ignore case) flags. Anything else fails with an
// explicit message rather than silently doing the wrong thing.
func Sed(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})
	if len(operands) == 0 {
		fmt.Fprintln(p.Stderr(), "sed: missing expression")
		return 1
	}

	pattern, replacement, exprFlags, err := parseSubstitution(operands[0])
	if err != nil {
		fmt.Fprintf(p.Stderr(), "sed: %v\n", err)
		return 1
	}

	if strings.Contains(exprFlags, "i") {
		pattern = "(?i)" + pattern
	}
	regex, err := regexp.Compile(pattern)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "sed: invalid pattern: %v\n", err)
		return 1
	}
	global := strings.Contains(exprFlags, "g")

	content, _, err := inputOrStdin(p, operands[1:])
	if err != nil {
		fmt.Fprintf(p.Stderr(), "sed: can't read %s: No such file or directory\n", operands[1])
		return 1
	}

	var out []string
	for _, line := range lines(content) {
		if global {
			line = regex.ReplaceAllLiteralString(line, replacement)
		} else if loc := regex.FindStringIndex(line); loc != nil {
			line = line[:loc[0]] + replacement + line[loc[1]:]
		}
		out = append(out, line)
	}
	fmt.Fprint(p.Stdout(), joinLines(out))
	return 0
}

// parseSubstitution splits s/pattern/replacement/flags on unescaped slashes.
func parseSubstitution(expr string) (pattern, replacement, flags string, err error) {
	unsupported := fmt.Errorf("unsupported expression %q (only s/pattern/replacement/flags is supported)", expr)

	if !strings.HasPrefix(expr, "s/") {
		return "", "", "", unsupported
	}

	var parts []string
	var current strings.Builder
	escaped := false
	for _, c := range expr[2:] {
		switch {
		case escaped:
			if c != '/' {
				current.WriteByte('\\')
			}
			current.WriteRune(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '/':
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	parts = append(parts, current.String())

	if len(parts) != 3 {
		return "", "", "", unsupported
	}
	return parts[0], parts[1], parts[2], nil
}

var _ interp.ProcessFunc = Sed

func init() {
	register("sed", Sed)
}
