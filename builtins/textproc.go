package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

// Tr transliterates stdin. With -d SET it deletes every character in SET;
// with two operands it maps SET1 onto SET2, padding a short SET2 with its
// last character. Sets are literal characters, no ranges or classes.
func Tr(p *interp.Proc) int {
	flags, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Value: []string{"d"}})
	input := readStdin(p)

	if deleteSet, ok := flags["d"]; ok {
		out := strings.Builder{}
		for _, c := range input {
			if !strings.ContainsRune(deleteSet, c) {
				out.WriteRune(c)
			}
		}
		fmt.Fprint(p.Stdout(), out.String())
		return 0
	}

	if len(operands) < 2 {
		fmt.Fprintln(p.Stderr(), "tr: missing operand")
		return 1
	}
	from := []rune(operands[0])
	to := []rune(operands[1])
	if len(from) == 0 {
		fmt.Fprint(p.Stdout(), input)
		return 0
	}
	for len(to) < len(from) {
		to = append(to, to[len(to)-1])
	}

	mapping := make(map[rune]rune, len(from))
	for i, c := range from {
		mapping[c] = to[i]
	}

	out := strings.Builder{}
	for _, c := range input {
		if mapped, ok := mapping[c]; ok {
			c = mapped
		}
		out.WriteRune(c)
	}
	fmt.Fprint(p.Stdout(), out.String())
	return 0
}

// Cut selects delimited fields: -d DELIM (default tab) and -f LIST, a
// comma-separated list of 1-based field numbers.
func Cut(p *interp.Proc) int {
	flags, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Value: []string{"d", "f"}})

	fieldList, ok := flags["f"]
	if !ok {
		fmt.Fprintln(p.Stderr(), "cut: you must specify a list of fields")
		return 1
	}
	var fields []int
	for _, raw := range strings.Split(fieldList, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 {
			fmt.Fprintf(p.Stderr(), "cut: invalid field value %q\n", raw)
			return 1
		}
		fields = append(fields, n)
	}

	delim := "\t"
	if d, ok := flags["d"]; ok && d != "" {
		delim = d
	}

	content, _, err := inputOrStdin(p, operands)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "cut: %s: No such file or directory\n", operands[0])
		return 1
	}

	var out []string
	for _, line := range lines(content) {
		parts := strings.Split(line, delim)
		var picked []string
		for _, f := range fields {
			if f <= len(parts) {
				picked = append(picked, parts[f-1])
			}
		}
		out = append(out, strings.Join(picked, delim))
	}
	fmt.Fprint(p.Stdout(), joinLines(out))
	return 0
}

// Rev reverses the characters of each input line independently.
func Rev(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})

	content, _, err := inputOrStdin(p, operands)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "rev: cannot open %s: No such file or directory\n", operands[0])
		return 1
	}

	var out []string
	for _, line := range lines(content) {
		runes := []rune(line)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		out = append(out, string(runes))
	}
	fmt.Fprint(p.Stdout(), joinLines(out))
	return 0
}

var (
	_ interp.ProcessFunc = Tr
	_ interp.ProcessFunc = Cut
	_ interp.ProcessFunc = Rev
)

func init() {
	register("tr", Tr)
	register("cut", Cut)
	register("rev", Rev)
}
