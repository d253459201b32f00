// Package builtins holds the dispatch table of shell utilities the
// interpreter can run. Each builtin is a pure function from its argv, the
// execution context, and stdin to captured output and an exit code; anything
// that touches files goes through the workspace store.
package builtins

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

// AllCommands maps builtin names to implementations.
var AllCommands = make(map[string]interp.ProcessFunc)

// register adds a command to the dispatch table. Called from init funcs.
func register(name string, cmd interp.ProcessFunc) {
	if _, exists := AllCommands[name]; exists {
		panic(fmt.Sprintf("duplicate builtin %q", name))
	}
	AllCommands[name] = cmd
}

type table struct{}

func (table) Lookup(name string) (interp.ProcessFunc, bool) {
	cmd, ok := AllCommands[name]
	return cmd, ok
}

func (table) Names() []string {
	names := make([]string, 0, len(AllCommands))
	for name := range AllCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table exposes the full dispatch table to the interpreter.
func Table() interp.CommandTable {
	return table{}
}

// readStdin drains the process's standard input.
func readStdin(p *interp.Proc) string {
	data, err := io.ReadAll(p.Stdin())
	if err != nil {
		return ""
	}
	return string(data)
}

// inputOrStdin reads the first operand as a file, or stdin when there are no
// operands or the operand is "-". The returned name is "-" for stdin.
func inputOrStdin(p *interp.Proc, operands []string) (content, name string, err error) {
	if len(operands) == 0 || operands[0] == "-" {
		return readStdin(p), "-", nil
	}
	content, err = p.ReadFile(operands[0])
	return content, operands[0], err
}

// lines splits content into lines, not counting a trailing newline as an
// extra empty line.
func lines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// joinLines renders lines with a trailing newline, or "" for no lines.
func joinLines(out []string) string {
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}
