package builtins

import (
	"fmt"
	"path"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

// dirSentinel is the marker file that stands in for an empty directory: the
// store has no empty-directory concept, so mkdir materializes one of these.
const dirSentinel = ".keep"

// Mkdir creates directories by writing a sentinel marker file inside each.
// The store creates parents implicitly, so -p is accepted and a no-op.
func Mkdir(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Bool: []string{"p"}})
	if len(operands) == 0 {
		fmt.Fprintln(p.Stderr(), "mkdir: missing operand")
		return 1
	}
	for _, dir := range operands {
		if err := p.WriteFile(path.Join(dir, dirSentinel), ""); err != nil {
			fmt.Fprintf(p.Stderr(), "mkdir: cannot create directory '%s': %v\n", dir, err)
			return 1
		}
	}
	return 0
}

// Touch creates each named file empty if it doesn't exist. There is no
// mtime model, so touching an existing file changes nothing.
func Touch(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})
	if len(operands) == 0 {
		fmt.Fprintln(p.Stderr(), "touch: missing file operand")
		return 1
	}
	for _, name := range operands {
		exists, err := p.FileExists(name)
		if err != nil {
			fmt.Fprintf(p.Stderr(), "touch: cannot touch '%s': %v\n", name, err)
			return 1
		}
		if exists {
			continue
		}
		if err := p.WriteFile(name, ""); err != nil {
			fmt.Fprintf(p.Stderr(), "touch: cannot touch '%s': %v\n", name, err)
			return 1
		}
	}
	return 0
}

// Cp copies a file. A directory destination receives the source's basename.
func Cp(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Bool: []string{"r"}})
	if len(operands) < 2 {
		fmt.Fprintln(p.Stderr(), "cp: missing file operand")
		return 1
	}
	src, dst := operands[0], operands[1]

	content, err := p.ReadFile(src)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "cp: cannot stat '%s': No such file or directory\n", src)
		return 1
	}
	if p.DirExists(dst) {
		dst = path.Join(dst, path.Base(src))
	}
	if err := p.WriteFile(dst, content); err != nil {
		fmt.Fprintf(p.Stderr(), "cp: cannot create '%s': %v\n", dst, err)
		return 1
	}
	return 0
}

// Mv moves a file: copy then delete the source.
func Mv(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})
	if len(operands) < 2 {
		fmt.Fprintln(p.Stderr(), "mv: missing file operand")
		return 1
	}
	src, dst := operands[0], operands[1]

	content, err := p.ReadFile(src)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "mv: cannot stat '%s': No such file or directory\n", src)
		return 1
	}
	if p.DirExists(dst) {
		dst = path.Join(dst, path.Base(src))
	}
	if err := p.WriteFile(dst, content); err != nil {
		fmt.Fprintf(p.Stderr(), "mv: cannot create '%s': %v\n", dst, err)
		return 1
	}
	if err := p.DeleteFile(src); err != nil {
		fmt.Fprintf(p.Stderr(), "mv: cannot remove '%s': %v\n", src, err)
		return 1
	}
	return 0
}

// Rm removes files. -f suppresses missing-file errors; -r removes a
// directory tree by walking the listing, since the store only deletes by
// path.
func Rm(p *interp.Proc) int {
	flags, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Bool: []string{"f", "r"}})
	if len(operands) == 0 {
		fmt.Fprintln(p.Stderr(), "rm: missing operand")
		return 1
	}
	_, force := flags["f"]
	_, recursive := flags["r"]

	for _, name := range operands {
		exists, _ := p.FileExists(name)
		switch {
		case exists:
			if err := p.DeleteFile(name); err != nil {
				fmt.Fprintf(p.Stderr(), "rm: cannot remove '%s': %v\n", name, err)
				return 1
			}
		case recursive && p.DirExists(name):
			if err := removeTree(p, name); err != nil {
				fmt.Fprintf(p.Stderr(), "rm: cannot remove '%s': %v\n", name, err)
				return 1
			}
		case !force:
			fmt.Fprintf(p.Stderr(), "rm: cannot remove '%s': No such file or directory\n", name)
			return 1
		}
	}
	return 0
}

func removeTree(p *interp.Proc, dir string) error {
	entries, err := p.ListDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		child := path.Join(dir, strings.TrimSuffix(entry, "/"))
		if strings.HasSuffix(entry, "/") {
			if err := removeTree(p, child); err != nil {
				return err
			}
			continue
		}
		if err := p.DeleteFile(child); err != nil {
			return err
		}
	}
	return p.DeleteFile(dir)
}

// Tee copies stdin to every named file and to stdout. -a appends.
func Tee(p *interp.Proc) int {
	flags, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Bool: []string{"a"}})
	content := readStdin(p)
	_, appendMode := flags["a"]

	for _, name := range operands {
		out := content
		if appendMode {
			if previous, err := p.ReadFile(name); err == nil {
				out = previous + content
			}
		}
		if err := p.WriteFile(name, out); err != nil {
			fmt.Fprintf(p.Stderr(), "tee: %s: %v\n", name, err)
			return 1
		}
	}
	fmt.Fprint(p.Stdout(), content)
	return 0
}

var (
	_ interp.ProcessFunc = Mkdir
	_ interp.ProcessFunc = Touch
	_ interp.ProcessFunc = Cp
	_ interp.ProcessFunc = Mv
	_ interp.ProcessFunc = Rm
	_ interp.ProcessFunc = Tee
)

func init() {
	register("mkdir", Mkdir)
	register("touch", Touch)
	register("cp", Cp)
	register("mv", Mv)
	register("rm", Rm)
	register("tee", Tee)
}
