package interp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"
)

// Environment variables every execution starts with.
const (
	EnvHome = "HOME"
	EnvPath = "PATH"
	EnvPWD  = "PWD"

	// WorkspaceRoot is the virtual absolute prefix shown to users. The store
	// itself only ever sees workspace-relative paths.
	WorkspaceRoot = "/workspace"

	defaultPath = "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"
)

// Result is the outcome of executing a command line. Exit code 0 means
// success, 127 means command not found.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ProcessFunc is one builtin: it consumes the process's args and stdin,
// writes to its stdout/stderr, and returns an exit code.
type ProcessFunc func(p *Proc) int

// CommandTable resolves builtin names. Unknown names become exit code 127.
type CommandTable interface {
	Lookup(name string) (ProcessFunc, bool)
	Names() []string
}

// execContext owns all mutable state of one pipeline execution: the
// working directory, the environment, and the deadline. It is created per
// call and never shared between concurrent executions, so builtins mutate it
// without locking.
type execContext struct {
	workspaceID string
	dir         string // normalized relative path, "." is the workspace root
	env         map[string]string
	deadline    time.Time
	started     time.Time

	ctx    context.Context
	interp *Interpreter
}

// resolve normalizes name against the working directory into the
// workspace-relative form the store expects. An optional leading
// "/workspace" prefix is stripped, "." and ".." collapse, and ".." never
// escapes the workspace root.
func (ec *execContext) resolve(name string) string {
	if name == "" {
		return ec.dir
	}
	name = strings.TrimPrefix(name, WorkspaceRoot)
	if !strings.HasPrefix(name, "/") {
		name = path.Join("/", ec.dir, name)
	}
	rel := strings.TrimPrefix(path.Clean(name), "/")
	if rel == "" {
		return "."
	}
	return rel
}

func (ec *execContext) getenv(key string) string {
	return ec.env[key]
}

// Proc is a single builtin invocation: its argv, its stdin (piped from the
// previous stage), and buffers capturing its output.
type Proc struct {
	ec     *execContext
	args   []string
	stdin  io.Reader
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// Args returns the command line arguments, including the command as Args[0].
func (p *Proc) Args() []string { return p.args }

// Stdin is the process's standard input.
func (p *Proc) Stdin() io.Reader { return p.stdin }

// Stdout is the process's standard output.
func (p *Proc) Stdout() io.Writer { return &p.stdout }

// Stderr is the process's standard error.
func (p *Proc) Stderr() io.Writer { return &p.stderr }

// Context carries cancellation for store and digest calls.
func (p *Proc) Context() context.Context { return p.ec.ctx }

// Now returns the current time from the interpreter's clock source.
func (p *Proc) Now() time.Time { return p.ec.interp.now() }

// Getenv returns the value of an environment variable, or "".
func (p *Proc) Getenv(key string) string { return p.ec.env[key] }

// Setenv sets an environment variable for the remainder of the pipeline.
func (p *Proc) Setenv(key, value string) { p.ec.env[key] = value }

// Environ returns the environment as sorted KEY=value strings.
func (p *Proc) Environ() []string {
	env := make([]string, 0, len(p.ec.env))
	for k, v := range p.ec.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)
	return env
}

// Getwd returns the working directory as a virtual absolute path rooted at
// /workspace.
func (p *Proc) Getwd() string {
	if p.ec.dir == "." {
		return WorkspaceRoot
	}
	return path.Join(WorkspaceRoot, p.ec.dir)
}

// Chdir changes the working directory for the remainder of the pipeline.
// The target must be the workspace root or a listable directory.
func (p *Proc) Chdir(dir string) error {
	target := p.ec.resolve(dir)
	if target != "." {
		if _, err := p.ec.interp.Store.ListFiles(p.ec.ctx, p.ec.workspaceID, target); err != nil {
			return fmt.Errorf("%s: No such file or directory", dir)
		}
	}
	p.ec.dir = target
	p.ec.env[EnvPWD] = p.Getwd()
	return nil
}

// ResolvePath normalizes a user-supplied path against the working directory
// into the workspace-relative form used by the store.
func (p *Proc) ResolvePath(name string) string { return p.ec.resolve(name) }

// ReadFile reads a file, resolving the name against the working directory.
func (p *Proc) ReadFile(name string) (string, error) {
	return p.ec.interp.Store.ReadFile(p.ec.ctx, p.ec.workspaceID, p.ec.resolve(name))
}

// WriteFile writes a file, resolving the name against the working directory.
func (p *Proc) WriteFile(name, content string) error {
	return p.ec.interp.Store.WriteFile(p.ec.ctx, p.ec.workspaceID, p.ec.resolve(name), content)
}

// ListDir lists a directory, resolving the name against the working
// directory. Directory entries are suffixed with "/".
func (p *Proc) ListDir(name string) ([]string, error) {
	return p.ec.interp.Store.ListFiles(p.ec.ctx, p.ec.workspaceID, p.ec.resolve(name))
}

// DeleteFile removes a file, resolving the name against the working directory.
func (p *Proc) DeleteFile(name string) error {
	return p.ec.interp.Store.DeleteFile(p.ec.ctx, p.ec.workspaceID, p.ec.resolve(name))
}

// FileExists reports whether a file exists.
func (p *Proc) FileExists(name string) (bool, error) {
	return p.ec.interp.Store.FileExists(p.ec.ctx, p.ec.workspaceID, p.ec.resolve(name))
}

// DirExists reports whether a directory exists. The store has no directory
// stat, so existence is approximated by a successful listing.
func (p *Proc) DirExists(name string) bool {
	if p.ec.resolve(name) == "." {
		return true
	}
	_, err := p.ListDir(name)
	return err == nil
}

// Digest computes a hex digest through the digest collaborator.
func (p *Proc) Digest(algorithm string, data []byte) (string, error) {
	return p.ec.interp.Digester.Digest(p.ec.ctx, algorithm, data)
}

// CommandNames returns the sorted names of all available builtins.
func (p *Proc) CommandNames() []string {
	return p.ec.interp.Commands.Names()
}

// IsCommand reports whether name is a known builtin.
func (p *Proc) IsCommand(name string) bool {
	_, ok := p.ec.interp.Commands.Lookup(name)
	return ok
}

// RunCommand executes a single command line in this process's context. The
// line gets no control-operator or pipe handling; it is used by builtins
// like xargs that re-invoke commands.
func (p *Proc) RunCommand(command, stdin string) Result {
	return p.ec.interp.runSimple(p.ec, command, stdin)
}
