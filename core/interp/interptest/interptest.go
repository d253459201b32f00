// Package interptest provides an exec.Cmd-style harness for running command
// lines against a deterministic in-memory workspace in tests.
package interptest

import (
	"context"
	"testing"
	"time"

	"github.com/agentary/vshell/builtins"
	"github.com/agentary/vshell/core/digest"
	"github.com/agentary/vshell/core/interp"
	"github.com/agentary/vshell/core/vfs"
)

// Workspace is the workspace ID every harness run uses.
const Workspace = "test-workspace"

// FixedTime is the deterministic clock value: Go's reference timestamp with
// a different value in each position.
var FixedTime = time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)

// Cmd runs command lines against one in-memory workspace. The zero-value
// clock is fixed so date output and deadlines are reproducible; tests that
// exercise the timeout inject a stepping clock through Interp.Now.
type Cmd struct {
	Command string
	Env     map[string]string
	Timeout time.Duration

	Store  vfs.Store
	Interp *interp.Interpreter
}

// Command builds a harness around a fresh in-memory store.
func Command(command string) *Cmd {
	store := vfs.NewMemStore()
	return &Cmd{
		Command: command,
		Store:   store,
		Interp: &interp.Interpreter{
			Store:    store,
			Digester: digest.New(),
			Commands: builtins.Table(),
			Now:      func() time.Time { return FixedTime },
		},
	}
}

// WriteFile seeds the workspace before the command runs.
func (c *Cmd) WriteFile(t *testing.T, name, content string) {
	t.Helper()
	if err := c.Store.WriteFile(context.Background(), Workspace, name, content); err != nil {
		t.Fatalf("seeding %s: %v", name, err)
	}
}

// ReadFile fetches a file the command wrote.
func (c *Cmd) ReadFile(t *testing.T, name string) string {
	t.Helper()
	content, err := c.Store.ReadFile(context.Background(), Workspace, name)
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return content
}

// Run executes the command line and returns the captured result.
func (c *Cmd) Run() interp.Result {
	return c.Interp.Execute(context.Background(), c.Command, Workspace, c.Env, c.Timeout)
}

// RunLine is shorthand for seeding nothing and running a single line.
func RunLine(command string) interp.Result {
	return Command(command).Run()
}
