// Package core wires the interpreter together with its default
// collaborators: the builtin dispatch table and the digest primitive.
package core

import (
	"context"
	"time"

	"github.com/agentary/vshell/builtins"
	"github.com/agentary/vshell/core/digest"
	"github.com/agentary/vshell/core/interp"
	"github.com/agentary/vshell/core/vfs"
)

// New returns an interpreter over the given store with the full builtin
// table and the default digest implementation.
func New(store vfs.Store) *interp.Interpreter {
	return &interp.Interpreter{
		Store:    store,
		Digester: digest.New(),
		Commands: builtins.Table(),
	}
}

// ExecuteShell runs one command line against a workspace and returns the
// captured stdout, stderr and exit code. timeoutSeconds <= 0 selects the
// default of 30 seconds.
func ExecuteShell(ctx context.Context, store vfs.Store, command, workspaceID string, envOverlay map[string]string, timeoutSeconds int) interp.Result {
	return New(store).Execute(ctx, command, workspaceID, envOverlay, time.Duration(timeoutSeconds)*time.Second)
}
