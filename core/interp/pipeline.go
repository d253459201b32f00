package interp

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/agentary/vshell/core/digest"
	"github.com/agentary/vshell/core/vfs"
)

// DefaultTimeout bounds a pipeline when the caller doesn't pick one.
const DefaultTimeout = 30 * time.Second

// errTimedOut aborts the rest of a pipeline once the deadline passes. It is
// converted into a Result at the top of Execute.
var errTimedOut = errors.New("command timed out")

var assignmentPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// Interpreter executes command lines against workspace-scoped storage. It is
// stateless between calls; every Execute owns its own context.
type Interpreter struct {
	Store    vfs.Store
	Digester digest.Digester
	Commands CommandTable

	// Now is the clock source, defaulting to time.Now. Tests inject a fixed
	// or stepping clock here.
	Now func() time.Time
}

func (in *Interpreter) now() time.Time {
	if in.Now != nil {
		return in.Now()
	}
	return time.Now()
}

// Execute runs one command line against the named workspace and returns the
// captured output. The environment starts from fixed defaults plus the
// caller's overlay; timeout <= 0 selects DefaultTimeout. Execute never
// returns an error: failures surface as a Result with a non-zero exit code.
func (in *Interpreter) Execute(ctx context.Context, command, workspaceID string, envOverlay map[string]string, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	started := in.now()

	env := map[string]string{
		EnvHome: WorkspaceRoot,
		EnvPath: defaultPath,
		EnvPWD:  WorkspaceRoot,
	}
	for k, v := range envOverlay {
		env[k] = v
	}

	ec := &execContext{
		workspaceID: workspaceID,
		dir:         ".",
		env:         env,
		deadline:    started.Add(timeout),
		started:     started,
		ctx:         ctx,
		interp:      in,
	}

	result, err := in.runPipeline(ec, command)
	if err != nil {
		return Result{Stderr: err.Error(), ExitCode: 1}
	}
	return result
}

// runPipeline iterates segments, enforcing the deadline and the
// short-circuit policy of each segment's trailing operator.
func (in *Interpreter) runPipeline(ec *execContext, command string) (Result, error) {
	var last Result

	for _, segment := range splitSegments(command) {
		if in.now().After(ec.deadline) {
			return Result{}, errTimedOut
		}

		result, err := in.runSegment(ec, segment.Command)
		if err != nil {
			return Result{}, err
		}
		last = result

		if segment.Operator == "&&" && result.ExitCode != 0 {
			break
		}
		if segment.Operator == "||" && result.ExitCode == 0 {
			break
		}
	}

	return last, nil
}

// runSegment executes one segment, threading stdout through pipe stages.
// Stderr does not cross a pipe; the last stage's result is the segment's.
func (in *Interpreter) runSegment(ec *execContext, command string) (Result, error) {
	stages := splitPipes(command)

	var result Result
	stdin := ""
	for i, stage := range stages {
		if i > 0 && in.now().After(ec.deadline) {
			return Result{}, errTimedOut
		}
		result = in.runSimple(ec, stage, stdin)
		stdin = result.Stdout
	}
	return result, nil
}

// runSimple executes a single command with no operators or pipes:
// expand, extract redirect, tokenize, then dispatch.
func (in *Interpreter) runSimple(ec *execContext, command, stdin string) Result {
	expanded := Expand(command, ec.getenv)
	rest, target, appendMode, hasRedirect := extractRedirect(expanded)

	tokens := Tokenize(rest)
	if len(tokens) == 0 {
		return Result{}
	}

	if m := assignmentPattern.FindStringSubmatch(tokens[0]); m != nil && len(tokens) == 1 {
		ec.env[m[1]] = m[2]
		return Result{}
	}

	name := tokens[0]
	process, ok := in.Commands.Lookup(name)
	if !ok {
		return Result{
			Stderr:   in.unknownCommand(name),
			ExitCode: 127,
		}
	}

	proc := &Proc{
		ec:    ec,
		args:  tokens,
		stdin: strings.NewReader(stdin),
	}
	exitCode := process(proc)

	result := Result{
		Stdout:   proc.stdout.String(),
		Stderr:   proc.stderr.String(),
		ExitCode: exitCode,
	}

	if hasRedirect {
		if err := in.writeRedirect(ec, target, result.Stdout, appendMode); err != nil {
			return Result{
				Stderr:   fmt.Sprintf("%s: %v\n", name, err),
				ExitCode: 1,
			}
		}
		result.Stdout = ""
	}

	return result
}

// writeRedirect persists a command's captured stdout to the target file.
// Append mode concatenates onto the existing content, treating a missing
// file as empty.
func (in *Interpreter) writeRedirect(ec *execContext, target, content string, appendMode bool) error {
	name := ec.resolve(target)
	if appendMode {
		previous, err := in.Store.ReadFile(ec.ctx, ec.workspaceID, name)
		if err != nil && !errors.Is(err, vfs.ErrNotFound) {
			return err
		}
		content = previous + content
	}
	return in.Store.WriteFile(ec.ctx, ec.workspaceID, name, content)
}

func (in *Interpreter) unknownCommand(name string) string {
	return fmt.Sprintf("%s: command not found\nsupported commands: %s\nfor anything else, run a real program through the code execution tool\n",
		name, strings.Join(in.Commands.Names(), ", "))
}
