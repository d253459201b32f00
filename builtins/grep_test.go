package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentary/vshell/core/interp/interptest"
)

func grepInput(t *testing.T, command string) *interptest.Cmd {
	t.Helper()
	cmd := interptest.Command(command)
	cmd.WriteFile(t, "log.txt", "error: disk full\nwarning: low memory\nERROR: timeout\nall good\n")
	return cmd
}

func TestGrep_basicMatch(t *testing.T) {
	result := grepInput(t, "grep error log.txt").Run()
	assert.Equal(t, "error: disk full\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestGrep_ignoreCase(t *testing.T) {
	result := grepInput(t, "grep -i error log.txt").Run()
	assert.Equal(t, "error: disk full\nERROR: timeout\n", result.Stdout)
}

func TestGrep_invert(t *testing.T) {
	result := grepInput(t, "grep -v error log.txt").Run()
	assert.Equal(t, "warning: low memory\nERROR: timeout\nall good\n", result.Stdout)
}

func TestGrep_count(t *testing.T) {
	result := grepInput(t, "grep -ic error log.txt").Run()
	assert.Equal(t, "2\n", result.Stdout)
}

func TestGrep_lineNumbers(t *testing.T) {
	result := grepInput(t, "grep -n good log.txt").Run()
	assert.Equal(t, "4:all good\n", result.Stdout)
}

func TestGrep_maxCount(t *testing.T) {
	result := grepInput(t, "grep -i -m 1 error log.txt").Run()
	assert.Equal(t, "error: disk full\n", result.Stdout)
}

func TestGrep_patternFlag(t *testing.T) {
	result := grepInput(t, "grep -e warning log.txt").Run()
	assert.Equal(t, "warning: low memory\n", result.Stdout)
}

func TestGrep_stdin(t *testing.T) {
	result := interptest.RunLine("echo haystack needle | grep needle")
	assert.Equal(t, "haystack needle\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestGrep_noMatchExitsOne(t *testing.T) {
	result := grepInput(t, "grep absent log.txt").Run()
	assert.Empty(t, result.Stdout)
	assert.Empty(t, result.Stderr)
	assert.Equal(t, 1, result.ExitCode)
}

func TestGrep_invalidPattern(t *testing.T) {
	result := grepInput(t, "grep '+[' log.txt").Run()
	assert.Equal(t, 2, result.ExitCode)
	assert.Contains(t, result.Stderr, "invalid pattern")
}

func TestGrep_missingFile(t *testing.T) {
	result := interptest.RunLine("grep x nothere.txt")
	assert.Equal(t, 2, result.ExitCode)
	assert.Contains(t, result.Stderr, "No such file or directory")
}
