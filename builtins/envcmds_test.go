package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentary/vshell/core/interp/interptest"
)

func TestEnv_includesDefaults(t *testing.T) {
	result := interptest.RunLine("env | grep HOME")
	assert.Equal(t, "HOME=/workspace\n", result.Stdout)
}

func TestEnv_overlayVisible(t *testing.T) {
	cmd := interptest.Command("env | grep DEPLOY")
	cmd.Env = map[string]string{"DEPLOY_ENV": "staging"}
	result := cmd.Run()
	assert.Equal(t, "DEPLOY_ENV=staging\n", result.Stdout)
}

func TestExport_setsForLaterSegments(t *testing.T) {
	result := interptest.RunLine("export GREETING=hello; echo $GREETING world")
	assert.Equal(t, "hello world\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestExport_noOperandsDumpsEnvironment(t *testing.T) {
	result := interptest.RunLine("export | grep PWD")
	assert.Equal(t, "PWD=/workspace\n", result.Stdout)
}

func TestAssignment_bareNameEqualsValue(t *testing.T) {
	result := interptest.RunLine("RELEASE=v2; echo $RELEASE")
	assert.Equal(t, "v2\n", result.Stdout)
}

func TestDate_fixedClock(t *testing.T) {
	result := interptest.RunLine("date")
	assert.Equal(t, "2006-01-02T03:04:05Z\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestSleep_zeroReturnsImmediately(t *testing.T) {
	result := interptest.RunLine("sleep 0")
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "", result.Stdout)
}

func TestSleep_invalidInterval(t *testing.T) {
	result := interptest.RunLine("sleep soon")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "invalid time interval")
}

func TestSleep_missingOperand(t *testing.T) {
	result := interptest.RunLine("sleep")
	assert.Equal(t, 1, result.ExitCode)
}

func TestSeq_last(t *testing.T) {
	result := interptest.RunLine("seq 3")
	assert.Equal(t, "1\n2\n3\n", result.Stdout)
}

func TestSeq_firstLast(t *testing.T) {
	result := interptest.RunLine("seq 4 6")
	assert.Equal(t, "4\n5\n6\n", result.Stdout)
}

func TestSeq_negativeStep(t *testing.T) {
	result := interptest.RunLine("seq 10 -3 1")
	assert.Equal(t, "10\n7\n4\n1\n", result.Stdout)
}

func TestSeq_emptyWhenUnreachable(t *testing.T) {
	result := interptest.RunLine("seq 5 1")
	assert.Equal(t, "", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestSeq_zeroStep(t *testing.T) {
	result := interptest.RunLine("seq 1 0 5")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "step may not be zero")
}

func TestSeq_invalidArgument(t *testing.T) {
	result := interptest.RunLine("seq five")
	assert.Equal(t, 1, result.ExitCode)
}

func TestYes_boundedStream(t *testing.T) {
	result := interptest.RunLine("yes | wc")
	assert.Equal(t, "100 100 200\n", result.Stdout)
}

func TestYes_customWord(t *testing.T) {
	result := interptest.RunLine("yes ok | head -n 2")
	assert.Equal(t, "ok\nok\n", result.Stdout)
}
