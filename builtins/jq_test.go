package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentary/vshell/core/interp/interptest"
)

func jqDoc(t *testing.T, command string) *interptest.Cmd {
	t.Helper()
	cmd := interptest.Command(command)
	cmd.WriteFile(t, "doc.json", `{"name":"api","replicas":3,"ports":[80,443],"meta":{"team":"infra"}}`)
	return cmd
}

func TestJq_identity(t *testing.T) {
	result := interptest.RunLine(`echo '[1,2]' | jq .`)
	assert.Equal(t, "[1,2]\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestJq_fieldAccess(t *testing.T) {
	result := jqDoc(t, "jq .name doc.json").Run()
	assert.Equal(t, "\"api\"\n", result.Stdout)
}

func TestJq_nestedField(t *testing.T) {
	result := jqDoc(t, "jq .meta.team doc.json").Run()
	assert.Equal(t, "\"infra\"\n", result.Stdout)
}

func TestJq_arrayIndex(t *testing.T) {
	result := jqDoc(t, "jq '.ports[1]' doc.json").Run()
	assert.Equal(t, "443\n", result.Stdout)
}

func TestJq_indexOutOfRangeIsNull(t *testing.T) {
	result := jqDoc(t, "jq '.ports[9]' doc.json").Run()
	assert.Equal(t, "null\n", result.Stdout)
}

func TestJq_missingFieldIsNull(t *testing.T) {
	result := jqDoc(t, "jq .nope doc.json").Run()
	assert.Equal(t, "null\n", result.Stdout)
}

func TestJq_descendIntoScalarIsNull(t *testing.T) {
	result := jqDoc(t, "jq .name.sub doc.json").Run()
	assert.Equal(t, "null\n", result.Stdout)
}

func TestJq_keysSorted(t *testing.T) {
	result := jqDoc(t, "jq keys doc.json").Run()
	assert.Equal(t, "[\"meta\",\"name\",\"ports\",\"replicas\"]\n", result.Stdout)
}

func TestJq_length(t *testing.T) {
	result := interptest.RunLine(`echo '[1,2,3]' | jq length`)
	assert.Equal(t, "3\n", result.Stdout)
}

func TestJq_parseError(t *testing.T) {
	result := interptest.RunLine("echo not-json | jq .")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "parse error")
}

func TestJq_unsupportedFilter(t *testing.T) {
	result := interptest.RunLine(`echo '{}' | jq keys_unsorted`)
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "unsupported filter")
}

func TestJq_missingFilter(t *testing.T) {
	result := interptest.RunLine("jq")
	assert.Equal(t, 2, result.ExitCode)
	assert.Equal(t, "jq: missing filter\n", result.Stderr)
}
