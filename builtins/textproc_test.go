package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentary/vshell/core/interp/interptest"
)

func TestTr_transliterate(t *testing.T) {
	result := interptest.RunLine("echo hello | tr el ip")
	assert.Equal(t, "hippo\n", result.Stdout)
}

func TestTr_padsShortSet(t *testing.T) {
	// SET2 is padded with its last character.
	result := interptest.RunLine("echo abc | tr abc x")
	assert.Equal(t, "xxx\n", result.Stdout)
}

func TestTr_delete(t *testing.T) {
	result := interptest.RunLine("echo banana | tr -d an")
	assert.Equal(t, "b\n", result.Stdout)
}

func TestTr_missingOperand(t *testing.T) {
	result := interptest.RunLine("echo x | tr a")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "missing operand")
}

func TestCut_fields(t *testing.T) {
	cmd := interptest.Command("cut -d : -f 1,3 passwd.txt")
	cmd.WriteFile(t, "passwd.txt", "root:x:0:0\ndeploy:x:1000:1000\n")
	result := cmd.Run()
	assert.Equal(t, "root:0\ndeploy:1000\n", result.Stdout)
}

func TestCut_fieldBeyondLine(t *testing.T) {
	result := interptest.RunLine("echo a:b | cut -d : -f 5")
	assert.Equal(t, "\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestCut_requiresFieldList(t *testing.T) {
	result := interptest.RunLine("echo x | cut -d :")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "list of fields")
}

func TestRev(t *testing.T) {
	result := interptest.RunLine("printf 'abc\\ndef\\n' | rev")
	assert.Equal(t, "cba\nfed\n", result.Stdout)
}

func TestSed_replaceFirst(t *testing.T) {
	result := interptest.RunLine("echo aaa | sed s/a/b/")
	assert.Equal(t, "baa\n", result.Stdout)
}

func TestSed_replaceGlobal(t *testing.T) {
	result := interptest.RunLine("echo aaa | sed s/a/b/g")
	assert.Equal(t, "bbb\n", result.Stdout)
}

func TestSed_ignoreCase(t *testing.T) {
	result := interptest.RunLine("echo AbA | sed s/a/x/gi")
	assert.Equal(t, "xbx\n", result.Stdout)
}

func TestSed_escapedDelimiter(t *testing.T) {
	result := interptest.RunLine(`echo a/b | sed 's/\//-/'`)
	assert.Equal(t, "a-b\n", result.Stdout)
}

func TestSed_file(t *testing.T) {
	cmd := interptest.Command("sed s/cat/dog/ pets.txt")
	cmd.WriteFile(t, "pets.txt", "one cat\ntwo cats\n")
	result := cmd.Run()
	assert.Equal(t, "one dog\ntwo dogs\n", result.Stdout)
}

func TestSed_unsupportedExpression(t *testing.T) {
	for _, expr := range []string{"y/a/b/", "s/a/b", "2d", "s/a/b/x/"} {
		result := interptest.Command("echo x | sed '" + expr + "'").Run()
		assert.Equal(t, 1, result.ExitCode, expr)
		assert.NotEmpty(t, result.Stderr, expr)
	}
}

func TestAwk_singleField(t *testing.T) {
	result := interptest.RunLine("echo one two three | awk '{print $2}'")
	assert.Equal(t, "two\n", result.Stdout)
}

func TestAwk_multipleFields(t *testing.T) {
	result := interptest.RunLine("echo one two three | awk '{print $3, $1}'")
	assert.Equal(t, "three one\n", result.Stdout)
}

func TestAwk_wholeLine(t *testing.T) {
	result := interptest.RunLine("echo 'one   two' | awk '{print $0}'")
	assert.Equal(t, "one   two\n", result.Stdout)
}

func TestAwk_missingFieldIsEmpty(t *testing.T) {
	result := interptest.RunLine("echo one | awk '{print $9}'")
	assert.Equal(t, "\n", result.Stdout)
}

func TestAwk_unsupportedProgram(t *testing.T) {
	result := interptest.RunLine("echo x | awk 'BEGIN{print}'")
	assert.Equal(t, 2, result.ExitCode)
	assert.Contains(t, result.Stderr, "unsupported program")
}
