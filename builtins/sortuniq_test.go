package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentary/vshell/core/interp/interptest"
)

func TestSort_lexicographic(t *testing.T) {
	cmd := interptest.Command("sort fruit.txt")
	cmd.WriteFile(t, "fruit.txt", "pear\napple\nbanana\n")
	result := cmd.Run()
	assert.Equal(t, "apple\nbanana\npear\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestSort_numeric(t *testing.T) {
	// Lexicographic order would put 10 before 9.
	cmd := interptest.Command("sort -n nums.txt")
	cmd.WriteFile(t, "nums.txt", "10\n9\n2\n")
	result := cmd.Run()
	assert.Equal(t, "2\n9\n10\n", result.Stdout)
}

func TestSort_numericTreatsGarbageAsZero(t *testing.T) {
	cmd := interptest.Command("sort -n mixed.txt")
	cmd.WriteFile(t, "mixed.txt", "5\nhello\n-3\n")
	result := cmd.Run()
	assert.Equal(t, "-3\nhello\n5\n", result.Stdout)
}

func TestSort_reverse(t *testing.T) {
	cmd := interptest.Command("sort -r fruit.txt")
	cmd.WriteFile(t, "fruit.txt", "pear\napple\nbanana\n")
	result := cmd.Run()
	assert.Equal(t, "pear\nbanana\napple\n", result.Stdout)
}

func TestSort_unique(t *testing.T) {
	cmd := interptest.Command("sort -u dup.txt")
	cmd.WriteFile(t, "dup.txt", "b\na\nb\na\n")
	result := cmd.Run()
	assert.Equal(t, "a\nb\n", result.Stdout)
}

func TestSort_stdin(t *testing.T) {
	result := interptest.RunLine("printf 'c\\nb\\na\\n' | sort")
	assert.Equal(t, "a\nb\nc\n", result.Stdout)
}

func TestSort_missingFile(t *testing.T) {
	result := interptest.RunLine("sort nope.txt")
	assert.Equal(t, 2, result.ExitCode)
	assert.Contains(t, result.Stderr, "No such file or directory")
}

func TestUniq_adjacentOnly(t *testing.T) {
	cmd := interptest.Command("uniq in.txt")
	cmd.WriteFile(t, "in.txt", "a\na\nb\na\n")
	result := cmd.Run()
	assert.Equal(t, "a\nb\na\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestUniq_afterSortDedupsGlobally(t *testing.T) {
	cmd := interptest.Command("sort in.txt | uniq")
	cmd.WriteFile(t, "in.txt", "a\nb\na\nb\n")
	result := cmd.Run()
	assert.Equal(t, "a\nb\n", result.Stdout)
}

func TestUniq_missingFile(t *testing.T) {
	result := interptest.RunLine("uniq nope.txt")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "No such file or directory")
}
