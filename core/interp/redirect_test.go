package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRedirect(t *testing.T) {
	cases := []struct {
		name       string
		command    string
		wantRest   string
		wantTarget string
		wantAppend bool
		wantOK     bool
	}{
		{"none", "echo hi", "echo hi", "", false, false},
		{"truncate", "echo hi > out.txt", "echo hi", "out.txt", false, true},
		{"append", "echo hi >> out.txt", "echo hi", "out.txt", true, true},
		{"no-spaces", "echo hi>out.txt", "echo hi", "out.txt", false, true},
		{"append-no-spaces", "echo hi>>out.txt", "echo hi", "out.txt", true, true},
		{"trailing-whitespace", "echo hi > out.txt  ", "echo hi", "out.txt", false, true},
		{"nested-path", "cat a > sub/dir/b", "cat a", "sub/dir/b", false, true},
		{"last-redirect-wins", "echo a > b >> c", "echo a > b", "c", true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rest, target, appendMode, ok := extractRedirect(tc.command)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantRest, rest)
			assert.Equal(t, tc.wantTarget, target)
			assert.Equal(t, tc.wantAppend, appendMode)
		})
	}
}
