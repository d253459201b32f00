package interp

import "regexp"

var (
	appendRedirect   = regexp.MustCompile(`^(.*?)\s*>>\s*(\S+)\s*$`)
	truncateRedirect = regexp.MustCompile(`^(.*?)\s*>\s*(\S+)\s*$`)
)

// extractRedirect strips a trailing "> file" or ">> file" from a single
// command's text. It returns the command without the redirect suffix, the
// target path, whether the write appends, and whether a redirect was found.
// The append form is checked first so ">>" is never misparsed as ">".
//
// The match is purely textual; a quoted ">" in the final operand will be
// taken as a redirect. That is a long-standing boundary of the grammar, not
// something builtins should work around.
func extractRedirect(command string) (rest, target string, appendMode, ok bool) {
	if m := appendRedirect.FindStringSubmatch(command); m != nil {
		return m[1], m[2], true, true
	}
	if m := truncateRedirect.FindStringSubmatch(command); m != nil {
		return m[1], m[2], false, true
	}
	return command, "", false, false
}
