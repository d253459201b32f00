package interp

import "regexp"

var (
	bracedVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)
	bareVarPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// Expand substitutes $NAME and ${NAME} references using getenv. Unset
// variables expand to the empty string. Names start with a letter or
// underscore, so numeric field references like awk's $1 pass through
// untouched.
//
// Expansion runs on the raw command line before tokenization, so references
// inside single quotes are substituted too. That diverges from POSIX but
// matches the behavior the tool layer has always had; callers quote with
// backslashes when they need a literal dollar sign.
func Expand(text string, getenv func(string) string) string {
	text = bracedVarPattern.ReplaceAllStringFunc(text, func(match string) string {
		return getenv(match[2 : len(match)-1])
	})
	return bareVarPattern.ReplaceAllStringFunc(text, func(match string) string {
		return getenv(match[1:])
	})
}
