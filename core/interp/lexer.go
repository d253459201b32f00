package interp

// Tokenize splits a command string into argv-style tokens. It walks the
// string character by character tracking quote and escape state:
//
//   - a backslash outside single quotes includes the next character
//     literally (no escape sequences are interpreted),
//   - single quotes suppress all meta-interpretation, including backslash,
//   - double quotes permit backslash escaping,
//   - unquoted whitespace ends a token and runs of it collapse.
//
// An unterminated quote is not an error: whatever was buffered is flushed as
// the final token. Callers depend on that leniency.
//
// A quoted empty string ("" or '') survives as an empty token.
func Tokenize(command string) []string {
	var tokens []string
	var current []rune
	var inSingle, inDouble, escapeNext bool
	quoted := false // the current token contained a quote

	flush := func() {
		if len(current) > 0 || quoted {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
		quoted = false
	}

	for _, c := range command {
		switch {
		case escapeNext:
			current = append(current, c)
			escapeNext = false
		case c == '\\' && !inSingle:
			escapeNext = true
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true
		case c == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true
		case (c == ' ' || c == '\t') && !inSingle && !inDouble:
			flush()
		default:
			current = append(current, c)
		}
	}
	flush()

	return tokens
}
