package interp

import "strings"

// FlagSpec declares, per builtin, which flag names consume a value and which
// are boolean toggles. Names are given without leading dashes.
type FlagSpec struct {
	// Value lists flags that consume the following token (or the text after
	// "=" for long flags) as their value.
	Value []string
	// Bool lists boolean toggles. The parser records any unlisted flag as a
	// toggle too, so this field is documentation for the builtin's grammar.
	Bool []string
}

func (s FlagSpec) takesValue(name string) bool {
	for _, v := range s.Value {
		if v == name {
			return true
		}
	}
	return false
}

// ParseFlags splits tokens (excluding the command name) into named flags and
// positional operands.
//
// Supported forms: "--" ends flag parsing, "--name", "--name=value", "-x",
// clustered short toggles like "-rn", and value-taking short flags that
// consume the following token ("-n 10"). Toggles are recorded with an empty
// string so callers test presence, not content. Operand order is preserved
// and flags may appear anywhere before a "--".
func ParseFlags(tokens []string, spec FlagSpec) (flags map[string]string, operands []string) {
	flags = make(map[string]string)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "--":
			operands = append(operands, tokens[i+1:]...)
			return flags, operands

		case strings.HasPrefix(tok, "--"):
			name := tok[2:]
			if eq := strings.Index(name, "="); eq >= 0 {
				flags[name[:eq]] = name[eq+1:]
			} else if spec.takesValue(name) && i+1 < len(tokens) {
				flags[name] = tokens[i+1]
				i++
			} else {
				flags[name] = ""
			}

		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			for _, c := range tok[1:] {
				name := string(c)
				if spec.takesValue(name) && i+1 < len(tokens) {
					flags[name] = tokens[i+1]
					i++
				} else {
					flags[name] = ""
				}
			}

		default:
			operands = append(operands, tok)
		}
	}

	return flags, operands
}
