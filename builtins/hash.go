package builtins

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

// Base64 encodes its file operand or stdin; -d or --decode reverses.
func Base64(p *interp.Proc) int {
	flags, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{Bool: []string{"d", "decode"}})

	content, _, err := inputOrStdin(p, operands)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "base64: %s: No such file or directory\n", operands[0])
		return 1
	}

	_, decodeShort := flags["d"]
	_, decodeLong := flags["decode"]
	if decodeShort || decodeLong {
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(content))
		if err != nil {
			fmt.Fprintln(p.Stderr(), "base64: invalid input")
			return 1
		}
		fmt.Fprint(p.Stdout(), string(decoded))
		return 0
	}

	fmt.Fprintln(p.Stdout(), base64.StdEncoding.EncodeToString([]byte(content)))
	return 0
}

// Md5sum hashes its file operand or stdin through the digest collaborator.
//
// The "md5" algorithm is an alias for a different digest (see core/digest);
// the output is stable but not interoperable with real md5sum.
func Md5sum(p *interp.Proc) int {
	return checksum(p, "md5sum", "md5")
}

// Sha256sum hashes its file operand or stdin with SHA-256.
func Sha256sum(p *interp.Proc) int {
	return checksum(p, "sha256sum", "sha256")
}

func checksum(p *interp.Proc, cmdName, algorithm string) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})

	content, name, err := inputOrStdin(p, operands)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "%s: %s: No such file or directory\n", cmdName, operands[0])
		return 1
	}

	sum, err := p.Digest(algorithm, []byte(content))
	if err != nil {
		fmt.Fprintf(p.Stderr(), "%s: %v\n", cmdName, err)
		return 1
	}

	fmt.Fprintf(p.Stdout(), "%s  %s\n", sum, name)
	return 0
}

var (
	_ interp.ProcessFunc = Base64
	_ interp.ProcessFunc = Md5sum
	_ interp.ProcessFunc = Sha256sum
)

func init() {
	register("base64", Base64)
	register("md5sum", Md5sum)
	register("sha256sum", Sha256sum)
}
