package interp

import (
	"math"
	"strconv"
)

// EvalPredicate evaluates a test/[ expression and returns its exit code:
// 0 if the predicate holds, 1 otherwise.
//
// Grammar: zero args is false; two args is a unary predicate (-e/-f file
// exists, -d directory exists, -z empty string, -n non-empty string); three
// args is a binary predicate (= == != string comparison, -eq -ne -lt -le
// -gt -ge numeric comparison). A leading "!" negates the rest. There is no
// -a/-o or grouping.
func EvalPredicate(p *Proc, args []string) int {
	if len(args) == 0 {
		return 1
	}
	if args[0] == "!" {
		if EvalPredicate(p, args[1:]) == 0 {
			return 1
		}
		return 0
	}

	switch len(args) {
	case 2:
		return boolExit(evalUnary(p, args[0], args[1]))
	case 3:
		return boolExit(evalBinary(args[0], args[1], args[2]))
	default:
		return 1
	}
}

func boolExit(ok bool) int {
	if ok {
		return 0
	}
	return 1
}

func evalUnary(p *Proc, op, operand string) bool {
	switch op {
	case "-e", "-f":
		exists, err := p.FileExists(operand)
		return err == nil && exists
	case "-d":
		return p.DirExists(operand)
	case "-z":
		return operand == ""
	case "-n":
		return operand != ""
	default:
		return false
	}
}

// evalBinary compares two operands. Numeric operators coerce both sides to
// floats; a non-numeric operand becomes NaN, so every ordering comparison
// against it is false and -ne against it is true.
func evalBinary(left, op, right string) bool {
	switch op {
	case "=", "==":
		return left == right
	case "!=":
		return left != right
	}

	l, r := toNumber(left), toNumber(right)
	switch op {
	case "-eq":
		return l == r
	case "-ne":
		return l != r
	case "-lt":
		return l < r
	case "-le":
		return l <= r
	case "-gt":
		return l > r
	case "-ge":
		return l >= r
	default:
		return false
	}
}

func toNumber(s string) float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}
