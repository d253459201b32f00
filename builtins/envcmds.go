package builtins

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agentary/vshell/core/interp"
)

// Env prints the environment as sorted KEY=value lines.
func Env(p *interp.Proc) int {
	for _, kv := range p.Environ() {
		fmt.Fprintln(p.Stdout(), kv)
	}
	return 0
}

// Export sets environment variables from NAME=value operands for the
// remainder of the pipeline. With no operands it dumps the environment.
func Export(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})
	if len(operands) == 0 {
		return Env(p)
	}
	for _, operand := range operands {
		key, value, found := strings.Cut(operand, "=")
		if !found {
			continue // exporting an already-set name changes nothing here
		}
		p.Setenv(key, value)
	}
	return 0
}

// Date prints the current time in ISO-8601.
func Date(p *interp.Proc) int {
	fmt.Fprintln(p.Stdout(), p.Now().UTC().Format(time.RFC3339))
	return 0
}

// maxSleep caps sleep so a single command can't burn the whole timeout
// budget.
const maxSleep = 5 * time.Second

// Sleep pauses for the requested seconds, clamped to five.
func Sleep(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})
	if len(operands) == 0 {
		fmt.Fprintln(p.Stderr(), "sleep: missing operand")
		return 1
	}
	seconds, err := strconv.ParseFloat(operands[0], 64)
	if err != nil || seconds < 0 {
		fmt.Fprintf(p.Stderr(), "sleep: invalid time interval '%s'\n", operands[0])
		return 1
	}

	duration := time.Duration(seconds * float64(time.Second))
	if duration > maxSleep {
		duration = maxSleep
	}

	select {
	case <-time.After(duration):
	case <-p.Context().Done():
	}
	return 0
}

// Seq prints a numeric sequence: seq LAST, seq FIRST LAST, or
// seq FIRST STEP LAST.
func Seq(p *interp.Proc) int {
	args := p.Args()[1:]

	var nums []int
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(p.Stderr(), "seq: invalid argument: '%s'\n", arg)
			return 1
		}
		nums = append(nums, n)
	}

	first, step, last := 1, 1, 0
	switch len(nums) {
	case 1:
		last = nums[0]
	case 2:
		first, last = nums[0], nums[1]
	case 3:
		first, step, last = nums[0], nums[1], nums[2]
	default:
		fmt.Fprintln(p.Stderr(), "seq: expected 1, 2 or 3 arguments")
		return 1
	}
	if step == 0 {
		fmt.Fprintln(p.Stderr(), "seq: step may not be zero")
		return 1
	}

	for n := first; (step > 0 && n <= last) || (step < 0 && n >= last); n += step {
		fmt.Fprintln(p.Stdout(), n)
	}
	return 0
}

// yesRepetitions bounds yes; an unbounded stream has no place in a captured
// result.
const yesRepetitions = 100

// Yes prints its argument (default "y") a bounded number of times.
func Yes(p *interp.Proc) int {
	word := "y"
	if args := p.Args()[1:]; len(args) > 0 {
		word = strings.Join(args, " ")
	}
	for i := 0; i < yesRepetitions; i++ {
		fmt.Fprintln(p.Stdout(), word)
	}
	return 0
}

var (
	_ interp.ProcessFunc = Env
	_ interp.ProcessFunc = Export
	_ interp.ProcessFunc = Date
	_ interp.ProcessFunc = Sleep
	_ interp.ProcessFunc = Seq
	_ interp.ProcessFunc = Yes
)

func init() {
	register("env", Env)
	register("export", Export)
	register("date", Date)
	register("sleep", Sleep)
	register("seq", Seq)
	register("yes", Yes)
}
