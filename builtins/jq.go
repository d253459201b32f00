package builtins

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/agentary/vshell/core/interp"
)

var jqPathSegment = regexp.MustCompile(`^([A-Za-z0-9_]+)((?:\[\d+\])*)$`)

// Jq evaluates a minimal filter subset against JSON input: ".", object
// paths like ".a.b", array indexing like ".items[0]", and the "keys" and
// "length" functions. Anything else is rejected with a parse error.
func Jq(p *interp.Proc) int {
	_, operands := interp.ParseFlags(p.Args()[1:], interp.FlagSpec{})
	if len(operands) == 0 {
		fmt.Fprintln(p.Stderr(), "jq: missing filter")
		return 2
	}
	filter := operands[0]

	content, _, err := inputOrStdin(p, operands[1:])
	if err != nil {
		fmt.Fprintf(p.Stderr(), "jq: %s: No such file or directory\n", operands[1])
		return 2
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		fmt.Fprintf(p.Stderr(), "jq: parse error: %v\n", err)
		return 1
	}

	value, err := evalJqFilter(doc, filter)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "jq: error: %v\n", err)
		return 1
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		fmt.Fprintf(p.Stderr(), "jq: error: %v\n", err)
		return 1
	}
	fmt.Fprintln(p.Stdout(), string(encoded))
	return 0
}

func evalJqFilter(doc interface{}, filter string) (interface{}, error) {
	switch filter {
	case ".":
		return doc, nil
	case "keys":
		return jqKeys(doc)
	case "length":
		return jqLength(doc)
	}

	if !strings.HasPrefix(filter, ".") {
		return nil, fmt.Errorf("unsupported filter %q", filter)
	}

	value := doc
	for _, segment := range strings.Split(filter[1:], ".") {
		m := jqPathSegment.FindStringSubmatch(segment)
		if m == nil {
			return nil, fmt.Errorf("unsupported filter %q", filter)
		}

		obj, ok := value.(map[string]interface{})
		if !ok {
			return nil, nil // descending into a non-object yields null
		}
		value = obj[m[1]]

		for _, idx := range strings.Split(strings.Trim(m[2], "[]"), "][") {
			if idx == "" {
				continue
			}
			i, _ := strconv.Atoi(idx)
			arr, ok := value.([]interface{})
			if !ok || i >= len(arr) {
				value = nil
				break
			}
			value = arr[i]
		}
	}
	return value, nil
}

func jqKeys(doc interface{}) (interface{}, error) {
	obj, ok := doc.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("keys requires an object")
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func jqLength(doc interface{}) (interface{}, error) {
	switch v := doc.(type) {
	case map[string]interface{}:
		return len(v), nil
	case []interface{}:
		return len(v), nil
	case string:
		return len(v), nil
	case nil:
		return 0, nil
	default:
		return nil, fmt.Errorf("length requires an object, array or string")
	}
}

var _ interp.ProcessFunc = Jq

func init() {
	register("jq", Jq)
}
