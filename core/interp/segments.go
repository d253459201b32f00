package interp

import "strings"

// Segment is one unit of a command line delimited by a control operator.
// Operator is the operator that separated this segment from the next one:
// "&&", "||", ";", or "" for the final segment.
type Segment struct {
	Command  string
	Operator string
}

// splitSegments partitions a command line on ";", "&&" and "||", recording
// each segment's trailing operator. Operators inside quotes are literal.
// Empty segments (";;", leading ";") are dropped.
func splitSegments(line string) []Segment {
	var segments []Segment
	var current strings.Builder
	var inSingle, inDouble bool

	flush := func(operator string) {
		command := strings.TrimSpace(current.String())
		current.Reset()
		if command != "" {
			segments = append(segments, Segment{Command: command, Operator: operator})
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			current.WriteByte(c)
		case c == '"' && !inSingle:
			inDouble = !inDouble
			current.WriteByte(c)
		case inSingle || inDouble:
			current.WriteByte(c)
		case c == '&' && i+1 < len(line) && line[i+1] == '&':
			flush("&&")
			i++
		case c == '|' && i+1 < len(line) && line[i+1] == '|':
			flush("||")
			i++
		case c == ';':
			flush(";")
		default:
			current.WriteByte(c)
		}
	}
	flush("")

	return segments
}

// splitPipes splits one segment into pipe stages on single "|" characters.
// A "|" that is part of "||" or preceded by a backslash does not split.
//
// The scan is deliberately quote-unaware: a "|" inside quotes still splits.
// Keeping that boundary stable matters more than fixing it, since callers
// have learned to escape pipes they want literal.
func splitPipes(command string) []string {
	var stages []string
	start := 0

	for i := 0; i < len(command); i++ {
		if command[i] != '|' {
			continue
		}
		prevPipe := i > 0 && command[i-1] == '|'
		nextPipe := i+1 < len(command) && command[i+1] == '|'
		escaped := i > 0 && command[i-1] == '\\'
		if prevPipe || nextPipe || escaped {
			continue
		}
		stages = append(stages, strings.TrimSpace(command[start:i]))
		start = i + 1
	}
	stages = append(stages, strings.TrimSpace(command[start:]))

	return stages
}

// containsPipe reports whether command has at least one stage-splitting "|".
func containsPipe(command string) bool {
	return len(splitPipes(command)) > 1
}
