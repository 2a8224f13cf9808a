package repl

import "strings"

// ParsedCommand represents a parsed command input.
type ParsedCommand struct {
	Name string
	Args []string
}

// ParseCommandInput splits a line on single spaces. The first token, trimmed,
// is the command name and the remaining tokens are returned as-is, so runs of
// spaces produce empty arguments.
func ParseCommandInput(input string) ParsedCommand {
	input = strings.TrimRight(input, "\r\n")

	tokens := strings.Split(input, " ")

	return ParsedCommand{
		Name: strings.TrimSpace(tokens[0]),
		Args: tokens[1:],
	}
}
