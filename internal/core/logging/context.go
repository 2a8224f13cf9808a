package logging

import "context"

type contextKey string

const (
	commandKey contextKey = "command"
	storeKey   contextKey = "store"
)

// WithCommand adds the name of the running CLI command to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithStore adds the path of the todo file being worked on to the context.
func WithStore(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, storeKey, path)
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}

// GetStore retrieves the todo file path from the context.
// Returns empty string if not present.
func GetStore(ctx context.Context) string {
	if path, ok := ctx.Value(storeKey).(string); ok {
		return path
	}
	return ""
}
