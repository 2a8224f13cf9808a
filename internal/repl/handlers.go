package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hay-kot/todo/internal/core/todo"
)

// UsageError reports invalid command input. The session answers it by
// showing the help for Topic; the list is left untouched.
type UsageError struct {
	Topic  string
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Topic, e.Reason)
}

func usage(topic, format string, args ...any) error {
	return &UsageError{Topic: topic, Reason: fmt.Sprintf(format, args...)}
}

// addItem appends a normal item whose text is every argument joined by a
// single space.
func addItem(list *todo.List, args []string) error {
	if len(args) == 0 {
		return usage("add", "missing text")
	}

	if _, err := list.Add(strings.Join(args, " ")); err != nil {
		if errors.Is(err, todo.ErrEmptyText) {
			return usage("add", "empty text")
		}
		return err
	}

	return nil
}

// editItem handles "edit <index> [-t <text...>] [-s <code>]".
func editItem(list *todo.List, args []string) error {
	index, edit, err := parseEdit(args)
	if err != nil {
		return err
	}
	if edit.IsZero() {
		return usage("edit", "nothing to change")
	}

	if err := list.Edit(index, edit); err != nil {
		if errors.Is(err, todo.ErrIndexOutOfRange) || errors.Is(err, todo.ErrInvalidStatus) {
			return usage("edit", "%v", err)
		}
		return err
	}

	return nil
}

// parseEdit extracts the index and requested changes from edit arguments.
// "-t" takes every following token up to the next "-s"; "-s" takes exactly
// one status code.
func parseEdit(args []string) (int, todo.Edit, error) {
	if len(args) == 0 || !(hasToken(args, "-t") || hasToken(args, "-s")) {
		return 0, todo.Edit{}, usage("edit", "missing index or flags")
	}

	index, err := parseIndex(args[0])
	if err != nil {
		return 0, todo.Edit{}, usage("edit", "%v", err)
	}

	var (
		text   strings.Builder
		status todo.Status
	)

	for i, tok := range args {
		switch strings.TrimSpace(tok) {
		case "-t":
			if i == len(args)-1 {
				return 0, todo.Edit{}, usage("edit", "-t requires text")
			}
			for _, k := range args[i+1:] {
				k = strings.TrimSpace(k)
				if k == "-s" {
					break
				}
				text.WriteString(k)
				text.WriteByte(' ')
			}
		case "-s":
			if i == len(args)-1 {
				return 0, todo.Edit{}, usage("edit", "-s requires a state code")
			}
			code := strings.TrimSpace(args[i+1])
			st, ok := todo.StatusFromCode(code)
			if !ok {
				return 0, todo.Edit{}, usage("edit", "invalid state code %q", code)
			}
			status = st
		}
	}

	return index, todo.Edit{
		Text:   strings.TrimSpace(text.String()),
		Status: status,
	}, nil
}

// deleteItem soft deletes the item at the index given by the first argument.
func deleteItem(list *todo.List, args []string) error {
	if len(args) == 0 {
		return usage("delete", "missing index")
	}

	index, err := parseIndex(args[0])
	if err != nil {
		return usage("delete", "%v", err)
	}

	if err := list.Delete(index); err != nil {
		if errors.Is(err, todo.ErrIndexOutOfRange) {
			return usage("delete", "%v", err)
		}
		return err
	}

	return nil
}

// parseIndex parses a non-negative list index.
func parseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid index %q", s)
	}

	return n, nil
}

func hasToken(args []string, want string) bool {
	for _, a := range args {
		if strings.TrimSpace(a) == want {
			return true
		}
	}
	return false
}
