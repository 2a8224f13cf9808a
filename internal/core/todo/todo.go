// Package todo defines the todo item domain model and its single-line text encoding.
package todo

import (
	"errors"
	"fmt"
)

// ErrEmptyLine is returned by Parse when given an empty line.
var ErrEmptyLine = errors.New("cannot parse empty line")

// Status represents the lifecycle state of a todo item.
type Status string

const (
	StatusNormal     Status = "normal"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
	StatusClosed     Status = "closed"

	// StatusDeleted marks an item as soft deleted. Deleted items are dropped
	// on the next save and never written to either store.
	StatusDeleted Status = "deleted"

	// StatusUnmarked is assigned to stored lines that do not begin with a
	// status sigil. The full line is kept as text and written back verbatim.
	StatusUnmarked Status = "unmarked"
)

// Sigils used as the first character of a stored line.
const (
	SigilInProgress = '?'
	SigilFinished   = '!'
	SigilClosed     = '-'
	SigilNormal     = '.'
)

// Sigil returns the status sigil and true, or false when the status has no
// stored representation.
func (s Status) Sigil() (byte, bool) {
	switch s {
	case StatusInProgress:
		return SigilInProgress, true
	case StatusFinished:
		return SigilFinished, true
	case StatusClosed:
		return SigilClosed, true
	case StatusNormal:
		return SigilNormal, true
	default:
		return 0, false
	}
}

// StatusFromCode maps the numeric codes accepted by the edit command.
//
//	1 normal, 2 in progress, 3 finished, 4 closed
func StatusFromCode(code string) (Status, bool) {
	switch code {
	case "1":
		return StatusNormal, true
	case "2":
		return StatusInProgress, true
	case "3":
		return StatusFinished, true
	case "4":
		return StatusClosed, true
	}
	return "", false
}

// Item is a single todo entry.
type Item struct {
	Status Status `json:"status"`
	Text   string `json:"text"`
}

// NewItem returns a normal item with the given text.
func NewItem(text string) Item {
	return Item{Status: StatusNormal, Text: text}
}

func (i Item) String() string {
	return i.Text
}

// Parse decodes a single stored line into an Item. The first character selects
// the status; a line without a recognized sigil becomes an unmarked item that
// keeps the entire line as its text.
func Parse(line string) (Item, error) {
	if line == "" {
		return Item{}, ErrEmptyLine
	}

	var status Status
	switch line[0] {
	case SigilInProgress:
		status = StatusInProgress
	case SigilFinished:
		status = StatusFinished
	case SigilClosed:
		status = StatusClosed
	case SigilNormal:
		status = StatusNormal
	default:
		return Item{Status: StatusUnmarked, Text: line}, nil
	}

	return Item{Status: status, Text: line[1:]}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(line string) Item {
	item, err := Parse(line)
	if err != nil {
		panic(fmt.Sprintf("todo: parse %q: %v", line, err))
	}
	return item
}

// Format encodes an Item as a single stored line. Statuses without a sigil
// (deleted, unmarked) are encoded as bare text.
func Format(item Item) string {
	sigil, ok := item.Status.Sigil()
	if !ok {
		return item.Text
	}
	return string(sigil) + item.Text
}
