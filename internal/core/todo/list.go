package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIndexOutOfRange is returned when an index does not address an item.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyText is returned when adding an item with no text.
	ErrEmptyText = errors.New("todo text cannot be empty")
	// ErrInvalidStatus is returned when an edit assigns a status that cannot be set by the user.
	ErrInvalidStatus = errors.New("invalid status")
)

// List is the ordered, in-memory set of items for a session. Indices are
// positional and zero based. Deleting an item does not shift the indices of
// the items after it; deleted items are removed by the store on save.
type List struct {
	items []Item
}

// NewList returns a list holding items. The slice is owned by the list afterwards.
func NewList(items []Item) *List {
	return &List{items: items}
}

// Len returns the number of items, including soft-deleted ones.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns the underlying items in index order. Callers must not retain
// the slice across mutations.
func (l *List) Items() []Item {
	return l.items
}

// Get returns the item at index.
func (l *List) Get(index int) (Item, error) {
	if err := l.check(index); err != nil {
		return Item{}, err
	}
	return l.items[index], nil
}

// Add appends a normal item with the trimmed text and returns its index.
func (l *List) Add(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyText
	}

	l.items = append(l.items, NewItem(text))
	return len(l.items) - 1, nil
}

// Edit describes an in-place change to an item. Zero fields are left unchanged.
type Edit struct {
	Text   string
	Status Status
}

// IsZero reports whether the edit would change nothing.
func (e Edit) IsZero() bool {
	return e.Text == "" && e.Status == ""
}

// Edit applies e to the item at index.
func (l *List) Edit(index int, e Edit) error {
	if err := l.check(index); err != nil {
		return err
	}

	if e.Status != "" {
		if _, ok := e.Status.Sigil(); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, e.Status)
		}
	}

	if text := strings.TrimSpace(e.Text); text != "" {
		l.items[index].Text = text
	}
	if e.Status != "" {
		l.items[index].Status = e.Status
	}

	return nil
}

// Delete soft deletes the item at index. The list length is unchanged.
func (l *List) Delete(index int) error {
	if err := l.check(index); err != nil {
		return err
	}
	l.items[index].Status = StatusDeleted
	return nil
}

func (l *List) check(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d (list has %d items)", ErrIndexOutOfRange, index, len(l.items))
	}
	return nil
}
