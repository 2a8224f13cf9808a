package repl

import (
	"testing"

	"github.com/hay-kot/todo/internal/core/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList() *todo.List {
	return todo.NewList([]todo.Item{
		todo.MustParse("?task one"),
		todo.MustParse(".task two"),
	})
}

func requireUsage(t *testing.T, err error, topic string) {
	t.Helper()
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, topic, usageErr.Topic)
}

func TestAddItem(t *testing.T) {
	list := newList()

	require.NoError(t, addItem(list, []string{"hello", "world"}))

	require.Equal(t, 3, list.Len())
	got, _ := list.Get(2)
	assert.Equal(t, todo.Item{Status: todo.StatusNormal, Text: "hello world"}, got)
}

func TestAddItem_KeepsInnerSpacing(t *testing.T) {
	list := newList()

	require.NoError(t, addItem(list, []string{"a", "", "b", ""}))

	got, _ := list.Get(2)
	assert.Equal(t, "a  b", got.Text)
}

func TestAddItem_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: nil},
		{name: "blank arg", args: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := newList()
			requireUsage(t, addItem(list, tt.args), "add")
			assert.Equal(t, 2, list.Len())
		})
	}
}

func TestEditItem(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want todo.Item
	}{
		{
			name: "text and state",
			args: []string{"0", "-t", "new", "text", "-s", "3"},
			want: todo.Item{Status: todo.StatusFinished, Text: "new text"},
		},
		{
			name: "state before text",
			args: []string{"0", "-s", "4", "-t", "moved"},
			want: todo.Item{Status: todo.StatusClosed, Text: "moved"},
		},
		{
			name: "text only",
			args: []string{"0", "-t", "renamed"},
			want: todo.Item{Status: todo.StatusInProgress, Text: "renamed"},
		},
		{
			name: "state only",
			args: []string{"0", "-s", "1"},
			want: todo.Item{Status: todo.StatusNormal, Text: "task one"},
		},
		{
			name: "empty text leaves text",
			args: []string{"0", "-t", "", "-s", "2"},
			want: todo.Item{Status: todo.StatusInProgress, Text: "task one"},
		},
		{
			name: "tokens after state code ignored",
			args: []string{"0", "-t", "a", "-s", "3", "b"},
			want: todo.Item{Status: todo.StatusFinished, Text: "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := newList()
			require.NoError(t, editItem(list, tt.args))

			got, _ := list.Get(0)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEditItem_Usage(t *testing.T) {
	tests := []struct {
		name string
		list *todo.List
		args []string
	}{
		{name: "no args", list: newList(), args: nil},
		{name: "no flags", list: newList(), args: []string{"0", "text"}},
		{name: "bad index", list: newList(), args: []string{"x", "-t", "a"}},
		{name: "negative index", list: newList(), args: []string{"-1", "-t", "a"}},
		{name: "index past end", list: newList(), args: []string{"2", "-t", "a"}},
		{name: "empty list", list: todo.NewList(nil), args: []string{"0", "-t", "a"}},
		{name: "text flag last", list: newList(), args: []string{"0", "-t"}},
		{name: "state flag last", list: newList(), args: []string{"0", "-s"}},
		{name: "invalid state code", list: newList(), args: []string{"0", "-s", "9"}},
		{name: "invalid code with text", list: newList(), args: []string{"0", "-t", "x", "-s", "NORMAL"}},
		{name: "blank text", list: newList(), args: []string{"0", "-t", ""}},
		{name: "blank text with spaces", list: newList(), args: []string{"0", "-t", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]todo.Item(nil), tt.list.Items()...)

			requireUsage(t, editItem(tt.list, tt.args), "edit")
			assert.Equal(t, before, tt.list.Items())
		})
	}
}

func TestDeleteItem(t *testing.T) {
	list := newList()

	require.NoError(t, deleteItem(list, []string{"0"}))

	assert.Equal(t, 2, list.Len())
	got, _ := list.Get(0)
	assert.Equal(t, todo.StatusDeleted, got.Status)
}

func TestDeleteItem_Usage(t *testing.T) {
	tests := []struct {
		name string
		list *todo.List
		args []string
	}{
		{name: "no args", list: newList(), args: nil},
		{name: "bad index", list: newList(), args: []string{"one"}},
		{name: "out of range", list: newList(), args: []string{"5"}},
		{name: "empty list", list: todo.NewList(nil), args: []string{"0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]todo.Item(nil), tt.list.Items()...)

			requireUsage(t, deleteItem(tt.list, tt.args), "delete")
			assert.Equal(t, before, tt.list.Items())
		})
	}
}

func TestParseIndex(t *testing.T) {
	n, err := parseIndex(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = parseIndex("-3")
	require.Error(t, err)

	_, err = parseIndex("")
	require.Error(t, err)
}
