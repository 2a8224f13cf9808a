package stores

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hay-kot/todo/internal/core/todo"
	"github.com/rs/zerolog"
)

// maxLineSize bounds a single stored line.
const maxLineSize = 1 << 20

// SaveResult summarizes where items were written by Save.
type SaveResult struct {
	Kept     int // written to the primary file
	Archived int // appended to the archive file
	Dropped  int // soft-deleted, written nowhere
}

// TodoStore persists todo items to a primary text file with one item per line.
// Closed items are moved to an append-only archive file on save.
//
// Both files are opened by OpenTodoStore and held until Close.
type TodoStore struct {
	primary *os.File
	archive *os.File
	logger  zerolog.Logger
}

// OpenTodoStore opens (creating when missing) the primary and archive files.
func OpenTodoStore(primaryPath, archivePath string, logger zerolog.Logger) (*TodoStore, error) {
	for _, p := range []string{primaryPath, archivePath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	primary, err := os.OpenFile(primaryPath, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open todo file: %w", err)
	}

	archive, err := os.OpenFile(archivePath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		_ = primary.Close()
		return nil, fmt.Errorf("open archive file: %w", err)
	}

	return &TodoStore{
		primary: primary,
		archive: archive,
		logger:  logger,
	}, nil
}

// Load reads every non-blank line of the primary file as an item.
func (s *TodoStore) Load() ([]todo.Item, error) {
	if _, err := s.primary.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek todo file: %w", err)
	}

	items, err := ReadItems(s.primary)
	if err != nil {
		return nil, fmt.Errorf("read todo file: %w", err)
	}

	s.logger.Debug().
		Str("path", s.primary.Name()).
		Int("count", len(items)).
		Msg("loaded todo items")

	return items, nil
}

// Save rewrites the primary file with the active items and appends closed
// items to the archive. Deleted items are dropped. Writes are not
// transactional: a failure leaves whatever was flushed before it on disk.
func (s *TodoStore) Save(items []todo.Item) (SaveResult, error) {
	if err := s.primary.Truncate(0); err != nil {
		return SaveResult{}, fmt.Errorf("truncate todo file: %w", err)
	}
	if _, err := s.primary.Seek(0, io.SeekStart); err != nil {
		return SaveResult{}, fmt.Errorf("seek todo file: %w", err)
	}

	pw := bufio.NewWriter(s.primary)
	aw := bufio.NewWriter(s.archive)

	res, err := WriteItems(items, pw, aw)
	if err != nil {
		return res, err
	}

	if err := pw.Flush(); err != nil {
		return res, fmt.Errorf("write todo file: %w", err)
	}
	if err := aw.Flush(); err != nil {
		return res, fmt.Errorf("write archive file: %w", err)
	}

	s.logger.Info().
		Int("kept", res.Kept).
		Int("archived", res.Archived).
		Int("dropped", res.Dropped).
		Msg("saved todo items")

	return res, nil
}

// Close closes both files.
func (s *TodoStore) Close() error {
	return errors.Join(s.primary.Close(), s.archive.Close())
}

// ReadItems parses items from r, one per line. Blank lines are skipped.
func ReadItems(r io.Reader) ([]todo.Item, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var items []todo.Item
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		item, err := todo.Parse(line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// ReadItemsFile reads items from the file at path. A missing file yields no items.
func ReadItemsFile(path string) ([]todo.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ReadItems(f)
}

// WriteItems routes each item, in order, to the primary or archive writer.
// Closed items go to archive, deleted items are skipped, and everything else
// goes to primary.
func WriteItems(items []todo.Item, primary, archive io.Writer) (SaveResult, error) {
	var res SaveResult

	for _, item := range items {
		switch item.Status {
		case todo.StatusDeleted:
			res.Dropped++
		case todo.StatusClosed:
			if _, err := fmt.Fprintln(archive, todo.Format(item)); err != nil {
				return res, fmt.Errorf("write archive file: %w", err)
			}
			res.Archived++
		default:
			if _, err := fmt.Fprintln(primary, todo.Format(item)); err != nil {
				return res, fmt.Errorf("write todo file: %w", err)
			}
			res.Kept++
		}
	}

	return res, nil
}
